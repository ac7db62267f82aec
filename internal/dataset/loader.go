package dataset

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"titanic-dash/internal/config"
	"titanic-dash/internal/domain"
	"titanic-dash/internal/source"
)

// Opener resolves a dataset location. *source.Opener satisfies it.
type Opener interface {
	Open(ctx context.Context, location string) (*source.Source, error)
}

// Loader reads the passenger table once per process. Every call to Load after
// the first returns the same table (or the same error) without touching the
// source again.
type Loader struct {
	location string
	engine   string
	opener   Opener
	logger   *slog.Logger

	once  sync.Once
	table *domain.Table
	err   error
}

// NewLoader creates a Loader for cfg.Path using the given engine selection
// (config.EngineAuto, EngineFrame or EngineDuckDB).
func NewLoader(cfg config.DatasetConfig, opener Opener, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	engine := cfg.Engine
	if engine == "" {
		engine = config.EngineAuto
	}
	return &Loader{
		location: cfg.Path,
		engine:   engine,
		opener:   opener,
		logger:   logger.With("component", "dataset"),
	}
}

// Load returns the memoized passenger table. Failures are
// *domain.DataUnavailableError.
func (l *Loader) Load(ctx context.Context) (*domain.Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.load(ctx)
	})
	return l.table, l.err
}

func (l *Loader) load(ctx context.Context) (*domain.Table, error) {
	start := time.Now()
	src, err := l.opener.Open(ctx, l.location)
	if err != nil {
		return nil, asUnavailable(err, "open dataset")
	}
	defer src.Close() //nolint:errcheck

	reader, err := l.readerFor(src.Format)
	if err != nil {
		return nil, err
	}

	records, err := reader.Read(ctx, src)
	if err != nil {
		return nil, asUnavailable(err, "read dataset")
	}

	table := domain.NewTable(records)
	l.logger.Info("passenger table loaded",
		"location", src.Name,
		"format", src.Format,
		"engine", reader.Name(),
		"records", table.Len(),
		"duration", time.Since(start),
	)
	return table, nil
}

func (l *Loader) readerFor(format source.Format) (Reader, error) {
	switch l.engine {
	case config.EngineFrame:
		if format != source.FormatCSV {
			return nil, domain.ErrDataUnavailable(nil, "engine %q cannot read %s datasets", l.engine, format)
		}
		return FrameReader{}, nil
	case config.EngineDuckDB:
		return DuckDBReader{}, nil
	case config.EngineAuto:
		if format == source.FormatCSV {
			return FrameReader{}, nil
		}
		return DuckDBReader{}, nil
	default:
		return nil, domain.ErrDataUnavailable(nil, "unknown dataset engine %q", l.engine)
	}
}

func asUnavailable(err error, msg string) error {
	var unavailable *domain.DataUnavailableError
	if errors.As(err, &unavailable) {
		return err
	}
	return domain.ErrDataUnavailable(err, "%s", msg)
}
