package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"titanic-dash/internal/domain"
	"titanic-dash/internal/source"
)

// DuckDBReader reads CSV or Parquet datasets through an in-memory DuckDB.
// Remote sources are spooled to a temporary file first.
type DuckDBReader struct{}

// Name implements Reader.
func (DuckDBReader) Name() string { return "duckdb" }

// Read implements Reader.
func (DuckDBReader) Read(ctx context.Context, src *source.Source) ([]domain.PassengerRecord, error) {
	path := src.LocalPath
	if path == "" {
		spooled, err := spool(src)
		if err != nil {
			return nil, domain.ErrDataUnavailable(err, "spool %s", src.Name)
		}
		defer os.Remove(spooled) //nolint:errcheck
		path = spooled
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "open duckdb")
	}
	defer db.Close() //nolint:errcheck

	rows, err := db.QueryContext(ctx, passengerQuery(path, src.Format))
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "query %s", src.Name)
	}
	defer rows.Close() //nolint:errcheck

	var records []domain.PassengerRecord
	row := 0
	for rows.Next() {
		row++
		var (
			survived, class int
			age             float64
			sex             sql.NullString
		)
		if err := rows.Scan(&survived, &age, &sex, &class); err != nil {
			return nil, domain.ErrDataUnavailable(err, "scan row %d", row)
		}
		rec, err := newRecord(row, survived, age, sex.String, class)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDataUnavailable(err, "read %s", src.Name)
	}
	return records, nil
}

// passengerQuery selects the four canonical columns, dropping rows without an age.
func passengerQuery(path string, format source.Format) string {
	escaped := strings.ReplaceAll(path, "'", "''")
	scan := fmt.Sprintf("read_csv_auto('%s', header = true)", escaped)
	if format == source.FormatParquet {
		scan = fmt.Sprintf("read_parquet('%s')", escaped)
	}
	return fmt.Sprintf(`SELECT
	CAST(%s AS INTEGER),
	CAST(%s AS DOUBLE),
	lower(trim(CAST(%s AS VARCHAR))),
	CAST(%s AS INTEGER)
FROM %s
WHERE %s IS NOT NULL`, ColSurvived, ColAge, ColSex, ColClass, scan, ColAge)
}

func spool(src *source.Source) (string, error) {
	f, err := os.CreateTemp("", "titanic-*."+string(src.Format))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, src.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
