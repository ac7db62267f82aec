// Package survival filters the passenger table and counts who was saved.
package survival

import (
	"context"
	"log/slog"

	"titanic-dash/internal/domain"
)

// Apply filters table by criteria and aggregates the outcome. Sex and class
// constraints apply only when set; the age range is inclusive on both ends.
// Apply has no side effects and never fails: an empty subset yields a
// zero Summary.
func Apply(table *domain.Table, criteria domain.FilterCriteria) domain.Summary {
	sum := domain.Summary{Criteria: criteria, Subset: []domain.PassengerRecord{}}
	for rec := range table.All() {
		if !criteria.Matches(rec) {
			continue
		}
		sum.Subset = append(sum.Subset, rec)
		if rec.Survived {
			sum.Survived++
		}
	}
	sum.Total = len(sum.Subset)
	sum.Perished = sum.Total - sum.Survived
	return sum
}

// Service runs the pipeline over the table loaded at startup.
type Service struct {
	table  *domain.Table
	logger *slog.Logger
}

// NewService creates a Service over an already loaded table.
func NewService(table *domain.Table, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{table: table, logger: logger.With("component", "survival")}
}

// Table returns the loaded snapshot.
func (s *Service) Table() *domain.Table {
	return s.table
}

// Summarize validates criteria and returns the survived/perished breakdown.
func (s *Service) Summarize(ctx context.Context, criteria domain.FilterCriteria) (*domain.Summary, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	sum := Apply(s.table, criteria)
	s.logger.DebugContext(ctx, "summary computed",
		"sex", domain.SexTitle(criteria.Sex),
		"class", domain.ClassTitle(criteria.Class),
		"age_lo", criteria.Ages.Lo,
		"age_hi", criteria.Ages.Hi,
		"survived", sum.Survived,
		"perished", sum.Perished,
		"total", sum.Total,
	)
	return &sum, nil
}

// Passengers returns one page of the records matching criteria along with
// the size of the whole subset.
func (s *Service) Passengers(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.PassengerRecord, int64, error) {
	sum, err := s.Summarize(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	start, end := page.Bounds(len(sum.Subset))
	return sum.Subset[start:end], int64(sum.Total), nil
}
