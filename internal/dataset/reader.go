// Package dataset loads the passenger table from its configured source.
package dataset

import (
	"context"
	"math"
	"strings"

	"titanic-dash/internal/domain"
	"titanic-dash/internal/source"
)

// Source column names. Everything else in the file is ignored.
const (
	ColSurvived = "Survived"
	ColAge      = "Age"
	ColSex      = "Sex"
	ColClass    = "Pclass"
)

// RequiredColumns lists the source columns every dataset must carry.
var RequiredColumns = []string{ColSurvived, ColAge, ColSex, ColClass}

// Reader turns an opened source into passenger records. Implementations drop
// rows with a missing age and normalise sex to lowercase.
type Reader interface {
	Name() string
	Read(ctx context.Context, src *source.Source) ([]domain.PassengerRecord, error)
}

// newRecord validates one raw row. row is 1-based, counting data rows only.
func newRecord(row int, survived int, age float64, sex string, class int) (domain.PassengerRecord, error) {
	if survived != 0 && survived != 1 {
		return domain.PassengerRecord{}, domain.ErrDataUnavailable(nil, "row %d: %s must be 0 or 1, got %d", row, ColSurvived, survived)
	}
	if math.IsNaN(age) || math.IsInf(age, 0) || age < 0 {
		return domain.PassengerRecord{}, domain.ErrDataUnavailable(nil, "row %d: invalid %s %v", row, ColAge, age)
	}
	c := domain.Class(class)
	if !c.Valid() {
		return domain.PassengerRecord{}, domain.ErrDataUnavailable(nil, "row %d: %s must be 1, 2 or 3, got %d", row, ColClass, class)
	}
	return domain.PassengerRecord{
		Survived: survived == 1,
		Age:      age,
		Sex:      domain.Sex(strings.ToLower(strings.TrimSpace(sex))),
		Class:    c,
	}, nil
}
