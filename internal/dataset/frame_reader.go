package dataset

import (
	"context"
	"math"

	"github.com/tobgu/qframe"
	qcsv "github.com/tobgu/qframe/config/csv"

	"titanic-dash/internal/domain"
	"titanic-dash/internal/source"
)

// FrameReader reads CSV datasets into a qframe.
type FrameReader struct{}

// Name implements Reader.
func (FrameReader) Name() string { return "frame" }

// Read implements Reader.
func (FrameReader) Read(_ context.Context, src *source.Source) ([]domain.PassengerRecord, error) {
	if src.Format != source.FormatCSV {
		return nil, domain.ErrDataUnavailable(nil, "frame reader cannot read %s datasets", src.Format)
	}

	df := qframe.ReadCSV(src.Body, qcsv.Types(map[string]string{
		ColSurvived: "int",
		ColAge:      "float",
		ColSex:      "string",
		ColClass:    "int",
	}))
	if df.Err != nil {
		return nil, domain.ErrDataUnavailable(df.Err, "parse %s", src.Name)
	}

	df = df.Select(RequiredColumns...)
	if df.Err != nil {
		return nil, domain.ErrDataUnavailable(df.Err, "%s is missing a required column (need %v)", src.Name, RequiredColumns)
	}
	df = df.Filter(qframe.Filter{Column: ColAge, Comparator: "isnotnull"})
	if df.Err != nil {
		return nil, domain.ErrDataUnavailable(df.Err, "drop rows without %s", ColAge)
	}

	survived, err := df.IntView(ColSurvived)
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "column %s", ColSurvived)
	}
	ages, err := df.FloatView(ColAge)
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "column %s", ColAge)
	}
	sexes, err := df.StringView(ColSex)
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "column %s", ColSex)
	}
	classes, err := df.IntView(ColClass)
	if err != nil {
		return nil, domain.ErrDataUnavailable(err, "column %s", ColClass)
	}

	records := make([]domain.PassengerRecord, 0, df.Len())
	for i := range df.Len() {
		age := ages.ItemAt(i)
		if math.IsNaN(age) {
			continue
		}
		var sex string
		if s := sexes.ItemAt(i); s != nil {
			sex = *s
		}
		rec, err := newRecord(i+1, survived.ItemAt(i), age, sex, classes.ItemAt(i))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
