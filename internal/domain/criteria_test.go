package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		wantErr string
	}{
		{name: "full range", lo: 0, hi: 80},
		{name: "single year", lo: 30, hi: 30},
		{name: "negative lower", lo: -1, hi: 10, wantErr: "must lie within"},
		{name: "upper above max", lo: 0, hi: 81, wantErr: "must lie within"},
		{name: "inverted", lo: 50, hi: 20, wantErr: "exceeds upper bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewAgeRange(tt.lo, tt.hi)
			if tt.wantErr != "" {
				require.Error(t, err)
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AgeRange{Lo: tt.lo, Hi: tt.hi}, r)
		})
	}
}

func TestAgeRange_ContainsIsInclusive(t *testing.T) {
	r := AgeRange{Lo: 20, Hi: 40}
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(40))
	assert.True(t, r.Contains(29.5))
	assert.False(t, r.Contains(19.99))
	assert.False(t, r.Contains(40.5))

	full := FullAgeRange()
	assert.True(t, full.Contains(0.42))
	assert.True(t, full.Contains(80))
}

func TestFilterCriteria_Validate(t *testing.T) {
	bogusSex := Sex("other")
	bogusClass := Class(0)
	male := SexMale
	first := FirstClass

	require.NoError(t, DefaultCriteria().Validate())
	require.NoError(t, FilterCriteria{Sex: &male, Class: &first, Ages: FullAgeRange()}.Validate())
	assert.Error(t, FilterCriteria{Sex: &bogusSex, Ages: FullAgeRange()}.Validate())
	assert.Error(t, FilterCriteria{Class: &bogusClass, Ages: FullAgeRange()}.Validate())
	assert.Error(t, FilterCriteria{Ages: AgeRange{Lo: 10, Hi: 5}}.Validate())
}

func TestFilterCriteria_Matches(t *testing.T) {
	female := SexFemale
	third := ThirdClass
	rec := PassengerRecord{Survived: true, Age: 22, Sex: SexFemale, Class: ThirdClass}

	assert.True(t, DefaultCriteria().Matches(rec))
	assert.True(t, FilterCriteria{Sex: &female, Class: &third, Ages: FullAgeRange()}.Matches(rec))

	male := SexMale
	assert.False(t, FilterCriteria{Sex: &male, Ages: FullAgeRange()}.Matches(rec))
	assert.False(t, FilterCriteria{Ages: AgeRange{Lo: 23, Hi: 80}}.Matches(rec))
}

func TestTable_IsASnapshot(t *testing.T) {
	src := []PassengerRecord{{Age: 1, Sex: SexMale, Class: FirstClass}}
	table := NewTable(src)
	src[0].Age = 99

	require.Equal(t, 1, table.Len())
	assert.InDelta(t, 1.0, table.At(0).Age, 0.0001)

	out := table.Records()
	out[0].Age = 42
	assert.InDelta(t, 1.0, table.At(0).Age, 0.0001)

	var n int
	for range table.All() {
		n++
	}
	assert.Equal(t, 1, n)

	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
	assert.Nil(t, nilTable.Records())
}

func TestSummary_SurvivalRate(t *testing.T) {
	assert.InDelta(t, 0.0, Summary{}.SurvivalRate(), 0.0001)
	assert.InDelta(t, 0.25, Summary{Survived: 1, Perished: 3, Total: 4}.SurvivalRate(), 0.0001)
}
