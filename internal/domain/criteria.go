package domain

// Age bounds offered by the age range control.
const (
	MinAge = 0
	MaxAge = 80
)

// AgeRange is a closed interval [Lo, Hi] with MinAge <= Lo <= Hi <= MaxAge.
type AgeRange struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// FullAgeRange returns [MinAge, MaxAge].
func FullAgeRange() AgeRange {
	return AgeRange{Lo: MinAge, Hi: MaxAge}
}

// NewAgeRange validates and returns the interval [lo, hi].
func NewAgeRange(lo, hi int) (AgeRange, error) {
	r := AgeRange{Lo: lo, Hi: hi}
	if err := r.Validate(); err != nil {
		return AgeRange{}, err
	}
	return r, nil
}

// Validate checks the interval invariant.
func (r AgeRange) Validate() error {
	if r.Lo < MinAge || r.Hi > MaxAge {
		return ErrValidation("age range [%d, %d] must lie within [%d, %d]", r.Lo, r.Hi, MinAge, MaxAge)
	}
	if r.Lo > r.Hi {
		return ErrValidation("age range lower bound %d exceeds upper bound %d", r.Lo, r.Hi)
	}
	return nil
}

// Contains reports whether age lies in the interval, inclusive on both ends.
func (r AgeRange) Contains(age float64) bool {
	return age >= float64(r.Lo) && age <= float64(r.Hi)
}

// FilterCriteria is the set of constraints active for one interaction.
// A nil Sex or Class means no filter on that column.
type FilterCriteria struct {
	Sex   *Sex     `json:"sex,omitempty"`
	Class *Class   `json:"class,omitempty"`
	Ages  AgeRange `json:"age_range"`
}

// DefaultCriteria is the identity filter: no sex, no class, full age range.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Ages: FullAgeRange()}
}

// Validate checks the age interval and any set enumerations.
func (c FilterCriteria) Validate() error {
	if c.Sex != nil && !c.Sex.Valid() {
		return ErrValidation("unknown sex %q: expected %q or %q", *c.Sex, SexMale, SexFemale)
	}
	if c.Class != nil && !c.Class.Valid() {
		return ErrValidation("unknown class %d: expected 1, 2 or 3", *c.Class)
	}
	return c.Ages.Validate()
}

// Matches reports whether r satisfies every active constraint.
func (c FilterCriteria) Matches(r PassengerRecord) bool {
	if c.Sex != nil && r.Sex != *c.Sex {
		return false
	}
	if c.Class != nil && r.Class != *c.Class {
		return false
	}
	return c.Ages.Contains(r.Age)
}

// Summary is the outcome of one pipeline run.
// Survived + Perished == Total == len(Subset).
type Summary struct {
	Criteria FilterCriteria    `json:"criteria"`
	Subset   []PassengerRecord `json:"-"`
	Survived int               `json:"survived"`
	Perished int               `json:"perished"`
	Total    int               `json:"total"`
}

// SurvivalRate returns Survived/Total, or 0 for an empty subset.
func (s Summary) SurvivalRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Survived) / float64(s.Total)
}
