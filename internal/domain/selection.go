package domain

import (
	"strconv"
	"strings"
)

// SelectionInput is the raw state of the dashboard controls. Explicit Sex and
// Class values win over the Souls and Deck selector labels.
type SelectionInput struct {
	Souls  string
	Deck   string
	Sex    string
	Class  string
	AgeMin *int
	AgeMax *int
}

// Selection is a resolved control state: the criteria to run plus the labels
// the controls should show.
type Selection struct {
	Criteria      FilterCriteria
	Souls         string
	Deck          string
	SoulsUnmapped bool // the souls label was not in the mapping table
}

// Resolve builds the FilterCriteria for in. Bad enumerations, unknown deck
// labels and invalid age ranges are ValidationErrors; an unmapped souls label
// is not an error but is reported in SoulsUnmapped.
func (in SelectionInput) Resolve() (Selection, error) {
	sel := Selection{Criteria: DefaultCriteria()}

	if v := strings.ToLower(strings.TrimSpace(in.Sex)); v != "" {
		s := Sex(v)
		if !s.Valid() {
			return Selection{}, ErrValidation("unknown sex %q: expected %q or %q", in.Sex, SexMale, SexFemale)
		}
		sel.Criteria.Sex = &s
		sel.Souls = SoulsLabelFor(&s)
	} else {
		sex, mapped := SexFromSoulsLabel(in.Souls)
		sel.Criteria.Sex = sex
		sel.SoulsUnmapped = !mapped
		sel.Souls = in.Souls
		if sel.Souls == "" {
			sel.Souls = SoulsAll
		}
	}

	if v := strings.TrimSpace(in.Class); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Selection{}, ErrValidation("class must be 1, 2 or 3, got %q", in.Class)
		}
		c := Class(n)
		sel.Criteria.Class = &c
		sel.Deck = DeckLabelFor(&c)
	} else {
		c, err := ClassFromDeckLabel(in.Deck)
		if err != nil {
			return Selection{}, err
		}
		sel.Criteria.Class = c
		sel.Deck = DeckLabelFor(c)
	}

	if in.AgeMin != nil {
		sel.Criteria.Ages.Lo = *in.AgeMin
	}
	if in.AgeMax != nil {
		sel.Criteria.Ages.Hi = *in.AgeMax
	}

	if err := sel.Criteria.Validate(); err != nil {
		return Selection{}, err
	}
	return sel, nil
}
