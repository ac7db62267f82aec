package api

import (
	"net/url"
	"strconv"
	"strings"

	"titanic-dash/internal/domain"
)

// Query parameter names shared by the JSON API and the dashboard page.
const (
	ParamSouls      = "souls"
	ParamDeck       = "deck"
	ParamSex        = "sex"
	ParamClass      = "class"
	ParamAgeMin     = "age_min"
	ParamAgeMax     = "age_max"
	ParamMaxResults = "max_results"
	ParamPageToken  = "page_token"
)

// SelectionFromQuery resolves the control state encoded in q.
func SelectionFromQuery(q url.Values) (domain.Selection, error) {
	in := domain.SelectionInput{
		Souls: q.Get(ParamSouls),
		Deck:  q.Get(ParamDeck),
		Sex:   q.Get(ParamSex),
		Class: q.Get(ParamClass),
	}
	var err error
	if in.AgeMin, err = optionalInt(q, ParamAgeMin); err != nil {
		return domain.Selection{}, err
	}
	if in.AgeMax, err = optionalInt(q, ParamAgeMax); err != nil {
		return domain.Selection{}, err
	}
	return in.Resolve()
}

// QueryFromSelection encodes sel back into query parameters using the
// selector labels where they round-trip, falling back to explicit values.
func QueryFromSelection(sel domain.Selection) url.Values {
	q := url.Values{}
	c := sel.Criteria
	switch {
	case c.Sex != nil && sel.Souls == "":
		q.Set(ParamSex, string(*c.Sex))
	case sel.Souls != "" && sel.Souls != domain.SoulsAll:
		q.Set(ParamSouls, sel.Souls)
	}
	if c.Class != nil {
		q.Set(ParamDeck, domain.DeckLabelFor(c.Class))
	}
	if c.Ages.Lo != domain.MinAge {
		q.Set(ParamAgeMin, strconv.Itoa(c.Ages.Lo))
	}
	if c.Ages.Hi != domain.MaxAge {
		q.Set(ParamAgeMax, strconv.Itoa(c.Ages.Hi))
	}
	return q
}

func pageFromQuery(q url.Values) (domain.PageRequest, error) {
	p := domain.PageRequest{PageToken: q.Get(ParamPageToken)}
	n, err := optionalInt(q, ParamMaxResults)
	if err != nil {
		return p, err
	}
	if n != nil {
		if *n < 0 {
			return p, domain.ErrValidation("%s must not be negative", ParamMaxResults)
		}
		p.MaxResults = *n
	}
	return p, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, domain.ErrValidation("%s must be an integer, got %q", key, v)
	}
	return &n, nil
}
