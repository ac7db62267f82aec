package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Souls selector labels, in display order.
const (
	SoulsAll       = "All Hands"
	SoulsGentlemen = "Gentlemen"
	SoulsLadies    = "Ladies"
)

// Deck selector labels, in display order.
const (
	DeckAll    = "All Decks"
	DeckFirst  = "1st Class"
	DeckSecond = "2nd Class"
	DeckThird  = "3rd Class"
)

// SoulsOptions are the labels offered by the sex selector.
var SoulsOptions = []string{SoulsAll, SoulsGentlemen, SoulsLadies}

// DeckOptions are the labels offered by the class selector.
var DeckOptions = []string{DeckAll, DeckFirst, DeckSecond, DeckThird}

// soulsToSex is the label mapping table used by the sex selector. The female
// entry is keyed "Ladies & Children", which SoulsOptions never offers, so the
// "Ladies" option maps to no filter. Keep it that way; SexFromSoulsLabel
// reports the miss so surfaces can flag it.
var soulsToSex = map[string]Sex{
	"Gentlemen":         SexMale,
	"Ladies & Children": SexFemale,
}

// SexFromSoulsLabel maps a souls label to a sex filter. mapped is false when
// the label is not a key of the mapping table; "All Hands" is the one label
// for which no filter is the intended result.
func SexFromSoulsLabel(label string) (sex *Sex, mapped bool) {
	if s, ok := soulsToSex[label]; ok {
		return &s, true
	}
	return nil, label == SoulsAll || label == ""
}

// ClassFromDeckLabel maps a deck label to a class filter by reading its first
// character. "All Decks" (or empty) means no filter.
func ClassFromDeckLabel(label string) (*Class, error) {
	label = strings.TrimSpace(label)
	if label == "" || label == DeckAll {
		return nil, nil
	}
	n, err := strconv.Atoi(label[:1])
	if err != nil {
		return nil, ErrValidation("deck label %q does not start with a class digit", label)
	}
	c := Class(n)
	return &c, nil
}

// SoulsLabelFor returns the selector label that selects sex, or "" when no
// offered option does (there is none for female).
func SoulsLabelFor(sex *Sex) string {
	if sex == nil {
		return SoulsAll
	}
	for label, s := range soulsToSex {
		if s == *sex && slices.Contains(SoulsOptions, label) {
			return label
		}
	}
	return ""
}

// DeckLabelFor returns the selector label for class.
func DeckLabelFor(class *Class) string {
	if class == nil {
		return DeckAll
	}
	for _, label := range DeckOptions[1:] {
		if label[:1] == strconv.Itoa(int(*class)) {
			return label
		}
	}
	return ""
}

// SexTitle is the sex fragment of the chart title: the filter value or "All".
func SexTitle(sex *Sex) string {
	if sex == nil {
		return "All"
	}
	return string(*sex)
}

// ClassTitle is the class fragment of the chart title: the digit or "All".
func ClassTitle(class *Class) string {
	if class == nil {
		return "All"
	}
	return strconv.Itoa(int(*class))
}
