package domain

import (
	"iter"
	"slices"
)

// Sex is the lowercase sex of a passenger as found in the dataset.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the filterable values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Class is the cabin class (1, 2 or 3).
type Class int

const (
	FirstClass  Class = 1
	SecondClass Class = 2
	ThirdClass  Class = 3
)

// Valid reports whether c is a known cabin class.
func (c Class) Valid() bool {
	return c >= FirstClass && c <= ThirdClass
}

// PassengerRecord is a single retained row of the passenger table.
// Every record carries a defined, non-negative age.
type PassengerRecord struct {
	Survived bool    `json:"survived"`
	Age      float64 `json:"age"`
	Sex      Sex     `json:"sex"`
	Class    Class   `json:"class"`
}

// Table is the read-only snapshot of passenger records loaded at startup.
// It has no mutators; Records hands out copies.
type Table struct {
	records []PassengerRecord
}

// NewTable copies records into a new immutable table.
func NewTable(records []PassengerRecord) *Table {
	return &Table{records: slices.Clone(records)}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the record at index i.
func (t *Table) At(i int) PassengerRecord {
	return t.records[i]
}

// All iterates over the records in load order.
func (t *Table) All() iter.Seq[PassengerRecord] {
	return func(yield func(PassengerRecord) bool) {
		if t == nil {
			return
		}
		for _, r := range t.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the records.
func (t *Table) Records() []PassengerRecord {
	if t == nil {
		return nil
	}
	return slices.Clone(t.records)
}
