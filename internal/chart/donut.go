// Package chart builds and renders the survived/perished donut.
package chart

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"titanic-dash/internal/domain"
)

// Palette, as hex without the leading '#'.
const (
	ColorPerished = "8b1a1a"
	ColorSaved    = "ffd700"
	ColorStroke   = "d4af37"
	ColorText     = "e8dccc"
)

// Slice labels, in drawing order.
const (
	LabelPerished = "Perished at Sea"
	LabelSaved    = "Saved"
)

// FooterQuote is shown beneath the chart on every surface.
const FooterQuote = "“The sea keeps her own counsel.” – Captain Edward John Smith"

// ErrEmptyChart is returned when there is nothing to draw.
var ErrEmptyChart = errors.New("chart: no passengers match the selected filters")

var printer = message.NewPrinter(language.English)

// Slice is one wedge of the donut.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Donut is the render-independent chart model.
type Donut struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Centre   string  `json:"centre"`
	Slices   []Slice `json:"slices"`
	Total    int     `json:"total"`
}

// FromSummary builds the donut for one pipeline result.
func FromSummary(sum domain.Summary) Donut {
	return Donut{
		Title:    Title(sum.Total),
		Subtitle: Subtitle(sum.Criteria),
		Centre:   fmt.Sprintf("%d saved", sum.Survived),
		Slices: []Slice{
			{Label: LabelPerished, Value: sum.Perished, Color: ColorPerished},
			{Label: LabelSaved, Value: sum.Survived, Color: ColorSaved},
		},
		Total: sum.Total,
	}
}

// Empty reports whether the donut has no passengers to draw.
func (d Donut) Empty() bool { return d.Total == 0 }

// Title is "<total> souls" with thousands separators.
func Title(total int) string {
	return FormatCount(total) + " souls"
}

// Subtitle describes the active filters, e.g. "Age 0–80 • female • Class 1".
func Subtitle(c domain.FilterCriteria) string {
	return fmt.Sprintf("Age %d–%d • %s • Class %s",
		c.Ages.Lo, c.Ages.Hi, domain.SexTitle(c.Sex), domain.ClassTitle(c.Class))
}

// FormatCount renders n with English thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// SliceLabel is the wedge caption: value and share of the total.
func SliceLabel(value, total int) string {
	if total == 0 {
		return FormatCount(value)
	}
	return fmt.Sprintf("%s (%.1f%%)", FormatCount(value), 100*float64(value)/float64(total))
}
