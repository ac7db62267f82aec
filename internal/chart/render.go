package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

const (
	width  = 680
	height = 680
)

// Render draws d to w. Empty donuts return ErrEmptyChart; zero-valued
// slices are left out.
func Render(w io.Writer, d Donut, f Format) error {
	if d.Empty() {
		return ErrEmptyChart
	}

	var provider gochart.RendererProvider
	switch f {
	case FormatSVG, "":
		provider = gochart.SVG
	case FormatPNG:
		provider = gochart.PNG
	default:
		return fmt.Errorf("chart: unsupported format %q", f)
	}

	values := make([]gochart.Value, 0, len(d.Slices))
	for _, s := range d.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: SliceLabel(s.Value, d.Total),
			Value: float64(s.Value),
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(s.Color),
				StrokeColor: drawing.ColorFromHex(ColorStroke),
				StrokeWidth: 4,
				FontColor:   drawing.ColorWhite,
				FontSize:    16,
			},
		})
	}

	donut := gochart.DonutChart{
		Title: d.Title,
		TitleStyle: gochart.Style{
			FontSize:  22,
			FontColor: drawing.ColorFromHex(ColorSaved),
		},
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 100, Left: 40, Right: 40, Bottom: 80},
		},
		Values: values,
		Elements: []gochart.Renderable{
			centredText(d.Centre, 0, 28),
			centredText(d.Subtitle, -(height/2 - 70), 14),
		},
	}
	if err := donut.Render(provider, w); err != nil {
		return fmt.Errorf("render donut: %w", err)
	}
	return nil
}

// centredText draws text horizontally centred on the canvas, dy pixels from
// its vertical centre.
func centredText(text string, dy int, size float64) gochart.Renderable {
	return func(r gochart.Renderer, box gochart.Box, defaults gochart.Style) {
		style := gochart.Style{
			FontSize:  size,
			FontColor: drawing.ColorFromHex(ColorSaved),
		}.InheritFrom(defaults)
		style.WriteToRenderer(r)
		tb := r.MeasureText(text)
		cx, cy := box.Center()
		r.Text(text, cx-tb.Width()/2, cy+dy+tb.Height()/2)
	}
}
