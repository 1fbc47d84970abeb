// ttfsampler - generate PDF sample sheets from TrueType/OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ttfsampler/fontreg"
)

// Segment is a piece of text set in a single font.
type Segment struct {
	Font fontreg.Handle
	Text string
}

// Line is the text shown for one font, as a sequence of segments.
type Line []Segment

// Compose returns the line shown for entry e.
//
// Without sample text, the line is the face name set in the font itself.
// Otherwise the line is the sample text set in the font, followed by two
// spaces and the face name in parentheses, set in the fallback font.  This
// keeps the font identifiable even if it has no glyphs for the sample.
func Compose(e *fontreg.Entry, sampleText string, fallback fontreg.Handle) Line {
	if sampleText == "" {
		return Line{{Font: e.Font, Text: e.Name}}
	}
	return Line{
		{Font: e.Font, Text: sampleText},
		{Font: fallback, Text: "  (" + e.Name + ")"},
	}
}

// Metrics gives the dimensions of text set in a given font.
// All values are in PDF units.
type Metrics interface {
	// TextWidth returns the advance width of s.
	TextWidth(f fontreg.Handle, size float64, s string) float64

	// LineHeight returns the distance between consecutive baselines,
	// or 0 if the font does not specify this.
	LineHeight(f fontreg.Handle, size float64) float64
}

// Surface is the drawing target for the commit pass.
type Surface interface {
	// ShowText draws s with the start of the baseline at pos.
	ShowText(pos vec.Vec2, f fontreg.Handle, size float64, s string)
}

// defaultLeading is the line height, relative to the font size, for fonts
// which don't specify a line height.
const defaultLeading = 1.2

// LineRenderer measures and draws the line for a font.
type LineRenderer struct {
	Metrics    Metrics
	Fallback   fontreg.Handle
	FontSize   float64
	SampleText string
}

// Line returns the line shown for e.
func (r *LineRenderer) Line(e *fontreg.Entry) Line {
	return Compose(e, r.SampleText, r.Fallback)
}

// Measure returns the width of the line for e, and the vertical distance
// to the next baseline.  Measure has no side effects.
func (r *LineRenderer) Measure(e *fontreg.Entry) (width, height float64) {
	for _, seg := range r.Line(e) {
		width += r.Metrics.TextWidth(seg.Font, r.FontSize, seg.Text)
		h := r.Metrics.LineHeight(seg.Font, r.FontSize)
		if h <= 0 {
			h = defaultLeading * r.FontSize
		}
		height = max(height, h)
	}
	return width, height
}

// Emit draws the line for e, starting at pos.
// It returns the horizontal distance advanced.
func (r *LineRenderer) Emit(s Surface, e *fontreg.Entry, pos vec.Vec2) float64 {
	x0 := pos.X
	for _, seg := range r.Line(e) {
		s.ShowText(pos, seg.Font, r.FontSize, seg.Text)
		pos.X += r.Metrics.TextWidth(seg.Font, r.FontSize, seg.Text)
	}
	return pos.X - x0
}
