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
	"context"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/report"
)

// Placed is a line which has been assigned to a page.
type Placed struct {
	Entry  *fontreg.Entry
	Width  float64
	Height float64

	// Pos is the start of the baseline.  This is set by [Engine.Paginate].
	Pos vec.Vec2
}

// Page is the group of lines shown on one page.
type Page struct {
	Number int // 1-based
	Lines  []Placed

	// Width and Height give the size of the block of lines.
	Width  float64
	Height float64
}

// MeasureFunc returns the width of the line for e, and the vertical distance
// to the next baseline.
type MeasureFunc func(e *fontreg.Entry) (width, height float64)

// Pack takes lines from the start of entries, as long as their total height
// does not exceed pageHeight.  It returns the lines which fit, and the
// remaining entries.
//
// If the first entry alone is taller than pageHeight, the returned batch is
// empty.
func Pack(entries []*fontreg.Entry, pageHeight float64, measure MeasureFunc) ([]Placed, []*fontreg.Entry) {
	var batch []Placed
	total := 0.0
	for i, e := range entries {
		width, height := measure(e)
		if total+height > pageHeight {
			return batch, entries[i:]
		}
		total += height
		batch = append(batch, Placed{Entry: e, Width: width, Height: height})
	}
	return batch, nil
}

// OverflowPolicy decides what happens to a line which is too tall for an
// empty page.
type OverflowPolicy int

// These are the supported overflow policies.
const (
	// OverflowPlace puts the line on a page of its own.  The text then
	// extends into the margins or beyond the page.
	OverflowPlace OverflowPolicy = iota

	// OverflowFail aborts the layout with a [*LayoutOverflowError].
	OverflowFail
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowPlace:
		return "place"
	case OverflowFail:
		return "fail"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy converts the output of [OverflowPolicy.String] back
// to a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "place":
		return OverflowPlace, nil
	case "fail":
		return OverflowFail, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q", s)
	}
}

// LayoutOverflowError is returned by [Engine.Paginate] if a line does not fit
// on an empty page and the policy is [OverflowFail].
type LayoutOverflowError struct {
	Entry     *fontreg.Entry
	Height    float64
	Available float64
}

func (err *LayoutOverflowError) Error() string {
	return fmt.Sprintf("font %s: line height %.1fpt exceeds available page height %.1fpt",
		err.Entry.Path, err.Height, err.Available)
}

// Engine splits a sequence of fonts into pages.
type Engine struct {
	Lines *LineRenderer

	PageWidth    float64
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64

	Overflow OverflowPolicy
	Log      report.Sink
}

// ContentHeight returns the vertical space available for lines.
func (e *Engine) ContentHeight() float64 {
	return e.PageHeight - e.TopMargin - e.BottomMargin
}

// Paginate distributes the entries over pages, keeping their order, and
// calls emit once for every page.  It returns the number of pages.
func (e *Engine) Paginate(ctx context.Context, entries []*fontreg.Entry, emit func(*Page) error) (int, error) {
	available := e.ContentHeight()
	measure := func(entry *fontreg.Entry) (float64, float64) {
		report.Debugf(e.Log, report.Fine, "pre-rendering font %q", entry.Name)
		return e.Lines.Measure(entry)
	}

	numPages := 0
	for len(entries) > 0 {
		if err := ctx.Err(); err != nil {
			return numPages, err
		}

		batch, rest := Pack(entries, available, measure)
		if len(batch) == 0 {
			first := entries[0]
			width, height := e.Lines.Measure(first)
			if e.Overflow == OverflowFail {
				return numPages, &LayoutOverflowError{
					Entry:     first,
					Height:    height,
					Available: available,
				}
			}
			report.Warningf(e.Log, "font %s: line does not fit on a page", first.Path)
			batch = []Placed{{Entry: first, Width: width, Height: height}}
			rest = entries[1:]
		}

		numPages++
		page := e.arrange(numPages, batch)
		err := emit(page)
		if err != nil {
			return numPages, err
		}

		entries = rest
	}
	return numPages, nil
}

// arrange centres a batch of lines on the page.
func (e *Engine) arrange(pageNo int, batch []Placed) *Page {
	page := &Page{
		Number: pageNo,
		Lines:  batch,
	}
	for _, l := range batch {
		page.Width = max(page.Width, l.Width)
		page.Height += l.Height
	}

	pos := vec.Vec2{
		X: (e.PageWidth - page.Width) / 2,
		Y: e.BottomMargin + (e.ContentHeight()+page.Height)/2,
	}
	for i := range batch {
		batch[i].Pos = pos
		pos.Y -= batch[i].Height
	}
	return page
}

// Draw emits all lines of the page onto s.  This is the commit pass.
func (e *Engine) Draw(s Surface, page *Page) {
	for _, l := range page.Lines {
		report.Debugf(e.Log, report.Fine, "rendering font %q", l.Entry.Name)
		e.Lines.Emit(s, l.Entry, l.Pos)
	}
}
