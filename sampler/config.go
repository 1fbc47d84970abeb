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

package sampler

import (
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/ttfsampler/layout"
)

// Config describes a sample sheet.
type Config struct {
	// Verbosity gives the most detailed [report.Tier] the caller wants to
	// see.  Run itself sends all messages to the sink.
	Verbosity int

	// AllowBrokenFonts causes unreadable and duplicate fonts to be skipped.
	// Otherwise the first such font aborts the run.
	AllowBrokenFonts bool

	Inputs []string
	Output string

	// FontSize is the size of the sample text, in points.
	FontSize float64

	// Sort orders the fonts by face name.
	// Otherwise they are shown in input order.
	Sort bool

	TopMargin    float64
	BottomMargin float64

	// SampleText, if non-empty, is shown in every font, followed by the
	// face name.  Otherwise only the face name is shown.
	SampleText string

	// Paper is the name of the page size, see [PaperSize].
	Paper string

	// BorderInset is the distance between the page edge and the red border.
	BorderInset float64

	Overflow layout.OverflowPolicy

	// Title is stored in the document metadata.
	Title string
}

// DefaultConfig returns the default settings: 12pt text on US-Letter
// paper, sorted by name, with one inch margins at the top and bottom.
func DefaultConfig() *Config {
	return &Config{
		FontSize:     12,
		Sort:         true,
		TopMargin:    72,
		BottomMargin: 72,
		Paper:        "letter",
		BorderInset:  36,
		Overflow:     layout.OverflowPlace,
		Title:        "Font Samples",
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	res := *c
	res.Inputs = slices.Clone(c.Inputs)
	return &res
}

// Validate checks that c describes a sample sheet which can be produced.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return &ConfigError{"verbosity", "must not be negative"}
	}
	if len(c.Inputs) == 0 {
		return &ConfigError{"inputs", "no font(s) specified"}
	}
	if c.Output == "" {
		return &ConfigError{"output", "no output file specified"}
	}
	if !(c.FontSize > 0) {
		return &ConfigError{"font size", fmt.Sprintf("%g is not positive", c.FontSize)}
	}
	if !(c.TopMargin > 0) || !(c.BottomMargin > 0) {
		return &ConfigError{"margins", "must be positive"}
	}
	if c.BorderInset < 0 {
		return &ConfigError{"border inset", "must not be negative"}
	}
	width, height, err := PaperSize(c.Paper)
	if err != nil {
		return err
	}
	if c.TopMargin+c.BottomMargin >= height {
		return &ConfigError{"margins", "no space left on the page"}
	}
	if 2*c.BorderInset >= min(width, height) {
		return &ConfigError{"border inset", "too large for the page"}
	}
	if c.Overflow != layout.OverflowPlace && c.Overflow != layout.OverflowFail {
		return &ConfigError{"overflow policy", c.Overflow.String()}
	}
	return nil
}

type paper struct {
	width, height float64
}

var papers = map[string]paper{
	"letter": {612, 792},
	"a4":     {595.276, 841.890},
	"a5":     {420.945, 595.276},
}

// PaperSize returns the width and height, in PDF units, of the paper with
// the given name.  Supported names are "letter", "a4" and "a5".
func PaperSize(name string) (width, height float64, err error) {
	p, ok := papers[strings.ToLower(name)]
	if !ok {
		return 0, 0, &ConfigError{"paper", fmt.Sprintf("unknown paper size %q", name)}
	}
	return p.width, p.height, nil
}
