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

// Package pdfbackend implements [sampler.Backend] using the seehuhn.de/go
// PDF and font libraries.
//
// Fonts are parsed with seehuhn.de/go/sfnt and embedded as composite fonts,
// so that every glyph of a font can be shown.  Face names are set in the
// standard Times-Roman font.
package pdfbackend

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/embed"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/sampler"
)

// Face is the [fontreg.Handle] used by this backend.
type Face struct {
	// Info is the parsed font file.  This is nil for the fallback font.
	Info *sfnt.Font

	// F is used for layout and drawing.  It is set when the font is
	// registered.
	F font.Layouter
}

// Backend produces PDF files.
// A Backend can be used for more than one document.
type Backend struct {
	// Now gives the creation time stored in the document metadata.
	// If this is nil, the current time is used.
	Now func() time.Time

	fallback *Face
}

var _ sampler.Backend = (*Backend)(nil)

// New allocates a new Backend.
func New() *Backend {
	return &Backend{
		fallback: &Face{F: standard.TimesRoman.New()},
	}
}

// Parse reads an OpenType or TrueType font file.
func (b *Backend) Parse(path string) (fontreg.Handle, error) {
	info, err := sfnt.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Face{Info: info}, nil
}

// FaceName returns the full name of the font.
func (b *Backend) FaceName(h fontreg.Handle) []byte {
	info := h.(*Face).Info
	if info == nil {
		return nil
	}
	return []byte(info.FullName())
}

// CanonicalName returns the PostScript name of the font.
func (b *Backend) CanonicalName(h fontreg.Handle) string {
	info := h.(*Face).Info
	if info == nil {
		return ""
	}
	return info.PostScriptName()
}

// Register prepares the font for embedding into PDF files.
func (b *Backend) Register(id int, h fontreg.Handle) error {
	face := h.(*Face)
	if face.F != nil {
		return nil
	}
	if face.Info == nil {
		return errors.New("no font data")
	}

	opt := &embed.Options{
		Language:  language.English,
		Composite: true,
	}
	F, err := embed.OpenTypeFont(face.Info, opt)
	if err != nil {
		return fmt.Errorf("font %d: %w", id, err)
	}
	face.F = F
	return nil
}

// Fallback returns the Times-Roman font.
func (b *Backend) Fallback() fontreg.Handle {
	return b.fallback
}

// TextWidth returns the advance width of s, in PDF units.
func (b *Backend) TextWidth(h fontreg.Handle, size float64, s string) float64 {
	F := h.(*Face).F
	if F == nil || s == "" {
		return 0
	}
	return F.Layout(nil, size, s).TotalWidth()
}

// LineHeight returns the baseline distance of the font, in PDF units.
func (b *Backend) LineHeight(h fontreg.Handle, size float64) float64 {
	F := h.(*Face).F
	if F == nil {
		return 0
	}
	return F.GetGeometry().Leading * size
}

// Create starts a new PDF document.  The file at path is only written when
// the document is closed.
func (b *Backend) Create(path string, opt *sampler.DocumentOptions) (sampler.Document, error) {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return newDocument(path, opt, now())
}
