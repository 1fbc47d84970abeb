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
	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/layout"
)

// Backend provides font parsing, text metrics and document output.
type Backend interface {
	fontreg.Loader
	fontreg.Registrar
	layout.Metrics

	// Fallback returns the font used for the face names.
	Fallback() fontreg.Handle

	// Create starts a new output document.  Nothing needs to be written
	// to path before [Document.Close] is called.
	Create(path string, opt *DocumentOptions) (Document, error)
}

// DocumentOptions describes the output document.
type DocumentOptions struct {
	Width  float64 // page width in PDF units
	Height float64 // page height in PDF units

	Title   string
	Creator string
}

// Document is an output file in the course of being written.
type Document interface {
	NewPage() (PageSurface, error)

	// Close finishes the document and stores it.
	Close() error
}

// PageSurface is a page of a [Document].
type PageSurface interface {
	layout.Surface

	// StrokeBorder draws the red page border with the given corners.
	StrokeBorder(llx, lly, urx, ury float64)

	// Close finishes the page and adds it to the document.
	// The page must not be used after Close has been called.
	Close() error
}
