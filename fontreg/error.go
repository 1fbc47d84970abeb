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

package fontreg

import (
	"errors"
	"fmt"
)

// FontLoadError indicates that a font file could not be read, parsed or
// prepared for use in the output.
type FontLoadError struct {
	Path string
	Err  error
}

func (err *FontLoadError) Error() string {
	return fmt.Sprintf("can't use font %s: %v", err.Path, err.Err)
}

func (err *FontLoadError) Unwrap() error {
	return err.Err
}

// DuplicateFontNameError indicates that two font files declare the same
// PostScript name.
type DuplicateFontNameError struct {
	Path      string // the rejected file
	Name      string // the PostScript name
	FirstPath string // the file which first used Name
}

func (err *DuplicateFontNameError) Error() string {
	return fmt.Sprintf("can't use font %s: font name %q already used by %s",
		err.Path, err.Name, err.FirstPath)
}

// IsSkippable reports whether err is one of the errors which are downgraded
// to a warning when broken fonts are allowed.
func IsSkippable(err error) bool {
	var loadErr *FontLoadError
	var dupErr *DuplicateFontNameError
	return errors.As(err, &loadErr) || errors.As(err, &dupErr)
}
