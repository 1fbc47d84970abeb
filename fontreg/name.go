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
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName converts a face name, as stored in a font file, to a string.
// Valid UTF-8 is used unchanged, anything else is read as ISO 8859-1.
// Since every byte sequence is valid ISO 8859-1, this never fails.
func DecodeName(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// not reached
		return string(raw)
	}
	return string(s)
}
