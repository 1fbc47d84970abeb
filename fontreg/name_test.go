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

import "testing"

func TestDecodeName(t *testing.T) {
	for _, test := range []struct {
		in       []byte
		expected string
	}{
		{[]byte("Arial Bold"), "Arial Bold"},
		{[]byte("Schriftart Größe"), "Schriftart Größe"},
		{[]byte("Gr\xf6\xdfe"), "Größe"},
		{[]byte{0xff}, "ÿ"},
		{nil, ""},
	} {
		got := DecodeName(test.in)
		if got != test.expected {
			t.Errorf("DecodeName(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}
