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

package textenc

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLocal(t *testing.T) {
	for _, test := range []struct {
		vars map[string]string
		in   string
		out  string
	}{
		{nil, "Gr\xc3\xb6\xc3\x9fe", "Größe"},
		{map[string]string{"LANG": "de_DE.UTF-8"}, "Gr\xc3\xb6\xc3\x9fe", "Größe"},
		{map[string]string{"LANG": "de_DE.ISO-8859-1"}, "Gr\xf6\xdfe", "Größe"},
		{map[string]string{"LANG": "de_DE.UTF-8", "LC_CTYPE": "de_DE.ISO-8859-15@euro"}, "\xa4", "€"},
		{map[string]string{"LC_ALL": "C"}, "plain", "plain"},
		{map[string]string{"LANG": "en_US.no-such-charset"}, "ok", "ok"},
	} {
		enc := Local(env(test.vars))
		out, err := Decode(test.in, enc)
		if err != nil {
			t.Errorf("%v: %v", test.vars, err)
			continue
		}
		if out != test.out {
			t.Errorf("%v: got %q, expected %q", test.vars, out, test.out)
		}
	}
}

func TestLookup(t *testing.T) {
	enc, err := Lookup("latin1")
	if err != nil {
		t.Fatal(err)
	}
	// WHATWG maps latin1 to windows-1252
	if enc != charmap.Windows1252 {
		t.Errorf("unexpected encoding %v", enc)
	}

	enc, err = Lookup("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	if enc != unicode.UTF8 {
		t.Errorf("unexpected encoding %v", enc)
	}

	_, err = Lookup("klingon")
	if err == nil {
		t.Error("missing error for unknown encoding")
	}
}
