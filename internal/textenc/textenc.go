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

// Package textenc converts command line text to UTF-8.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Lookup returns the character encoding with the given name.
// Names are interpreted as in the WHATWG encoding standard, for example
// "utf-8", "latin1" or "windows-1252".
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown character encoding %q", name)
	}
	return enc, nil
}

// Local returns the character encoding of the current locale, as given by
// the first non-empty variable out of LC_ALL, LC_CTYPE and LANG.  If no
// encoding is specified, or if the encoding is unknown, UTF-8 is used.
func Local(getenv func(string) string) encoding.Encoding {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := getenv(key)
		if val == "" {
			continue
		}
		enc, err := Lookup(codeset(val))
		if err != nil {
			break
		}
		return enc
	}
	return unicode.UTF8
}

// codeset extracts the character set from a locale name of the form
// language[_territory][.codeset][@modifier].
func codeset(locale string) string {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	i := strings.IndexByte(locale, '.')
	if i < 0 {
		return "utf-8"
	}
	return locale[i+1:]
}

// Decode converts s from the given encoding to UTF-8.
func Decode(s string, enc encoding.Encoding) (string, error) {
	if enc == nil || enc == unicode.UTF8 {
		return s, nil
	}
	res, err := enc.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("cannot decode %q: %w", s, err)
	}
	return res, nil
}
