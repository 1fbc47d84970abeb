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
	"errors"
	"fmt"
)

// ConfigError indicates an invalid setting in a [Config].
type ConfigError struct {
	Field string
	Msg   string
}

func (err *ConfigError) Error() string {
	return "invalid " + err.Field + ": " + err.Msg
}

// OutputWriteError indicates that the output file could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (err *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", err.Path, err.Err)
}

func (err *OutputWriteError) Unwrap() error {
	return err.Err
}

// ErrNoFonts is returned by [Run] if none of the input fonts can be used.
var ErrNoFonts = errors.New("no usable fonts")
