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

package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WriterSink prints messages to an io.Writer, typically os.Stderr.
//
// Debug records are shown if their tier is at most the verbosity.  Warnings
// and errors are always shown, prefixed with "warning: " and "error: ".
//
// If the writer is a terminal and only coarse messages are shown, progress
// messages overwrite each other instead of scrolling.
type WriterSink struct {
	w         io.Writer
	verbosity int
	inPlace   bool

	pending bool // a progress line without newline is on screen
	err     error
}

// NewWriterSink returns a sink which writes to w.
func NewWriterSink(w io.Writer, verbosity int) *WriterSink {
	s := &WriterSink{
		w:         w,
		verbosity: verbosity,
	}
	if f, ok := w.(*os.File); ok && verbosity == int(Coarse) {
		s.inPlace = term.IsTerminal(int(f.Fd()))
	}
	return s
}

// Debug implements the [Sink] interface.
func (s *WriterSink) Debug(r Record) {
	if int(r.Tier) > s.verbosity {
		return
	}
	if s.inPlace && r.Tier == Coarse {
		s.printf("\r%s\x1b[K", r.Text)
		s.pending = true
		return
	}
	s.println(r.Text)
}

// Warning implements the [Sink] interface.
func (s *WriterSink) Warning(msg string) {
	s.println("warning: " + msg)
}

// Error implements the [Sink] interface.
func (s *WriterSink) Error(msg string) {
	s.println("error: " + msg)
}

// Flush terminates a pending progress line.
// It returns the first error encountered while writing.
func (s *WriterSink) Flush() error {
	if s.pending {
		s.printf("\n")
		s.pending = false
	}
	return s.err
}

func (s *WriterSink) println(msg string) {
	if s.pending {
		s.printf("\n")
		s.pending = false
	}
	s.printf("%s\n", msg)
}

func (s *WriterSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
