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
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestWriterSinkVerbosity(t *testing.T) {
	for verbosity, expected := range []string{
		"warning: w\nerror: e\n",
		"page\nwarning: w\nerror: e\n",
		"page\nfont\nwarning: w\nerror: e\n",
		"page\nfont\nline\nwarning: w\nerror: e\n",
	} {
		buf := &bytes.Buffer{}
		s := NewWriterSink(buf, verbosity)
		Debugf(s, Coarse, "page")
		Debugf(s, Medium, "font")
		Debugf(s, Fine, "line")
		s.Warning("w")
		s.Error("e")
		err := s.Flush()
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(expected, buf.String()); d != "" {
			t.Errorf("verbosity %d: %s", verbosity, d)
		}
	}
}

func TestWriterSinkInPlace(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &WriterSink{w: buf, verbosity: 1, inPlace: true}
	Debugf(s, Coarse, "page %d", 1)
	Debugf(s, Coarse, "page %d", 2)
	s.Warning("oops")
	Debugf(s, Coarse, "page %d", 3)
	err := s.Flush()
	if err != nil {
		t.Fatal(err)
	}

	expected := "\rpage 1\x1b[K\rpage 2\x1b[K\nwarning: oops\n\rpage 3\x1b[K\n"
	if d := cmp.Diff(expected, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestChanSink(t *testing.T) {
	c := NewChanSink(4)
	Debugf(c, Medium, "font %q", "A")
	Warningf(c, "skipped %d", 2)
	c.Error("bad")
	c.Close()

	var got []Record
	for r := range c.C {
		got = append(got, r)
	}
	expected := []Record{
		{Level: LevelDebug, Tier: Medium, Text: `font "A"`},
		{Level: LevelWarning, Text: "skipped 2"},
		{Level: LevelError, Text: "bad"},
	}
	if d := cmp.Diff(expected, got); d != "" {
		t.Error(d)
	}
}

func TestChanSinkAfterClose(t *testing.T) {
	c := NewChanSink(4)
	Warningf(c, "early")
	c.Close()

	// a worker goroutine may still be logging after the front-end is gone
	Warningf(c, "late warning from the worker")
	Debugf(c, Coarse, "late progress")
	c.Close()

	var got []string
	for r := range c.C {
		got = append(got, r.Text)
	}
	if d := cmp.Diff([]string{"early"}, got); d != "" {
		t.Error(d)
	}
}

func TestChanSinkCloseUnblocksSender(t *testing.T) {
	c := NewChanSink(0)

	finished := make(chan struct{})
	go func() {
		Warningf(c, "nobody is listening")
		close(finished)
	}()

	c.Close()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("sender still blocked after Close")
	}
}

func TestNilSink(t *testing.T) {
	// must not panic
	Debugf(nil, Fine, "x")
	Warningf(nil, "x")
}

func TestRecorderFilter(t *testing.T) {
	r := &Recorder{}
	Debugf(r, Fine, "a")
	r.Warning("b")
	Debugf(r, Coarse, "c")
	r.Warning("d")

	if d := cmp.Diff([]string{"b", "d"}, r.Filter(LevelWarning)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]string{"a", "c"}, r.Filter(LevelDebug)); d != "" {
		t.Error(d)
	}
}
