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

package pdfbackend

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/sampler"
)

// writeFonts stores the Go fonts in a temporary directory.
func writeFonts(t *testing.T) (regular, bold, italic string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		fname := filepath.Join(dir, name)
		err := os.WriteFile(fname, data, 0o644)
		if err != nil {
			t.Fatal(err)
		}
		return fname
	}
	return write("Go-Regular.ttf", goregular.TTF),
		write("Go-Bold.ttf", gobold.TTF),
		write("Go-Italic.ttf", goitalic.TTF)
}

func TestParse(t *testing.T) {
	regular, _, _ := writeFonts(t)
	b := New()

	h, err := b.Parse(regular)
	if err != nil {
		t.Fatal(err)
	}
	if name := string(b.FaceName(h)); name != "Go Regular" {
		t.Errorf("wrong face name %q", name)
	}
	if name := b.CanonicalName(h); name != "GoRegular" {
		t.Errorf("wrong PostScript name %q", name)
	}

	_, err = b.Parse(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Error("missing file parsed")
	}
}

func TestMetrics(t *testing.T) {
	regular, _, _ := writeFonts(t)
	b := New()

	h, err := b.Parse(regular)
	if err != nil {
		t.Fatal(err)
	}
	err = b.Register(0, h)
	if err != nil {
		t.Fatal(err)
	}

	w1 := b.TextWidth(h, 10, "Hello")
	w2 := b.TextWidth(h, 20, "Hello")
	if w1 <= 0 || w2 < 1.99*w1 || w2 > 2.01*w1 {
		t.Errorf("wrong widths: %g %g", w1, w2)
	}
	if w := b.TextWidth(h, 10, ""); w != 0 {
		t.Errorf("empty string has width %g", w)
	}
	if lh := b.LineHeight(h, 10); lh < 10 || lh > 15 {
		t.Errorf("implausible line height %g", lh)
	}

	fb := b.Fallback()
	if b.TextWidth(fb, 10, "(Go Regular)") <= 0 {
		t.Error("fallback font has no width")
	}
}

func TestSampleSheet(t *testing.T) {
	regular, bold, italic := writeFonts(t)
	out := filepath.Join(t.TempDir(), "samples.pdf")

	b := New()
	b.Now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}
	cfg := sampler.DefaultConfig()
	cfg.Inputs = []string{regular, bold, italic}
	cfg.Output = out
	cfg.SampleText = "The quick brown fox"

	res, err := sampler.Run(context.Background(), cfg, b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 1 || res.Fonts != 3 {
		t.Errorf("wrong result: %#v", res)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Error("missing PDF header")
	}
	if !bytes.Contains(data[len(data)-32:], []byte("%%EOF")) {
		t.Error("missing end of file marker")
	}
}

func TestDuplicateFont(t *testing.T) {
	regular, _, _ := writeFonts(t)
	out := filepath.Join(t.TempDir(), "samples.pdf")

	cfg := sampler.DefaultConfig()
	cfg.Inputs = []string{regular, regular}
	cfg.Output = out

	_, err := sampler.Run(context.Background(), cfg, New(), nil)
	var dupErr *fontreg.DuplicateFontNameError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateFontNameError, got %v", err)
	}
	if dupErr.Name != "GoRegular" {
		t.Errorf("wrong font name %q", dupErr.Name)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file written")
	}

	cfg.AllowBrokenFonts = true
	res, err := sampler.Run(context.Background(), cfg, New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fonts != 1 || res.Skipped != 1 {
		t.Errorf("wrong result: %#v", res)
	}
}

func TestDocumentClose(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")
	b := New()
	doc, err := b.Create(out, &sampler.DocumentOptions{Width: 612, Height: 792})
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.NewPage()
	if err != nil {
		t.Fatal(err)
	}

	err = doc.Close()
	if err == nil {
		t.Error("document closed with an open page")
	}

	page.StrokeBorder(36, 36, 576, 756)
	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Close()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Close() == nil {
		t.Error("second Close succeeded")
	}
}
