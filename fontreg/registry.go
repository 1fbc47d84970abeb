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
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/ttfsampler/report"
)

// Handle is a parsed font, as returned by a [Loader].
// Only the backend which created a Handle knows its concrete type.
type Handle any

// Loader parses font files.
type Loader interface {
	// Parse reads and parses the font file at path.
	Parse(path string) (Handle, error)

	// FaceName returns the human-readable full name of the font, as stored
	// in the font file.
	FaceName(h Handle) []byte

	// CanonicalName returns the PostScript name of the font.
	CanonicalName(h Handle) string
}

// Registrar makes fonts available for drawing.
type Registrar interface {
	Register(id int, h Handle) error
}

// Entry is a font on the sample sheet.
// Entries are not modified after they have been returned by [Load].
type Entry struct {
	// ID is the position of the font among the successfully loaded fonts,
	// in input order.
	ID int

	Font           Handle
	Name           string // decoded face name, shown on the sample sheet
	PostScriptName string
	Path           string
}

// LoadOptions controls the behaviour of [Load].
type LoadOptions struct {
	// AllowBroken causes unreadable and duplicate fonts to be skipped with
	// a warning.  Otherwise, Load fails on the first such font.
	AllowBroken bool

	// Sort causes the fonts to be ordered by face name.
	// Otherwise the input order is kept.
	Sort bool

	Log report.Sink
}

// Load reads the fonts from the given files.
//
// The function returns the usable fonts, together with the number of
// fonts which were skipped.  If opt.AllowBroken is not set, a
// [*FontLoadError] or [*DuplicateFontNameError] is returned for the first
// file which cannot be used.
func Load(ctx context.Context, loader Loader, paths []string, opt *LoadOptions) ([]*Entry, int, error) {
	if opt == nil {
		opt = &LoadOptions{}
	}
	log := opt.Log

	var entries []*Entry
	seen := make(map[string]string) // PostScript name -> path
	skipped := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, skipped, err
		}

		report.Debugf(log, report.Medium, "loading font %s ...", path)
		entry, err := loadOne(loader, path, len(entries), seen)
		if err != nil {
			if !opt.AllowBroken {
				return nil, skipped, err
			}
			report.Warningf(log, "skipping font %s: %v", path, unwrapLoad(err))
			skipped++
			continue
		}
		report.Debugf(log, report.Medium, "   -> %q", entry.Name)

		seen[entry.PostScriptName] = path
		entries = append(entries, entry)
	}

	if opt.Sort {
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return entries, skipped, nil
}

func loadOne(loader Loader, path string, id int, seen map[string]string) (*Entry, error) {
	h, err := loader.Parse(path)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}

	psName := loader.CanonicalName(h)
	if first, dup := seen[psName]; dup {
		return nil, &DuplicateFontNameError{
			Path:      path,
			Name:      psName,
			FirstPath: first,
		}
	}

	name := DecodeName(loader.FaceName(h))
	if name == "" {
		name = psName
	}
	if name == "" {
		name = filepath.Base(path)
	}

	return &Entry{
		ID:             id,
		Font:           h,
		Name:           name,
		PostScriptName: psName,
		Path:           path,
	}, nil
}

// unwrapLoad strips the file name from load errors, since the warning
// message already contains it.
func unwrapLoad(err error) error {
	if e, ok := err.(*FontLoadError); ok {
		return e.Err
	}
	if e, ok := err.(*DuplicateFontNameError); ok {
		return fmt.Errorf("font name %q already used by %s", e.Name, e.FirstPath)
	}
	return err
}

// Register makes the fonts available to the backend, in the order given.
// Each font is registered under its ID.
//
// Fonts which the backend rejects are treated like broken font files: if
// opt.AllowBroken is set they are dropped with a warning, otherwise a
// [*FontLoadError] is returned.  The function returns the registered fonts
// and the number of dropped fonts.
func Register(ctx context.Context, reg Registrar, entries []*Entry, opt *LoadOptions) ([]*Entry, int, error) {
	if opt == nil {
		opt = &LoadOptions{}
	}
	log := opt.Log

	res := make([]*Entry, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, skipped, err
		}

		err := reg.Register(e.ID, e.Font)
		if err != nil {
			if !opt.AllowBroken {
				return nil, skipped, &FontLoadError{Path: e.Path, Err: err}
			}
			report.Warningf(log, "skipping font %s: %v", e.Path, err)
			skipped++
			continue
		}
		report.Debugf(log, report.Medium, "registered font %q", e.Name)
		res = append(res, e)
	}
	return res, skipped, nil
}
