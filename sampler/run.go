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
	"context"

	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/internal/buildinfo"
	"seehuhn.de/go/ttfsampler/layout"
	"seehuhn.de/go/ttfsampler/report"
)

// Result summarises a completed run.
type Result struct {
	Pages   int // number of pages written
	Fonts   int // number of fonts shown
	Skipped int // number of fonts skipped because of errors
}

// Run produces the sample sheet described by cfg.
//
// Progress messages, warnings and errors are sent to log, which may be nil.
// If ctx is cancelled, Run stops between fonts or between pages and returns
// ctx.Err().  In this case no output file is written.
func Run(ctx context.Context, cfg *Config, backend Backend, log report.Sink) (*Result, error) {
	if log == nil {
		log = report.Discard
	}
	cfg = cfg.Clone()
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	width, height, _ := PaperSize(cfg.Paper)

	opt := &fontreg.LoadOptions{
		AllowBroken: cfg.AllowBrokenFonts,
		Sort:        cfg.Sort,
		Log:         log,
	}
	entries, skipped, err := fontreg.Load(ctx, backend, cfg.Inputs, opt)
	if err != nil {
		return nil, err
	}
	entries, n, err := fontreg.Register(ctx, backend, entries, opt)
	skipped += n
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &Result{Skipped: skipped}, ErrNoFonts
	}

	doc, err := backend.Create(cfg.Output, &DocumentOptions{
		Width:   width,
		Height:  height,
		Title:   cfg.Title,
		Creator: buildinfo.Short("ttfsampler"),
	})
	if err != nil {
		return nil, &OutputWriteError{Path: cfg.Output, Err: err}
	}

	engine := &layout.Engine{
		Lines: &layout.LineRenderer{
			Metrics:    backend,
			Fallback:   backend.Fallback(),
			FontSize:   cfg.FontSize,
			SampleText: cfg.SampleText,
		},
		PageWidth:    width,
		PageHeight:   height,
		TopMargin:    cfg.TopMargin,
		BottomMargin: cfg.BottomMargin,
		Overflow:     cfg.Overflow,
		Log:          log,
	}

	res := &Result{Skipped: skipped}
	inset := cfg.BorderInset
	res.Pages, err = engine.Paginate(ctx, entries, func(p *layout.Page) error {
		report.Debugf(log, report.Coarse, "rendering page %d ...", p.Number)

		page, err := doc.NewPage()
		if err != nil {
			return &OutputWriteError{Path: cfg.Output, Err: err}
		}
		page.StrokeBorder(inset, inset, width-inset, height-inset)
		engine.Draw(page, p)
		err = page.Close()
		if err != nil {
			return &OutputWriteError{Path: cfg.Output, Err: err}
		}
		res.Fonts += len(p.Lines)
		return nil
	})
	if err != nil {
		return res, err
	}

	report.Debugf(log, report.Coarse, "writing %s ...", cfg.Output)
	err = doc.Close()
	if err != nil {
		return res, &OutputWriteError{Path: cfg.Output, Err: err}
	}

	if skipped > 0 {
		report.Warningf(log, "skipped %d font(s)", skipped)
	}
	return res, nil
}
