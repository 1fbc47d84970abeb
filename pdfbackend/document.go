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
	"errors"
	"os"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/ttfsampler/fontreg"
	"seehuhn.de/go/ttfsampler/sampler"
)

const producer = "seehuhn.de/go/ttfsampler"

// Document is a PDF file in the course of being written.
// The file is kept in memory until Close is called.
type Document struct {
	path string
	buf  *bytes.Buffer
	doc  *document.MultiPage

	numOpen int
}

func newDocument(path string, opt *sampler.DocumentOptions, now time.Time) (*Document, error) {
	buf := &bytes.Buffer{}
	paper := &pdf.Rectangle{URx: opt.Width, URy: opt.Height}
	doc, err := document.WriteMultiPage(buf, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	meta := doc.Out.GetMeta()
	meta.Info = &pdf.Info{
		Title:    pdf.TextString(opt.Title),
		Creator:  pdf.TextString(opt.Creator),
		Producer: producer,
	}
	err = writeMetadata(doc.Out, opt, now)
	if err != nil {
		return nil, err
	}

	return &Document{
		path: path,
		buf:  buf,
		doc:  doc,
	}, nil
}

// writeMetadata adds an XMP metadata stream to the document catalog.
func writeMetadata(out *pdf.Writer, opt *sampler.DocumentOptions, now time.Time) error {
	dc := &xmp.DublinCore{}
	if opt.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), opt.Title)
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)

	packet := xmp.NewPacket()
	packet.Set(dc, basic)

	ref := out.Alloc()
	stm, err := out.OpenStream(ref, pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	})
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	out.GetMeta().Catalog.Metadata = ref
	return nil
}

// NewPage starts a new page at the end of the document.
func (d *Document) NewPage() (sampler.PageSurface, error) {
	if d.doc == nil {
		return nil, errDocumentClosed
	}
	d.numOpen++
	return &Page{
		Page: d.doc.AddPage(),
		doc:  d,
	}, nil
}

// Close finishes the PDF file and writes it to disk.
func (d *Document) Close() error {
	if d.doc == nil {
		return errDocumentClosed
	}
	if d.numOpen > 0 {
		return errors.New("document has unfinished pages")
	}
	err := d.doc.Close()
	d.doc = nil
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, d.buf.Bytes(), 0o644)
}

var errDocumentClosed = errors.New("document already closed")

// Page is a page of a [Document].
type Page struct {
	*document.Page
	doc *Document
}

// ShowText draws s in the font h, with the baseline starting at pos.
func (p *Page) ShowText(pos vec.Vec2, h fontreg.Handle, size float64, s string) {
	if s == "" {
		return
	}
	p.TextBegin()
	p.TextSetFont(h.(*Face).F, size)
	p.TextFirstLine(pos.X, pos.Y)
	p.TextShow(s)
	p.TextEnd()
}

// StrokeBorder draws a thin red rectangle.
func (p *Page) StrokeBorder(llx, lly, urx, ury float64) {
	p.PushGraphicsState()
	p.SetStrokeColor(color.DeviceRGB{1, 0, 0})
	p.SetLineWidth(1)
	p.Rectangle(llx, lly, urx-llx, ury-lly)
	p.Stroke()
	p.PopGraphicsState()
}

// Close adds the page to the document.
func (p *Page) Close() error {
	if p.doc == nil {
		return errors.New("page already closed")
	}
	p.doc.numOpen--
	p.doc = nil
	return p.Page.Close()
}
