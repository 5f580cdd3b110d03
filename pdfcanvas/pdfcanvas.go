// seehuhn.de/go/smith - Smith chart geometry for Go
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

// Package pdfcanvas implements a [smith.Sink] which writes PDF content.
//
// The graphics state is kept on the Go side and paths are written in
// device coordinates, so that the PDF content stream only contains path
// construction and painting operators.  Text is written as filled glyph
// outlines.  Colours are opaque; the alpha channel is ignored.
package pdfcanvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/smith"
	"seehuhn.de/go/smith/internal/device"
	"seehuhn.de/go/smith/internal/glyph"
)

// Page is the part of a PDF content stream writer used by a Canvas.
// It is implemented by [document.Page].
type Page interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	Fill()
	Stroke()
}

// Canvas writes the drawing operations to a PDF page.
type Canvas struct {
	device.Device

	page  Page
	close func() error

	faces map[smith.Font]*glyph.Face
	text  path.Data
}

var _ smith.Sink = (*Canvas)(nil)

// New returns a Canvas which draws on page.  Device space is the user space
// of the page at the time New is called.
func New(page Page) *Canvas {
	c := &Canvas{
		page:  page,
		faces: make(map[smith.Font]*glyph.Face),
	}
	c.Device.Reset()
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	return c
}

// Create creates a single page PDF file of the given size, in PDF points.
// Device space has the origin in the top left corner of the page and the
// y-axis pointing down.  The file is complete after Close has been called.
func Create(fileName string, width, height float64) (*Canvas, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	page.Transform(matrix.Scale(1, -1).Translate(0, height))

	c := New(page)
	c.close = page.Close
	return c, nil
}

// Close finishes the PDF file written by a Canvas returned from [Create].
// For other canvases Close does nothing.
func (c *Canvas) Close() error {
	if c.close == nil {
		return nil
	}
	err := c.close()
	c.close = nil
	return err
}

// Stroke implements the [smith.Sink] interface.
func (c *Canvas) Stroke() {
	if w := c.DeviceLineWidth(); w > 0 && len(c.Path.Cmds) > 0 {
		c.page.SetStrokeColor(pdfColor(c.Color))
		c.page.SetLineWidth(w)
		c.writePath(&c.Path)
		c.page.Stroke()
	}
	c.NewPath()
}

// Fill implements the [smith.Sink] interface.
func (c *Canvas) Fill() {
	c.fill(&c.Path, pdfColor(c.Color))
	c.NewPath()
}

// Erase implements the [smith.Sink] interface.
// The background of a PDF page is white.
func (c *Canvas) Erase() {
	c.fill(&c.Path, color.DeviceGray(1))
	c.NewPath()
}

// ShowText implements the [smith.Sink] interface.
func (c *Canvas) ShowText(s string, p vec.Vec2) {
	face := c.face()
	if face == nil {
		return
	}
	size := c.FontSize
	ctm := c.CTM

	c.text.Cmds = c.text.Cmds[:0]
	c.text.Coords = c.text.Coords[:0]
	face.Outline(&c.text, s, func(q vec.Vec2) vec.Vec2 {
		return ctm.Apply(vec.Vec2{X: p.X + q.X*size, Y: p.Y + q.Y*size})
	})
	c.fill(&c.text, pdfColor(c.Color))
}

// TextExtents implements the [smith.TextMetrics] interface.
func (c *Canvas) TextExtents(s string) smith.TextExtents {
	face := c.face()
	if face == nil {
		return smith.TextExtents{}
	}
	return face.Extents(s).Scale(c.FontSize)
}

func (c *Canvas) face() *glyph.Face {
	if f, ok := c.faces[c.Font]; ok {
		return f
	}
	f, err := glyph.Lookup(c.Font)
	if err != nil {
		smith.Logger().Debug("font not available", "font", c.Font.Family, "error", err)
	}
	c.faces[c.Font] = f
	return f
}

func (c *Canvas) fill(p *path.Data, col color.Color) {
	if len(p.Cmds) == 0 {
		return
	}
	c.page.SetFillColor(col)
	c.writePath(p)
	c.page.Fill()
}

func (c *Canvas) writePath(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

func pdfColor(col smith.Color) color.Color {
	return color.DeviceRGB(clamp(col.R), clamp(col.G), clamp(col.B))
}

func clamp(x float64) float64 {
	return min(max(x, 0), 1)
}
