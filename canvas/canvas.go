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

// Package canvas implements a [smith.Sink] which draws into an RGBA image.
//
// Device space is the pixel grid of the image, with the y-axis pointing
// down.  Text is drawn by filling glyph outlines of the Go fonts.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
	"seehuhn.de/go/smith/internal/device"
	"seehuhn.de/go/smith/internal/glyph"
	"seehuhn.de/go/smith/internal/raster"
)

// Canvas draws into an image.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	device.Device

	// Background is the colour used by Erase and Clear.
	Background color.Color

	img   *image.RGBA
	r     *raster.Rasterizer
	faces map[smith.Font]*glyph.Face
	text  path.Data
	mask  []uint8
}

var _ smith.Sink = (*Canvas)(nil)

// New returns a Canvas which draws into img.  The background is white.
func New(img *image.RGBA) *Canvas {
	b := img.Bounds()
	c := &Canvas{
		Background: color.White,
		img:        img,
		r: raster.NewRasterizer(rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		}),
		faces: make(map[smith.Font]*glyph.Face),
	}
	c.Device.Reset()
	return c
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// Stroke implements the [smith.Sink] interface.
// Lines are drawn with butt caps and miter joins.
func (c *Canvas) Stroke() {
	c.r.Width = c.DeviceLineWidth()
	c.r.Stroke(&c.Path, c.painter(toNRGBA(c.Color)))
	c.NewPath()
}

// Fill implements the [smith.Sink] interface.
func (c *Canvas) Fill() {
	c.r.Fill(&c.Path, c.painter(toNRGBA(c.Color)))
	c.NewPath()
}

// Erase implements the [smith.Sink] interface.
func (c *Canvas) Erase() {
	c.r.Fill(&c.Path, c.painter(c.Background))
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
	c.r.Fill(&c.text, c.painter(toNRGBA(c.Color)))
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

// painter returns an emit function which composites col over the image,
// using the coverage as mask.
func (c *Canvas) painter(col color.Color) raster.EmitFunc {
	src := image.NewUniform(col)
	return func(y, xMin int, coverage []float32) {
		n := len(coverage)
		if cap(c.mask) < n {
			c.mask = make([]uint8, n)
		}
		pix := c.mask[:n]
		for i, v := range coverage {
			pix[i] = uint8(math.Round(float64(v) * 255))
		}
		mask := &image.Alpha{
			Pix:    pix,
			Stride: n,
			Rect:   image.Rect(xMin, y, xMin+n, y+1),
		}
		draw.DrawMask(c.img, mask.Rect, src, image.Point{}, mask, mask.Rect.Min, draw.Over)
	}
}

func toNRGBA(col smith.Color) color.NRGBA {
	return color.NRGBA{
		R: channel(col.R),
		G: channel(col.G),
		B: channel(col.B),
		A: channel(col.A),
	}
}

func channel(x float64) uint8 {
	return uint8(math.Round(min(max(x, 0), 1) * 255))
}
