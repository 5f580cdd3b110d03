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

package smith

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Sink receives the drawing operations which make up a chart.
//
// The model is that of PostScript and cairo: a graphics state (current
// transformation matrix, colour, line width, font) which can be saved and
// restored, and a current path which is consumed by Stroke, Fill and Erase.
// Path coordinates are user space coordinates, transformed by the matrix in
// effect when each operation is called.
//
// A Sink is used from a single goroutine.
type Sink interface {
	TextMetrics

	// Save pushes a copy of the graphics state.
	Save()
	// Restore pops the graphics state pushed by the matching Save.
	Restore()

	// Transform modifies user space: points are first mapped by m and
	// then by the previous matrix.
	Transform(m matrix.Matrix)
	// Matrix returns the current transformation matrix.
	Matrix() matrix.Matrix
	// SetMatrix replaces the current transformation matrix.
	SetMatrix(m matrix.Matrix)

	SetColor(c Color)
	// SetLineWidth sets the stroke width in user space units.
	SetLineWidth(w float64)

	// NewPath discards the current path.
	NewPath()
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	CurveTo(c1, c2, p vec.Vec2)
	// Arc adds a circular arc.  If there is a current point, a straight
	// line joins it to the start of the arc.  For [Positive] arcs the end
	// angle is increased by multiples of 2π until it is not smaller than
	// the start angle; for [Negative] arcs it is decreased until it is not
	// larger.
	Arc(center vec.Vec2, radius, start, end float64, dir Direction)
	ClosePath()

	// Stroke strokes and then clears the current path.
	Stroke()
	// Fill fills the current path using the nonzero winding rule and
	// then clears it.
	Fill()
	// Erase clears the interior of the current path to the background and
	// then clears the path.
	Erase()

	// ShowText draws s with the left end of its baseline at p.  Glyphs are
	// upright when user space has the y-axis pointing up.
	ShowText(s string, p vec.Vec2)
}

// TextMetrics selects fonts and measures text.
type TextMetrics interface {
	SelectFont(f Font)
	// SetFontSize sets the em size in user space units.
	SetFontSize(size float64)
	// TextExtents measures s in the current font, in user space units.
	TextExtents(s string) TextExtents
}

// Direction is the sense in which an arc is traversed.
type Direction int

const (
	// Positive arcs go in the direction of increasing angle.
	Positive Direction = iota
	// Negative arcs go in the direction of decreasing angle.
	Negative
)

func (d Direction) String() string {
	if d == Negative {
		return "negative"
	}
	return "positive"
}

// Slant selects upright or italic glyphs.
type Slant int

// Possible values for [Slant].
const (
	SlantNormal Slant = iota
	SlantItalic
)

// Weight selects the stroke weight of glyphs.
type Weight int

// Possible values for [Weight].
const (
	WeightNormal Weight = iota
	WeightBold
)

// Font identifies a font face.  Sinks map the family name to a face they
// have available.
type Font struct {
	Family string
	Slant  Slant
	Weight Weight
}

// TextExtents describes the size of a string in a y-up user space.
type TextExtents struct {
	// XBearing is the distance from the start of the baseline to the left
	// edge of the ink.
	XBearing float64
	// YBearing is the height of the lowest ink above the baseline.  It is
	// negative for strings with descenders.
	YBearing float64
	// Width and Height give the size of the ink bounding box.
	Width, Height float64
	// XAdvance is the distance from the start of the baseline to the start
	// of the following text.
	XAdvance float64
}

// Color is a non-premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}
