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

// Package device keeps the graphics state and the current path for the
// drawing sinks.  Path coordinates are converted to device space as soon as
// they are added, so that later changes of the transformation matrix do not
// affect them.
package device

import (
	"math"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

// arcTolerance is the maximal distance, in device units, between an arc
// and its approximation by cubic Bézier curves.
const arcTolerance = 0.01

// State is the part of the graphics state saved by Save.
type State struct {
	CTM       matrix.Matrix
	Color     smith.Color
	LineWidth float64
	Font      smith.Font
	FontSize  float64
}

// Device implements the state and path methods of [smith.Sink].
// Sinks embed a Device and add the painting methods.
type Device struct {
	State
	saved []State

	// Path is the current path in device coordinates.
	Path path.Data

	hasCurrent bool
	current    vec.Vec2
	start      vec.Vec2
}

// New returns a Device with identity transformation, opaque black colour,
// line width 1 and font size 10.
func New() *Device {
	d := &Device{}
	d.Reset()
	return d
}

// Reset restores the initial state and discards the path.
func (d *Device) Reset() {
	d.State = State{
		CTM:       matrix.Identity,
		Color:     smith.RGB(0, 0, 0),
		LineWidth: 1,
		FontSize:  10,
	}
	d.saved = d.saved[:0]
	d.NewPath()
}

// Save implements the [smith.Sink] interface.
func (d *Device) Save() {
	d.saved = append(d.saved, d.State)
}

// Restore implements the [smith.Sink] interface.
// Unbalanced calls are ignored.
func (d *Device) Restore() {
	n := len(d.saved)
	if n == 0 {
		return
	}
	d.State = d.saved[n-1]
	d.saved = d.saved[:n-1]
}

// Depth returns the number of saved states.
func (d *Device) Depth() int {
	return len(d.saved)
}

// Transform implements the [smith.Sink] interface.
func (d *Device) Transform(m matrix.Matrix) {
	d.CTM = m.Mul(d.CTM)
}

// Matrix implements the [smith.Sink] interface.
func (d *Device) Matrix() matrix.Matrix {
	return d.CTM
}

// SetMatrix implements the [smith.Sink] interface.
func (d *Device) SetMatrix(m matrix.Matrix) {
	d.CTM = m
}

// SetColor implements the [smith.Sink] interface.
func (d *Device) SetColor(c smith.Color) {
	d.Color = c
}

// SetLineWidth implements the [smith.Sink] interface.
func (d *Device) SetLineWidth(w float64) {
	d.LineWidth = w
}

// SelectFont implements the [smith.TextMetrics] interface.
func (d *Device) SelectFont(f smith.Font) {
	d.Font = f
}

// SetFontSize implements the [smith.TextMetrics] interface.
func (d *Device) SetFontSize(size float64) {
	d.FontSize = size
}

// NewPath implements the [smith.Sink] interface.
func (d *Device) NewPath() {
	d.Path.Cmds = d.Path.Cmds[:0]
	d.Path.Coords = d.Path.Coords[:0]
	d.hasCurrent = false
}

// MoveTo implements the [smith.Sink] interface.
func (d *Device) MoveTo(p vec.Vec2) {
	q := d.CTM.Apply(p)
	d.Path.MoveTo(q)
	d.current = q
	d.start = q
	d.hasCurrent = true
}

// LineTo implements the [smith.Sink] interface.
// Without a current point, LineTo behaves like MoveTo.
func (d *Device) LineTo(p vec.Vec2) {
	if !d.hasCurrent {
		d.MoveTo(p)
		return
	}
	q := d.CTM.Apply(p)
	d.Path.LineTo(q)
	d.current = q
}

// CurveTo implements the [smith.Sink] interface.
func (d *Device) CurveTo(c1, c2, p vec.Vec2) {
	if !d.hasCurrent {
		d.MoveTo(c1)
	}
	q := d.CTM.Apply(p)
	d.Path.CubeTo(d.CTM.Apply(c1), d.CTM.Apply(c2), q)
	d.current = q
}

// ClosePath implements the [smith.Sink] interface.
func (d *Device) ClosePath() {
	if !d.hasCurrent {
		return
	}
	d.Path.Close()
	d.current = d.start
}

// Arc implements the [smith.Sink] interface.
// The arc is approximated by cubic Bézier curves.
func (d *Device) Arc(center vec.Vec2, radius, start, end float64, dir smith.Direction) {
	sweep := ArcSweep(start, end, dir)

	tol := arcTolerance
	if s := Scale(d.CTM); s > 0 {
		tol /= s
	}
	a := curve.Arc{
		Center:     curve.Pt(center.X, center.Y),
		Radii:      curve.Vec(radius, radius),
		StartAngle: start,
		SweepAngle: sweep,
	}
	for el := range a.PathElements(tol) {
		switch el.Kind {
		case curve.MoveToKind:
			p := vec.Vec2{X: el.P0.X, Y: el.P0.Y}
			if d.hasCurrent {
				d.LineTo(p)
			} else {
				d.MoveTo(p)
			}
		case curve.CubicToKind:
			d.CurveTo(
				vec.Vec2{X: el.P0.X, Y: el.P0.Y},
				vec.Vec2{X: el.P1.X, Y: el.P1.Y},
				vec.Vec2{X: el.P2.X, Y: el.P2.Y})
		}
	}
}

// DeviceLineWidth returns the line width in device units.
func (d *Device) DeviceLineWidth() float64 {
	return d.LineWidth * Scale(d.CTM)
}

// ArcSweep returns the signed angle covered by an arc from start to end.
// For positive arcs the end angle is increased by multiples of 2π until it
// is not smaller than start, for negative arcs it is decreased until it is
// not larger than start.
func ArcSweep(start, end float64, dir smith.Direction) float64 {
	if dir == smith.Negative {
		for end > start {
			end -= 2 * math.Pi
		}
	} else {
		for end < start {
			end += 2 * math.Pi
		}
	}
	return end - start
}

// Scale returns the factor by which m scales areas, as a length ratio.
// For similarity transformations this is the scale factor of m.
func Scale(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}
