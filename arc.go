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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Arc is a circular arc in the reflection coefficient plane.  The arc runs
// from angle Start to angle End in the direction of increasing angle.
type Arc struct {
	Center UV
	Radius float64
	Start  float64
	End    float64
}

// ResistanceArc returns the part of the circle of constant resistance r
// between the reactances xFrom and xTo.
//
// The arc of a sink starts at xFrom and proceeds in the positive direction,
// so the caller orders xFrom and xTo to select the short or the long way
// around the circle.  The resistance r must be larger than -1.
func ResistanceArc(r, xFrom, xTo float64) (Arc, error) {
	if !isFinite(r) || !isFinite(xFrom) || !isFinite(xTo) {
		return Arc{}, newArgumentError("ResistanceArc", "r, xFrom, xTo", "not finite")
	}
	if r <= -1 {
		return Arc{}, newArgumentError("ResistanceArc", "r",
			fmt.Sprintf("%g is not larger than -1", r))
	}
	return resistanceArc(r, xFrom, xTo), nil
}

func resistanceArc(r, xFrom, xTo float64) Arc {
	return Arc{
		Center: UV{U: r / (r + 1), V: 0},
		Radius: 1 / (r + 1),
		Start:  angleOfResistanceArc(RX{R: r, X: xFrom}),
		End:    angleOfResistanceArc(RX{R: r, X: xTo}),
	}
}

// ReactanceArc returns the part of the circle of constant reactance x
// between the resistances rFrom and rTo.  The value x must be non-zero.
func ReactanceArc(x, rFrom, rTo float64) (Arc, error) {
	if !isFinite(x) || !isFinite(rFrom) || !isFinite(rTo) {
		return Arc{}, newArgumentError("ReactanceArc", "x, rFrom, rTo", "not finite")
	}
	if x == 0 {
		return Arc{}, newArgumentError("ReactanceArc", "x", "X = 0 has no reactance circle")
	}
	return reactanceArc(x, rFrom, rTo), nil
}

func reactanceArc(x, rFrom, rTo float64) Arc {
	return Arc{
		Center: UV{U: 1, V: 1 / x},
		Radius: math.Abs(1 / x),
		Start:  angleOfReactanceArc(RX{R: rFrom, X: x}),
		End:    angleOfReactanceArc(RX{R: rTo, X: x}),
	}
}

// draw strokes the arc, scaled to the unit radius.
func (a Arc) draw(s Sink) {
	c := vec.Vec2{X: a.Center.U * unitRadius, Y: a.Center.V * unitRadius}
	s.Arc(c, a.Radius*unitRadius, a.Start, a.End, Positive)
	s.Stroke()
}
