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

import "seehuhn.de/go/geom/vec"

// curviness is the distance of the control points from the end points of
// a segment, relative to the length of the segment.
const curviness = 0.25

// Line is a straight line from A to B.
type Line struct {
	A, B UV
}

// dir returns the unit vector pointing from A to B, or the zero vector
// if A and B coincide.
func (l Line) dir() vec.Vec2 {
	return l.B.Vec().Sub(l.A.Vec()).Normalize()
}

// Cubic is a cubic Bézier segment from P0 to P3 with control points P1 and
// P2.
type Cubic struct {
	P0, P1, P2, P3 UV
}

// ControlPoints returns the control points for the segment from g.B to
// l.A, where g is the line from the predecessor of the segment's start
// and l is the line to the successor of the segment's end.
//
// The first control point lies on the tangent at g.B, which is
// parallel to the line from g.B - |h|·dir(g) to l.A.  The second control
// point lies on the tangent at l.A, constructed the same way.  Both are
// placed at distance |h|/4 from their end point.
func ControlPoints(g, l Line) (c1, c2 UV) {
	start := g.B.Vec()
	end := l.A.Vec()
	lgt := end.Sub(start).Length()

	back := start.Sub(g.dir().Mul(lgt))
	t1 := end.Sub(back).Normalize()
	c1 = toUV(start.Add(t1.Mul(lgt * curviness)))

	ahead := end.Add(l.dir().Mul(lgt))
	t2 := ahead.Sub(start).Normalize()
	c2 = toUV(end.Sub(t2.Mul(lgt * curviness)))
	return c1, c2
}

// FitCurve returns a smooth curve through the given points, consisting of
// one cubic segment for each pair of consecutive points.  The first and
// the last control point coincide with the end points of the curve, so
// that the curve does not overshoot.  At least two points are required.
func FitCurve(pts []UV) ([]Cubic, error) {
	if err := checkPoints("FitCurve", pts); err != nil {
		return nil, err
	}
	n := len(pts)

	res := make([]Cubic, 0, n-1)
	for i := 1; i < n; i++ {
		// The neighbours wrap around, but the results for the wrapped
		// neighbours at the two ends are replaced below.
		g := Line{A: pts[(i+n-2)%n], B: pts[i-1]}
		l := Line{A: pts[i], B: pts[(i+1)%n]}
		c1, c2 := ControlPoints(g, l)
		if i == 1 {
			c1 = g.B
		}
		if i == n-1 {
			c2 = l.A
		}
		res = append(res, Cubic{P0: pts[i-1], P1: c1, P2: c2, P3: pts[i]})
	}
	return res, nil
}
