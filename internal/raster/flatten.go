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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// flatten converts p into polylines, stored in r.pts and r.polys.
// Consecutive duplicate points are dropped.  A closed subpath does not
// repeat its first point at the end.
func (r *Rasterizer) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.polys = r.polys[:0]

	start := -1 // index of the current subpath in r.pts, -1 if none
	var current vec.Vec2

	finish := func(closed bool) {
		if start < 0 {
			return
		}
		end := len(r.pts)
		if closed && end-start > 1 && near(r.pts[end-1], r.pts[start]) {
			end--
			r.pts = r.pts[:end]
		}
		r.polys = append(r.polys, polyline{start: start, end: end, closed: closed})
		start = -1
	}

	// Segments after ClosePath start a new subpath at the closing point.
	begin := func() {
		if start < 0 {
			start = len(r.pts)
			r.pts = append(r.pts, current)
		}
	}

	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[idx]
			start = len(r.pts)
			r.pts = append(r.pts, current)
			idx++

		case path.CmdLineTo:
			begin()
			r.lineTo(p.Coords[idx])
			current = p.Coords[idx]
			idx++

		case path.CmdQuadTo:
			begin()
			r.flattenQuadratic(current, p.Coords[idx], p.Coords[idx+1])
			current = p.Coords[idx+1]
			idx += 2

		case path.CmdCubeTo:
			begin()
			r.flattenCubic(current, p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2])
			current = p.Coords[idx+2]
			idx += 3

		case path.CmdClose:
			if start >= 0 {
				current = r.pts[start]
			}
			finish(true)
		}
	}
	finish(false)
}

func (r *Rasterizer) lineTo(p vec.Vec2) {
	if n := len(r.pts); n > 0 && near(r.pts[n-1], p) {
		return
	}
	r.pts = append(r.pts, p)
}

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < zeroLengthThreshold && math.Abs(a.Y-b.Y) < zeroLengthThreshold
}

// flattenQuadratic appends the polygon approximating the quadratic Bézier
// curve from p0 to p2 with control point p1.  p0 is not appended.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic appends the polygon approximating a cubic Bézier curve.  The
// number of segments is chosen using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nf := math.Sqrt(3 * m / (4 * r.Flatness))
		if nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.lineTo(pt)
	}
}
