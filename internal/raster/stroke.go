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
	"seehuhn.de/go/pdf/graphics"
)

// Stroke strokes the path using Width, Cap, Join and MiterLimit.
//
// The outline of each subpath is built from loops which run along the
// offset curves at distance Width/2.  At the inner side of a corner the
// loop passes through the corner point itself; the resulting overlaps do
// not matter since outlines are filled with the nonzero rule.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.flatten(p)

	d := r.Width / 2
	r.outline = r.outline[:0]
	r.loops = r.loops[:0]
	for _, pl := range r.polys {
		poly := r.pts[pl.start:pl.end]
		switch {
		case len(poly) == 1:
			if r.Cap == graphics.LineCapRound {
				r.beginLoop()
				r.addArc(poly[0], d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
			}
		case pl.closed && len(poly) > 2:
			r.beginLoop()
			r.offsetClosed(poly, d, false)
			r.beginLoop()
			r.offsetClosed(poly, d, true)
		default:
			r.beginLoop()
			r.offsetOpen(poly, d, false)
			r.addCap(poly[len(poly)-1], tangent(poly[len(poly)-2], poly[len(poly)-1]), d)
			r.offsetOpen(poly, d, true)
			r.addCap(poly[0], tangent(poly[1], poly[0]), d)
		}
	}

	r.resetEdges()
	for i, start := range r.loops {
		end := len(r.outline)
		if i+1 < len(r.loops) {
			end = r.loops[i+1]
		}
		r.addPolygon(r.outline[start:end])
	}
	r.scan(emit)
}

func (r *Rasterizer) beginLoop() {
	r.loops = append(r.loops, len(r.outline))
}

// tangent returns the unit vector from a to b.
func tangent(a, b vec.Vec2) vec.Vec2 {
	return b.Sub(a).Normalize()
}

// vertex returns point i of poly, walking backwards if reverse is set.
func vertex(poly []vec.Vec2, i int, reverse bool) vec.Vec2 {
	if reverse {
		return poly[len(poly)-1-i]
	}
	return poly[i]
}

// offsetOpen appends the offset of an open polyline on the positive normal
// side of its direction of travel.
func (r *Rasterizer) offsetOpen(poly []vec.Vec2, d float64, reverse bool) {
	n := len(poly)
	t := tangent(vertex(poly, 0, reverse), vertex(poly, 1, reverse))
	r.outline = append(r.outline, vertex(poly, 0, reverse).Add(t.Rot90().Mul(d)))
	for i := 1; i < n-1; i++ {
		next := tangent(vertex(poly, i, reverse), vertex(poly, i+1, reverse))
		r.addJoin(vertex(poly, i, reverse), t, next, d)
		t = next
	}
	r.outline = append(r.outline, vertex(poly, n-1, reverse).Add(t.Rot90().Mul(d)))
}

// offsetClosed appends the offset of a closed polygon on the positive
// normal side of its direction of travel.
func (r *Rasterizer) offsetClosed(poly []vec.Vec2, d float64, reverse bool) {
	n := len(poly)
	prev := tangent(vertex(poly, n-1, reverse), vertex(poly, 0, reverse))
	for i := range n {
		next := tangent(vertex(poly, i, reverse), vertex(poly, (i+1)%n, reverse))
		r.addJoin(vertex(poly, i, reverse), prev, next, d)
		prev = next
	}
}

// addJoin appends the offset points at the corner p, where the direction
// changes from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	n1 := t1.Rot90()
	n2 := t2.Rot90()
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)

	r.outline = append(r.outline, p.Add(n1.Mul(d)))
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if cross > 0 {
		// The offset side is on the inside of the corner.
		r.outline = append(r.outline, p, p.Add(n2.Mul(d)))
		return
	}

	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(p, d, n1, math.Atan2(cross, dot))
	case graphics.LineJoinMiter:
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			bisector := n1.Add(n2).Normalize()
			r.outline = append(r.outline, p.Add(bisector.Mul(d/cosHalf)))
		}
	}
	r.outline = append(r.outline, p.Add(n2.Mul(d)))
}

// addCap appends the cap at the end point p of a line with direction t.
// The cap runs from the positive to the negative normal side.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	n := t.Rot90()
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends points on the circle around center, starting in direction
// dir and covering the given signed angle.  The start point is included.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	n := 1
	if radius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/radius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	for i := 0; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		c, s := math.Cos(phi), math.Sin(phi)
		v := vec.Vec2{X: dir.X*c - dir.Y*s, Y: dir.X*s + dir.Y*c}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}
