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

// Package raster converts paths in device coordinates into anti-aliased
// pixel coverage.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one row of pixels, starting at pixel
// xMin.  Coverage values are in [0, 1].  The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// polyline is a flattened subpath, as a range of Rasterizer.pts.
type polyline struct {
	start, end int
	closed     bool
}

// Rasterizer computes the coverage of filled and stroked paths.  All
// coordinates are device coordinates, with pixel (x, y) covering the square
// [x, x+1) × [y, y+1).
//
// Internal buffers are reused between calls.  A Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and
	// the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int

	pts   []vec.Vec2
	polys []polyline

	outline []vec.Vec2
	loops   []int // start of each outline loop

	edgeBBoxFirst bool
	edgeXMin      float64
	edgeXMax      float64
	edgeYMin      float64
	edgeYMax      float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle.  The
// stroke parameters are set to the PostScript defaults: width 1, butt caps,
// miter joins and miter limit 10.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill fills the path using the nonzero winding rule.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, emit EmitFunc) {
	r.flatten(p)

	r.resetEdges()
	for _, pl := range r.polys {
		poly := r.pts[pl.start:pl.end]
		r.addPolygon(poly)
	}
	r.scan(emit)
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// addPolygon adds the edges of a closed polygon.
func (r *Rasterizer) addPolygon(poly []vec.Vec2) {
	if len(poly) < 2 {
		return
	}
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeXMin = min(p0.X, p1.X)
		r.edgeXMax = max(p0.X, p1.X)
		r.edgeYMin = min(p0.Y, p1.Y)
		r.edgeYMax = max(p0.Y, p1.Y)
		r.edgeBBoxFirst = false
	} else {
		r.edgeXMin = min(r.edgeXMin, p0.X, p1.X)
		r.edgeXMax = max(r.edgeXMax, p0.X, p1.X)
		r.edgeYMin = min(r.edgeYMin, p0.Y, p1.Y)
		r.edgeYMax = max(r.edgeYMax, p0.Y, p1.Y)
	}
}

// bbox returns the pixel range touched by the edges, clamped to the clip
// rectangle.
func (r *Rasterizer) bbox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.edgeXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation model:
//
// For each pixel of a scanline two values are tracked:
//
//	cover: signed vertical extent of the edges crossing the pixel column
//	area:  cover, weighted by the part of the pixel right of the crossing
//
// The coverage of pixel i is the sum of the cover of all pixels left of i,
// plus area[i].  This is the signed area of the path inside the pixel.

// accumulateEdge adds the contribution of e in scanline y.  The buffers are
// indexed by x - bboxXMin.  Contributions left of the buffer are collected
// in the first pixel.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateSegment(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		accumulateSegment(e, segTop, segBot, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSegment adds the part of e between yTop and yBot, which lies
// within pixel column pix.
func accumulateSegment(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-xFrac)
}

// integrateScanline converts accumulated cover and area into coverage using
// the nonzero winding rule.  The result is stored in cover.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// scan rasterises the collected edges one scanline at a time, using an
// active edge list.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bbox()
	if !ok {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.1

	// defaultMiterLimit converts joins to bevels when the interior angle
	// is less than about 11.5 degrees.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-9

	// collinearityThreshold is the sine of the angle below which two
	// segments are treated as collinear.
	collinearityThreshold = 1e-6
)
