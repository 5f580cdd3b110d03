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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageMap collects the output of a rasterizer into a w×h grid.
type coverageMap struct {
	w, h int
	pix  []float64
}

func newCoverageMap(w, h int) *coverageMap {
	return &coverageMap{w: w, h: h, pix: make([]float64, w*h)}
}

func (m *coverageMap) emit(y, xMin int, cov []float32) {
	for i, c := range cov {
		m.pix[y*m.w+xMin+i] = float64(c)
	}
}

func (m *coverageMap) at(x, y int) float64 {
	return m.pix[y*m.w+x]
}

func (m *coverageMap) total() float64 {
	var sum float64
	for _, c := range m.pix {
		sum += c
	}
	return sum
}

func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	m := newCoverageMap(10, 1)
	r.Fill(triangle, m.emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float64(2*x+1) / 20.0
		if actual := m.at(x, 0); math.Abs(actual-expected) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func TestFillRectangle(t *testing.T) {
	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8})

	t.Run("aligned", func(t *testing.T) {
		m := newCoverageMap(8, 8)
		r.Fill(rectangle(1, 2, 4, 5), m.emit)
		for y := range 8 {
			for x := range 8 {
				want := 0.0
				if x >= 1 && x < 4 && y >= 2 && y < 5 {
					want = 1
				}
				if got := m.at(x, y); math.Abs(got-want) > 1e-6 {
					t.Errorf("pixel (%d, %d): got %.4f, want %.0f", x, y, got, want)
				}
			}
		}
	})

	t.Run("unaligned", func(t *testing.T) {
		m := newCoverageMap(8, 8)
		r.Fill(rectangle(0.5, 0.5, 2.5, 2.5), m.emit)
		if got := m.total(); math.Abs(got-4) > 1e-5 {
			t.Errorf("total coverage %.6f, want 4", got)
		}
		if got := m.at(0, 0); math.Abs(got-0.25) > 1e-6 {
			t.Errorf("corner pixel %.4f, want 0.25", got)
		}
		if got := m.at(1, 1); math.Abs(got-1) > 1e-6 {
			t.Errorf("inner pixel %.4f, want 1", got)
		}
	})

	t.Run("clipped", func(t *testing.T) {
		m := newCoverageMap(8, 8)
		r.Fill(rectangle(-5, -5, 20, 20), m.emit)
		if got := m.total(); math.Abs(got-64) > 1e-4 {
			t.Errorf("total coverage %.4f, want 64", got)
		}
	})
}

// TestNonZero checks that two overlapping squares with the same
// orientation are covered once, not twice or zero times.
func TestNonZero(t *testing.T) {
	p := rectangle(0, 0, 4, 4)
	p.MoveTo(vec.Vec2{X: 2, Y: 0}).
		LineTo(vec.Vec2{X: 6, Y: 0}).
		LineTo(vec.Vec2{X: 6, Y: 4}).
		LineTo(vec.Vec2{X: 2, Y: 4}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 4})
	m := newCoverageMap(8, 4)
	r.Fill(p, m.emit)
	if got := m.total(); math.Abs(got-24) > 1e-5 {
		t.Errorf("total coverage %.4f, want 24", got)
	}
}

func TestStrokeLine(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 8, Y: 5})

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 12},
		{graphics.LineCapSquare, 16},
		{graphics.LineCapRound, 12 + math.Pi},
	}
	for _, c := range cases {
		r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 12, URy: 10})
		r.Width = 2
		r.Cap = c.cap
		r.Flatness = 0.001
		m := newCoverageMap(12, 10)
		r.Stroke(line, m.emit)

		if got := m.total(); math.Abs(got-c.area) > 0.02 {
			t.Errorf("cap %d: total coverage %.4f, want %.4f", c.cap, got, c.area)
		}
		for x := 2; x < 8; x++ {
			for _, y := range []int{4, 5} {
				if got := m.at(x, y); math.Abs(got-1) > 1e-6 {
					t.Errorf("cap %d: pixel (%d, %d) has coverage %.4f", c.cap, x, y, got)
				}
			}
		}
	}
}

func TestStrokeClosed(t *testing.T) {
	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	r.Width = 2
	m := newCoverageMap(10, 10)
	r.Stroke(rectangle(2, 2, 8, 8), m.emit)

	// The outline of a 6×6 square with miter joins covers an 8×8 square
	// without its 4×4 interior.
	if got := m.total(); math.Abs(got-48) > 1e-4 {
		t.Errorf("total coverage %.4f, want 48", got)
	}
	if got := m.at(5, 5); got != 0 {
		t.Errorf("interior pixel has coverage %.4f", got)
	}
}

func TestStrokeDot(t *testing.T) {
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5})

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	r.Width = 4
	r.Flatness = 0.001
	m := newCoverageMap(10, 10)
	r.Stroke(dot, m.emit)
	if got := m.total(); got != 0 {
		t.Errorf("butt cap dot has coverage %.4f", got)
	}

	r.Cap = graphics.LineCapRound
	r.Stroke(dot, m.emit)
	if got := m.total(); math.Abs(got-4*math.Pi) > 0.05 {
		t.Errorf("round dot has coverage %.4f, want %.4f", got, 4*math.Pi)
	}
}

func TestFlattenCubic(t *testing.T) {
	r := NewRasterizer(rect.Rect{})
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 10, Y: 0})
	r.flatten(p)

	if len(r.polys) != 1 || r.polys[0].closed {
		t.Fatalf("unexpected polylines %v", r.polys)
	}
	pts := r.pts[r.polys[0].start:r.polys[0].end]
	if len(pts) < 10 {
		t.Errorf("only %d points", len(pts))
	}
	if pts[len(pts)-1] != (vec.Vec2{X: 10, Y: 0}) {
		t.Errorf("curve ends at %v", pts[len(pts)-1])
	}
	// The apex of the curve is at y = 7.5.
	var yMax float64
	for _, p := range pts {
		yMax = max(yMax, p.Y)
	}
	if math.Abs(yMax-7.5) > r.Flatness {
		t.Errorf("apex at %.4f", yMax)
	}
}
