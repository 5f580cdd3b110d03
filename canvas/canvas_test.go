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

package canvas

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func newCanvas(w, h int) *Canvas {
	c := New(image.NewRGBA(image.Rect(0, 0, w, h)))
	c.Clear()
	return c
}

func rectangle(c *Canvas, x0, y0, x1, y1 float64) {
	c.MoveTo(vec.Vec2{X: x0, Y: y0})
	c.LineTo(vec.Vec2{X: x1, Y: y0})
	c.LineTo(vec.Vec2{X: x1, Y: y1})
	c.LineTo(vec.Vec2{X: x0, Y: y1})
	c.ClosePath()
}

func TestClear(t *testing.T) {
	c := newCanvas(4, 4)
	if got := c.Image().RGBAAt(3, 3); got != white {
		t.Errorf("got %v", got)
	}

	c.Background = color.Black
	c.Clear()
	if got := c.Image().RGBAAt(0, 0); got != black {
		t.Errorf("got %v", got)
	}
}

func TestFillErase(t *testing.T) {
	c := newCanvas(20, 20)
	c.SetColor(smith.RGB(1, 0, 0))
	rectangle(c, 5, 5, 15, 15)
	c.Fill()

	img := c.Image()
	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("inside: got %v", got)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Errorf("outside: got %v", got)
	}
	if len(c.Path.Cmds) != 0 {
		t.Error("Fill did not clear the path")
	}

	// user space coordinates go through the matrix
	c.SetMatrix(matrix.Matrix{10, 0, 0, 10, 0, 0})
	rectangle(c, 0.8, 0.8, 1.2, 1.2)
	c.Erase()
	if got := img.RGBAAt(10, 10); got != white {
		t.Errorf("erased: got %v", got)
	}
	if got := img.RGBAAt(6, 6); got != red {
		t.Errorf("outside erased area: got %v", got)
	}
}

func TestStroke(t *testing.T) {
	c := newCanvas(20, 20)
	c.SetColor(smith.RGB(0, 0, 0))
	c.Save()
	c.Transform(matrix.Matrix{2, 0, 0, 2, 0, 0})
	c.SetLineWidth(1)
	c.MoveTo(vec.Vec2{X: 1, Y: 5})
	c.LineTo(vec.Vec2{X: 9, Y: 5})
	c.Stroke()
	c.Restore()

	img := c.Image()
	for _, y := range []int{9, 10} {
		if got := img.RGBAAt(10, y); got != black {
			t.Errorf("pixel (10, %d): got %v", y, got)
		}
	}
	for _, y := range []int{5, 15} {
		if got := img.RGBAAt(10, y); got != white {
			t.Errorf("pixel (10, %d): got %v", y, got)
		}
	}
}

func TestText(t *testing.T) {
	c := newCanvas(40, 20)
	c.SetMatrix(matrix.Matrix{1, 0, 0, -1, 0, 20})
	c.SelectFont(smith.Font{Family: "Nimbus Sans"})
	c.SetFontSize(12)

	e := c.TextExtents("0.5")
	if !(e.XAdvance > 6 && e.XAdvance < 36) || !(e.Height > 0) {
		t.Errorf("unexpected extents %+v", e)
	}

	c.SetColor(smith.RGB(0, 0, 0))
	c.ShowText("0.5", vec.Vec2{X: 2, Y: 4})

	img := c.Image()
	dark := 0
	for y := range 20 {
		for x := range 40 {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text drawn")
	}
}

func TestToNRGBA(t *testing.T) {
	got := toNRGBA(smith.Color{R: 2, G: 0.5, B: -1, A: 1})
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
