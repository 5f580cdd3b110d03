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

package pdfcanvas

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/smith"
)

// fakePage logs the content stream operators in PDF notation.
type fakePage struct {
	ops []string
}

func (p *fakePage) SetFillColor(color.Color)   { p.ops = append(p.ops, "fill colour") }
func (p *fakePage) SetStrokeColor(color.Color) { p.ops = append(p.ops, "stroke colour") }
func (p *fakePage) SetLineWidth(w float64)     { p.ops = append(p.ops, fmt.Sprintf("%g w", w)) }
func (p *fakePage) SetLineCap(c graphics.LineCapStyle) {
	p.ops = append(p.ops, fmt.Sprintf("%d J", c))
}
func (p *fakePage) SetLineJoin(j graphics.LineJoinStyle) {
	p.ops = append(p.ops, fmt.Sprintf("%d j", j))
}
func (p *fakePage) MoveTo(x, y float64) { p.ops = append(p.ops, fmt.Sprintf("%g %g m", x, y)) }
func (p *fakePage) LineTo(x, y float64) { p.ops = append(p.ops, fmt.Sprintf("%g %g l", x, y)) }
func (p *fakePage) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ops = append(p.ops, "c")
}
func (p *fakePage) ClosePath() { p.ops = append(p.ops, "h") }
func (p *fakePage) Fill()      { p.ops = append(p.ops, "f") }
func (p *fakePage) Stroke()    { p.ops = append(p.ops, "S") }

func TestStroke(t *testing.T) {
	page := &fakePage{}
	c := New(page)
	if d := cmp.Diff([]string{"0 J", "0 j"}, page.ops); d != "" {
		t.Error(d)
	}
	page.ops = nil

	c.Transform(matrix.Matrix{2, 0, 0, 2, 0, 0})
	c.SetLineWidth(0.5)
	c.MoveTo(vec.Vec2{X: 1, Y: 2})
	c.LineTo(vec.Vec2{X: 3, Y: 2})
	c.Stroke()

	want := []string{"stroke colour", "1 w", "2 4 m", "6 4 l", "S"}
	if d := cmp.Diff(want, page.ops); d != "" {
		t.Error(d)
	}

	// zero width lines are not drawn
	page.ops = nil
	c.SetLineWidth(0)
	c.MoveTo(vec.Vec2{X: 1, Y: 2})
	c.LineTo(vec.Vec2{X: 3, Y: 2})
	c.Stroke()
	if len(page.ops) != 0 {
		t.Errorf("unexpected output %q", page.ops)
	}
	if len(c.Path.Cmds) != 0 {
		t.Error("path not cleared")
	}
}

func TestFillEraseArc(t *testing.T) {
	page := &fakePage{}
	c := New(page)
	page.ops = nil

	c.Arc(vec.Vec2{X: 10, Y: 10}, 5, 0, 6.2831853, smith.Positive)
	c.Erase()
	if page.ops[0] != "fill colour" || !strings.HasSuffix(page.ops[1], " m") {
		t.Errorf("unexpected start %q", page.ops[:2])
	}
	if !slices.Contains(page.ops, "c") || page.ops[len(page.ops)-1] != "f" {
		t.Errorf("unexpected output %q", page.ops)
	}

	page.ops = nil
	c.Fill()
	if len(page.ops) != 0 {
		t.Errorf("empty path produced %q", page.ops)
	}
}

func TestText(t *testing.T) {
	page := &fakePage{}
	c := New(page)
	c.SetFontSize(12)
	page.ops = nil

	if e := c.TextExtents("10"); !(e.XAdvance > 0) {
		t.Errorf("unexpected extents %+v", e)
	}
	c.ShowText("10", vec.Vec2{X: 5, Y: 5})
	if len(page.ops) == 0 || page.ops[len(page.ops)-1] != "f" {
		t.Errorf("text not filled: %q", page.ops)
	}
}

func TestCreate(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.pdf")
	c, err := Create(fileName, 200, 100)
	if err != nil {
		t.Fatal(err)
	}
	c.SetColor(smith.RGB(0, 0, 0.5))
	c.MoveTo(vec.Vec2{X: 10, Y: 10})
	c.LineTo(vec.Vec2{X: 190, Y: 90})
	c.Stroke()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("not a PDF file")
	}
}
