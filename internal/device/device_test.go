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

package device

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// TestTransformOrder checks that a new transformation applies before the
// current one.
func TestTransformOrder(t *testing.T) {
	a := matrix.Matrix{2, 0, 0, 3, 1, -1}
	b := matrix.Matrix{0, 1, -1, 0, 5, 7}

	d := New()
	d.Transform(b)
	d.Transform(a)
	for _, p := range []vec.Vec2{{}, {X: 1, Y: 0}, {X: -2, Y: 0.5}} {
		diff(t, b.Apply(a.Apply(p)), d.CTM.Apply(p), approx)
	}

	d.SetMatrix(a)
	d.Transform(matrix.Identity)
	diff(t, a, d.Matrix())
}

func TestScale(t *testing.T) {
	diff(t, 1.0, Scale(matrix.Identity))
	diff(t, 50.0, Scale(matrix.Matrix{50, 0, 0, -50, 3, 4}), approx)
	c, s := math.Cos(1), math.Sin(1)
	diff(t, 2.0, Scale(matrix.Matrix{2 * c, 2 * s, -2 * s, 2 * c, 0, 0}), approx)
}

func TestArcSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		dir        smith.Direction
		want       float64
	}{
		{0, 2 * math.Pi, smith.Positive, 2 * math.Pi},
		{0, math.Pi / 2, smith.Positive, math.Pi / 2},
		{math.Pi / 2, 0, smith.Positive, 3 * math.Pi / 2},
		{0, math.Pi / 2, smith.Negative, -3 * math.Pi / 2},
		{math.Pi, 0, smith.Negative, -math.Pi},
		{1, 1, smith.Positive, 0},
		{0, -5 * math.Pi, smith.Positive, math.Pi},
	}
	for _, c := range cases {
		got := ArcSweep(c.start, c.end, c.dir)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ArcSweep(%g, %g, %s) = %g, want %g",
				c.start, c.end, c.dir, got, c.want)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	d := New()
	d.SetColor(smith.RGB(1, 0, 0))
	d.Save()
	d.Transform(matrix.Matrix{2, 0, 0, 2, 0, 0})
	d.SetLineWidth(3)
	d.SetColor(smith.RGB(0, 1, 0))
	d.SelectFont(smith.Font{Family: "Go Mono", Weight: smith.WeightBold})
	if d.Depth() != 1 {
		t.Errorf("depth %d", d.Depth())
	}
	diff(t, 6.0, d.DeviceLineWidth())

	d.Restore()
	if d.Depth() != 0 {
		t.Errorf("depth %d", d.Depth())
	}
	want := State{
		CTM:       matrix.Identity,
		Color:     smith.RGB(1, 0, 0),
		LineWidth: 1,
		FontSize:  10,
	}
	diff(t, want, d.State)

	// unbalanced
	d.Restore()
	diff(t, want, d.State)
}

func TestPathInDeviceSpace(t *testing.T) {
	d := New()
	d.Transform(matrix.Matrix{1, 0, 0, 1, 10, 20})
	d.Transform(matrix.Matrix{2, 0, 0, 2, 0, 0})
	d.MoveTo(vec.Vec2{X: 1, Y: 1})
	d.SetMatrix(matrix.Identity)
	d.LineTo(vec.Vec2{X: 1, Y: 1})
	d.ClosePath()

	diff(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdClose}, d.Path.Cmds)
	diff(t, []vec.Vec2{{X: 12, Y: 22}, {X: 1, Y: 1}}, d.Path.Coords)

	d.NewPath()
	if len(d.Path.Cmds) != 0 || len(d.Path.Coords) != 0 {
		t.Error("NewPath did not clear the path")
	}

	// LineTo without current point starts a new subpath
	d.LineTo(vec.Vec2{X: 3, Y: 4})
	diff(t, []path.Command{path.CmdMoveTo}, d.Path.Cmds)
}

func TestArc(t *testing.T) {
	d := New()
	d.Transform(matrix.Matrix{100, 0, 0, 100, 0, 0})
	d.Arc(vec.Vec2{X: 1, Y: 1}, 0.5, 0, 2*math.Pi, smith.Positive)

	cmds := d.Path.Cmds
	if len(cmds) < 5 || cmds[0] != path.CmdMoveTo {
		t.Fatalf("unexpected path %v", cmds)
	}
	for _, c := range cmds[1:] {
		if c != path.CmdCubeTo {
			t.Fatalf("unexpected command %v", c)
		}
	}
	coords := d.Path.Coords
	diff(t, vec.Vec2{X: 150, Y: 100}, coords[0], approx)
	diff(t, vec.Vec2{X: 150, Y: 100}, coords[len(coords)-1], approx)
	for i := 3; i < len(coords); i += 3 {
		r := coords[i].Sub(vec.Vec2{X: 100, Y: 100}).Length()
		if math.Abs(r-50) > 1e-6 {
			t.Errorf("end point %d at distance %g", i, r)
		}
	}

	// With a current point, a line joins it to the start of the arc.
	d.NewPath()
	d.MoveTo(vec.Vec2{X: 0, Y: 0})
	d.Arc(vec.Vec2{X: 0, Y: 0}, 1, math.Pi/2, 0, smith.Negative)
	if d.Path.Cmds[1] != path.CmdLineTo {
		t.Errorf("got %v", d.Path.Cmds)
	}
	diff(t, vec.Vec2{X: 0, Y: 100}, d.Path.Coords[1], approx)
	diff(t, vec.Vec2{X: 100, Y: 0}, d.Path.Coords[len(d.Path.Coords)-1], approx)
}
