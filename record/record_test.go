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

package record

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

func TestTextExtents(t *testing.T) {
	r := New()
	r.SetFontSize(10)

	if e := r.TextExtents(""); e != (smith.TextExtents{}) {
		t.Errorf("empty string: %+v", e)
	}

	want := smith.TextExtents{
		XBearing: 0.5,
		YBearing: 0,
		Width:    17,
		Height:   7,
		XAdvance: 18,
	}
	got := r.TextExtents("±18")
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestOpsCarryState(t *testing.T) {
	r := New()
	m := matrix.Matrix{2, 0, 0, -2, 5, 5}
	r.SetMatrix(m)
	r.SetColor(smith.RGB(0, 0, 0.5))
	r.SetLineWidth(0.25)
	r.MoveTo(vec.Vec2{X: 1, Y: 2})
	r.LineTo(vec.Vec2{X: 3, Y: 4})
	r.Stroke()

	r.Save()
	r.SetColor(smith.RGB(1, 1, 1))
	r.ShowText("0.5", vec.Vec2{X: 0, Y: 0})
	r.Restore()

	kinds := []Kind{}
	for _, op := range r.Ops {
		kinds = append(kinds, op.Kind)
	}
	if d := cmp.Diff([]Kind{KindMoveTo, KindLineTo, KindStroke, KindShowText}, kinds); d != "" {
		t.Error(d)
	}

	stroke := r.Paths(KindStroke)[0]
	if stroke.State.CTM != m || stroke.State.LineWidth != 0.25 {
		t.Errorf("unexpected state %+v", stroke.State)
	}
	if r.Ops[3].State.Color != smith.RGB(1, 1, 1) {
		t.Errorf("text colour %v", r.Ops[3].State.Color)
	}
	if d := cmp.Diff([]string{"0.5"}, r.Text()); d != "" {
		t.Error(d)
	}

	// painting clears the path
	if len(r.Path.Cmds) != 0 {
		t.Error("path not cleared by Stroke")
	}
}

func TestArcRecord(t *testing.T) {
	r := New()
	r.Arc(vec.Vec2{X: 1, Y: 0}, 2, math.Pi, 0, smith.Negative)
	ops := r.Paths(KindArc)
	if len(ops) != 1 {
		t.Fatalf("got %d arcs", len(ops))
	}
	op := ops[0]
	if op.Radius != 2 || op.Start != math.Pi || op.End != 0 || op.Dir != smith.Negative {
		t.Errorf("unexpected arc %+v", op)
	}
	if len(r.Path.Cmds) == 0 {
		t.Error("arc not added to the path")
	}
}

func TestWriteJSON(t *testing.T) {
	r := New()
	buf := &bytes.Buffer{}
	if err := r.WriteJSON(buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[\n]\n" {
		t.Errorf("empty recording: %q", buf.String())
	}

	r.MoveTo(vec.Vec2{X: 1, Y: 2})
	r.LineTo(vec.Vec2{X: 3, Y: 4})
	r.Fill()
	buf.Reset()
	if err := r.WriteJSON(buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf)
	}
	if !strings.HasPrefix(lines[1], `{"op":"moveto"`) {
		t.Errorf("unexpected line %q", lines[1])
	}

	var ops []Op
	if err := json.Unmarshal(buf.Bytes(), &ops); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(r.Ops, ops); d != "" {
		t.Error(d)
	}
}
