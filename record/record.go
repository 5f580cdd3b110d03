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

// Package record implements a [smith.Sink] which records the drawing
// operations instead of rendering them.
//
// Text is measured with fixed-pitch metrics, so that recordings do not
// depend on the fonts installed on a system.
package record

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
	"seehuhn.de/go/smith/internal/device"
)

// Metrics of the fixed-pitch font, in units of the font size.
const (
	Advance = 0.6
	Ascent  = 0.7
	Bearing = 0.05
)

// Kind identifies a recorded operation.
type Kind string

// These are the recorded operations.  Changes of the graphics state are not
// recorded separately; every operation carries a copy of the state in
// effect when it was issued.
const (
	KindMoveTo    Kind = "moveto"
	KindLineTo    Kind = "lineto"
	KindCurveTo   Kind = "curveto"
	KindArc       Kind = "arc"
	KindClosePath Kind = "closepath"
	KindNewPath   Kind = "newpath"
	KindStroke    Kind = "stroke"
	KindFill      Kind = "fill"
	KindErase     Kind = "erase"
	KindShowText  Kind = "show"
)

// Op is a recorded operation.
// Points are in user space; State.CTM maps them to device space.
type Op struct {
	Kind   Kind       `json:"op"`
	Points []vec.Vec2 `json:"pts,omitempty"`

	Radius float64         `json:"r,omitempty"`
	Start  float64         `json:"start,omitempty"`
	End    float64         `json:"end,omitempty"`
	Dir    smith.Direction `json:"dir,omitempty"`

	Text string `json:"text,omitempty"`

	State State `json:"state"`
}

// State is the graphics state in effect for an operation.
type State struct {
	CTM       matrix.Matrix `json:"ctm"`
	Color     smith.Color   `json:"color"`
	LineWidth float64       `json:"width"`
	Font      smith.Font    `json:"font"`
	FontSize  float64       `json:"size"`
}

// Recorder is a [smith.Sink] which appends all operations to Ops.
type Recorder struct {
	device.Device

	Ops []Op
}

var _ smith.Sink = (*Recorder)(nil)

// New returns an empty Recorder with identity transformation.
func New() *Recorder {
	r := &Recorder{}
	r.Device.Reset()
	return r
}

func (r *Recorder) add(op Op) {
	op.State = State{
		CTM:       r.CTM,
		Color:     r.Color,
		LineWidth: r.LineWidth,
		Font:      r.Font,
		FontSize:  r.FontSize,
	}
	r.Ops = append(r.Ops, op)
}

// NewPath implements the [smith.Sink] interface.
func (r *Recorder) NewPath() {
	r.Device.NewPath()
	r.add(Op{Kind: KindNewPath})
}

// MoveTo implements the [smith.Sink] interface.
func (r *Recorder) MoveTo(p vec.Vec2) {
	r.Device.MoveTo(p)
	r.add(Op{Kind: KindMoveTo, Points: []vec.Vec2{p}})
}

// LineTo implements the [smith.Sink] interface.
func (r *Recorder) LineTo(p vec.Vec2) {
	r.Device.LineTo(p)
	r.add(Op{Kind: KindLineTo, Points: []vec.Vec2{p}})
}

// CurveTo implements the [smith.Sink] interface.
func (r *Recorder) CurveTo(c1, c2, p vec.Vec2) {
	r.Device.CurveTo(c1, c2, p)
	r.add(Op{Kind: KindCurveTo, Points: []vec.Vec2{c1, c2, p}})
}

// Arc implements the [smith.Sink] interface.
func (r *Recorder) Arc(center vec.Vec2, radius, start, end float64, dir smith.Direction) {
	r.Device.Arc(center, radius, start, end, dir)
	r.add(Op{
		Kind:   KindArc,
		Points: []vec.Vec2{center},
		Radius: radius,
		Start:  start,
		End:    end,
		Dir:    dir,
	})
}

// ClosePath implements the [smith.Sink] interface.
func (r *Recorder) ClosePath() {
	r.Device.ClosePath()
	r.add(Op{Kind: KindClosePath})
}

// Stroke implements the [smith.Sink] interface.
func (r *Recorder) Stroke() {
	r.add(Op{Kind: KindStroke})
	r.Device.NewPath()
}

// Fill implements the [smith.Sink] interface.
func (r *Recorder) Fill() {
	r.add(Op{Kind: KindFill})
	r.Device.NewPath()
}

// Erase implements the [smith.Sink] interface.
func (r *Recorder) Erase() {
	r.add(Op{Kind: KindErase})
	r.Device.NewPath()
}

// ShowText implements the [smith.Sink] interface.
func (r *Recorder) ShowText(s string, p vec.Vec2) {
	r.add(Op{Kind: KindShowText, Points: []vec.Vec2{p}, Text: s})
}

// TextExtents implements the [smith.TextMetrics] interface.
// Every rune advances by [Advance] times the font size.  The ink of a
// string starts [Bearing] after the origin and ends the same distance
// before the advance, and reaches from the baseline to [Ascent].
func (r *Recorder) TextExtents(s string) smith.TextExtents {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return smith.TextExtents{}
	}
	size := r.FontSize
	adv := float64(n) * Advance * size
	return smith.TextExtents{
		XBearing: Bearing * size,
		YBearing: 0,
		Width:    adv - 2*Bearing*size,
		Height:   Ascent * size,
		XAdvance: adv,
	}
}

// Paths returns the operations of the given kind.
func (r *Recorder) Paths(kind Kind) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}

// Text returns all strings drawn by ShowText, in order.
func (r *Recorder) Text() []string {
	var res []string
	for _, op := range r.Ops {
		if op.Kind == KindShowText {
			res = append(res, op.Text)
		}
	}
	return res
}

// WriteJSON writes the recorded operations as a JSON array, one operation
// per line.
func (r *Recorder) WriteJSON(w io.Writer) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, op := range r.Ops {
		buf, err := json.Marshal(op)
		if err != nil {
			return err
		}
		if i < len(r.Ops)-1 {
			buf = append(buf, ',')
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
