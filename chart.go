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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Compose draws a chart into s.  The chart is centred at center and the
// chart, including the rings if these are shown, has the given radius.  Both
// are given in the user space of s, which is assumed to have the y-axis
// pointing down, as for images and windows.  If opt is nil, [DefaultOptions]
// are used.
//
// The graphics state of s is restored before Compose returns.  The returned
// Frame places data in the coordinate system of the chart.
func Compose(s Sink, center vec.Vec2, radius float64, opt *Options) (Frame, error) {
	if s == nil {
		return Frame{}, newArgumentError("Compose", "sink", "is nil")
	}
	if !isFinite(center.X) || !isFinite(center.Y) {
		return Frame{}, newArgumentError("Compose", "center", "not finite")
	}
	if !isFinite(radius) || radius <= 0 {
		return Frame{}, newArgumentError("Compose", "radius",
			fmt.Sprintf("%g is not a positive number", radius))
	}

	var o Options
	if opt != nil {
		o = *opt
	} else {
		o = DefaultOptions()
	}

	if o.ShowRings {
		radius /= outerBoundary / unitRadius
	}

	s.Save()
	s.Transform(matrix.Translate(center.X, center.Y))
	s.Transform(matrix.Scale(radius, -radius))
	s.SelectFont(Font{Family: o.labelFont()})
	s.SetFontSize(labelFontSize)

	admittance := StandardRegions
	if o.SparseAdmittance {
		admittance = SparseRegions
	}

	// The admittance grid goes first, so that the impedance grid is on
	// top.
	if o.ShowAdmittance {
		s.Save()
		s.SetColor(o.AdmittanceGrid)
		s.Transform(matrix.Rotate(math.Pi))
		drawImmittanceGrid(s, admittance)
		s.Restore()
	}
	if o.ShowImpedance {
		s.Save()
		s.SetColor(o.ImpedanceGrid)
		drawImmittanceGrid(s, StandardRegions)
		s.Restore()
	}

	if o.ShowImpedance {
		drawImpedanceText(s, &o)
	}
	if o.ShowAdmittance {
		drawAdmittanceText(s, &o)
	}

	if o.ShowRings {
		s.SetColor(o.Ring)
		drawWavelengthRing(s, &o)
		drawAngleRing(s)
	}

	m := s.Matrix()
	s.Restore()

	Logger().Debug("chart composed",
		"center", center,
		"radius", radius,
		"impedance", o.ShowImpedance,
		"admittance", o.ShowAdmittance,
		"rings", o.ShowRings)

	return Frame{m: m, opt: o}, nil
}

// Frame is the coordinate system of a composed chart.  Its methods draw
// data given in the reflection coefficient plane on top of the chart.
//
// A Frame is an immutable value and can be shared between goroutines.  The
// sinks passed to its methods cannot.
type Frame struct {
	m   matrix.Matrix
	opt Options
}

// Matrix returns the transformation from the reflection coefficient plane
// to the user space of the sink passed to [Compose].
func (f Frame) Matrix() matrix.Matrix {
	return f.m
}

// Options returns a copy of the options the chart was composed with.
func (f Frame) Options() Options {
	return f.opt
}

// Line draws a straight line from a to b.
func (f Frame) Line(s Sink, a, b UV) error {
	return f.Polyline(s, []UV{a, b})
}

// Polyline draws straight lines through the given points.  At least two
// points are required.
func (f Frame) Polyline(s Sink, pts []UV) error {
	if err := f.check(s, "Polyline"); err != nil {
		return err
	}
	if err := checkPoints("Polyline", pts); err != nil {
		return err
	}

	f.begin(s)
	s.MoveTo(pts[0].Vec())
	for _, p := range pts[1:] {
		s.LineTo(p.Vec())
	}
	s.Stroke()
	s.Restore()
	return nil
}

// Curve draws a smooth curve through the given points, using the segments
// computed by [FitCurve].
func (f Frame) Curve(s Sink, pts []UV) error {
	if err := f.check(s, "Curve"); err != nil {
		return err
	}
	segs, err := FitCurve(pts)
	if err != nil {
		return err
	}

	f.begin(s)
	s.MoveTo(segs[0].P0.Vec())
	for _, c := range segs {
		s.CurveTo(c.P1.Vec(), c.P2.Vec(), c.P3.Vec())
	}
	s.Stroke()
	s.Restore()
	return nil
}

// Point draws a filled dot at p.
func (f Frame) Point(s Sink, p UV) error {
	if err := f.check(s, "Point"); err != nil {
		return err
	}
	if !p.isFinite() {
		return newArgumentError("Point", "p", "not finite")
	}

	f.begin(s)
	s.SetLineWidth(0)
	s.Arc(p.Vec(), pct(f.opt.PointWidth), 0, 2*math.Pi, Positive)
	s.Fill()
	s.Restore()
	return nil
}

// Annotate writes text next to the point p, on a cleared background.  For
// [JustifyLeft] the text is to the right of the point, for [JustifyRight]
// to the left.  [JustifyCenter] centres the text below the point.
func (f Frame) Annotate(s Sink, text string, p UV, j Justification) error {
	if err := f.check(s, "Annotate"); err != nil {
		return err
	}
	if !p.isFinite() {
		return newArgumentError("Annotate", "p", "not finite")
	}

	size := f.opt.annotationFontSize()

	s.Save()
	s.SetMatrix(f.m)
	s.SetLineWidth(0)
	s.SetColor(f.opt.Annotation)
	s.SelectFont(Font{Family: f.opt.annotationFont()})
	s.SetFontSize(size)

	y := p.V - size*0.3
	switch j {
	case JustifyLeft:
		leftClearText(s, text, p.U+size*0.5, y)
	case JustifyRight:
		rightClearText(s, text, p.U-size*0.5, y)
	default:
		centerText(s, text, p.U, y-size)
	}
	s.Restore()
	return nil
}

func (f Frame) check(s Sink, op string) error {
	if s == nil {
		return newArgumentError(op, "sink", "is nil")
	}
	if f.m == (matrix.Matrix{}) {
		return newArgumentError(op, "frame", "not created by Compose")
	}
	return nil
}

// begin installs the chart coordinates and the line style on s.  The caller
// must restore the graphics state.
func (f Frame) begin(s Sink) {
	s.Save()
	s.SetMatrix(f.m)
	s.SetLineWidth(pct(f.opt.LineWidth))
	s.SetColor(f.opt.Line)
	s.NewPath()
}

func checkPoints(op string, pts []UV) error {
	if len(pts) < 2 {
		return newArgumentError(op, "pts",
			fmt.Sprintf("need at least 2 points, got %d", len(pts)))
	}
	for i, p := range pts {
		if !p.isFinite() {
			return newArgumentError(op, "pts",
				fmt.Sprintf("point %d is not finite", i))
		}
	}
	return nil
}
