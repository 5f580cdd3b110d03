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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Justification selects which end of a string is placed at the reference
// point.
type Justification int

const (
	JustifyLeft   Justification = iota // text starts at the reference point
	JustifyRight                       // text ends at the reference point
	JustifyCenter                      // text is centred on the reference point
)

// TextPlacement describes where a grid label goes.
//
// The text frame is obtained by moving the origin to Origin and then
// rotating by Angle.  Within this frame the baseline of the text starts
// (left), ends (right) or is centred (center) at At.  Left and right
// justified text is drawn on a cleared background.
type TextPlacement struct {
	Text    string
	Origin  UV
	Angle   float64
	At      UV
	Justify Justification
}

// GridLabels returns the placement of the numeric labels of an impedance
// grid.  The labels of an admittance grid are the same, rotated by π.
//
// Every value of the label table, except 0, is placed on the two halves of
// the unit circle and on the horizontal axis.  The values 0.2, 0.4, ...,
// 1.0 are repeated along the X = ±1 and R = 1 circles.
func GridLabels() []TextPlacement {
	m := labelFontSize / 4

	var res []TextPlacement
	for _, l := range labels[1:] {
		uv := rxToUV(RX{R: 0, X: l.Value})
		res = append(res, TextPlacement{
			Text:    l.Text,
			Angle:   math.Atan2(uv.V, uv.U),
			At:      UV{unitRadius - m, m},
			Justify: JustifyRight,
		})

		uv = rxToUV(RX{R: 0, X: -l.Value})
		res = append(res, TextPlacement{
			Text:    l.Text,
			Angle:   math.Atan2(uv.V, uv.U) + math.Pi,
			At:      UV{-unitRadius + m, m},
			Justify: JustifyLeft,
		})

		uv = rxToUV(RX{R: l.Value, X: 0})
		res = append(res, TextPlacement{
			Text:    l.Text,
			Angle:   math.Pi / 2,
			At:      UV{m, -uv.U*unitRadius + m},
			Justify: JustifyLeft,
		})
	}

	for i := 2; i <= 10; i += 2 {
		l := labels[i]

		// R on X = +1, upper half
		rx := RX{R: l.Value, X: 1}
		res = append(res, TextPlacement{
			Text:    l.Text,
			Origin:  rxToUV(rx),
			Angle:   angleOfReactanceArc(rx) + math.Pi,
			At:      UV{m, m},
			Justify: JustifyLeft,
		})

		// R on X = -1, lower half
		rx = RX{R: l.Value, X: -1}
		res = append(res, TextPlacement{
			Text:    l.Text,
			Origin:  rxToUV(rx),
			Angle:   angleOfReactanceArc(rx),
			At:      UV{-m, m},
			Justify: JustifyRight,
		})

		// +X on R = 1
		rx = RX{R: 1, X: l.Value}
		res = append(res, TextPlacement{
			Text:    l.Text,
			Origin:  rxToUV(rx),
			Angle:   angleOfResistanceArc(rx),
			At:      UV{-m, m},
			Justify: JustifyRight,
		})

		// -X on R = 1
		rx = RX{R: 1, X: -l.Value}
		res = append(res, TextPlacement{
			Text:    l.Text,
			Origin:  rxToUV(rx),
			Angle:   angleOfResistanceArc(rx) + math.Pi,
			At:      UV{m, m},
			Justify: JustifyLeft,
		})
	}
	return res
}

func (p TextPlacement) draw(s Sink) {
	s.Save()
	if p.Origin != (UV{}) {
		s.Transform(matrix.Translate(p.Origin.U*unitRadius, p.Origin.V*unitRadius))
	}
	s.Transform(matrix.Rotate(p.Angle))
	switch p.Justify {
	case JustifyLeft:
		leftClearText(s, p.Text, p.At.U, p.At.V)
	case JustifyRight:
		rightClearText(s, p.Text, p.At.U, p.At.V)
	default:
		centerText(s, p.Text, p.At.U, p.At.V)
	}
	s.Restore()
}

func drawLabels(s Sink, opt *Options) {
	s.SelectFont(Font{Family: opt.labelFont()})
	s.SetFontSize(labelFontSize)
	for _, p := range GridLabels() {
		p.draw(s)
	}
}

// drawImpedanceText draws the labels and titles of the impedance grid.
func drawImpedanceText(s Sink, opt *Options) {
	s.Save()
	s.SetColor(opt.ImpedanceText)
	s.SetLineWidth(0)

	if opt.ShowLabels {
		drawLabels(s, opt)
	}

	if opt.ShowTitles {
		vpos := -(labelFontSize + pct(0.8))
		if opt.ShowAdmittance {
			vpos -= labelFontSize + pct(0.4)
		}

		curvedText(s, "INDUCTIVE REACTANCE COMPONENT (+jX/Zo)", pct(94), 141.7*degree)
		curvedText(s, "CAPACITIVE REACTANCE COMPONENT (-jX/Zo)", pct(94), -141.7*degree)
		leftClearText(s, "RESISTANCE COMPONENT (R/Zo)", pct(-32.5), vpos)
	}
	s.Restore()
}

// drawAdmittanceText draws the labels and titles of the admittance grid.
// When the impedance grid is shown too, the titles move out of the way of
// the impedance titles.
func drawAdmittanceText(s Sink, opt *Options) {
	s.Save()
	s.Transform(matrix.Rotate(math.Pi))
	s.SetColor(opt.AdmittanceText)
	s.SetLineWidth(0)

	if opt.ShowLabels {
		drawLabels(s, opt)
	}

	if opt.ShowTitles {
		angle := 141.7
		vpos := pct(0.8)
		s.Transform(matrix.Rotate(-math.Pi))

		if opt.ShowImpedance {
			angle -= 27
			vpos += labelFontSize + pct(0.4)
		}

		curvedText(s, "CAPACITIVE SUSCEPTANCE COMPONENT (+jB/Yo)", pct(94), angle*degree)
		curvedText(s, "INDUCTIVE SUSCEPTANCE COMPONENT (-jB/Yo)", pct(94), -angle*degree)
		leftClearText(s, "CONDUCTANCE COMPONENT (G/Yo)", pct(-32.5), vpos+pct(0.8))
	}
	s.Restore()
}

// leftClearText draws text starting at (x, y) on a cleared background.
func leftClearText(s Sink, text string, x, y float64) {
	e := s.TextExtents(text)

	s.Save()
	s.NewPath()
	rectangle(s, x, y, e.Width+e.XBearing, e.Height+e.YBearing)
	s.Erase()
	s.Restore()

	s.ShowText(text, vec.Vec2{X: x, Y: y})
}

// rightClearText draws text ending at (x, y) on a cleared background.
func rightClearText(s Sink, text string, x, y float64) {
	e := s.TextExtents(text)

	s.Save()
	s.NewPath()
	rectangle(s, x-(e.Width+e.XBearing), y, e.Width+e.XBearing, e.Height+e.YBearing)
	s.Erase()
	s.Restore()

	s.ShowText(text, vec.Vec2{X: x - e.XAdvance, Y: y})
}

// centerText draws text centred at (x, y).  The background is not cleared.
func centerText(s Sink, text string, x, y float64) {
	e := s.TextExtents(text)
	s.ShowText(text, vec.Vec2{X: x - e.XAdvance/2, Y: y})
}

func rectangle(s Sink, x, y, w, h float64) {
	s.MoveTo(vec.Vec2{X: x, Y: y})
	s.LineTo(vec.Vec2{X: x + w, Y: y})
	s.LineTo(vec.Vec2{X: x + w, Y: y + h})
	s.LineTo(vec.Vec2{X: x, Y: y + h})
	s.ClosePath()
}

// curvedText draws text along the outside of a circle of the given radius
// around the origin, centred on angle.  The text reads clockwise.
func curvedText(s Sink, text string, radius, angle float64) {
	e := s.TextExtents(text)
	sweep := e.XAdvance / radius
	origin := vec.Vec2{}

	s.Save()
	s.NewPath()
	s.SetLineWidth(0)

	// Clear a ring segment behind the text.  After this rotation the
	// segment starts on the positive x-axis.
	s.Transform(matrix.Rotate(angle - sweep/2))
	s.Arc(origin, radius+e.YBearing, sweep, 0, Negative)
	s.LineTo(vec.Vec2{X: radius + e.YBearing + e.Height, Y: 0})
	s.Arc(origin, radius+e.Height, 0, sweep, Positive)
	s.ClosePath()
	s.Erase()

	// Turn so that the start of the text is on the positive y-axis.
	s.Transform(matrix.Rotate(sweep - math.Pi/2))
	for _, r := range text {
		ch := string(r)
		adv := s.TextExtents(ch).XAdvance
		s.Transform(matrix.Rotate(-adv / 2 / radius))
		s.ShowText(ch, vec.Vec2{X: -adv / 2, Y: radius})
		s.Transform(matrix.Rotate(-adv / 2 / radius))
	}
	s.Restore()
}
