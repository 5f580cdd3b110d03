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
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// FindRadialDistance returns the distance from the point (-unit, 0) to the
// circle of radius ring around the origin, measured along the ray which
// leaves (-unit, 0) at the given angle (in degrees) to the positive
// horizontal axis.  The angle must be in (0°, 180°) and ring must be larger
// than unit; otherwise an error wrapping [ErrInvalidArgument] is returned.
//
// The ticks of the transmission coefficient scale are placed at these
// distances.
func FindRadialDistance(deg, unit, ring float64) (float64, error) {
	if !isFinite(deg) || !isFinite(unit) || !isFinite(ring) {
		return 0, newArgumentError("FindRadialDistance", "deg, unit, ring", "not finite")
	}
	if deg <= 0 || deg >= 180 {
		return 0, newArgumentError("FindRadialDistance", "deg",
			fmt.Sprintf("%g is outside (0, 180)", deg))
	}
	if unit <= 0 || ring <= unit {
		return 0, newArgumentError("FindRadialDistance", "ring",
			"the ring must be larger than the unit circle")
	}
	return findRadialDistance(deg, unit, ring), nil
}

func findRadialDistance(deg, unit, ring float64) float64 {
	theta := deg * degree
	// angle at the origin, by the law of sines
	inner := math.Asin(math.Sin(theta) * unit / ring)
	return math.Sin(math.Pi-theta-inner) * ring / math.Sin(theta)
}

// drawWavelengthRing draws the outer ring, which is graduated in
// wavelengths toward the generator and toward the load.
func drawWavelengthRing(s Sink, opt *Options) {
	const ticks = 250
	step := math.Pi / 125
	origin := vec.Vec2{}

	s.Save()
	s.SetLineWidth(strokeWidthMinor)
	s.SelectFont(Font{Family: opt.labelFont()})
	s.SetFontSize(labelFontSize)

	s.NewPath()
	s.Arc(origin, waveRingRadius, 0, 2*math.Pi, Positive)
	s.Stroke()

	for i := 1; i <= ticks; i++ {
		s.Save()
		s.Transform(matrix.Rotate(float64(i) * step))
		s.MoveTo(vec.Vec2{X: -(waveRingRadius + pct(0.8)), Y: 0})
		s.LineTo(vec.Vec2{X: -(waveRingRadius + pct(0.8) - pct(1.6)), Y: 0})
		s.Stroke()
		s.Restore()

		if i%5 != 0 || i <= 16 {
			continue
		}

		w := float64(i) / 500
		if i == ticks {
			w = 0
		}
		label := strconv.FormatFloat(w, 'f', 2, 64)

		// toward the generator, inside the ring
		s.Save()
		s.Transform(matrix.Rotate(float64(i) * step))
		s.Transform(matrix.Translate(-(waveRingRadius - pct(1.25) - labelFontSize), 0))
		s.Transform(matrix.Rotate(math.Pi / 2))
		centerText(s, label, 0, 0)
		s.Restore()

		// toward the load, outside the ring
		s.Save()
		s.Transform(matrix.Rotate(-float64(i) * step))
		s.Transform(matrix.Translate(-(waveRingRadius + pct(1.5)), 0))
		s.Transform(matrix.Rotate(math.Pi / 2))
		centerText(s, label, 0, 0)
		s.Restore()
	}

	curvedText(s, "WAVELENGTHS TOWARD GENERATOR", waveRingRadius+pct(1.25), 165.6*degree)
	curvedText(s, "WAVELENGTHS TOWARD LOAD", waveRingRadius-pct(3), -165.5*degree)

	drawCurvedArrow(s, waveRingRadius+pct(2), 178.2*degree, 174.9*degree)
	drawCurvedArrow(s, waveRingRadius+pct(2), 156.3*degree, 153.0*degree)

	drawCurvedArrow(s, waveRingRadius-pct(2.1), -176.8*degree, -173.6*degree)
	drawCurvedArrow(s, waveRingRadius-pct(2.1), -157.5*degree, -154.2*degree)

	s.NewPath()
	s.SetLineWidth(strokeWidthMinor)
	s.Arc(origin, outerBoundary, 0, 2*math.Pi, Positive)
	s.Stroke()
	s.Restore()
}

// drawCurvedArrow draws an arc around the origin with an arrow head at the
// stop angle.
func drawCurvedArrow(s Sink, radius, start, stop float64) {
	cw := start > stop
	dir := Positive
	if cw {
		dir = Negative
	}

	s.Save()
	s.NewPath()
	s.SetLineWidth(pct(0.2))
	s.Arc(vec.Vec2{}, radius, start, stop, dir)
	s.Stroke()

	s.Transform(matrix.Rotate(stop))
	s.SetLineWidth(0)
	s.NewPath()
	sign := -1.0
	if cw {
		sign = 1
	}
	p := vec.Vec2{X: radius, Y: 0}
	s.MoveTo(p)
	p = p.Add(vec.Vec2{X: pct(0.7), Y: sign * pct(2)})
	s.LineTo(p)
	p = p.Add(vec.Vec2{X: pct(-0.7), Y: -sign * pct(0.8)})
	s.LineTo(p)
	p = p.Add(vec.Vec2{X: pct(-0.7), Y: sign * pct(0.8)})
	s.LineTo(p)
	s.ClosePath()
	s.Fill()
	s.Restore()
}

// printNormalToRadial centres text across the ray at angle, at the given
// distance from the origin.
func printNormalToRadial(s Sink, angle, dist float64, text string) {
	s.Save()
	s.Transform(matrix.Rotate(angle))
	s.Transform(matrix.Translate(dist, 0))
	s.Transform(matrix.Rotate(-math.Pi / 2))
	centerText(s, text, 0, 0)
	s.Restore()
}

// drawAngleRing draws the ring of reflection coefficient angles, together
// with the scale of transmission coefficient angles along the radius to
// the left.
func drawAngleRing(s Sink) {
	origin := vec.Vec2{}

	s.Save()
	s.SetLineWidth(strokeWidthMinor)

	s.NewPath()
	s.Arc(origin, angleRingRadius, 0, 2*math.Pi, Positive)
	s.Arc(origin, angleRingRadius+pct(3.5), 0, 2*math.Pi, Positive)
	s.Stroke()

	s.Save()
	for deg := 0; deg <= 178; deg += 2 {
		s.MoveTo(vec.Vec2{X: -angleRingRadius, Y: 0})
		s.LineTo(vec.Vec2{X: -angleRingRadius - pct(1.5), Y: 0})
		s.Stroke()
		s.MoveTo(vec.Vec2{X: angleRingRadius, Y: 0})
		s.LineTo(vec.Vec2{X: angleRingRadius + pct(1.5), Y: 0})
		s.Stroke()
		s.Transform(matrix.RotateDeg(2))
	}
	s.Restore()

	for deg := 20; deg <= 170; deg += 10 {
		printNormalToRadial(s, float64(deg)*degree, angleRingRadius+pct(1), strconv.Itoa(deg))
		printNormalToRadial(s, float64(-deg)*degree, angleRingRadius+pct(1), strconv.Itoa(-deg))
	}
	printNormalToRadial(s, 180*degree, angleRingRadius+pct(1), "±180")

	s.Save()
	s.Transform(matrix.Translate(-unitRadius, 0))
	for deg := 90; deg >= 1; deg-- {
		fdeg := float64(deg)
		d := findRadialDistance(fdeg, unitRadius, angleRingRadius)
		labelled := deg >= 10 && deg%5 == 0

		tick := pct(2)
		if deg <= 55 {
			tick = pct(1.5)
		}

		s.Save()
		s.Transform(matrix.RotateDeg(fdeg))
		s.MoveTo(vec.Vec2{X: d, Y: 0})
		s.LineTo(vec.Vec2{X: d - tick, Y: 0})
		s.Stroke()
		if labelled {
			label := strconv.Itoa(deg)
			dy := fdeg / 90
			if deg <= 45 {
				dy = 0.33
			}
			x := d - pct(0.85) - s.TextExtents(label).XAdvance - labelFontSize*fdeg/90
			s.ShowText(label, vec.Vec2{X: x, Y: -labelFontSize * dy})
		}
		s.Restore()

		s.Save()
		s.Transform(matrix.Rotate(math.Pi - fdeg*degree))
		s.MoveTo(vec.Vec2{X: -d, Y: 0})
		s.LineTo(vec.Vec2{X: -d + tick, Y: 0})
		s.Stroke()
		if labelled {
			dx := labelFontSize / 2
			if deg < 45 {
				dx = labelFontSize / 3
			}
			dy := fdeg / 90
			if deg <= 45 {
				dy = 0.5
			}
			s.ShowText(strconv.Itoa(-deg), vec.Vec2{X: -d + dx, Y: -labelFontSize * dy})
		}
		s.Restore()
	}
	s.Restore()

	s.Restore()

	curvedText(s, "ANGLE OF REFLECTION COEFFICIENT IN DEGREES", angleRingRadius+pct(1), 0)
	curvedText(s, "ANGLE OF TRANSMISSION COEFFICIENT IN DEGREES", angleRingRadius-pct(2.7), 0)
}
