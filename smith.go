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

// Package smith computes the geometry of a Smith chart.
//
// Normalized impedances and admittances are mapped to the reflection
// coefficient plane ("gamma space"), where the chart's resistance and
// reactance circles, the numeric labels and the two outer rings are laid
// out.  The package does not rasterise anything itself: all output goes to
// a [Sink], which receives PostScript-style path and text operations.
// The sub-packages canvas, pdfcanvas and record provide sinks for images,
// PDF pages and tests.
//
// A chart is drawn with [Compose].  The returned [Frame] places lines,
// curves, points and annotations in the same coordinate space as the grid.
package smith

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// RX is a normalized impedance R + jX, or a normalized admittance G + jB.
type RX struct {
	R, X float64
}

// UV is a point in the reflection coefficient plane.
// Passive loads map to the closed unit disc.
type UV struct {
	U, V float64
}

// Vec returns the point as a vector in chart coordinates.
func (uv UV) Vec() vec.Vec2 {
	return vec.Vec2{X: uv.U, Y: uv.V}
}

func toUV(v vec.Vec2) UV {
	return UV{U: v.X, V: v.Y}
}

func (uv UV) isFinite() bool {
	return isFinite(uv.U) && isFinite(uv.V)
}

// Chart geometry in units of the grid radius.
const (
	unitRadius = 1.0

	labelFontSize = unitRadius / 55.0

	strokeWidthThin  = unitRadius / 2000
	strokeWidthMinor = unitRadius / 1500
	strokeWidthMajor = unitRadius / 500

	waveRingRadius  = 1.115 * unitRadius
	angleRingRadius = 1.038 * unitRadius

	// outerBoundary is the radius of the circle enclosing both rings.
	outerBoundary = waveRingRadius + (waveRingRadius-angleRingRadius)/2

	// labelFont is the face used for all grid and ring labels.
	labelFont = "Nimbus Sans"
)

// degree converts angles in degrees to radians.
const degree = math.Pi / 180

// pct converts a percentage of the grid radius to chart units.
func pct(x float64) float64 {
	return unitRadius / 100 * x
}

// RXtoUV maps a normalized impedance to the reflection coefficient
// Γ = (Z-1)/(Z+1).
//
// The point R = -1, X = 0 has no image; for this input, and for non-finite
// input, an error wrapping [ErrInvalidArgument] is returned.
func RXtoUV(rx RX) (UV, error) {
	if !isFinite(rx.R) || !isFinite(rx.X) {
		return UV{}, newArgumentError("RXtoUV", "rx", "not finite")
	}
	if zPlus1MagSqu(rx) == 0 {
		return UV{}, newArgumentError("RXtoUV", "rx", "R = -1, X = 0 has no reflection coefficient")
	}
	uv := rxToUV(rx)
	if !uv.isFinite() {
		return UV{}, newArgumentError("RXtoUV", "rx", "reflection coefficient overflows")
	}
	return uv, nil
}

// zPlus1MagSqu returns |Z+1|², i.e. (R+1 + jX)(R+1 - jX).
func zPlus1MagSqu(rx RX) float64 {
	return rx.R*rx.R + rx.X*rx.X + rx.R*2 + 1
}

// rxToUV is the unchecked form of RXtoUV, used where the arguments come
// from the chart's own tables.
func rxToUV(rx RX) UV {
	// Multiplying numerator and denominator of (R-1 + jX)/(R+1 + jX) by
	// the conjugate of the denominator makes the denominator real.
	d := zPlus1MagSqu(rx)
	return UV{
		U: (rx.R*rx.R + rx.X*rx.X - 1) / d,
		V: rx.X * 2 / d,
	}
}

// AngleOfResistanceArc returns the angle, seen from the centre of the
// R = rx.R circle, of the point rx.
// The centre of the circle is at U = R/(R+1), V = 0.
//
// R = -1 has no resistance circle; for this input, and for non-finite
// input, an error wrapping [ErrInvalidArgument] is returned.
func AngleOfResistanceArc(rx RX) (float64, error) {
	if !isFinite(rx.R) || !isFinite(rx.X) {
		return 0, newArgumentError("AngleOfResistanceArc", "rx", "not finite")
	}
	if rx.R == -1 {
		return 0, newArgumentError("AngleOfResistanceArc", "rx", "R = -1 has no resistance circle")
	}
	phi := angleOfResistanceArc(rx)
	if !isFinite(phi) {
		return 0, newArgumentError("AngleOfResistanceArc", "rx", "angle is undefined")
	}
	return phi, nil
}

func angleOfResistanceArc(rx RX) float64 {
	uv := rxToUV(rx)
	return math.Atan2(uv.V, uv.U-rx.R/(rx.R+1))
}

// AngleOfReactanceArc returns the angle, seen from the centre of the
// X = rx.X circle, of the point rx.
// The centre of the circle is at U = 1, V = 1/X.
//
// X = 0 has no reactance circle; for this input, and for non-finite
// input, an error wrapping [ErrInvalidArgument] is returned.
func AngleOfReactanceArc(rx RX) (float64, error) {
	if !isFinite(rx.R) || !isFinite(rx.X) {
		return 0, newArgumentError("AngleOfReactanceArc", "rx", "not finite")
	}
	if rx.X == 0 {
		return 0, newArgumentError("AngleOfReactanceArc", "rx", "X = 0 has no reactance circle")
	}
	phi := angleOfReactanceArc(rx)
	if !isFinite(phi) {
		return 0, newArgumentError("AngleOfReactanceArc", "rx", "angle is undefined")
	}
	return phi, nil
}

func angleOfReactanceArc(rx RX) float64 {
	uv := rxToUV(rx)
	return math.Atan2(uv.V-1/rx.X, uv.U-1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
