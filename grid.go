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

	"seehuhn.de/go/geom/vec"
)

// GridKind tells whether a grid line is a circle of constant resistance or
// of constant reactance.
type GridKind int

const (
	// Resistance marks a circle of constant resistance (or conductance).
	Resistance GridKind = iota

	// Reactance marks a circle of constant reactance (or susceptance).
	Reactance
)

func (k GridKind) String() string {
	if k == Reactance {
		return "reactance"
	}
	return "resistance"
}

// GridLine is one arc of an immittance grid.
type GridLine struct {
	Kind  GridKind
	Value float64 // resistance or reactance of the circle
	Arc   Arc
	Major bool // drawn with the heavy stroke
}

// GridLines returns the arcs of an impedance grid with the given density,
// in drawing order.  An admittance grid uses the same arcs, rotated by π.
//
// Apart from the arcs, a grid consists of the horizontal axis, the unit
// circle and a dot at the centre.
func GridLines(set RegionSet) []GridLine {
	lines := gridSweep(set)
	return append(lines, closingArcs(set)...)
}

// gridSweep walks the density table band by band.
func gridSweep(set RegionSet) []GridLine {
	zones := set.table()

	var lines []GridLine
	for i := 0; zones[i].MinorPerMajor != RegionEnd; i++ {
		step := zones[i].MinorStep
		perMajor := zones[i].MinorPerMajor

		if perMajor == RegionSpecial {
			lines = append(lines, specialBand()...)
			continue
		}

		inner := zones[i].Boundary
		outer := zones[i+1].Boundary

		// the band away from the horizontal axis
		lines = sweepBlock(lines, RX{R: 0, X: inner}, RX{R: outer, X: outer}, step, perMajor)

		// the band around the horizontal axis
		if i == 7 {
			// Printed charts have a bold line every third line between
			// R = 20 and R = 50.  This does not follow from the table.
			perMajor = 3
		}
		lines = sweepBlock(lines, RX{R: inner, X: 0}, RX{R: outer, X: inner}, step, perMajor)
	}
	return lines
}

// sweepBlock appends the arcs for the block from rx0 to rx1, together with
// its mirror image below the horizontal axis.  Every perMajor-th arc,
// counted from the inner edge of the block, is major.
func sweepBlock(lines []GridLine, rx0, rx1 RX, step float64, perMajor int) []GridLine {
	ticks := 1
	for r := rx0.R + step; r <= rx1.R+step/2; r += step {
		major := ticks%perMajor == 0
		lines = append(lines,
			GridLine{Resistance, r, resistanceArc(r, rx1.X, rx0.X), major},
			GridLine{Resistance, r, resistanceArc(r, -rx0.X, -rx1.X), major})
		ticks++
	}

	ticks = 1
	for x := rx0.X + step; x <= rx1.X+step/2; x += step {
		major := ticks%perMajor == 0
		lines = append(lines,
			GridLine{Reactance, x, reactanceArc(x, rx0.R, rx1.R), major},
			GridLine{Reactance, -x, reactanceArc(-x, rx1.R, rx0.R), major})
		ticks++
	}
	return lines
}

// specialBand returns the hand placed arcs of the sparse table between 20
// and 50.
func specialBand() []GridLine {
	return []GridLine{
		{Resistance, 20, resistanceArc(20, 50, 20), true},
		{Resistance, 20, resistanceArc(20, -20, -50), true},
		{Reactance, 20, reactanceArc(20, 20, 50), true},
		{Reactance, -20, reactanceArc(-20, 50, 20), true},
	}
}

// closingArcs returns the arcs which complete the drawing near the
// right-hand pole.  None of them is produced by the sweep.
func closingArcs(set RegionSet) []GridLine {
	lines := []GridLine{
		{Resistance, 50, resistanceArc(50, 10000, 0), true},
		{Resistance, 50, resistanceArc(50, 0, -10000), true},
		{Reactance, 50, reactanceArc(50, 0, 10000), true},
		{Reactance, -50, reactanceArc(-50, 10000, 0), true},
	}
	if set == SparseRegions {
		lines = append(lines,
			GridLine{Resistance, 10, resistanceArc(10, 10, 0), true},
			GridLine{Resistance, 10, resistanceArc(10, 0, -10), true},
			GridLine{Reactance, 4, reactanceArc(4, 4, 10), true},
			GridLine{Reactance, -4, reactanceArc(-4, 10, 4), true})
	}
	return lines
}

// drawImmittanceGrid strokes a complete grid in the current colour.
func drawImmittanceGrid(s Sink, set RegionSet) {
	sweep := gridSweep(set)
	for _, l := range sweep {
		l.draw(s)
	}

	s.SetLineWidth(strokeWidthMajor)
	s.MoveTo(vec.Vec2{X: -unitRadius, Y: 0})
	s.LineTo(vec.Vec2{X: unitRadius, Y: 0})
	s.Stroke()
	s.Arc(vec.Vec2{}, unitRadius, 0, 2*math.Pi, Positive)
	s.Stroke()

	closing := closingArcs(set)
	for _, l := range closing {
		l.draw(s)
	}

	// The dot at the centre is cleared first, so that it looks the same
	// whatever the widths of the lines through it.
	s.NewPath()
	s.Arc(vec.Vec2{}, unitRadius/150, 0, 2*math.Pi, Positive)
	s.Erase()
	s.SetLineWidth(strokeWidthThin)
	s.Arc(vec.Vec2{}, unitRadius/150, 0, 2*math.Pi, Positive)
	s.Stroke()
	s.Arc(vec.Vec2{}, unitRadius/800, 0, 2*math.Pi, Positive)
	s.Stroke()

	Logger().Debug("grid drawn",
		"regions", set,
		"arcs", len(sweep)+len(closing))
}

func (l GridLine) draw(s Sink) {
	if l.Major {
		s.SetLineWidth(strokeWidthMajor)
	} else {
		s.SetLineWidth(strokeWidthMinor)
	}
	l.Arc.draw(s)
}
