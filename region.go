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
	"slices"
)

// Region is one band of a grid density table.  Within the band, grid lines
// are MinorStep apart and every MinorPerMajor-th line is drawn bold.
type Region struct {
	Boundary      float64
	MinorStep     float64
	MinorPerMajor int
}

// Special values for [Region.MinorPerMajor].
const (
	// RegionEnd terminates a table.  The Boundary of this entry is the
	// outer boundary of the last band.
	RegionEnd = -1

	// RegionSpecial marks a band which is drawn from a fixed list of arcs
	// instead of by the general sweep.
	RegionSpecial = 0
)

// RegionSet selects one of the grid density tables.
type RegionSet int

const (
	// StandardRegions is the density of the classic impedance chart.
	StandardRegions RegionSet = iota

	// SparseRegions thins out the grid, for an admittance grid drawn on
	// top of an impedance grid.
	SparseRegions
)

func (s RegionSet) String() string {
	switch s {
	case StandardRegions:
		return "standard"
	case SparseRegions:
		return "sparse"
	default:
		return fmt.Sprintf("RegionSet(%d)", int(s))
	}
}

var standardRegions = []Region{
	{0, 0.01, 5}, {0.2, 0.02, 5}, {0.5, 0.05, 2}, {1, 0.1, 2},
	{2, 0.2, 5}, {5, 1, 5}, {10, 2, 5}, {20, 10, 5},
	{50, 0, RegionEnd},
}

// The special band of the sparse table reproduces the layout near the
// G = 20 circle on printed combined charts.
var sparseRegions = []Region{
	{0, 0.1, 5}, {1, 0.2, 5}, {2, 0.5, 2},
	{4, 1, 6}, {10, 5, 2}, {20, 30, RegionSpecial},
	{50, 0, RegionEnd},
}

// Regions returns a copy of the density table, including the terminating
// [RegionEnd] entry.
func (s RegionSet) Regions() []Region {
	return slices.Clone(s.table())
}

func (s RegionSet) table() []Region {
	if s == SparseRegions {
		return sparseRegions
	}
	return standardRegions
}

// Label is one entry of the table of grid labels.
type Label struct {
	Value float64
	Text  string
}

var labels = []Label{
	{0, "0"}, {0.1, "0.1"}, {0.2, "0.2"}, {0.3, "0.3"}, {0.4, "0.4"},
	{0.5, "0.5"}, {0.6, "0.6"}, {0.7, "0.7"}, {0.8, "0.8"}, {0.9, "0.9"},
	{1.0, "1.0"}, {1.2, "1.2"}, {1.4, "1.4"}, {1.6, "1.6"}, {1.8, "1.8"},
	{2.0, "2.0"}, {3.0, "3.0"}, {4.0, "4.0"}, {5.0, "5.0"},
	{10, "10"}, {20, "20"}, {50, "50"},
}

// Labels returns a copy of the values which label the grid circles.
func Labels() []Label {
	return slices.Clone(labels)
}
