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

import "fmt"

// Options selects what a chart shows and how it looks.
// The zero value draws nothing; start from [DefaultOptions] or a [Form].
type Options struct {
	ShowImpedance  bool // resistance / reactance grid
	ShowAdmittance bool // conductance / susceptance grid
	ShowLabels     bool // numeric labels on the grid
	ShowTitles     bool // descriptive strings along the edge
	ShowRings      bool // wavelength and angle rings

	// SparseAdmittance selects the sparse density table for the
	// admittance grid.  This is meant for charts which show both grids.
	SparseAdmittance bool

	// LineWidth and PointWidth are percentages of the grid radius.
	LineWidth  float64
	PointWidth float64

	ImpedanceGrid  Color
	AdmittanceGrid Color
	ImpedanceText  Color
	AdmittanceText Color
	Ring           Color
	Line           Color // lines, curves and points
	Annotation     Color

	// LabelFont is the font family for grid and ring labels.
	// If empty, a sans serif default is used.
	LabelFont string

	// AnnotationFont is the font family for annotations.
	// If empty, LabelFont is used.
	AnnotationFont string

	// AnnotationFontSize is a percentage of the grid radius.
	// Zero selects twice the label size.
	AnnotationFontSize float64
}

// DefaultOptions returns the options for an impedance chart with labels,
// titles and rings.
func DefaultOptions() Options {
	return Options{
		ShowImpedance:    true,
		ShowLabels:       true,
		ShowTitles:       true,
		ShowRings:        true,
		SparseAdmittance: true,

		LineWidth:  0.25,
		PointWidth: 0.6,

		ImpedanceGrid:  RGB(0.7, 0, 0),
		AdmittanceGrid: RGB(0, 0.5, 0.5),
		ImpedanceText:  RGB(0.5, 0, 0),
		AdmittanceText: RGB(0, 0.5, 0.5),
		Ring:           RGB(0, 0, 0),
		Line:           RGB(0, 0, 0.5),
		Annotation:     RGB(0, 0.5, 0),

		LabelFont: labelFont,
	}
}

func (o *Options) labelFont() string {
	if o.LabelFont != "" {
		return o.LabelFont
	}
	return labelFont
}

func (o *Options) annotationFont() string {
	if o.AnnotationFont != "" {
		return o.AnnotationFont
	}
	return o.labelFont()
}

func (o *Options) annotationFontSize() float64 {
	if o.AnnotationFontSize != 0 {
		return o.AnnotationFontSize / 100 * unitRadius
	}
	return 2 * labelFontSize
}

// Form names one of the classic printed chart layouts.
type Form string

// The supported forms.
const (
	FormZ  Form = "z"  // impedance chart
	FormY  Form = "y"  // admittance chart
	FormZY Form = "zy" // combined chart with a sparse admittance grid
)

// Forms lists the supported forms.
func Forms() []Form {
	return []Form{FormZ, FormY, FormZY}
}

// Options returns the chart options for the form.
func (f Form) Options() (Options, error) {
	opt := DefaultOptions()
	switch f {
	case FormZ:
	case FormY:
		opt.ShowImpedance = false
		opt.ShowAdmittance = true
		opt.SparseAdmittance = false
	case FormZY:
		opt.ShowAdmittance = true
	default:
		return Options{}, fmt.Errorf("smith: unknown form %q: %w", string(f), ErrInvalidArgument)
	}
	return opt, nil
}
