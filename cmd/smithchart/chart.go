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

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

// exampleCurve is a measured reflection coefficient, in the reflection
// coefficient plane.
var exampleCurve = []smith.UV{
	{U: -0.3000, V: 0.4000},
	{U: -0.2273, V: 0.4479},
	{U: -0.1545, V: 0.4826},
	{U: -0.0818, V: 0.5041},
	{U: -0.0091, V: 0.5124},
	{U: 0.0636, V: 0.5074},
	{U: 0.1364, V: 0.4893},
	{U: 0.2091, V: 0.4579},
	{U: 0.2818, V: 0.4132},
	{U: 0.3545, V: 0.3554},
	{U: 0.4273, V: 0.2843},
	{U: 0.5000, V: 0.2000},
}

// exampleMarker is the impedance which is marked and annotated.
var exampleMarker = smith.RX{R: 0.9, X: 1.1}

const exampleLabel = "70.25 MHz"

// sizeFraction is the part of the image which is covered by the chart.
const sizeFraction = 0.98

// chartFlags are the command line flags which select the chart layout.
type chartFlags struct {
	size            int
	form            string
	noLabels        bool
	noTitles        bool
	noRings         bool
	denseAdmittance bool
	curve           string
}

func (f *chartFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.size, "size", 800, "image width and height, in pixels or PDF points")
	fs.StringVar(&f.form, "form", string(smith.FormZ), "chart form: z, y or zy")
	fs.BoolVar(&f.noLabels, "no-labels", false, "omit the numeric grid labels")
	fs.BoolVar(&f.noTitles, "no-titles", false, "omit the titles along the edge")
	fs.BoolVar(&f.noRings, "no-rings", false, "omit the wavelength and angle rings")
	fs.BoolVar(&f.denseAdmittance, "dense-admittance", false, "draw the admittance grid at full density")
	fs.StringVar(&f.curve, "curve", "bezier", "example curve: bezier, lines or none")
}

// options converts the flags into chart options.
func (f *chartFlags) options() (smith.Options, error) {
	if f.size <= 0 {
		return smith.Options{}, fmt.Errorf("invalid size %d", f.size)
	}
	switch f.curve {
	case "bezier", "lines", "none":
	default:
		return smith.Options{}, fmt.Errorf("invalid curve style %q (must be bezier, lines or none)", f.curve)
	}

	opt, err := smith.Form(f.form).Options()
	if err != nil {
		return smith.Options{}, err
	}
	if f.noLabels {
		opt.ShowLabels = false
	}
	if f.noTitles {
		opt.ShowTitles = false
	}
	if f.noRings {
		opt.ShowRings = false
	}
	if f.denseAdmittance {
		opt.SparseAdmittance = false
	}
	return opt, nil
}

// drawExample draws a chart filling a square of the given size, together
// with the example curve, the marker and its label.
func drawExample(s smith.Sink, size float64, opt *smith.Options, curve string) error {
	center := vec.Vec2{X: size / 2, Y: size / 2}
	frame, err := smith.Compose(s, center, size/2*sizeFraction, opt)
	if err != nil {
		return err
	}

	switch curve {
	case "bezier":
		err = frame.Curve(s, exampleCurve)
	case "lines":
		err = frame.Polyline(s, exampleCurve)
	}
	if err != nil {
		return err
	}

	uv, err := smith.RXtoUV(exampleMarker)
	if err != nil {
		return err
	}
	if err := frame.Point(s, uv); err != nil {
		return err
	}
	return frame.Annotate(s, exampleLabel, uv, smith.JustifyLeft)
}
