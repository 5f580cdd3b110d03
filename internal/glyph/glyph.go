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

// Package glyph provides glyph outlines and text metrics for the drawing
// sinks, using the Go fonts.
//
// All lengths are in units of the em size, with the y-axis pointing up and
// the origin at the start of the baseline.
package glyph

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/smith"
)

// Extents is the size of a string, in em units.
type Extents struct {
	XBearing, YBearing float64
	Width, Height      float64
	XAdvance           float64
}

// Scale returns the extents for the given font size.
func (e Extents) Scale(size float64) smith.TextExtents {
	return smith.TextExtents{
		XBearing: e.XBearing * size,
		YBearing: e.YBearing * size,
		Width:    e.Width * size,
		Height:   e.Height * size,
		XAdvance: e.XAdvance * size,
	}
}

// Face is a font face with metrics and outlines.
// A Face is not safe for concurrent use.
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	upem float64
	ppem fixed.Int26_6 // one pixel per font unit
}

type key struct {
	mono   bool
	bold   bool
	italic bool
}

var (
	parsedMu sync.Mutex
	parsed   = map[key]*sfnt.Font{}
)

// Lookup returns a face for f.  Families containing "mono" or "courier"
// map to Go Mono, all others to the proportional Go font.
func Lookup(f smith.Font) (*Face, error) {
	family := strings.ToLower(f.Family)
	k := key{
		mono:   strings.Contains(family, "mono") || strings.Contains(family, "courier"),
		bold:   f.Weight == smith.WeightBold,
		italic: f.Slant == smith.SlantItalic,
	}

	parsedMu.Lock()
	defer parsedMu.Unlock()

	sf, ok := parsed[k]
	if !ok {
		var err error
		sf, err = opentype.Parse(k.data())
		if err != nil {
			return nil, fmt.Errorf("glyph: parsing font for %q: %w", f.Family, err)
		}
		parsed[k] = sf
	}

	upem := sf.UnitsPerEm()
	return &Face{
		font: sf,
		upem: float64(upem),
		ppem: fixed.Int26_6(upem) << 6,
	}, nil
}

func (k key) data() []byte {
	switch {
	case k.mono && k.bold && k.italic:
		return gomonobolditalic.TTF
	case k.mono && k.bold:
		return gomonobold.TTF
	case k.mono && k.italic:
		return gomonoitalic.TTF
	case k.mono:
		return gomono.TTF
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

func (f *Face) toEm(x fixed.Int26_6) float64 {
	return float64(x) / 64 / f.upem
}

// layout calls fn for every rune of s, with the glyph index and the pen
// position in em units.  It returns the total advance.
func (f *Face) layout(s string, fn func(idx sfnt.GlyphIndex, x float64)) float64 {
	x := 0.0
	var prev sfnt.GlyphIndex
	first := true
	for _, r := range s {
		idx, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			idx = 0
		}
		if !first {
			if k, err := f.font.Kern(&f.buf, prev, idx, f.ppem, font.HintingNone); err == nil {
				x += f.toEm(k)
			}
		}
		fn(idx, x)
		if adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone); err == nil {
			x += f.toEm(adv)
		}
		prev = idx
		first = false
	}
	return x
}

// Extents measures s.  Strings without ink have zero bounding box.
func (f *Face) Extents(s string) Extents {
	var xMin, xMax, yMin, yMax float64
	ink := false
	adv := f.layout(s, func(idx sfnt.GlyphIndex, x float64) {
		b, _, err := f.font.GlyphBounds(&f.buf, idx, f.ppem, font.HintingNone)
		if err != nil || b.Empty() {
			return
		}
		// bounds have the y-axis pointing down
		gx0 := x + f.toEm(b.Min.X)
		gx1 := x + f.toEm(b.Max.X)
		gy0 := -f.toEm(b.Max.Y)
		gy1 := -f.toEm(b.Min.Y)
		if !ink {
			xMin, xMax, yMin, yMax = gx0, gx1, gy0, gy1
			ink = true
			return
		}
		xMin = min(xMin, gx0)
		xMax = max(xMax, gx1)
		yMin = min(yMin, gy0)
		yMax = max(yMax, gy1)
	})
	if !ink {
		return Extents{XAdvance: adv}
	}
	return Extents{
		XBearing: xMin,
		YBearing: yMin,
		Width:    xMax - xMin,
		Height:   yMax - yMin,
		XAdvance: adv,
	}
}

// Outline appends the glyph outlines of s to p.  Each point q of the
// outlines is mapped to tr(q) first.
func (f *Face) Outline(p *path.Data, s string, tr func(vec.Vec2) vec.Vec2) {
	f.layout(s, func(idx sfnt.GlyphIndex, x float64) {
		segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
		if err != nil {
			return
		}
		pt := func(q fixed.Point26_6) vec.Vec2 {
			return tr(vec.Vec2{X: x + f.toEm(q.X), Y: -f.toEm(q.Y)})
		}
		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.Close()
				}
				p.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
			}
		}
		if open {
			p.Close()
		}
	})
}
