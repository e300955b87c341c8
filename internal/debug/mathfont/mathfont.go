// seehuhn.de/go/mathtex - a library for typesetting mathematical formulas
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

// Package mathfont provides a deterministic in-memory math font for
// unit tests.
//
// The font defines a small set of glyphs with simple metric values,
// so expected layout results can be computed by hand:
//
//   - lowercase letters: width 0.5, height 0.45 (the x-height)
//   - digits: width 0.5, height 0.65
//   - "M": width 0.9, height 0.7
//   - "x": like a lowercase letter, but with a top accent attachment
//     point at 0.3
//   - "lparen", "rparen", "vert": height 0.75, depth 0.25, with
//     vertical variants scaled by 1.5, 2.25 and 3
//   - "hat": an accent of width 0.4 and height 0.65, with horizontal
//     variants of widths 0.8, 1.2 and 1.6
//   - "sum": a big operator, width 1.0
//   - "longdivision": the long division bracket
//   - "plus", "minus", "eq": binary operators and a relation
//
// All other math constants are listed in the Constants function
// below.
package mathfont

import (
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/mathtex/font"
)

// Font is a deterministic font.Metrics implementation for tests.
type Font struct {
	byName map[string]font.Char
	byRune map[rune]font.Char

	horizontal map[string][]font.Char
	vertical   map[string][]font.Char
}

// New creates the test font.
func New() *Font {
	f := &Font{
		byName:     make(map[string]font.Char),
		byRune:     make(map[rune]font.Char),
		horizontal: make(map[string][]font.Char),
		vertical:   make(map[string][]font.Char),
	}

	gid := glyph.ID(1)
	add := func(name string, r rune, w, h, d, topAccent float64) font.Char {
		c := font.Char{
			Name:      name,
			Rune:      r,
			GID:       gid,
			Width:     w,
			Height:    h,
			Depth:     d,
			TopAccent: topAccent,
		}
		gid++
		if name != "" {
			f.byName[name] = c
		}
		if r != 0 {
			f.byRune[r] = c
		}
		return c
	}

	for r := 'a'; r <= 'z'; r++ {
		if r == 'x' {
			add(string(r), r, 0.5, 0.45, 0, 0.3)
			continue
		}
		add(string(r), r, 0.5, 0.45, 0, font.Undefined)
	}
	for r := '0'; r <= '9'; r++ {
		add(string(r), r, 0.5, 0.65, 0, font.Undefined)
	}
	add("M", 'M', 0.9, 0.7, 0, font.Undefined)

	for _, d := range []struct {
		name string
		r    rune
	}{
		{"lparen", '('},
		{"rparen", ')'},
		{"vert", '|'},
	} {
		c := add(d.name, d.r, 0.35, 0.75, 0.25, font.Undefined)
		variants := []font.Char{c}
		for _, q := range []float64{1.5, 2.25, 3} {
			v := add(d.name+".v", 0, c.Width, c.Height*q, c.Depth*q, font.Undefined)
			variants = append(variants, v)
		}
		f.vertical[d.name] = variants
	}

	hat := add("hat", 0, 0.4, 0.65, 0, 0.2)
	hats := []font.Char{hat}
	for _, w := range []float64{0.8, 1.2, 1.6} {
		v := add("hat.h", 0, w, 0.65, 0, w/2)
		hats = append(hats, v)
	}
	f.horizontal["hat"] = hats

	add("sum", 0, 1.0, 0.6, 0.1, font.Undefined)
	add("longdivision", 0, 0.5, 0.8, 0.2, font.Undefined)
	add("plus", '+', 0.7, 0.55, 0.05, font.Undefined)
	add("minus", '-', 0.7, 0.35, 0, font.Undefined)
	add("eq", '=', 0.7, 0.4, 0, font.Undefined)

	return f
}

// Constants implements the font.Metrics interface.
func (f *Font) Constants() font.Constants {
	return font.Constants{
		AxisHeight: 0.25,
		XHeight:    0.45,
		Quad:       1.0,

		DefaultRuleThickness:  0.04,
		FractionRuleThickness: 0.04,
		OverbarRuleThickness:  0.04,

		SuperscriptShiftUp:        0.36,
		SuperscriptShiftUpCramped: 0.28,
		SubscriptShiftDown:        0.21,
		SuperscriptBottomMin:      0.13,
		SubscriptTopMax:           0.35,
		SubSuperscriptGapMin:      0.15,
		ScriptSpace:               0.05,

		UpperLimitGapMin: 0.1,
		LowerLimitGapMin: 0.1,

		ScriptScale:       0.7,
		ScriptScriptScale: 0.5,

		LineSpace: 0.2,
	}
}

// Char implements the font.Metrics interface.
func (f *Font) Char(name string) (font.Char, bool) {
	c, ok := f.byName[name]
	return c, ok
}

// CharOf implements the font.Metrics interface.
func (f *Font) CharOf(r rune) (font.Char, bool) {
	c, ok := f.byRune[r]
	return c, ok
}

// Variants implements the font.Metrics interface.
func (f *Font) Variants(c font.Char) []font.Char {
	if v, ok := f.horizontal[c.Name]; ok {
		return v
	}
	return []font.Char{c}
}

// VerticalVariants implements the font.Metrics interface.
func (f *Font) VerticalVariants(c font.Char) []font.Char {
	if v, ok := f.vertical[c.Name]; ok {
		return v
	}
	return []font.Char{c}
}
