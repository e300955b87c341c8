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

// Package font describes the contract between the layout engine and a
// math font.  A font is represented by its metrics only; loading font
// files and drawing glyphs is left to the host application.
//
// All metrics are given in em units, i.e. as fractions of the font
// size.  The layout engine multiplies them by the current environment
// scale to obtain device units.
package font

import (
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Undefined marks a math value which the font does not provide.
// It is used for the top accent attachment point of glyphs which
// have none.
const Undefined = float64(0x7fff)

// Char is a single glyph of the math font together with its metrics.
type Char struct {
	// Name is the symbol name the glyph was looked up under, if any.
	Name string

	// Rune is the Unicode code point rendered by the glyph.
	Rune rune

	// GID identifies the glyph within the font.
	GID glyph.ID

	// Metrics in em units.
	Width  float64
	Height float64
	Depth  float64

	// Italic is the italic correction of the glyph.
	Italic float64

	// TopAccent is the horizontal position accents are centered at,
	// measured from the left edge of the glyph.  The value is
	// Undefined if the font does not provide an attachment point.
	TopAccent float64
}

// HasTopAccent reports whether the font provides a top accent
// attachment point for the glyph.
func (c Char) HasTopAccent() bool {
	return c.TopAccent != Undefined
}

// VLen returns the total vertical extent of the glyph.
func (c Char) VLen() float64 {
	return c.Height + c.Depth
}

// CharFromFUnits converts raw metrics in font design units to a Char.
// The topAccent value funit.Int16(0x7fff) is mapped to Undefined.
func CharFromFUnits(name string, r rune, gid glyph.ID, unitsPerEm uint16, width, height, depth, italic, topAccent funit.Int16) Char {
	q := 1 / float64(unitsPerEm)
	c := Char{
		Name:      name,
		Rune:      r,
		GID:       gid,
		Width:     float64(width) * q,
		Height:    float64(height) * q,
		Depth:     float64(depth) * q,
		Italic:    float64(italic) * q,
		TopAccent: Undefined,
	}
	if float64(topAccent) != Undefined {
		c.TopAccent = float64(topAccent) * q
	}
	return c
}
