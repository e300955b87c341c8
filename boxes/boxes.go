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

// Package boxes implements the box model used by the math layout
// engine.  A box occupies a rectangular area of known size, split by
// the baseline into a height above and a depth below.  Composite
// boxes are assembled bottom-up; a parent adjusts the position of its
// children only through their Shift value.
package boxes

import (
	"seehuhn.de/go/mathtex/font"
)

// Box represents marks on the output within a rectangular area of
// known size.
type Box interface {
	// Extent returns the dimensions of the box.  The returned value
	// is owned by the box; the immediate parent may set the Shift
	// field during composition.
	Extent() *BoxExtent

	// Draw paints the box using p, with the left end of the baseline
	// placed at (xPos, yPos).  The y axis points up.
	Draw(p Painter, xPos, yPos float64)
}

// BoxExtent gives the dimensions of a Box.
//
// Shift displaces the box relative to its parent's reference point:
// in a horizontal row a positive shift moves the box down, in a
// vertical stack it moves the box right.
type BoxExtent struct {
	Width, Height, Depth float64
	Shift                float64
}

// Extent implements the Box interface.
func (obj *BoxExtent) Extent() *BoxExtent {
	return obj
}

// VLen returns the total vertical extent of the box.
func (obj *BoxExtent) VLen() float64 {
	return obj.Height + obj.Depth
}

// A StrutBox is empty space of fixed dimensions.
type StrutBox struct {
	BoxExtent
}

// Strut returns a new strut box.
func Strut(width, height, depth float64) *StrutBox {
	return &StrutBox{
		BoxExtent: BoxExtent{Width: width, Height: height, Depth: depth},
	}
}

// EmptyStrut returns a strut with zero dimensions.
func EmptyStrut() *StrutBox {
	return &StrutBox{}
}

// Draw implements the Box interface.
func (obj *StrutBox) Draw(p Painter, xPos, yPos float64) {}

// A RuleBox is a solidly filled rectangular region.
type RuleBox struct {
	BoxExtent
}

// Rule returns a new rule box.
func Rule(width, height, depth float64) *RuleBox {
	return &RuleBox{
		BoxExtent: BoxExtent{Width: width, Height: height, Depth: depth},
	}
}

// Draw implements the Box interface.
func (obj *RuleBox) Draw(p Painter, xPos, yPos float64) {
	if obj.Width > 0 && obj.Height+obj.Depth > 0 {
		p.Rule(xPos, yPos-obj.Depth, obj.Width, obj.Height+obj.Depth)
	}
}

// A GlyphBox is a single glyph from the math font.
type GlyphBox struct {
	BoxExtent

	Char font.Char

	// Size is the font size the glyph is rendered at, in device
	// units per em.
	Size float64
}

// Glyph returns a box for the glyph c at the given font size.
func Glyph(c font.Char, size float64) *GlyphBox {
	return &GlyphBox{
		BoxExtent: BoxExtent{
			Width:  c.Width * size,
			Height: c.Height * size,
			Depth:  c.Depth * size,
		},
		Char: c,
		Size: size,
	}
}

// Draw implements the Box interface.
func (obj *GlyphBox) Draw(p Painter, xPos, yPos float64) {
	p.Glyph(obj.Char, obj.Size, xPos, yPos)
}

// IsSpace reports whether box contains no visible marks.
func IsSpace(box Box) bool {
	switch b := box.(type) {
	case *StrutBox:
		return true
	case *HBox:
		for _, c := range b.Contents {
			if !IsSpace(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

type walker interface {
	Walk(func(Box))
}

// Walk calls fn for every box in the tree rooted at box.
func Walk(box Box, fn func(Box)) {
	fn(box)
	if w, ok := box.(walker); ok {
		w.Walk(func(child Box) {
			Walk(child, fn)
		})
	}
}

type replacer interface {
	replaceFirst(old, repl Box) bool
}

// ReplaceFirst replaces the first occurrence of old in the tree
// rooted at root with repl.  It reports whether a replacement took
// place.  Box extents along the path are not recomputed.
func ReplaceFirst(root Box, old, repl Box) bool {
	if r, ok := root.(replacer); ok {
		return r.replaceFirst(old, repl)
	}
	return false
}
