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

package boxes

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/mathtex/font"
)

// Painter is the drawing surface a box tree is rendered onto.
// Implementations are provided by the host application, for example a
// PDF content stream writer or a raster canvas.
//
// The coordinate system has the y axis pointing up, matching the box
// geometry.  All lengths are in device units.
type Painter interface {
	// Save pushes the current graphics state (color, transformation)
	// onto a stack.
	Save()

	// Restore pops the graphics state pushed by the matching Save.
	Restore()

	// Transform prepends m to the current transformation matrix.
	Transform(m matrix.Matrix)

	// SetColor sets the color used for glyphs, rules and lines.
	SetColor(c color.Color)

	// Glyph draws a single glyph at the given font size, with the
	// glyph origin placed at (x, y) on the baseline.
	Glyph(g font.Char, size, x, y float64)

	// Rule fills the rectangle with lower-left corner (x, y).
	Rule(x, y, w, h float64)

	// Line strokes a straight line segment of the given thickness.
	Line(x1, y1, x2, y2, thickness float64)
}
