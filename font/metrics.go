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

package font

// Constants holds the math layout constants of a font, in em units.
// The fields correspond to entries of the OpenType MATH table.
type Constants struct {
	// AxisHeight is the height of the math centerline above the
	// baseline.  Large symbols and stretched delimiters are centered
	// on this axis.
	AxisHeight float64

	// XHeight is the height of lowercase letters without ascenders.
	XHeight float64

	// Quad is the width of an em space.
	Quad float64

	// Rule thicknesses.
	DefaultRuleThickness  float64
	FractionRuleThickness float64
	OverbarRuleThickness  float64

	// Script placement.
	SuperscriptShiftUp        float64
	SuperscriptShiftUpCramped float64
	SubscriptShiftDown        float64
	SuperscriptBottomMin      float64
	SubscriptTopMax           float64
	SubSuperscriptGapMin      float64
	ScriptSpace               float64

	// Limit placement for big operators.
	UpperLimitGapMin float64
	LowerLimitGapMin float64

	// Font size factors for script and scriptscript styles,
	// relative to the surrounding style.
	ScriptScale       float64
	ScriptScriptScale float64

	// LineSpace is the gap inserted between stacked rows when
	// interline spacing is requested.
	LineSpace float64
}

// Metrics gives the layout engine access to the metrics of a math
// font.  Implementations must be deterministic: repeated calls with
// the same arguments return the same values.
//
// Implementations are not required to be safe for concurrent
// mutation; the layout engine only reads.
type Metrics interface {
	// Constants returns the math constants of the font.
	Constants() Constants

	// Char looks up a glyph by symbol name, for example "lparen" or
	// "hat".  The second return value is false if the font does not
	// define the symbol.
	Char(name string) (Char, bool)

	// CharOf looks up the glyph for a Unicode code point.
	CharOf(r rune) (Char, bool)

	// Variants returns the family of increasingly wide horizontal
	// variants of a glyph, narrowest first.  The base glyph itself is
	// the first element.  Used for wide accents.
	Variants(c Char) []Char

	// VerticalVariants returns the family of increasingly tall
	// vertical variants of a glyph, shortest first.  The base glyph
	// itself is the first element.  Used for stretchy delimiters.
	VerticalVariants(c Char) []Char
}
