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

package env

// Unit is a length unit understood by the layout engine.
type Unit int8

// Supported units.  UnitNone marks an unset dimension.
const (
	UnitNone  Unit = iota
	UnitEm         // current font size
	UnitEx         // x-height of the current font
	UnitMu         // math unit, 1/18 em
	UnitPoint      // 1/72 inch
	UnitPixel      // device unit
)

// Dimen is a length with a unit.  The zero value is "unset".
type Dimen struct {
	Val  float64
	Unit Unit
}

// Em returns a length in em units.
func Em(v float64) Dimen { return Dimen{Val: v, Unit: UnitEm} }

// Ex returns a length in x-height units.
func Ex(v float64) Dimen { return Dimen{Val: v, Unit: UnitEx} }

// Mu returns a length in math units.
func Mu(v float64) Dimen { return Dimen{Val: v, Unit: UnitMu} }

// Pt returns a length in points.
func Pt(v float64) Dimen { return Dimen{Val: v, Unit: UnitPoint} }

// Px returns a length in device units.
func Px(v float64) Dimen { return Dimen{Val: v, Unit: UnitPixel} }

// IsValid reports whether the dimension has been set.
func (d Dimen) IsValid() bool {
	return d.Unit != UnitNone
}

// In converts the dimension to device units in the given environment.
// Unset dimensions convert to 0.
func (d Dimen) In(e *Env) float64 {
	switch d.Unit {
	case UnitEm:
		return d.Val * e.Scale()
	case UnitEx:
		return d.Val * e.XHeight() * e.Scale()
	case UnitMu:
		return d.Val / 18 * e.Constants().Quad * e.Scale()
	case UnitPoint:
		return d.Val * e.pixelsPerPoint
	case UnitPixel:
		return d.Val
	default:
		return 0
	}
}
