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

package atom

import (
	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// VDelim builds a vertically stretched variant of the named delimiter
// whose total vertical extent is at least minHeight device units.
// The font's pre-built variants are tried shortest first; if none is
// tall enough, the tallest variant is scaled up.
func VDelim(name string, e *env.Env, minHeight float64) (boxes.Box, error) {
	c, ok := e.Metrics().Char(name)
	if !ok {
		return nil, &SymbolError{Name: name}
	}
	scale := e.Scale()
	variants := e.Metrics().VerticalVariants(c)
	if len(variants) == 0 {
		variants = append(variants, c)
	}
	for _, v := range variants {
		if v.VLen()*scale >= minHeight {
			return boxes.Glyph(v, scale), nil
		}
	}
	b := boxes.Glyph(variants[len(variants)-1], scale)
	if vlen := b.VLen(); vlen > 0 && vlen < minHeight {
		return boxes.Scale(b, 1, minHeight/vlen), nil
	}
	return b, nil
}

// CenterOnAxis shifts b vertically so that its center lies on the
// math axis.
func CenterOnAxis(b boxes.Box, e *env.Env) {
	ext := b.Extent()
	axis := e.AxisHeight() * e.Scale()
	ext.Shift = -(ext.VLen()/2 - ext.Height) - axis
}

// BigSymbolAtom is a delimiter rendered at a fixed enlarged size
// (\big through \Bigg), independent of the surrounding content.
type BigSymbolAtom struct {
	ordinary
	DelimName string
	Size      int // 1 = \big .. 4 = \Bigg
}

// BigSymbol returns an enlarged delimiter atom.
func BigSymbol(name string, size int) *BigSymbolAtom {
	return &BigSymbolAtom{DelimName: name, Size: size}
}

// CreateBox implements the Atom interface.
func (a *BigSymbolAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	minHeight := 0.6 * float64(a.Size+1) * e.Scale()
	b, err := VDelim(a.DelimName, e, minHeight)
	if err != nil {
		return nil, err
	}
	ext := b.Extent()
	axis := e.AxisHeight() * e.Scale()
	ext.Shift = -(ext.VLen()/2 - ext.Height) - axis
	return boxes.NewHBox(b), nil
}

// Clone implements the Atom interface.
func (a *BigSymbolAtom) Clone() Atom {
	c := *a
	return &c
}
