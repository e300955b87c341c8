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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// CancelType selects the overlay lines a CancelAtom draws.
type CancelType int8

// The cancellation variants.
const (
	CancelSlash     CancelType = iota // lower left to upper right
	CancelBackslash                   // upper left to lower right
	CancelCross                       // both diagonals
)

// CancelAtom strikes its base with one or two diagonal lines across
// the base's bounding rectangle.  The overlay does not change the
// base's measured geometry.
type CancelAtom struct {
	ordinary
	Base Atom
	Type CancelType
}

// Cancel wraps base in a CancelAtom.
func Cancel(base Atom, t CancelType) *CancelAtom {
	return &CancelAtom{Base: base, Type: t}
}

// CreateBox implements the Atom interface.
func (a *CancelAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	ext := b.Extent()
	w, vlen := ext.Width, ext.VLen()

	var segments []vec.Vec2
	switch a.Type {
	case CancelSlash:
		segments = []vec.Vec2{{X: 0, Y: 0}, {X: w, Y: vlen}}
	case CancelBackslash:
		segments = []vec.Vec2{{X: w, Y: 0}, {X: 0, Y: vlen}}
	case CancelCross:
		segments = []vec.Vec2{
			{X: 0, Y: 0}, {X: w, Y: vlen},
			{X: w, Y: 0}, {X: 0, Y: vlen},
		}
	default:
		return b, nil
	}

	t := e.Constants().FractionRuleThickness * e.Scale()
	overlay := boxes.Lines(t, segments...)
	overlay.Width = ext.Width
	overlay.Height = ext.Height
	overlay.Depth = ext.Depth

	hbox := boxes.NewHBox(b)
	hbox.Add(boxes.Strut(-ext.Width, 0, 0))
	hbox.Add(overlay)
	return hbox, nil
}

// Clone implements the Atom interface.
func (a *CancelAtom) Clone() Atom {
	return &CancelAtom{Base: cloneAtom(a.Base), Type: a.Type}
}
