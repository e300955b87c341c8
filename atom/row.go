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

// RowAtom is an ordered sequence of atoms, composed left to right
// with the inter-atom spacing rules applied between neighbours.
type RowAtom struct {
	Children []Atom

	breakable bool
}

// Row returns a new row containing the given atoms.  Nil atoms are
// ignored.
func Row(children ...Atom) *RowAtom {
	r := &RowAtom{breakable: true}
	for _, c := range children {
		r.Add(c)
	}
	return r
}

// Add appends an atom at the end of the row.  Nil atoms are ignored.
func (a *RowAtom) Add(el Atom) {
	if el == nil {
		return
	}
	a.Children = append(a.Children, el)
}

// SetBreakable controls whether a later line-breaking pass may split
// the row at break marks.
func (a *RowAtom) SetBreakable(b bool) {
	a.breakable = b
}

// CreateBox implements the Atom interface.
func (a *RowAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	hbox := boxes.NewHBox()
	prev := KindNone
	for _, child := range a.Children {
		left := child.LeftKind()
		if prev != KindNone && left != KindNone {
			if g := InterAtomGlue(prev, left, e); g != nil {
				hbox.Add(g)
			}
		}
		box, err := child.CreateBox(e)
		if err != nil {
			return nil, err
		}
		hbox.Add(box)
		if k := child.RightKind(); k != KindNone {
			prev = k
		}
	}
	return hbox, nil
}

// LeftKind implements the Atom interface.
func (a *RowAtom) LeftKind() Kind {
	for _, c := range a.Children {
		if k := c.LeftKind(); k != KindNone {
			return k
		}
	}
	return KindOrdinary
}

// RightKind implements the Atom interface.
func (a *RowAtom) RightKind() Kind {
	for i := len(a.Children) - 1; i >= 0; i-- {
		if k := a.Children[i].RightKind(); k != KindNone {
			return k
		}
	}
	return KindOrdinary
}

// Clone implements the Atom interface.
func (a *RowAtom) Clone() Atom {
	c := &RowAtom{breakable: a.breakable}
	for _, child := range a.Children {
		c.Children = append(c.Children, cloneAtom(child))
	}
	return c
}
