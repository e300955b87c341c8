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

// SideSetsAtom attaches independent script clusters to the left and
// the right of a base.  Scripts without a base of their own are given
// a placeholder with the base's vertical extent, so both clusters
// align to the base even when the base is a zero-width phantom.
type SideSetsAtom struct {
	Base        Atom
	Left, Right Atom
}

// SideSets returns a new SideSetsAtom.  Base, left and right may each
// be nil.
func SideSets(base, left, right Atom) *SideSetsAtom {
	return &SideSetsAtom{Base: base, Left: left, Right: right}
}

// CreateBox implements the Atom interface.
func (a *SideSetsAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	base := a.Base
	if base == nil {
		// a zero-width phantom to place the side-sets against
		base = Phantom(false, true, true, Char('M'))
	}
	bb, err := base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	ext := bb.Extent()
	pa := Placeholder(0, ext.Height, ext.Depth, ext.Shift)

	left, right := a.Left, a.Right
	if l, ok := left.(*ScriptsAtom); ok && l.Base == nil {
		c := *l
		c.Base = pa
		c.Align = boxes.AlignRight
		left = &c
	}
	if r, ok := right.(*ScriptsAtom); ok && r.Base == nil {
		c := *r
		c.Base = pa
		right = &c
	}

	hbox := boxes.NewHBox()
	if left != nil {
		b, err := left.CreateBox(e)
		if err != nil {
			return nil, err
		}
		hbox.Add(b)
	}
	hbox.Add(bb)
	if right != nil {
		b, err := right.CreateBox(e)
		if err != nil {
			return nil, err
		}
		hbox.Add(b)
	}
	return hbox, nil
}

// LeftKind implements the Atom interface.
func (a *SideSetsAtom) LeftKind() Kind {
	if a.Base != nil {
		return a.Base.LeftKind()
	}
	return KindOrdinary
}

// RightKind implements the Atom interface.
func (a *SideSetsAtom) RightKind() Kind {
	if a.Base != nil {
		return a.Base.RightKind()
	}
	return KindOrdinary
}

// Clone implements the Atom interface.
func (a *SideSetsAtom) Clone() Atom {
	return &SideSetsAtom{
		Base:  cloneAtom(a.Base),
		Left:  cloneAtom(a.Left),
		Right: cloneAtom(a.Right),
	}
}
