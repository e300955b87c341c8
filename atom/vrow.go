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

// VRowAtom stacks atoms vertically.  When a horizontal alignment is
// set, all rows are padded to the width of the widest row first.  The
// vertical alignment selects where the baseline of the stack lies:
// at the first row (top), the last row (bottom), or centered on the
// math axis.
type VRowAtom struct {
	ordinary
	Elements []Atom

	VAlign       boxes.Alignment // AlignTop, AlignCenter or AlignBottom
	HAlign       boxes.Alignment // AlignNone disables horizontal padding
	AddInterline bool
	Raise        env.Dimen
}

// VRow returns a vertical stack of the given atoms, centered on the
// math axis.  An atom which is itself a VRowAtom is flattened into
// the new stack.
func VRow(elements ...Atom) *VRowAtom {
	a := &VRowAtom{VAlign: boxes.AlignCenter}
	for _, el := range elements {
		if v, ok := el.(*VRowAtom); ok {
			a.Elements = append(a.Elements, v.Elements...)
			continue
		}
		a.Append(el)
	}
	return a
}

// Append adds an atom at the bottom of the stack.  Nil atoms are
// ignored.
func (a *VRowAtom) Append(el Atom) {
	if el == nil {
		return
	}
	a.Elements = append(a.Elements, el)
}

// Prepend adds an atom at the top of the stack.
func (a *VRowAtom) Prepend(el Atom) {
	if el == nil {
		return
	}
	a.Elements = append([]Atom{el}, a.Elements...)
}

// CreateBox implements the Atom interface.
func (a *VRowAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	rows := make([]boxes.Box, len(a.Elements))
	for i, el := range a.Elements {
		b, err := el.CreateBox(e)
		if err != nil {
			return nil, err
		}
		rows[i] = b
	}

	if a.HAlign != boxes.AlignNone {
		maxW := 0.0
		for _, b := range rows {
			if w := b.Extent().Width; w > maxW {
				maxW = w
			}
		}
		for i, b := range rows {
			rows[i] = boxes.HBoxTo(maxW, a.HAlign, b)
		}
	}

	vbox := boxes.NewVBox()
	lineSpace := e.LineSpace() * e.Scale()
	for i, b := range rows {
		if a.AddInterline && i > 0 {
			vbox.Add(boxes.Strut(0, lineSpace, 0))
		}
		vbox.Add(b)
	}

	total := vbox.VLen()
	switch a.VAlign {
	case boxes.AlignTop:
		if len(rows) > 0 {
			vbox.Height = rows[0].Extent().Height
		} else {
			vbox.Height = 0
		}
		vbox.Depth = total - vbox.Height
	case boxes.AlignBottom:
		if len(rows) > 0 {
			vbox.Depth = rows[len(rows)-1].Extent().Depth
		} else {
			vbox.Depth = 0
		}
		vbox.Height = total - vbox.Depth
	default:
		axis := e.AxisHeight() * e.Scale()
		vbox.Height = total/2 + axis
		vbox.Depth = total/2 - axis
	}
	vbox.Shift = -a.Raise.In(e)

	return vbox, nil
}

// Clone implements the Atom interface.
func (a *VRowAtom) Clone() Atom {
	c := &VRowAtom{
		VAlign:       a.VAlign,
		HAlign:       a.HAlign,
		AddInterline: a.AddInterline,
		Raise:        a.Raise,
	}
	for _, el := range a.Elements {
		c.Elements = append(c.Elements, cloneAtom(el))
	}
	return c
}
