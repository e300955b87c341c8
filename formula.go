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

package mathtex

import (
	"image/color"

	"seehuhn.de/go/mathtex/atom"
	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// Formula is a cheap handle around the root of an atom tree.  Atoms
// are added once, during construction; afterwards the tree is only
// read.
type Formula struct {
	root atom.Atom

	// interior delimiter markers added so far, waiting to be claimed
	// by a fence
	middles []*atom.MiddleAtom
}

// NewFormula creates a formula containing the given atoms.
func NewFormula(atoms ...atom.Atom) *Formula {
	f := &Formula{}
	for _, a := range atoms {
		f.Add(a)
	}
	return f
}

// Add appends an atom to the formula.  The first atom becomes the
// root; any further atom promotes the root to a row.  After a binary
// operator or a relation a break marker is inserted, so a later
// line-breaking pass can split the row there.
func (f *Formula) Add(el atom.Atom) *Formula {
	if el == nil {
		return f
	}
	if m, ok := el.(*atom.MiddleAtom); ok {
		f.middles = append(f.middles, m)
	}
	if f.root == nil {
		f.root = el
		return f
	}

	row, ok := f.root.(*atom.RowAtom)
	if !ok {
		row = atom.Row(f.root)
		f.root = row
	}
	row.Add(el)
	switch el.RightKind() {
	case atom.KindBinaryOperator, atom.KindRelation:
		row.Add(&atom.BreakMarkAtom{})
	}
	return f
}

// Root returns the root atom, or nil for an empty formula.
func (f *Formula) Root() atom.Atom {
	return f.root
}

// Middles returns the interior delimiter markers added to the formula
// which have not been claimed by a fenced construct yet.
func (f *Formula) Middles() []*atom.MiddleAtom {
	return f.middles
}

// Layout lays the formula out in the given environment.  An empty
// formula produces an empty box.
func (f *Formula) Layout(e *env.Env) (boxes.Box, error) {
	if f.root == nil {
		return boxes.EmptyStrut(), nil
	}
	return f.root.CreateBox(e)
}

// Layout lays out a formula in the given environment.  This is the
// entry point used by renderers.
func Layout(f *Formula, e *env.Env) (boxes.Box, error) {
	return f.Layout(e)
}

// SetColor wraps the formula in the given foreground color.  A nil
// color leaves the formula unchanged.
func (f *Formula) SetColor(c color.Color) *Formula {
	if c == nil || f.root == nil {
		return f
	}
	if ca, ok := f.root.(*atom.ColorAtom); ok && ca.Foreground == nil {
		ca.Foreground = c
		return f
	}
	f.root = atom.ColoredAtom(c, nil, f.root)
	return f
}

// SetBackground places the formula on a filled background.  A nil
// color leaves the formula unchanged.
func (f *Formula) SetBackground(c color.Color) *Formula {
	if c == nil || f.root == nil {
		return f
	}
	if ca, ok := f.root.(*atom.ColorAtom); ok && ca.Background == nil {
		ca.Background = c
		return f
	}
	f.root = atom.ColoredAtom(nil, c, f.root)
	return f
}

// SetFixedKinds overrides the spacing classes the formula reports to
// a surrounding row.
func (f *Formula) SetFixedKinds(left, right atom.Kind) *Formula {
	if f.root == nil {
		return f
	}
	f.root = atom.Typed(left, right, f.root)
	return f
}

// Clone returns an independent deep copy of the formula.  The copy
// shares no atoms with the original.
func (f *Formula) Clone() *Formula {
	c := &Formula{}
	if f.root != nil {
		c.root, c.middles = atom.CloneWithMiddles(f.root, f.middles)
	}
	return c
}
