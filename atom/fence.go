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

// MiddleAtom is an interior delimiter of a fenced construct, for
// example the bar in a set comprehension.  Its final height is only
// known once the surrounding base has been measured: while the height
// is unresolved, laying the atom out emits a placeholder which the
// enclosing FencedAtom later replaces with the stretched delimiter.
type MiddleAtom struct {
	ordinary
	Name string

	height      float64
	placeholder boxes.Box
}

// Middle returns a new interior delimiter marker.
func Middle(name string) *MiddleAtom {
	return &MiddleAtom{Name: name}
}

// CreateBox implements the Atom interface.
func (a *MiddleAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	if a.height == 0 {
		p := boxes.EmptyStrut()
		a.placeholder = p
		return p, nil
	}
	return VDelim(a.Name, e, a.height)
}

// Clone implements the Atom interface.
func (a *MiddleAtom) Clone() Atom {
	return &MiddleAtom{Name: a.Name}
}

// FencedAtom brackets a base between stretchy delimiters.  Left or
// right may be empty (or "."), meaning no delimiter on that side.
type FencedAtom struct {
	Base        Atom
	Left, Right string
	Middles     []*MiddleAtom
}

// Fenced returns a new fenced construct.  The middle atoms must be
// the interior delimiter markers contained in base.
func Fenced(base Atom, left, right string, middles []*MiddleAtom) *FencedAtom {
	return &FencedAtom{Base: base, Left: left, Right: right, Middles: middles}
}

// CreateBox implements the Atom interface.
func (a *FencedAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	if a.Base == nil {
		return boxes.EmptyStrut(), nil
	}
	if r, ok := a.Base.(*RowAtom); ok {
		r.SetBreakable(false)
	}

	// Middles must emit placeholders while the base is measured.
	for _, m := range a.Middles {
		m.height = 0
		m.placeholder = nil
	}

	base, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	CenterOnAxis(base, e)
	h := base.Extent().VLen()

	for _, m := range a.Middles {
		m.height = h
		b, err := m.CreateBox(e)
		if err != nil {
			return nil, err
		}
		CenterOnAxis(b, e)
		// undo the base's own shift so both share one baseline
		b.Extent().Shift -= base.Extent().Shift
		if m.placeholder != nil {
			boxes.ReplaceFirst(base, m.placeholder, b)
		}
	}

	hbox := boxes.NewHBox()

	if a.Left != "" && a.Left != "." {
		l, err := VDelim(a.Left, e, h)
		if err != nil {
			return nil, err
		}
		CenterOnAxis(l, e)
		hbox.Add(l)
		if !boxes.IsSpace(base) {
			if g := InterAtomGlue(KindOpening, a.Base.LeftKind(), e); g != nil {
				hbox.Add(g)
			}
		}
	}

	hbox.Add(base)

	if a.Right != "" && a.Right != "." {
		if !boxes.IsSpace(base) {
			if g := InterAtomGlue(a.Base.RightKind(), KindClosing, e); g != nil {
				hbox.Add(g)
			}
		}
		r, err := VDelim(a.Right, e, h)
		if err != nil {
			return nil, err
		}
		CenterOnAxis(r, e)
		hbox.Add(r)
	}

	return hbox, nil
}

// LeftKind implements the Atom interface.
func (a *FencedAtom) LeftKind() Kind { return KindOpening }

// RightKind implements the Atom interface.
func (a *FencedAtom) RightKind() Kind { return KindClosing }

// Clone implements the Atom interface.
func (a *FencedAtom) Clone() Atom {
	c := &FencedAtom{Left: a.Left, Right: a.Right}

	// The middle markers inside the cloned base must be the ones
	// referenced by the cloned fence.
	oldNew := make(map[*MiddleAtom]*MiddleAtom)
	for _, m := range a.Middles {
		oldNew[m] = m.Clone().(*MiddleAtom)
		c.Middles = append(c.Middles, oldNew[m])
	}
	c.Base = cloneReplacingMiddles(a.Base, oldNew)
	return c
}

// CloneWithMiddles deep-copies an atom tree together with the list of
// interior delimiter markers it contains, keeping the association
// between the copied tree and the copied markers.
func CloneWithMiddles(a Atom, middles []*MiddleAtom) (Atom, []*MiddleAtom) {
	oldNew := make(map[*MiddleAtom]*MiddleAtom)
	var newMiddles []*MiddleAtom
	for _, m := range middles {
		oldNew[m] = m.Clone().(*MiddleAtom)
		newMiddles = append(newMiddles, oldNew[m])
	}
	return cloneReplacingMiddles(a, oldNew), newMiddles
}

// cloneReplacingMiddles deep-copies an atom tree, substituting the
// given middle markers for their clones.
func cloneReplacingMiddles(a Atom, oldNew map[*MiddleAtom]*MiddleAtom) Atom {
	if a == nil {
		return nil
	}
	if m, ok := a.(*MiddleAtom); ok {
		if repl, ok := oldNew[m]; ok {
			return repl
		}
	}
	if r, ok := a.(*RowAtom); ok {
		c := &RowAtom{breakable: r.breakable}
		for _, child := range r.Children {
			c.Children = append(c.Children, cloneReplacingMiddles(child, oldNew))
		}
		return c
	}
	return a.Clone()
}
