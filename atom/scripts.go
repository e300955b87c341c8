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
	"math"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// ScriptsAtom attaches an optional subscript and superscript to a
// base atom.
type ScriptsAtom struct {
	Base     Atom
	Sub, Sup Atom

	// Align controls how sub- and superscript are aligned within the
	// script column.  AlignRight is used for left-hand side-sets.
	Align boxes.Alignment
}

// Scripts attaches scripts to a base.  Sub and sup may be nil.
func Scripts(base, sub, sup Atom) *ScriptsAtom {
	return &ScriptsAtom{Base: base, Sub: sub, Sup: sup, Align: boxes.AlignLeft}
}

// CreateBox implements the Atom interface.
func (a *ScriptsAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	var base boxes.Box
	if a.Base == nil {
		base = boxes.EmptyStrut()
	} else {
		var err error
		base, err = a.Base.CreateBox(e)
		if err != nil {
			return nil, err
		}
	}
	if isNilOrEmptyRow(a.Sub) && isNilOrEmptyRow(a.Sup) {
		return base, nil
	}

	scale := e.Scale()
	c := e.Constants()

	var sup, sub boxes.Box
	var shiftUp, shiftDown float64
	if !isNilOrEmptyRow(a.Sup) {
		var err error
		sup, err = a.Sup.CreateBox(e.Superscript())
		if err != nil {
			return nil, err
		}
		up := c.SuperscriptShiftUp
		if e.Style().IsCramped() {
			up = c.SuperscriptShiftUpCramped
		}
		shiftUp = math.Max(up*scale, sup.Extent().Depth+c.SuperscriptBottomMin*scale)
	}
	if !isNilOrEmptyRow(a.Sub) {
		var err error
		sub, err = a.Sub.CreateBox(e.Subscript())
		if err != nil {
			return nil, err
		}
		shiftDown = math.Max(c.SubscriptShiftDown*scale, sub.Extent().Height-c.SubscriptTopMax*scale)
	}
	if sup != nil && sub != nil {
		gap := (shiftUp - sup.Extent().Depth) - (sub.Extent().Height - shiftDown)
		if min := c.SubSuperscriptGapMin * scale; gap < min {
			shiftDown += min - gap
		}
	}

	maxW := 0.0
	if sup != nil {
		maxW = sup.Extent().Width
	}
	if sub != nil && sub.Extent().Width > maxW {
		maxW = sub.Extent().Width
	}

	col := boxes.NewHBox()
	if sup != nil {
		s := boxes.Box(sup)
		if a.Align != boxes.AlignLeft {
			s = boxes.HBoxTo(maxW, a.Align, sup)
		}
		s.Extent().Shift = -shiftUp
		col.Add(s)
		col.Add(boxes.Strut(-s.Extent().Width, 0, 0))
	}
	if sub != nil {
		s := boxes.Box(sub)
		if a.Align != boxes.AlignLeft {
			s = boxes.HBoxTo(maxW, a.Align, sub)
		}
		s.Extent().Shift = shiftDown
		col.Add(s)
		col.Add(boxes.Strut(-s.Extent().Width, 0, 0))
	}
	col.Add(boxes.Strut(maxW+c.ScriptSpace*scale, 0, 0))

	return boxes.NewHBox(base, col), nil
}

func isNilOrEmptyRow(a Atom) bool {
	if a == nil {
		return true
	}
	if r, ok := a.(*RowAtom); ok {
		return len(r.Children) == 0
	}
	return false
}

// LeftKind implements the Atom interface.
func (a *ScriptsAtom) LeftKind() Kind {
	if a.Base != nil {
		return a.Base.LeftKind()
	}
	return KindOrdinary
}

// RightKind implements the Atom interface.
func (a *ScriptsAtom) RightKind() Kind { return KindOrdinary }

// Clone implements the Atom interface.
func (a *ScriptsAtom) Clone() Atom {
	return &ScriptsAtom{
		Base:  cloneAtom(a.Base),
		Sub:   cloneAtom(a.Sub),
		Sup:   cloneAtom(a.Sup),
		Align: a.Align,
	}
}

// CumulativeScriptsAtom collects a chain of successive script
// attachments on one base into a single combined sub/super pair.
// Attaching scripts to a base which is already a script construct
// appends to its script rows instead of nesting.
type CumulativeScriptsAtom struct {
	Base     Atom
	Sub, Sup *RowAtom
}

// CumulativeScripts merges the new scripts with any scripts already
// attached to base.  Sub and sup may be nil.
func CumulativeScripts(base, sub, sup Atom) *CumulativeScriptsAtom {
	switch b := base.(type) {
	case *CumulativeScriptsAtom:
		b.Sup.Add(sup)
		b.Sub.Add(sub)
		return &CumulativeScriptsAtom{Base: b.Base, Sub: b.Sub, Sup: b.Sup}
	case *ScriptsAtom:
		supRow := Row(b.Sup)
		subRow := Row(b.Sub)
		supRow.Add(sup)
		subRow.Add(sub)
		return &CumulativeScriptsAtom{Base: b.Base, Sub: subRow, Sup: supRow}
	default:
		return &CumulativeScriptsAtom{Base: base, Sub: Row(sub), Sup: Row(sup)}
	}
}

// AddSuperscript appends a further superscript atom.
func (a *CumulativeScriptsAtom) AddSuperscript(sup Atom) {
	a.Sup.Add(sup)
}

// AddSubscript appends a further subscript atom.
func (a *CumulativeScriptsAtom) AddSubscript(sub Atom) {
	a.Sub.Add(sub)
}

// AsScripts returns the equivalent plain scripts construct.
func (a *CumulativeScriptsAtom) AsScripts() *ScriptsAtom {
	return Scripts(a.Base, a.Sub, a.Sup)
}

// CreateBox implements the Atom interface.
func (a *CumulativeScriptsAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	return a.AsScripts().CreateBox(e)
}

// LeftKind implements the Atom interface.
func (a *CumulativeScriptsAtom) LeftKind() Kind {
	if a.Base != nil {
		return a.Base.LeftKind()
	}
	return KindOrdinary
}

// RightKind implements the Atom interface.
func (a *CumulativeScriptsAtom) RightKind() Kind { return KindOrdinary }

// Clone implements the Atom interface.
func (a *CumulativeScriptsAtom) Clone() Atom {
	return &CumulativeScriptsAtom{
		Base: cloneAtom(a.Base),
		Sub:  a.Sub.Clone().(*RowAtom),
		Sup:  a.Sup.Clone().(*RowAtom),
	}
}
