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

// BigOperatorAtom is a large operator such as a sum or product, with
// optional material placed under and over it.  In display style the
// material is placed as limits above and below the operator;
// otherwise it is attached as scripts.  The Limits flag can force
// either placement.
type BigOperatorAtom struct {
	Base        Atom
	Under, Over Atom

	Limits    bool
	LimitsSet bool
}

// BigOperator returns a big operator with default limits placement.
func BigOperator(base, under, over Atom) *BigOperatorAtom {
	return &BigOperatorAtom{Base: base, Under: under, Over: over}
}

// SetLimits forces limits (true) or script (false) placement.
func (a *BigOperatorAtom) SetLimits(limits bool) {
	a.Limits = limits
	a.LimitsSet = true
}

// CreateBox implements the Atom interface.
func (a *BigOperatorAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	useLimits := e.Style() < env.Text // display style
	if a.LimitsSet {
		useLimits = a.Limits
	}
	if !useLimits {
		return Scripts(a.Base, a.Under, a.Over).CreateBox(e)
	}

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

	var over, under boxes.Box
	if a.Over != nil {
		var err error
		over, err = a.Over.CreateBox(e.Superscript())
		if err != nil {
			return nil, err
		}
	}
	if a.Under != nil {
		var err error
		under, err = a.Under.CreateBox(e.Subscript())
		if err != nil {
			return nil, err
		}
	}

	maxW := base.Extent().Width
	if over != nil {
		maxW = math.Max(maxW, over.Extent().Width)
	}
	if under != nil {
		maxW = math.Max(maxW, under.Extent().Width)
	}

	scale := e.Scale()
	c := e.Constants()
	vbox := boxes.NewVBox()
	if over != nil {
		vbox.Add(changeWidth(over, maxW))
		vbox.Add(boxes.Strut(0, c.UpperLimitGapMin*scale, 0))
	}
	vbox.Add(changeWidth(base, maxW))

	belowBase := base.Extent().Depth
	if under != nil {
		gap := boxes.Strut(0, c.LowerLimitGapMin*scale, 0)
		u := changeWidth(under, maxW)
		vbox.Add(gap)
		vbox.Add(u)
		belowBase += gap.Height + u.Extent().VLen()
	}

	// keep the operator's baseline
	total := vbox.VLen()
	vbox.Depth = belowBase
	vbox.Height = total - belowBase

	return vbox, nil
}

// changeWidth centers b within the given width if it is narrower.
func changeWidth(b boxes.Box, maxWidth float64) boxes.Box {
	if math.Abs(maxWidth-b.Extent().Width) > 1e-9 {
		return boxes.HBoxTo(maxWidth, boxes.AlignCenter, b)
	}
	return b
}

// LeftKind implements the Atom interface.
func (a *BigOperatorAtom) LeftKind() Kind { return KindBigOperator }

// RightKind implements the Atom interface.
func (a *BigOperatorAtom) RightKind() Kind { return KindBigOperator }

// Clone implements the Atom interface.
func (a *BigOperatorAtom) Clone() Atom {
	return &BigOperatorAtom{
		Base:      cloneAtom(a.Base),
		Under:     cloneAtom(a.Under),
		Over:      cloneAtom(a.Over),
		Limits:    a.Limits,
		LimitsSet: a.LimitsSet,
	}
}
