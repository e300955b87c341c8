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

// RuleAtom is a solid rectangle of the given width and height, raised
// above the baseline by the given amount.
type RuleAtom struct {
	ordinary
	Width, Height, Raise env.Dimen
}

// NewRule returns a new RuleAtom.
func NewRule(width, height, raise env.Dimen) *RuleAtom {
	return &RuleAtom{Width: width, Height: height, Raise: raise}
}

// CreateBox implements the Atom interface.
func (a *RuleAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	r := boxes.Rule(a.Width.In(e), a.Height.In(e), 0)
	r.Shift = -a.Raise.In(e)
	return r, nil
}

// Clone implements the Atom interface.
func (a *RuleAtom) Clone() Atom {
	c := *a
	return &c
}

// StrikeThroughAtom overlays its base with a horizontal line at axis
// height.
type StrikeThroughAtom struct {
	ordinary
	Base Atom
}

// StrikeThrough wraps base in a StrikeThroughAtom.
func StrikeThrough(base Atom) *StrikeThroughAtom {
	return &StrikeThroughAtom{Base: base}
}

// CreateBox implements the Atom interface.
func (a *StrikeThroughAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	scale := e.Scale()
	t := e.Constants().OverbarRuleThickness * scale
	h := e.AxisHeight() * scale

	r := boxes.Rule(b.Extent().Width, t, 0)
	r.Shift = -h + t

	hbox := boxes.NewHBox(b)
	hbox.Add(boxes.Strut(-b.Extent().Width, 0, 0))
	hbox.Add(r)
	return hbox, nil
}

// Clone implements the Atom interface.
func (a *StrikeThroughAtom) Clone() Atom {
	return &StrikeThroughAtom{Base: cloneAtom(a.Base)}
}

// VCenterAtom reports its base's extent redistributed so that the
// vertical center lies on the math axis.
type VCenterAtom struct {
	ordinary
	Base Atom
}

// VCenter wraps base in a VCenterAtom.
func VCenter(base Atom) *VCenterAtom {
	return &VCenterAtom{Base: base}
}

// CreateBox implements the Atom interface.
func (a *VCenterAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	axis := e.AxisHeight() * e.Scale()
	hbox := boxes.NewHBox(b)
	total := b.Extent().VLen()
	hbox.Height = total/2 + axis
	hbox.Depth = total - hbox.Height
	return hbox, nil
}

// Clone implements the Atom interface.
func (a *VCenterAtom) Clone() Atom {
	return &VCenterAtom{Base: cloneAtom(a.Base)}
}

// UnderScoreAtom is the underscore character, drawn as a short rule.
type UnderScoreAtom struct {
	ordinary
}

// UnderScore returns a new UnderScoreAtom.
func UnderScore() *UnderScoreAtom {
	return &UnderScoreAtom{}
}

// CreateBox implements the Atom interface.
func (a *UnderScoreAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	drt := e.RuleThickness() * e.Scale()
	hbox := boxes.NewHBox(boxes.Strut(env.Em(0.06).In(e), 0, 0))
	hbox.Add(boxes.Rule(env.Em(0.7).In(e), drt, 0))
	return hbox, nil
}

// Clone implements the Atom interface.
func (a *UnderScoreAtom) Clone() Atom {
	return &UnderScoreAtom{}
}

// HLineAtom is a horizontal separator line in an array, spanning a
// width fixed by the surrounding layout.
type HLineAtom struct {
	Width, Raise env.Dimen
}

// HLine returns a new HLineAtom.
func HLine(width, raise env.Dimen) *HLineAtom {
	return &HLineAtom{Width: width, Raise: raise}
}

// CreateBox implements the Atom interface.
func (a *HLineAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	drt := e.RuleThickness() * e.Scale()
	r := boxes.Rule(a.Width.In(e), drt, 0)
	r.Shift = -a.Raise.In(e)
	return boxes.NewVBox(r), nil
}

// LeftKind implements the Atom interface.
func (a *HLineAtom) LeftKind() Kind { return KindHLine }

// RightKind implements the Atom interface.
func (a *HLineAtom) RightKind() Kind { return KindHLine }

// Clone implements the Atom interface.
func (a *HLineAtom) Clone() Atom {
	c := *a
	return &c
}

// OverUnderBarAtom draws a horizontal bar over or under its base,
// separated by a gap of three rule thicknesses.  The baseline of the
// base is kept.
type OverUnderBarAtom struct {
	ordinary
	Base Atom
	Over bool
}

// OverBar draws a bar over base.
func OverBar(base Atom) *OverUnderBarAtom {
	return &OverUnderBarAtom{Base: base, Over: true}
}

// UnderBar draws a bar under base.
func UnderBar(base Atom) *OverUnderBarAtom {
	return &OverUnderBarAtom{Base: base}
}

// CreateBox implements the Atom interface.
func (a *OverUnderBarAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	drt := e.Constants().OverbarRuleThickness * e.Scale()
	w := b.Extent().Width

	vbox := boxes.NewVBox()
	if a.Over {
		vbox.Add(boxes.Rule(w, drt, 0))
		vbox.Add(boxes.Strut(0, 3*drt, 0))
		vbox.Add(b)
		total := vbox.VLen()
		vbox.Depth = b.Extent().Depth
		vbox.Height = total - vbox.Depth
	} else {
		vbox.Add(b)
		vbox.Add(boxes.Strut(0, 3*drt, 0))
		vbox.Add(boxes.Rule(w, drt, 0))
		total := vbox.VLen()
		vbox.Height = b.Extent().Height
		vbox.Depth = total - vbox.Height
	}
	return vbox, nil
}

// Clone implements the Atom interface.
func (a *OverUnderBarAtom) Clone() Atom {
	return &OverUnderBarAtom{Base: cloneAtom(a.Base), Over: a.Over}
}
