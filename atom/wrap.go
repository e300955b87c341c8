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
	"image/color"
	"math"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// ScaleAtom scales its base by fixed horizontal and vertical factors.
type ScaleAtom struct {
	Base   Atom
	SX, SY float64
}

// Scaled wraps base in a ScaleAtom.
func Scaled(base Atom, sx, sy float64) *ScaleAtom {
	return &ScaleAtom{Base: base, SX: sx, SY: sy}
}

// CreateBox implements the Atom interface.
func (a *ScaleAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	return boxes.Scale(b, a.SX, a.SY), nil
}

// LeftKind implements the Atom interface.
func (a *ScaleAtom) LeftKind() Kind { return a.Base.LeftKind() }

// RightKind implements the Atom interface.
func (a *ScaleAtom) RightKind() Kind { return a.Base.RightKind() }

// Clone implements the Atom interface.
func (a *ScaleAtom) Clone() Atom {
	return &ScaleAtom{Base: cloneAtom(a.Base), SX: a.SX, SY: a.SY}
}

// RaiseAtom moves its base up or down relative to the baseline, and
// can override the height and depth reported to the parent.
type RaiseAtom struct {
	Base Atom

	Raise         env.Dimen
	Height, Depth env.Dimen
}

// Raise wraps base in a RaiseAtom.
func Raise(base Atom, raise, height, depth env.Dimen) *RaiseAtom {
	return &RaiseAtom{Base: base, Raise: raise, Height: height, Depth: depth}
}

// CreateBox implements the Atom interface.
func (a *RaiseAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	hbox := boxes.NewHBox(b)
	hbox.Shift = -a.Raise.In(e)
	if a.Height.IsValid() {
		hbox.Height = a.Height.In(e)
	}
	if a.Depth.IsValid() {
		hbox.Depth = a.Depth.In(e)
	}
	return hbox, nil
}

// LeftKind implements the Atom interface.
func (a *RaiseAtom) LeftKind() Kind { return a.Base.LeftKind() }

// RightKind implements the Atom interface.
func (a *RaiseAtom) RightKind() Kind { return a.Base.RightKind() }

// Clone implements the Atom interface.
func (a *RaiseAtom) Clone() Atom {
	c := *a
	c.Base = cloneAtom(a.Base)
	return &c
}

// ResizeAtom scales its base to a target width and/or height.  If
// only one target is given, both axes scale uniformly.  If both are
// given, each axis scales independently unless KeepAspect is set, in
// which case the smaller of the two ratios is used for both.
type ResizeAtom struct {
	Base Atom

	Width, Height env.Dimen
	KeepAspect    bool
}

// Resize wraps base in a ResizeAtom.  Unset dimensions are left at
// their zero value.
func Resize(base Atom, width, height env.Dimen, keepAspect bool) *ResizeAtom {
	return &ResizeAtom{Base: base, Width: width, Height: height, KeepAspect: keepAspect}
}

// CreateBox implements the Atom interface.
func (a *ResizeAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	hasW := a.Width.IsValid()
	hasH := a.Height.IsValid()
	if !hasW && !hasH {
		return b, nil
	}

	ext := b.Extent()
	var sx, sy float64
	switch {
	case hasW && !hasH:
		sx = a.Width.In(e) / ext.Width
		sy = sx
	case !hasW && hasH:
		sy = a.Height.In(e) / ext.VLen()
		sx = sy
	default:
		sx = a.Width.In(e) / ext.Width
		sy = a.Height.In(e) / ext.VLen()
		if a.KeepAspect {
			s := math.Min(sx, sy)
			sx, sy = s, s
		}
	}
	return boxes.Scale(b, sx, sy), nil
}

// LeftKind implements the Atom interface.
func (a *ResizeAtom) LeftKind() Kind { return a.Base.LeftKind() }

// RightKind implements the Atom interface.
func (a *ResizeAtom) RightKind() Kind { return a.Base.RightKind() }

// Clone implements the Atom interface.
func (a *ResizeAtom) Clone() Atom {
	c := *a
	c.Base = cloneAtom(a.Base)
	return &c
}

// RotateAtom rotates its base by a signed angle in degrees, either
// about a named origin or about an explicit offset from the left end
// of the baseline.
type RotateAtom struct {
	Base  Atom
	Angle float64

	Origin boxes.RotationOrigin

	// X and Y, when set, override Origin with an explicit pivot.
	X, Y env.Dimen
}

// RotateAbout wraps base in a RotateAtom pivoting on a named origin.
func RotateAbout(base Atom, angle float64, origin boxes.RotationOrigin) *RotateAtom {
	return &RotateAtom{Base: base, Angle: angle, Origin: origin}
}

// RotateAt wraps base in a RotateAtom pivoting on the point (x, y)
// relative to the left end of the baseline.
func RotateAt(base Atom, angle float64, x, y env.Dimen) *RotateAtom {
	return &RotateAtom{Base: base, Angle: angle, X: x, Y: y}
}

// CreateBox implements the Atom interface.
func (a *RotateAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	if a.X.IsValid() || a.Y.IsValid() {
		return boxes.RotateAt(b, a.Angle, a.X.In(e), a.Y.In(e)), nil
	}
	return boxes.Rotate(b, a.Angle, a.Origin), nil
}

// LeftKind implements the Atom interface.
func (a *RotateAtom) LeftKind() Kind { return a.Base.LeftKind() }

// RightKind implements the Atom interface.
func (a *RotateAtom) RightKind() Kind { return a.Base.RightKind() }

// Clone implements the Atom interface.
func (a *RotateAtom) Clone() Atom {
	c := *a
	c.Base = cloneAtom(a.Base)
	return &c
}

// ColorAtom draws its contents in a foreground color, optionally over
// a filled background.  A nil color is inherited from the enclosing
// context.
type ColorAtom struct {
	Elements *RowAtom

	Foreground color.Color
	Background color.Color
}

// ColoredAtom returns a ColorAtom wrapping the given atoms.
func ColoredAtom(fg, bg color.Color, elements ...Atom) *ColorAtom {
	return &ColorAtom{Elements: Row(elements...), Foreground: fg, Background: bg}
}

// CreateBox implements the Atom interface.
func (a *ColorAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Elements.CreateBox(e)
	if err != nil {
		return nil, err
	}
	return boxes.Colored(b, a.Foreground, a.Background), nil
}

// LeftKind implements the Atom interface.
func (a *ColorAtom) LeftKind() Kind { return a.Elements.LeftKind() }

// RightKind implements the Atom interface.
func (a *ColorAtom) RightKind() Kind { return a.Elements.RightKind() }

// Clone implements the Atom interface.
func (a *ColorAtom) Clone() Atom {
	return &ColorAtom{
		Elements:   a.Elements.Clone().(*RowAtom),
		Foreground: a.Foreground,
		Background: a.Background,
	}
}

// PhantomAtom reserves the space its contents would occupy without
// drawing them.  Width, height and depth can be suppressed
// independently.
type PhantomAtom struct {
	ordinary
	Elements *RowAtom

	W, H, D bool
}

// Phantom returns a PhantomAtom keeping the selected dimensions of
// the given atoms.
func Phantom(w, h, d bool, elements ...Atom) *PhantomAtom {
	return &PhantomAtom{Elements: Row(elements...), W: w, H: h, D: d}
}

// CreateBox implements the Atom interface.
func (a *PhantomAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Elements.CreateBox(e)
	if err != nil {
		return nil, err
	}
	ext := b.Extent()
	var w, h, d float64
	if a.W {
		w = ext.Width
	}
	if a.H {
		h = ext.Height
	}
	if a.D {
		d = ext.Depth
	}
	return boxes.Strut(w, h, d), nil
}

// Clone implements the Atom interface.
func (a *PhantomAtom) Clone() Atom {
	c := *a
	c.Elements = a.Elements.Clone().(*RowAtom)
	return &c
}

// LapSide selects which way a LapedAtom overhangs.
type LapSide int8

// The overhang directions.
const (
	LapLeft   LapSide = iota // contents extend to the left
	LapRight                 // contents extend to the right
	LapCenter                // contents extend both ways
)

// LapedAtom typesets its base with zero measured width, letting the
// content overhang to the left, the right or both sides.
type LapedAtom struct {
	ordinary
	Base Atom
	Side LapSide
}

// Laped wraps base in a LapedAtom.
func Laped(base Atom, side LapSide) *LapedAtom {
	return &LapedAtom{Base: base, Side: side}
}

// CreateBox implements the Atom interface.
func (a *LapedAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b, err := a.Base.CreateBox(e)
	if err != nil {
		return nil, err
	}
	w := b.Extent().Width
	hbox := boxes.NewHBox()
	switch a.Side {
	case LapLeft:
		hbox.Add(boxes.Strut(-w, 0, 0))
		hbox.Add(b)
	case LapRight:
		hbox.Add(b)
		hbox.Add(boxes.Strut(-w, 0, 0))
	default:
		hbox.Add(boxes.Strut(-w/2, 0, 0))
		hbox.Add(b)
		hbox.Add(boxes.Strut(-w/2, 0, 0))
	}
	return hbox, nil
}

// Clone implements the Atom interface.
func (a *LapedAtom) Clone() Atom {
	return &LapedAtom{Base: cloneAtom(a.Base), Side: a.Side}
}
