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

// Package atom implements the node types of a parsed math formula
// and the layout algorithm which turns each node into a measured
// box, following the TeX math-mode conventions.
//
// An atom tree is immutable once constructed; laying it out does not
// change it, so the same tree can be laid out repeatedly at
// different sizes and styles.
package atom

import (
	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// Kind classifies an atom for inter-atom spacing, following the TeX
// spacing classes.
type Kind int8

// The spacing classes.
const (
	KindNone Kind = iota - 1 // takes part in no spacing decisions

	KindOrdinary
	KindBigOperator
	KindBinaryOperator
	KindRelation
	KindOpening
	KindClosing
	KindPunctuation
	KindInner

	KindAccent
	KindInterText
	KindHLine
)

// Atom is a node of the formula tree.  The concrete types in this
// package form the closed set of variants.
type Atom interface {
	// CreateBox lays the atom out in the given environment and
	// returns the resulting box.
	CreateBox(e *env.Env) (boxes.Box, error)

	// LeftKind and RightKind give the spacing classes used for glue
	// on either side of the atom.
	LeftKind() Kind
	RightKind() Kind

	// Clone returns a deep copy of the atom.
	Clone() Atom
}

// ordinary provides the default spacing classes for atom types which
// behave like ordinary symbols.
type ordinary struct{}

func (ordinary) LeftKind() Kind  { return KindOrdinary }
func (ordinary) RightKind() Kind { return KindOrdinary }

func cloneAtom(a Atom) Atom {
	if a == nil {
		return nil
	}
	return a.Clone()
}

// EmptyAtom is an atom without content.  It is used as the recovery
// value when a partial parse fails.
type EmptyAtom struct {
	ordinary
}

// Empty returns a new EmptyAtom.
func Empty() *EmptyAtom {
	return &EmptyAtom{}
}

// CreateBox implements the Atom interface.
func (a *EmptyAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	return boxes.EmptyStrut(), nil
}

// Clone implements the Atom interface.
func (a *EmptyAtom) Clone() Atom {
	return &EmptyAtom{}
}

// SpaceAtom reserves blank space of the given dimensions.
type SpaceAtom struct {
	ordinary
	Width, Height, Depth env.Dimen
}

// Space returns an atom reserving blank space.
func Space(width, height, depth env.Dimen) *SpaceAtom {
	return &SpaceAtom{Width: width, Height: height, Depth: depth}
}

// ThinSpace returns the thin math space (3mu).
func ThinSpace() *SpaceAtom {
	return Space(env.Mu(3), env.Dimen{}, env.Dimen{})
}

// CreateBox implements the Atom interface.
func (a *SpaceAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	return boxes.Strut(a.Width.In(e), a.Height.In(e), a.Depth.In(e)), nil
}

// Clone implements the Atom interface.
func (a *SpaceAtom) Clone() Atom {
	c := *a
	return &c
}

// PlaceholderAtom reserves space with dimensions fixed in device
// units.  It is used to stand in for a box which has already been
// measured, for example the base of a side-set construction.
type PlaceholderAtom struct {
	ordinary
	Width, Height, Depth, Shift float64
}

// Placeholder returns a new PlaceholderAtom.
func Placeholder(width, height, depth, shift float64) *PlaceholderAtom {
	return &PlaceholderAtom{Width: width, Height: height, Depth: depth, Shift: shift}
}

// CreateBox implements the Atom interface.
func (a *PlaceholderAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	b := boxes.Strut(a.Width, a.Height, a.Depth)
	b.Shift = a.Shift
	return b, nil
}

// Clone implements the Atom interface.
func (a *PlaceholderAtom) Clone() Atom {
	c := *a
	return &c
}

// TypedAtom fixes the spacing classes of its base, overriding
// whatever the base reports.
type TypedAtom struct {
	Base        Atom
	Left, Right Kind
}

// Typed wraps base with fixed spacing classes.
func Typed(left, right Kind, base Atom) *TypedAtom {
	return &TypedAtom{Base: base, Left: left, Right: right}
}

// CreateBox implements the Atom interface.
func (a *TypedAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	return a.Base.CreateBox(e)
}

// LeftKind implements the Atom interface.
func (a *TypedAtom) LeftKind() Kind { return a.Left }

// RightKind implements the Atom interface.
func (a *TypedAtom) RightKind() Kind { return a.Right }

// Clone implements the Atom interface.
func (a *TypedAtom) Clone() Atom {
	return &TypedAtom{Base: cloneAtom(a.Base), Left: a.Left, Right: a.Right}
}

// BreakMarkAtom marks a position where a later line-breaking pass may
// split a row.  It has no extent and takes part in no spacing.
type BreakMarkAtom struct{}

// CreateBox implements the Atom interface.
func (a *BreakMarkAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	return boxes.EmptyStrut(), nil
}

// LeftKind implements the Atom interface.
func (a *BreakMarkAtom) LeftKind() Kind { return KindNone }

// RightKind implements the Atom interface.
func (a *BreakMarkAtom) RightKind() Kind { return KindNone }

// Clone implements the Atom interface.
func (a *BreakMarkAtom) Clone() Atom {
	return &BreakMarkAtom{}
}

// StyleAtom declares a minimum style for its base.  If the current
// style is smaller (more compressed) than the declared one, the base
// is laid out in the declared style instead; the caller's style is
// unaffected.  This keeps size-sensitive material from being shrunk
// further by the surrounding construct.
type StyleAtom struct {
	Base  Atom
	Style env.Style
}

// MinStyle wraps base with a minimum style.
func MinStyle(style env.Style, base Atom) *StyleAtom {
	return &StyleAtom{Base: base, Style: style}
}

// CreateBox implements the Atom interface.
func (a *StyleAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	if a.Style < e.Style() {
		e = e.WithStyle(a.Style)
	}
	return a.Base.CreateBox(e)
}

// LeftKind implements the Atom interface.
func (a *StyleAtom) LeftKind() Kind { return a.Base.LeftKind() }

// RightKind implements the Atom interface.
func (a *StyleAtom) RightKind() Kind { return a.Base.RightKind() }

// Clone implements the Atom interface.
func (a *StyleAtom) Clone() Atom {
	return &StyleAtom{Base: cloneAtom(a.Base), Style: a.Style}
}
