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
	"seehuhn.de/go/mathtex/font"
)

// SymbolAtom is a named symbol of the math font, for example
// "lparen", "sum" or "hat".
type SymbolAtom struct {
	Name string
	Kind Kind
}

// Symbol returns an atom for the named symbol with the given spacing
// class.
func Symbol(name string, kind Kind) *SymbolAtom {
	return &SymbolAtom{Name: name, Kind: kind}
}

// CreateBox implements the Atom interface.
func (a *SymbolAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	c, ok := e.Metrics().Char(a.Name)
	if !ok {
		return nil, &SymbolError{Name: a.Name}
	}
	return boxes.Glyph(c, e.Scale()), nil
}

// Char returns the glyph of the symbol in the given environment.
func (a *SymbolAtom) Char(e *env.Env) (font.Char, bool) {
	return e.Metrics().Char(a.Name)
}

// LeftKind implements the Atom interface.
func (a *SymbolAtom) LeftKind() Kind { return a.Kind }

// RightKind implements the Atom interface.
func (a *SymbolAtom) RightKind() Kind { return a.Kind }

// Clone implements the Atom interface.
func (a *SymbolAtom) Clone() Atom {
	c := *a
	return &c
}

// CharAtom is a single character, typeset from the glyph the font
// assigns to its code point.
type CharAtom struct {
	ordinary
	Rune rune
}

// Char returns an atom for the given code point.
func Char(r rune) *CharAtom {
	return &CharAtom{Rune: r}
}

// CreateBox implements the Atom interface.
func (a *CharAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	c, ok := e.Metrics().CharOf(a.Rune)
	if !ok {
		return nil, &SymbolError{Name: string(a.Rune)}
	}
	return boxes.Glyph(c, e.Scale()), nil
}

// Clone implements the Atom interface.
func (a *CharAtom) Clone() Atom {
	c := *a
	return &c
}
