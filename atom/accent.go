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
	"seehuhn.de/go/mathtex/font"
)

// AccentedAtom places an accent symbol over a base atom.
//
// In the default mode the accent is stretched by choosing the
// narrowest of the font's pre-built wide glyph variants which covers
// the base.  In direct mode the accent symbol is typeset as is,
// optionally shrunk to subscript style.
type AccentedAtom struct {
	ordinary
	Base   Atom
	Accent *SymbolAtom

	Direct     bool
	ChangeSize bool
}

// Accent places the given accent over base.  The accent must be a
// symbol of the accent class, either directly or as a row containing
// a single such symbol.
func Accent(base, accent Atom) (*AccentedAtom, error) {
	sym, err := accentSymbol(accent)
	if err != nil {
		return nil, err
	}
	return &AccentedAtom{Base: base, Accent: sym}, nil
}

// DirectAccent places the accent symbol itself over base, without
// selecting a wide glyph variant.  If changeSize is set, the accent
// is shrunk to subscript style.
func DirectAccent(base, accent Atom, changeSize bool) (*AccentedAtom, error) {
	sym, err := accentSymbol(accent)
	if err != nil {
		return nil, err
	}
	return &AccentedAtom{Base: base, Accent: sym, Direct: true, ChangeSize: changeSize}, nil
}

func accentSymbol(accent Atom) (*SymbolAtom, error) {
	if r, ok := accent.(*RowAtom); ok && len(r.Children) == 1 {
		accent = r.Children[0]
	}
	sym, ok := accent.(*SymbolAtom)
	if !ok {
		return nil, &SymbolError{Reason: "accent is not a symbol"}
	}
	if sym.Kind != KindAccent {
		return nil, &SymbolError{Name: sym.Name, Reason: "symbol is not an accent"}
	}
	return sym, nil
}

// CreateBox implements the Atom interface.
func (a *AccentedAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	var accentee boxes.Box
	if a.Base == nil {
		accentee = boxes.EmptyStrut()
	} else {
		var err error
		accentee, err = a.Base.CreateBox(e.Cramped())
		if err != nil {
			return nil, err
		}
	}
	scale := e.Scale()

	// horizontal position the accent is centered at
	attach := accentee.Extent().Width / 2
	if c, ok := baseChar(a.Base, e); ok && c.HasTopAccent() {
		attach = c.TopAccent * scale
	}

	var accenter boxes.Box
	var kern float64
	if a.Direct {
		ae := e
		if a.ChangeSize {
			ae = e.Subscript()
		}
		b, err := a.Accent.CreateBox(ae)
		if err != nil {
			return nil, err
		}
		b.Extent().Shift = attach - b.Extent().Width/2
		accenter = b
		kern = env.Mu(1).In(e)
	} else {
		c, ok := a.Accent.Char(e)
		if !ok {
			return nil, &SymbolError{Name: a.Accent.Name}
		}
		variants := e.Metrics().Variants(c)
		if len(variants) == 0 {
			variants = []font.Char{c}
		}
		v := variants[len(variants)-1]
		for _, w := range variants {
			if w.Width*scale >= accentee.Extent().Width {
				v = w
				break
			}
		}
		center := v.Width * scale / 2
		if v.HasTopAccent() {
			center = v.TopAccent * scale
		}
		b := boxes.Glyph(v, scale)
		b.Extent().Shift = attach - center
		accenter = b
		kern = -math.Min(accentee.Extent().Height, e.XHeight()*scale)
	}

	vbox := boxes.NewVBox()
	vbox.Add(accenter)
	vbox.Add(boxes.Strut(0, kern, 0))
	vbox.Add(accentee)

	depth := accentee.Extent().Depth
	total := vbox.VLen()
	vbox.Depth = depth
	vbox.Height = total - depth
	return vbox, nil
}

// baseChar returns the glyph of the innermost base symbol, if the
// base reduces to a single symbol or character.
func baseChar(base Atom, e *env.Env) (font.Char, bool) {
	for {
		switch b := base.(type) {
		case *AccentedAtom:
			base = b.Base
		case *RowAtom:
			if len(b.Children) != 1 {
				return font.Char{}, false
			}
			base = b.Children[0]
		case *SymbolAtom:
			return b.Char(e)
		case *CharAtom:
			return e.Metrics().CharOf(b.Rune)
		default:
			return font.Char{}, false
		}
	}
}

// Clone implements the Atom interface.
func (a *AccentedAtom) Clone() Atom {
	return &AccentedAtom{
		Base:       cloneAtom(a.Base),
		Accent:     a.Accent.Clone().(*SymbolAtom),
		Direct:     a.Direct,
		ChangeSize: a.ChangeSize,
	}
}
