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
	"errors"
	"sort"
	"testing"
	"unicode"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/mathtex/atom"
	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/internal/debug/mathfont"
)

func TestRegistryFormulaCache(t *testing.T) {
	p := &stubParser{atoms: map[string]atom.Atom{
		"x":  atom.Char('x'),
		"ab": atom.Row(atom.Char('a'), atom.Char('b')),
	}}
	r := NewRegistry(p)

	// a single-atom formula is parsed once and then served from cache
	r.RegisterFormula("small", "x")
	f1, err := r.Formula("small")
	if err != nil {
		t.Fatal(err)
	}
	f2, err := r.Formula("small")
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Errorf("parser called %d times, want 1", p.calls)
	}
	if f1 == f2 || f1.Root() == f2.Root() {
		t.Error("lookups share state")
	}

	// a multi-atom row is re-parsed on every lookup
	p.calls = 0
	r.RegisterFormula("large", "ab")
	if _, err := r.Formula("large"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Formula("large"); err != nil {
		t.Fatal(err)
	}
	if p.calls != 2 {
		t.Errorf("parser called %d times, want 2", p.calls)
	}
}

func TestRegistryFormulaOverwrite(t *testing.T) {
	p := &stubParser{atoms: map[string]atom.Atom{
		"x": atom.Char('x'),
		"y": atom.Char('y'),
	}}
	r := NewRegistry(p)

	r.RegisterFormula("f", "x")
	if _, err := r.Formula("f"); err != nil {
		t.Fatal(err)
	}

	// re-registration drops the cached parse
	r.RegisterFormula("f", "y")
	f, err := r.Formula("f")
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := f.Root().(*atom.CharAtom); !ok || c.Rune != 'y' {
		t.Error("lookup returned the stale formula")
	}
}

func TestRegistryFormulaErrors(t *testing.T) {
	p := &stubParser{}
	r := NewRegistry(p)

	_, err := r.Formula("nosuch")
	var notFound *FormulaNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %v, want FormulaNotFoundError", err)
	}

	r.RegisterFormula("broken", "bad")
	_, err = r.Formula("broken")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("got %v, want ParseError", err)
	}
}

func TestRegistryFormulaNames(t *testing.T) {
	r := NewRegistry(&stubParser{})
	r.RegisterFormula("beta", "x")
	r.RegisterFormula("alpha", "x")
	r.RegisterFormula("gamma", "x")

	names := r.FormulaNames()
	if len(names) != 3 || !sort.StringsAreSorted(names) {
		t.Errorf("got %v", names)
	}
}

func TestRegistryColors(t *testing.T) {
	r := NewRegistry(&stubParser{})

	// the SVG names are pre-registered
	c, ok := r.Color("red")
	if !ok || c != colornames.Red {
		t.Errorf("got %v, %t", c, ok)
	}

	r.RegisterColor("red", colornames.Blue)
	if c, _ := r.Color("red"); c != colornames.Blue {
		t.Error("registration did not overwrite")
	}

	if names := r.ColorNames(); !sort.StringsAreSorted(names) {
		t.Error("color names not sorted")
	}
}

func TestRegistryBlockFonts(t *testing.T) {
	r := NewRegistry(&stubParser{})

	if r.IsRegisteredBlock(unicode.Greek) {
		t.Fatal("block registered in empty registry")
	}

	r.RegisterBlockFont(unicode.Greek, FontSpec{Serif: "Alpha"})
	r.RegisterBlockFont(unicode.Cyrillic, FontSpec{Serif: "Beta"})
	if !r.IsRegisteredBlock(unicode.Greek) {
		t.Error("block not registered")
	}

	spec, ok := r.BlockFont('α')
	if !ok || spec.Serif != "Alpha" {
		t.Errorf("got %v, %t", spec, ok)
	}
	if _, ok := r.BlockFont('a'); ok {
		t.Error("latin rune matched a registered block")
	}

	// re-registration replaces the font spec
	r.RegisterBlockFont(unicode.Greek, FontSpec{Serif: "Gamma"})
	if spec, _ := r.BlockFont('α'); spec.Serif != "Gamma" {
		t.Error("registration did not overwrite")
	}

	merged := r.RegisteredBlocks()
	if !unicode.Is(merged, 'α') || !unicode.Is(merged, 'б') {
		t.Error("merged table incomplete")
	}
	if unicode.Is(merged, 'a') {
		t.Error("merged table too large")
	}
}

func TestRegistryDPITarget(t *testing.T) {
	r := NewRegistry(&stubParser{})
	r.SetDPITarget(144)

	e := r.NewEnv(env.Display, 10, mathfont.New())
	if got, want := e.Scale(), 20.0; got != want {
		t.Errorf("scale %g, want %g", got, want)
	}
}
