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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/internal/debug/mathfont"
)

// The "vert" delimiter of the test font comes in variants with total
// vertical extents 10, 15, 22.5 and 30 device units at text size 10.

func TestVDelim(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	testCases := []struct {
		name      string
		minHeight float64
		wantVLen  float64
	}{
		{"smallest", 5, 10},
		{"second_variant", 12, 15},
		{"tallest_variant", 30, 30},
		{"scaled_up", 40, 40},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := VDelim("vert", e, tc.minHeight)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.Extent().VLen(); math.Abs(got-tc.wantVLen) > 1e-9 {
				t.Errorf("vlen %g, want %g", got, tc.wantVLen)
			}
		})
	}

	_, err := VDelim("nosuch", e, 5)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Errorf("got %v, want SymbolError", err)
	}
}

func TestCenterOnAxis(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())
	b := boxes.Strut(1, 4, 2)
	CenterOnAxis(b, e)
	// -(6/2 - 4) - 0.25*10
	if got, want := b.Shift, -1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("shift %g, want %g", got, want)
	}
}

func TestFenced(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	m := Middle("vert")
	base := Row(Char('a'), m, Char('b'))
	f := Fenced(base, "lparen", "rparen", []*MiddleAtom{m})

	box, err := f.CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}

	// the delimiters must be at least as tall as the base
	baseVLen := 4.5
	numDelims := make(map[string]int)
	boxes.Walk(box, func(b boxes.Box) {
		g, ok := b.(*boxes.GlyphBox)
		if !ok {
			return
		}
		switch g.Char.Name {
		case "lparen", "rparen", "vert":
			numDelims[g.Char.Name]++
			if g.VLen() < baseVLen {
				t.Errorf("delimiter %q vlen %g, want >= %g", g.Char.Name, g.VLen(), baseVLen)
			}
		}
	})
	// left and right parenthesis plus the spliced-in middle bar
	for _, name := range []string{"lparen", "rparen", "vert"} {
		if numDelims[name] != 1 {
			t.Errorf("found %d %q glyphs, want 1", numDelims[name], name)
		}
	}
}

func TestFencedClone(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	m := Middle("vert")
	f := Fenced(Row(Char('a'), m, Char('b')), "lparen", "rparen", []*MiddleAtom{m})

	c := f.Clone().(*FencedAtom)
	if len(c.Middles) != 1 || c.Middles[0] == m {
		t.Fatal("middle marker not copied")
	}

	// the cloned fence must resolve its own middle marker
	box, err := c.CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	boxes.Walk(box, func(b boxes.Box) {
		if g, ok := b.(*boxes.GlyphBox); ok && g.Char.Name == "vert" {
			found = true
		}
	})
	if !found {
		t.Error("middle delimiter missing from cloned layout")
	}
}
