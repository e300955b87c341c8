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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/internal/debug/mathfont"
)

func vrowRows() []Atom {
	return []Atom{
		Placeholder(4, 2, 1, 0),
		Placeholder(10, 2, 1, 0),
		Placeholder(6, 2, 1, 0),
	}
}

func TestVRowAlignment(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	// three rows of vertical extent 3 each, total 9
	testCases := []struct {
		name   string
		valign boxes.Alignment
		want   boxes.BoxExtent
	}{
		{
			name:   "center_on_axis",
			valign: boxes.AlignCenter,
			want:   boxes.BoxExtent{Width: 10, Height: 7, Depth: 2},
		},
		{
			name:   "top",
			valign: boxes.AlignTop,
			want:   boxes.BoxExtent{Width: 10, Height: 2, Depth: 7},
		},
		{
			name:   "bottom",
			valign: boxes.AlignBottom,
			want:   boxes.BoxExtent{Width: 10, Height: 8, Depth: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := VRow(vrowRows()...)
			a.VAlign = tc.valign
			a.HAlign = boxes.AlignCenter
			box, err := a.CreateBox(e)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, *box.Extent()); d != "" {
				t.Errorf("extent mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestVRowInterline(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	a := VRow(vrowRows()...)
	a.VAlign = boxes.AlignTop
	a.AddInterline = true
	box, err := a.CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	// two interline struts of 0.2*10 between three rows
	want := boxes.BoxExtent{Width: 10, Height: 2, Depth: 11}
	if d := cmp.Diff(want, *box.Extent()); d != "" {
		t.Errorf("extent mismatch (-want +got):\n%s", d)
	}
}

func TestVRowRaise(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	a := VRow(Placeholder(4, 2, 1, 0))
	a.Raise = env.Pt(5)
	box, err := a.CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := box.Extent().Shift, -5.0; got != want {
		t.Errorf("shift %g, want %g", got, want)
	}
}

func TestVRowFlattening(t *testing.T) {
	inner := VRow(Char('a'), Char('b'))
	outer := VRow(Char('c'), inner)
	if len(outer.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(outer.Elements))
	}

	// Append must not flatten
	outer.Append(VRow(Char('d')))
	if len(outer.Elements) != 4 {
		t.Errorf("got %d elements, want 4", len(outer.Elements))
	}

	outer.Prepend(Char('e'))
	if len(outer.Elements) != 5 || outer.Elements[0].(*CharAtom).Rune != 'e' {
		t.Error("Prepend did not add at the top")
	}
}
