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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/internal/debug/mathfont"
)

func TestOverUnderBar(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	// 'a' is 5 x 4.5; bar thickness 0.4, gap 1.2
	testCases := []struct {
		name string
		a    Atom
		want boxes.BoxExtent
	}{
		{
			name: "over",
			a:    OverBar(Char('a')),
			want: boxes.BoxExtent{Width: 5, Height: 6.1},
		},
		{
			name: "under",
			a:    UnderBar(Char('a')),
			want: boxes.BoxExtent{Width: 5, Height: 4.5, Depth: 1.6},
		},
	}
	opt := cmp.Comparer(func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	})
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			box, err := tc.a.CreateBox(e)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, *box.Extent(), opt); d != "" {
				t.Errorf("extent mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestStrikeThrough(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())
	box, err := StrikeThrough(Char('a')).CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}

	// the overlay must not change the extent of the base
	want := boxes.BoxExtent{Width: 5, Height: 4.5}
	if d := cmp.Diff(want, *box.Extent()); d != "" {
		t.Errorf("extent mismatch (-want +got):\n%s", d)
	}

	// the line sits at axis height
	var rule *boxes.RuleBox
	boxes.Walk(box, func(b boxes.Box) {
		if r, ok := b.(*boxes.RuleBox); ok {
			rule = r
		}
	})
	if rule == nil {
		t.Fatal("no rule in layout")
	}
	if got, want := rule.Shift, -2.5+0.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("rule shift %g, want %g", got, want)
	}
	if rule.Width != 5 {
		t.Errorf("rule width %g, want 5", rule.Width)
	}
}

func TestVCenterExtent(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())
	box, err := VCenter(Placeholder(2, 6, 0, 0)).CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	want := boxes.BoxExtent{Width: 2, Height: 5.5, Depth: 0.5}
	if d := cmp.Diff(want, *box.Extent()); d != "" {
		t.Errorf("extent mismatch (-want +got):\n%s", d)
	}
}

func TestRuleAtom(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())
	box, err := NewRule(env.Pt(10), env.Pt(2), env.Pt(1)).CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	ext := box.Extent()
	if ext.Width != 10 || ext.Height != 2 {
		t.Errorf("got %gx%g, want 10x2", ext.Width, ext.Height)
	}
	if ext.Shift != -1 {
		t.Errorf("shift %g, want -1", ext.Shift)
	}
}

func TestHLine(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	a := HLine(env.Pt(30), env.Dimen{})
	if a.LeftKind() != KindHLine || a.RightKind() != KindHLine {
		t.Error("wrong spacing class")
	}
	box, err := a.CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	ext := box.Extent()
	if ext.Width != 30 {
		t.Errorf("width %g, want 30", ext.Width)
	}
	if got, want := ext.VLen(), 0.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("vlen %g, want %g", got, want)
	}
}

func TestUnderScore(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())
	box, err := UnderScore().CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	ext := box.Extent()
	if got, want := ext.Width, 7.6; math.Abs(got-want) > 1e-9 {
		t.Errorf("width %g, want %g", got, want)
	}
}
