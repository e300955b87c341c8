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

func TestCancel(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	testCases := []struct {
		name         string
		typ          CancelType
		wantSegments int
	}{
		{"slash", CancelSlash, 2},
		{"backslash", CancelBackslash, 2},
		{"cross", CancelCross, 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			box, err := Cancel(Char('a'), tc.typ).CreateBox(e)
			if err != nil {
				t.Fatal(err)
			}

			// the overlay must not change the extent of the base
			want := boxes.BoxExtent{Width: 5, Height: 4.5}
			if d := cmp.Diff(want, *box.Extent()); d != "" {
				t.Errorf("extent mismatch (-want +got):\n%s", d)
			}

			var lines *boxes.LineBox
			boxes.Walk(box, func(b boxes.Box) {
				if l, ok := b.(*boxes.LineBox); ok {
					lines = l
				}
			})
			if lines == nil {
				t.Fatal("no line overlay in layout")
			}
			if len(lines.Segments) != tc.wantSegments {
				t.Errorf("got %d segment points, want %d",
					len(lines.Segments), tc.wantSegments)
			}
			if lines.Width != 5 || lines.Height != 4.5 {
				t.Errorf("overlay extent %gx%g, want 5x4.5",
					lines.Width, lines.Height)
			}
		})
	}
}
