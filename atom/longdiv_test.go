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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/internal/debug/mathfont"
)

func TestLongDivTrace(t *testing.T) {
	testCases := []struct {
		name              string
		divisor, dividend int64
		want              []string
	}{
		{
			name:    "single_digit",
			divisor: 3, dividend: 7,
			want: []string{"2", "7", "6", "1"},
		},
		{
			name:    "two_digits",
			divisor: 4, dividend: 95,
			want: []string{"23", "95", "80", "15", "12", "3"},
		},
		{
			name:    "exact",
			divisor: 5, dividend: 10,
			want: []string{"2", "10", "10", "0"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LongDiv(tc.divisor, tc.dividend).Trace()
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("trace mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLongDivLayout(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	box, err := LongDiv(4, 95).CreateBox(e)
	if err != nil {
		t.Fatal(err)
	}
	ext := box.Extent()
	if ext.Width <= 0 || ext.VLen() <= 0 {
		t.Errorf("degenerate extent %gx%g+%g", ext.Width, ext.Height, ext.Depth)
	}
}

func TestLongDivInvalid(t *testing.T) {
	e := env.New(env.Display, 10, mathfont.New())

	for _, a := range []*LongDivAtom{
		LongDiv(0, 5),
		LongDiv(-3, 5),
		LongDiv(3, -5),
	} {
		_, err := a.CreateBox(e)
		var paramErr *InvalidParamError
		if !errors.As(err, &paramErr) {
			t.Errorf("LongDiv(%d, %d): got %v, want InvalidParamError",
				a.Divisor, a.Dividend, err)
			continue
		}
		// zero divisors are rejected too, the message must not
		// suggest otherwise
		if want := "divisor must be positive"; !strings.Contains(paramErr.Msg, want) {
			t.Errorf("LongDiv(%d, %d): message %q does not mention %q",
				a.Divisor, a.Dividend, paramErr.Msg, want)
		}
	}
}
