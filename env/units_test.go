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

package env

import (
	"math"
	"testing"

	"seehuhn.de/go/mathtex/font"
)

type testMetrics struct {
	font.Metrics
}

func (testMetrics) Constants() font.Constants {
	return font.Constants{
		Quad:              1.0,
		XHeight:           0.5,
		ScriptScale:       0.7,
		ScriptScriptScale: 0.5,
	}
}

func TestDimenConversion(t *testing.T) {
	e := New(Display, 10, testMetrics{})

	testCases := []struct {
		name string
		d    Dimen
		want float64
	}{
		{"unset", Dimen{}, 0},
		{"em", Em(2), 20},
		{"ex", Ex(2), 10},
		{"mu", Mu(18), 10},
		{"pt", Pt(7), 7},
		{"px", Px(3), 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.In(e); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	testCases := []struct {
		name  string
		style Style
		want  float64
	}{
		{"display", Display, 10},
		{"text", Text, 10},
		{"script", Script, 7},
		{"script_cramped", ScriptCramped, 7},
		{"scriptscript", ScriptScript, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(tc.style, 10, testMetrics{})
			if got := e.Scale(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestScaleForDPI(t *testing.T) {
	e := NewForDPI(Display, 10, 144, testMetrics{})
	if got, want := e.Scale(), 20.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g, want %g", got, want)
	}

	// points are device-independent
	if got, want := Pt(7).In(e), 14.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g, want %g", got, want)
	}
}
