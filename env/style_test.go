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

import "testing"

func TestStyleDerivations(t *testing.T) {
	testCases := []struct {
		name         string
		style        Style
		cramped      Style
		superscript  Style
		subscript    Style
		subSubscript Style
		isCramped    bool
	}{
		{
			name:         "display",
			style:        Display,
			cramped:      DisplayCramped,
			superscript:  Script,
			subscript:    ScriptCramped,
			subSubscript: ScriptScriptCramped,
		},
		{
			name:         "display_cramped",
			style:        DisplayCramped,
			cramped:      DisplayCramped,
			superscript:  ScriptCramped,
			subscript:    ScriptCramped,
			subSubscript: ScriptScriptCramped,
			isCramped:    true,
		},
		{
			name:         "text",
			style:        Text,
			cramped:      TextCramped,
			superscript:  Script,
			subscript:    ScriptCramped,
			subSubscript: ScriptScriptCramped,
		},
		{
			name:         "script",
			style:        Script,
			cramped:      ScriptCramped,
			superscript:  ScriptScript,
			subscript:    ScriptScriptCramped,
			subSubscript: ScriptScriptCramped,
		},
		{
			name:         "scriptscript",
			style:        ScriptScript,
			cramped:      ScriptScriptCramped,
			superscript:  ScriptScript,
			subscript:    ScriptScriptCramped,
			subSubscript: ScriptScriptCramped,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.style.Cramped(); got != tc.cramped {
				t.Errorf("Cramped() = %v, want %v", got, tc.cramped)
			}
			if got := tc.style.Superscript(); got != tc.superscript {
				t.Errorf("Superscript() = %v, want %v", got, tc.superscript)
			}
			if got := tc.style.Subscript(); got != tc.subscript {
				t.Errorf("Subscript() = %v, want %v", got, tc.subscript)
			}
			if got := tc.style.SubSubscript(); got != tc.subSubscript {
				t.Errorf("SubSubscript() = %v, want %v", got, tc.subSubscript)
			}
			if got := tc.style.IsCramped(); got != tc.isCramped {
				t.Errorf("IsCramped() = %v, want %v", got, tc.isCramped)
			}
		})
	}
}

func TestEnvDerivationsArePure(t *testing.T) {
	e := New(Display, 10, nil)
	d := e.Superscript()
	if e.Style() != Display {
		t.Error("parent environment changed")
	}
	if d.Style() != Script {
		t.Errorf("derived style %v, want %v", d.Style(), Script)
	}
}
