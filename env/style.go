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

// Style is one of the four TeX math styles, each in an upright and a
// cramped variant.  Smaller values denote larger (less compressed)
// styles: Display > Text > Script > ScriptScript.
type Style int8

// The math styles, ordered from largest to smallest.
const (
	Display Style = iota
	DisplayCramped
	Text
	TextCramped
	Script
	ScriptCramped
	ScriptScript
	ScriptScriptCramped
)

// IsCramped reports whether s is a cramped variant.
func (s Style) IsCramped() bool {
	return s&1 == 1
}

// Cramped returns the cramped variant of s at the same level.
func (s Style) Cramped() Style {
	return s | 1
}

// Superscript returns the style used for superscripts of material in
// style s: one level down, keeping the cramped flag.
func (s Style) Superscript() Style {
	if s < Script {
		return Script | s&1
	}
	return ScriptScript | s&1
}

// Subscript returns the style used for subscripts of material in
// style s: one level down, forced cramped.
func (s Style) Subscript() Style {
	return s.Superscript().Cramped()
}

// SubSubscript steps down two levels and forces cramped.
func (s Style) SubSubscript() Style {
	return s.Superscript().Superscript().Cramped()
}

// Min returns the larger (less compressed) of the two styles.
func (s Style) Min(other Style) Style {
	if other < s {
		return other
	}
	return s
}

func (s Style) String() string {
	names := []string{
		"display", "display'",
		"text", "text'",
		"script", "script'",
		"scriptscript", "scriptscript'",
	}
	if s < 0 || int(s) >= len(names) {
		return "invalid style"
	}
	return names[s]
}
