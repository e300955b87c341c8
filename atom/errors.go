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

// SymbolError indicates that a symbol name could not be resolved in
// the current font, or resolved to a symbol of the wrong type.
type SymbolError struct {
	Name   string
	Reason string
}

func (err *SymbolError) Error() string {
	if err.Reason != "" {
		return "symbol " + quote(err.Name) + ": " + err.Reason
	}
	return "symbol " + quote(err.Name) + " not found"
}

// InvalidParamError indicates an unsupported parameter value in an
// atom construction.
type InvalidParamError struct {
	Msg string
}

func (err *InvalidParamError) Error() string {
	return "invalid parameter: " + err.Msg
}

func quote(s string) string {
	return `"` + s + `"`
}
