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

// FormulaNotFoundError indicates a lookup of a predefined formula
// name which has not been registered.
type FormulaNotFoundError struct {
	Name string
}

func (err *FormulaNotFoundError) Error() string {
	return "formula " + quote(err.Name) + " not defined"
}

// ParseError indicates that the external parser rejected the source
// text of a formula.
type ParseError struct {
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return "cannot parse " + quote(err.Text) + ": " + err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func quote(s string) string {
	return `"` + s + `"`
}
