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

import (
	"seehuhn.de/go/mathtex/atom"
)

// Parser turns source text into an atom tree.  Implementations are
// provided by the host application; this package only consumes the
// result.
type Parser interface {
	Parse(text string, opts *ParseOptions) (atom.Atom, error)
}

// ParseOptions control how source text is parsed.
type ParseOptions struct {
	// Partial makes parse errors recoverable: instead of failing, the
	// parse result substitutes an empty atom and carries the error.
	Partial bool

	// IgnoreWhitespace makes whitespace in the source insignificant.
	IgnoreWhitespace bool
}

// ParseResult is the outcome of parsing a formula.  In partial mode a
// failed parse yields an empty root together with the error which was
// recovered from; otherwise Err is nil.
type ParseResult struct {
	Root atom.Atom
	Err  error
}

// Parse runs p on the given source text.  In strict mode a parse
// error aborts; in partial mode it is recovered by substituting an
// empty atom, and reported through the result's Err field.
func Parse(p Parser, text string, opts *ParseOptions) (ParseResult, error) {
	root, err := p.Parse(text, opts)
	if err != nil {
		perr := &ParseError{Text: text, Err: err}
		if opts != nil && opts.Partial {
			return ParseResult{Root: atom.Empty(), Err: perr}, nil
		}
		return ParseResult{}, perr
	}
	return ParseResult{Root: root}, nil
}

// Formula wraps the parse result in a new formula.
func (res ParseResult) Formula() *Formula {
	f := NewFormula()
	f.Add(res.Root)
	return f
}
