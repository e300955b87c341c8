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
	"errors"
	"testing"

	"seehuhn.de/go/mathtex/atom"
)

// stubParser maps fixed source strings to atom trees.  Unknown
// sources fail with errSyntax.
type stubParser struct {
	atoms map[string]atom.Atom
	calls int
}

var errSyntax = errors.New("syntax error")

func (p *stubParser) Parse(text string, opts *ParseOptions) (atom.Atom, error) {
	p.calls++
	if a, ok := p.atoms[text]; ok {
		return a.Clone(), nil
	}
	return nil, errSyntax
}

func TestParseStrict(t *testing.T) {
	p := &stubParser{atoms: map[string]atom.Atom{"x": atom.Char('x')}}

	res, err := Parse(p, "x", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Root.(*atom.CharAtom); !ok {
		t.Errorf("root is %T, want CharAtom", res.Root)
	}
	if f := res.Formula(); f.Root() != res.Root {
		t.Error("formula root differs from parse root")
	}

	_, err = Parse(p, "bad", nil)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want ParseError", err)
	}
	if !errors.Is(err, errSyntax) {
		t.Error("underlying error not wrapped")
	}
}

func TestParsePartial(t *testing.T) {
	p := &stubParser{}

	res, err := Parse(p, "bad", &ParseOptions{Partial: true})
	if err != nil {
		t.Fatalf("partial parse failed: %v", err)
	}
	if _, ok := res.Root.(*atom.EmptyAtom); !ok {
		t.Errorf("recovery root is %T, want EmptyAtom", res.Root)
	}
	var parseErr *ParseError
	if !errors.As(res.Err, &parseErr) {
		t.Errorf("result error is %v, want ParseError", res.Err)
	}
}
