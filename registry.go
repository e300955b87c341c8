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
	"image/color"
	"sort"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
	"golang.org/x/text/unicode/rangetable"

	"seehuhn.de/go/mathtex/atom"
	"seehuhn.de/go/mathtex/env"
	"seehuhn.de/go/mathtex/font"
)

// FontSpec names the fallback font faces used for a registered
// Unicode block.
type FontSpec struct {
	SansSerif, Serif string
}

// Registry holds the process-wide tables: predefined formulas by
// name, fallback fonts per Unicode block, named colors, and the
// target resolution.  Registration happens during an explicit
// initialization phase; the registry does not synchronize concurrent
// writers.  Registering a name again overwrites the earlier entry.
type Registry struct {
	parser Parser
	dpi    float64

	formulaSources map[string]string
	formulaCache   map[string]*Formula

	blocks []registeredBlock
	colors map[string]color.Color
}

type registeredBlock struct {
	table *unicode.RangeTable
	spec  FontSpec
}

// NewRegistry creates a registry using the given parser for
// predefined formulas.  The color table is seeded with the SVG 1.1
// color names.
func NewRegistry(p Parser) *Registry {
	r := &Registry{
		parser:         p,
		dpi:            72,
		formulaSources: make(map[string]string),
		formulaCache:   make(map[string]*Formula),
		colors:         make(map[string]color.Color),
	}
	for name, c := range colornames.Map {
		r.colors[name] = c
	}
	return r
}

// SetDPITarget sets the resolution all subsequent layouts render at.
func (r *Registry) SetDPITarget(dpi float64) {
	r.dpi = dpi
}

// NewEnv creates a layout environment using the registry's target
// resolution.
func (r *Registry) NewEnv(style env.Style, textSize float64, metrics font.Metrics) *env.Env {
	return env.NewForDPI(style, textSize, r.dpi, metrics)
}

// RegisterFormula registers source text for a predefined formula.
// An earlier registration under the same name is replaced.
func (r *Registry) RegisterFormula(name, text string) {
	r.formulaSources[name] = text
	delete(r.formulaCache, name)
}

// Formula returns an independent copy of the named predefined
// formula, parsing the registered source on first use.
//
// Parse results are only cached when the root is not a multi-atom
// row; larger formulas are re-parsed on every lookup.
func (r *Registry) Formula(name string) (*Formula, error) {
	if f, ok := r.formulaCache[name]; ok {
		return f.Clone(), nil
	}
	text, ok := r.formulaSources[name]
	if !ok {
		return nil, &FormulaNotFoundError{Name: name}
	}
	res, err := Parse(r.parser, text, nil)
	if err != nil {
		return nil, err
	}
	f := res.Formula()
	if row, ok := f.Root().(*atom.RowAtom); !ok || len(row.Children) <= 1 {
		r.formulaCache[name] = f
	}
	return f.Clone(), nil
}

// FormulaNames returns the names of all registered formulas, sorted.
func (r *Registry) FormulaNames() []string {
	names := maps.Keys(r.formulaSources)
	sort.Strings(names)
	return names
}

// RegisterBlockFont registers fallback fonts for a Unicode block.  A
// block registered before is overwritten.
func (r *Registry) RegisterBlockFont(block *unicode.RangeTable, spec FontSpec) {
	for i, b := range r.blocks {
		if b.table == block {
			r.blocks[i].spec = spec
			return
		}
	}
	r.blocks = append(r.blocks, registeredBlock{table: block, spec: spec})
}

// IsRegisteredBlock reports whether fallback fonts are registered for
// the block.
func (r *Registry) IsRegisteredBlock(block *unicode.RangeTable) bool {
	for _, b := range r.blocks {
		if b.table == block {
			return true
		}
	}
	return false
}

// BlockFont returns the fallback fonts for the block containing the
// given rune.  Blocks are tried in registration order.
func (r *Registry) BlockFont(c rune) (FontSpec, bool) {
	for _, b := range r.blocks {
		if unicode.Is(b.table, c) {
			return b.spec, true
		}
	}
	return FontSpec{}, false
}

// RegisteredBlocks returns all registered blocks merged into a single
// range table.
func (r *Registry) RegisteredBlocks() *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, len(r.blocks))
	for i, b := range r.blocks {
		tables[i] = b.table
	}
	return rangetable.Merge(tables...)
}

// RegisterColor registers a named color, replacing an earlier
// registration under the same name.
func (r *Registry) RegisterColor(name string, c color.Color) {
	r.colors[name] = c
}

// Color looks up a named color.
func (r *Registry) Color(name string) (color.Color, bool) {
	c, ok := r.colors[name]
	return c, ok
}

// ColorNames returns all registered color names, sorted.
func (r *Registry) ColorNames() []string {
	names := maps.Keys(r.colors)
	sort.Strings(names)
	return names
}
