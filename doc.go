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

// Package mathtex converts parsed mathematical formulas into measured
// box trees, following the TeX math-mode layout conventions.
//
// A Formula owns the root of an atom tree, built either
// programmatically from the types in the atom sub-package or by an
// external Parser.  Laying out a formula is a pure function of the
// atom tree and an environment:
//
//	f := mathtex.NewFormula(atom.Char('x'))
//	e := env.New(env.Display, 10, metrics)
//	box, err := mathtex.Layout(f, e)
//
// The resulting box tree carries width, height, depth and shift for
// every node and can be painted by any implementation of the
// boxes.Painter interface.  Re-rendering at a different size or style
// repeats the layout call; the atom tree is never modified.
//
// Glyph metrics come from an implementation of the font.Metrics
// interface; loading font files and rasterizing glyphs is left to the
// host application.
//
// A Registry holds the process-wide tables: predefined formulas by
// name, fallback fonts for Unicode blocks, named colors, and the
// target resolution.  It is an explicit value handed to the code that
// needs it, not ambient global state.
package mathtex
