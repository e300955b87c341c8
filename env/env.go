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

// Package env holds the rendering context threaded through every
// layout call: the current math style, the text size, the
// point-to-pixel conversion and the font metrics.  Style transitions
// derive new environments; an environment handed to a child layout is
// never mutated.
package env

import (
	"seehuhn.de/go/mathtex/font"
)

// Env is the context a box tree is laid out in.  Values are cheap to
// copy; all derivation methods return a modified copy and leave the
// receiver unchanged.
type Env struct {
	style          Style
	textSize       float64 // pt
	pixelsPerPoint float64
	metrics        font.Metrics
}

// New creates an environment with a point-to-pixel factor of 1.
func New(style Style, textSize float64, metrics font.Metrics) *Env {
	return &Env{
		style:          style,
		textSize:       textSize,
		pixelsPerPoint: 1,
		metrics:        metrics,
	}
}

// NewForDPI creates an environment rendering at the given target DPI.
func NewForDPI(style Style, textSize, dpi float64, metrics font.Metrics) *Env {
	e := New(style, textSize, metrics)
	e.pixelsPerPoint = dpi / 72
	return e
}

// Style returns the current math style.
func (e *Env) Style() Style {
	return e.style
}

// TextSize returns the base font size in points.
func (e *Env) TextSize() float64 {
	return e.textSize
}

// Metrics returns the font metrics provider.
func (e *Env) Metrics() font.Metrics {
	return e.metrics
}

// Constants returns the math constants of the current font.
func (e *Env) Constants() font.Constants {
	return e.metrics.Constants()
}

// Scale converts em units of the current style into device units.
// It accounts for the text size, the style-dependent script scaling
// and the point-to-pixel factor.
func (e *Env) Scale() float64 {
	c := e.metrics.Constants()
	q := 1.0
	switch {
	case e.style >= ScriptScript:
		q = c.ScriptScriptScale
	case e.style >= Script:
		q = c.ScriptScale
	}
	return e.textSize * e.pixelsPerPoint * q
}

// WithStyle returns a copy of e using the given style.
func (e *Env) WithStyle(s Style) *Env {
	d := *e
	d.style = s
	return &d
}

// Cramped returns a copy of e in the cramped variant of the current
// style.
func (e *Env) Cramped() *Env {
	return e.WithStyle(e.style.Cramped())
}

// Superscript returns a copy of e in superscript style.
func (e *Env) Superscript() *Env {
	return e.WithStyle(e.style.Superscript())
}

// Subscript returns a copy of e in subscript style.
func (e *Env) Subscript() *Env {
	return e.WithStyle(e.style.Subscript())
}

// AxisHeight returns the math axis height in em units.
func (e *Env) AxisHeight() float64 {
	return e.metrics.Constants().AxisHeight
}

// XHeight returns the x-height in em units.
func (e *Env) XHeight() float64 {
	return e.metrics.Constants().XHeight
}

// RuleThickness returns the default rule thickness in em units.
func (e *Env) RuleThickness() float64 {
	return e.metrics.Constants().DefaultRuleThickness
}

// LineSpace returns the interline gap in em units.
func (e *Env) LineSpace() float64 {
	return e.metrics.Constants().LineSpace
}
