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

package boxes

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ScaleBox scales a single child box by independent horizontal and
// vertical factors.
type ScaleBox struct {
	BoxExtent

	Content Box
	SX, SY  float64
}

// Scale wraps box in a ScaleBox with the given scale factors.
func Scale(box Box, sx, sy float64) *ScaleBox {
	ext := box.Extent()
	s := &ScaleBox{
		Content: box,
		SX:      sx,
		SY:      sy,
	}
	s.Width = ext.Width * math.Abs(sx)
	if sy >= 0 {
		s.Height = ext.Height * sy
		s.Depth = ext.Depth * sy
	} else {
		s.Height = -ext.Depth * sy
		s.Depth = -ext.Height * sy
	}
	s.Shift = ext.Shift
	return s
}

// Draw implements the Box interface.
func (obj *ScaleBox) Draw(p Painter, xPos, yPos float64) {
	if obj.SX == 0 || obj.SY == 0 {
		return
	}
	p.Save()
	p.Transform(matrix.Scale(obj.SX, obj.SY).Mul(matrix.Translate(xPos, yPos)))
	obj.Content.Draw(p, 0, 0)
	p.Restore()
}

// Walk calls fn for the child of the box.
func (obj *ScaleBox) Walk(fn func(Box)) {
	fn(obj.Content)
}

// RotationOrigin names a point of a box a rotation can pivot on.
type RotationOrigin int8

// Named rotation origins.  "Baseline" refers to the intersection of
// the baseline with the left edge, center or right edge of the box.
const (
	BaselineLeft RotationOrigin = iota
	BaselineCenter
	BaselineRight
	TopLeft
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// RotateBox rotates a single child box by an angle about a pivot
// point.  The extent is the bounding box of the rotated content,
// measured from the original baseline.
type RotateBox struct {
	BoxExtent

	Content Box
	Angle   float64 // degrees, counterclockwise

	cx, cy float64 // pivot, relative to baseline-left, y up
	llx    float64 // left edge of the rotated bounding box
}

// Rotate wraps box in a RotateBox pivoting on a named origin.
func Rotate(box Box, angle float64, origin RotationOrigin) *RotateBox {
	ext := box.Extent()
	var cx, cy float64
	switch origin {
	case BaselineLeft, TopLeft, CenterLeft, BottomLeft:
		cx = 0
	case BaselineCenter, TopCenter, Center, BottomCenter:
		cx = ext.Width / 2
	default:
		cx = ext.Width
	}
	switch origin {
	case BaselineLeft, BaselineCenter, BaselineRight:
		cy = 0
	case TopLeft, TopCenter, TopRight:
		cy = ext.Height
	case CenterLeft, Center, CenterRight:
		cy = (ext.Height - ext.Depth) / 2
	default:
		cy = -ext.Depth
	}
	return RotateAt(box, angle, cx, cy)
}

// RotateAt wraps box in a RotateBox pivoting on the point (x, y)
// relative to the left end of the baseline, y pointing up.
func RotateAt(box Box, angle, x, y float64) *RotateBox {
	ext := box.Extent()
	r := &RotateBox{
		Content: box,
		Angle:   angle,
		cx:      x,
		cy:      y,
	}

	m := matrix.Translate(-x, -y).
		Mul(matrix.RotateDeg(angle)).
		Mul(matrix.Translate(x, y))
	corners := []vec.Vec2{
		{X: 0, Y: ext.Height},
		{X: ext.Width, Y: ext.Height},
		{X: 0, Y: -ext.Depth},
		{X: ext.Width, Y: -ext.Depth},
	}
	bbox := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range corners {
		px, py := m.Apply(c.X, c.Y)
		bbox.LLx = math.Min(bbox.LLx, px)
		bbox.LLy = math.Min(bbox.LLy, py)
		bbox.URx = math.Max(bbox.URx, px)
		bbox.URy = math.Max(bbox.URy, py)
	}

	r.Width = bbox.URx - bbox.LLx
	r.Height = bbox.URy
	r.Depth = -bbox.LLy
	r.Shift = ext.Shift
	r.llx = bbox.LLx
	return r
}

// Draw implements the Box interface.
func (obj *RotateBox) Draw(p Painter, xPos, yPos float64) {
	p.Save()
	m := matrix.Translate(-obj.cx, -obj.cy).
		Mul(matrix.RotateDeg(obj.Angle)).
		Mul(matrix.Translate(obj.cx-obj.llx+xPos, obj.cy+yPos))
	p.Transform(m)
	obj.Content.Draw(p, 0, 0)
	p.Restore()
}

// Walk calls fn for the child of the box.
func (obj *RotateBox) Walk(fn func(Box)) {
	fn(obj.Content)
}

// ColorBox draws a single child box in a foreground color, optionally
// over a filled background.  A nil color is inherited from the
// surrounding context.
type ColorBox struct {
	BoxExtent

	Content    Box
	Foreground color.Color
	Background color.Color
}

// Colored wraps box in a ColorBox.
func Colored(box Box, fg, bg color.Color) *ColorBox {
	return &ColorBox{
		BoxExtent:  *box.Extent(),
		Content:    box,
		Foreground: fg,
		Background: bg,
	}
}

// Draw implements the Box interface.
func (obj *ColorBox) Draw(p Painter, xPos, yPos float64) {
	if obj.Background != nil {
		p.Save()
		p.SetColor(obj.Background)
		p.Rule(xPos, yPos-obj.Depth, obj.Width, obj.Height+obj.Depth)
		p.Restore()
	}
	if obj.Foreground != nil {
		p.Save()
		p.SetColor(obj.Foreground)
		obj.Content.Draw(p, xPos, yPos)
		p.Restore()
	} else {
		obj.Content.Draw(p, xPos, yPos)
	}
}

// Walk calls fn for the child of the box.
func (obj *ColorBox) Walk(fn func(Box)) {
	fn(obj.Content)
}

// LineBox strokes straight line segments inside the area of the box.
// Segment endpoints are relative to the lower-left corner of the box,
// with y pointing up.  The extent is set by the creator and does not
// follow from the segments.
type LineBox struct {
	BoxExtent

	// Segments holds pairs of endpoints.
	Segments []vec.Vec2

	Thickness float64
}

// Lines creates a LineBox from pairs of endpoints.
func Lines(thickness float64, segments ...vec.Vec2) *LineBox {
	return &LineBox{
		Segments:  segments,
		Thickness: thickness,
	}
}

// Draw implements the Box interface.
func (obj *LineBox) Draw(p Painter, xPos, yPos float64) {
	bottom := yPos - obj.Depth
	for i := 0; i+1 < len(obj.Segments); i += 2 {
		a := obj.Segments[i]
		b := obj.Segments[i+1]
		p.Line(xPos+a.X, bottom+a.Y, xPos+b.X, bottom+b.Y, obj.Thickness)
	}
}
