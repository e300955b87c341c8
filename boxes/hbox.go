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

// Alignment selects how content is placed inside a larger box.
type Alignment int8

// Alignment values for horizontal and vertical placement.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignTop
	AlignBottom
)

// HBox is a box containing a row of sub-boxes, placed left to right
// along a common baseline.  A child's Shift moves it down relative to
// that baseline.
type HBox struct {
	BoxExtent

	Contents []Box
}

// NewHBox creates a new HBox containing the given children.
func NewHBox(children ...Box) *HBox {
	hbox := &HBox{}
	for _, box := range children {
		hbox.Add(box)
	}
	return hbox
}

// HBoxTo wraps box in an HBox of the given width, aligning the
// content using struts.  If the target width does not exceed the
// natural width, the box is returned unpadded.
func HBoxTo(width float64, align Alignment, box Box) *HBox {
	rest := width - box.Extent().Width
	if rest <= 0 {
		return NewHBox(box)
	}
	switch align {
	case AlignCenter:
		return NewHBox(Strut(rest/2, 0, 0), box, Strut(rest/2, 0, 0))
	case AlignRight:
		return NewHBox(Strut(rest, 0, 0), box)
	default:
		return NewHBox(box, Strut(rest, 0, 0))
	}
}

// Add appends a child box, extending the row to the right.  The
// row's height and depth account for the child's vertical shift.
func (obj *HBox) Add(box Box) {
	ext := box.Extent()
	obj.Width += ext.Width
	if h := ext.Height - ext.Shift; h > obj.Height {
		obj.Height = h
	}
	if d := ext.Depth + ext.Shift; d > obj.Depth {
		obj.Depth = d
	}
	obj.Contents = append(obj.Contents, box)
}

// Draw implements the Box interface.
func (obj *HBox) Draw(p Painter, xPos, yPos float64) {
	x := xPos
	for _, child := range obj.Contents {
		ext := child.Extent()
		child.Draw(p, x, yPos-ext.Shift)
		x += ext.Width
	}
}

// Walk calls fn for each child of the box.
func (obj *HBox) Walk(fn func(Box)) {
	for _, child := range obj.Contents {
		fn(child)
	}
}

func (obj *HBox) replaceFirst(old, repl Box) bool {
	for i, child := range obj.Contents {
		if child == old {
			obj.Contents[i] = repl
			return true
		}
		if r, ok := child.(replacer); ok && r.replaceFirst(old, repl) {
			return true
		}
	}
	return false
}
