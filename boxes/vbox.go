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

// VBox is a box containing a column of sub-boxes, stacked top to
// bottom.  The baseline of the VBox coincides with the baseline of
// the first child; every further child extends the depth.  A child's
// Shift moves it right.
type VBox struct {
	BoxExtent

	Contents []Box

	leftMost, rightMost float64
}

// NewVBox creates a new VBox containing the given children.
func NewVBox(children ...Box) *VBox {
	vbox := &VBox{}
	for _, box := range children {
		vbox.Add(box)
	}
	return vbox
}

// Add appends a child box at the bottom of the stack.
func (obj *VBox) Add(box Box) {
	ext := box.Extent()
	if len(obj.Contents) == 0 {
		obj.Height = ext.Height
		obj.Depth = ext.Depth
	} else {
		obj.Depth += ext.Height + ext.Depth
	}
	obj.Contents = append(obj.Contents, box)

	if ext.Shift < obj.leftMost {
		obj.leftMost = ext.Shift
	}
	right := ext.Shift
	if ext.Width > 0 {
		right += ext.Width
	}
	if right > obj.rightMost {
		obj.rightMost = right
	}
	obj.Width = obj.rightMost - obj.leftMost
}

// Draw implements the Box interface.
func (obj *VBox) Draw(p Painter, xPos, yPos float64) {
	y := yPos + obj.Height
	for _, child := range obj.Contents {
		ext := child.Extent()
		y -= ext.Height
		child.Draw(p, xPos+ext.Shift-obj.leftMost, y)
		y -= ext.Depth
	}
}

// Walk calls fn for each child of the box.
func (obj *VBox) Walk(fn func(Box)) {
	for _, child := range obj.Contents {
		fn(child)
	}
}

func (obj *VBox) replaceFirst(old, repl Box) bool {
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
