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

// ArrayFormula accumulates atoms into a row-major table of cells.
// Atoms are added to the current cell through the embedded Formula;
// AddCol and AddRow close the current cell and move on.  A nil cell
// means "unfilled".
type ArrayFormula struct {
	Formula

	cells    [][]atom.Atom
	row, col int

	rowSpecifiers  map[int][]atom.Atom
	cellSpecifiers map[[2]int][]atom.Atom
}

// NewArrayFormula creates an empty array.
func NewArrayFormula() *ArrayFormula {
	return &ArrayFormula{
		cells:          [][]atom.Atom{nil},
		rowSpecifiers:  make(map[int][]atom.Atom),
		cellSpecifiers: make(map[[2]int][]atom.Atom),
	}
}

// AddCol closes the current cell and starts the next one.
func (a *ArrayFormula) AddCol() {
	a.cells[a.row] = append(a.cells[a.row], a.root)
	a.root = nil
	a.col++
}

// AddCols closes the current cell and skips ahead by n columns,
// leaving the intermediate cells unfilled.
func (a *ArrayFormula) AddCols(n int) {
	a.cells[a.row] = append(a.cells[a.row], a.root)
	for i := 1; i < n-1; i++ {
		a.cells[a.row] = append(a.cells[a.row], nil)
	}
	a.root = nil
	a.col += n
}

// InsertAtomIntoCol inserts el at the given column of every completed
// row, shifting later columns right.
func (a *ArrayFormula) InsertAtomIntoCol(col int, el atom.Atom) {
	a.col++
	for i := 0; i < a.row; i++ {
		if col <= len(a.cells[i]) {
			a.cells[i] = append(a.cells[i], nil)
			copy(a.cells[i][col+1:], a.cells[i][col:])
			a.cells[i][col] = el
		}
	}
}

// AddRow closes the current cell and starts a new row.
func (a *ArrayFormula) AddRow() {
	a.AddCol()
	a.cells = append(a.cells, nil)
	a.row++
	a.col = 0
}

// AddRowSpecifier attaches a specifier to the current row.
func (a *ArrayFormula) AddRowSpecifier(spec atom.Atom) {
	a.rowSpecifiers[a.row] = append(a.rowSpecifiers[a.row], spec)
}

// AddCellSpecifier attaches a specifier to the current cell.
func (a *ArrayFormula) AddCellSpecifier(spec atom.Atom) {
	key := [2]int{a.row, a.col}
	a.cellSpecifiers[key] = append(a.cellSpecifiers[key], spec)
}

// RowSpecifiers returns the specifiers attached to a row.
func (a *ArrayFormula) RowSpecifiers(row int) []atom.Atom {
	return a.rowSpecifiers[row]
}

// CellSpecifiers returns the specifiers attached to a cell.
func (a *ArrayFormula) CellSpecifiers(row, col int) []atom.Atom {
	return a.cellSpecifiers[[2]int{row, col}]
}

// Rows returns the number of completed rows.
func (a *ArrayFormula) Rows() int {
	return a.row
}

// Cols returns the column count after CheckDimensions.
func (a *ArrayFormula) Cols() int {
	return a.col
}

// Cell returns the atom in the given cell, or nil if the cell is
// unfilled.
func (a *ArrayFormula) Cell(row, col int) atom.Atom {
	if row < 0 || row >= len(a.cells) {
		return nil
	}
	r := a.cells[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// CheckDimensions completes the table: a pending cell is closed, and
// every row is padded with unfilled cells to the width of the widest
// row.  Rows starting with an inter-text atom span the full width and
// are left alone.
func (a *ArrayFormula) CheckDimensions() {
	if len(a.cells[len(a.cells)-1]) != 0 || a.root != nil {
		a.AddRow()
	}

	a.row = len(a.cells) - 1
	a.col = len(a.cells[0])
	for i := 1; i < a.row; i++ {
		if len(a.cells[i]) > a.col {
			a.col = len(a.cells[i])
		}
	}

	for i := 0; i < a.row; i++ {
		if len(a.cells[i]) == a.col {
			continue
		}
		first := atom.Atom(nil)
		if len(a.cells[i]) > 0 {
			first = a.cells[i][0]
		}
		if first == nil || first.LeftKind() == atom.KindInterText {
			continue
		}
		for len(a.cells[i]) < a.col {
			a.cells[i] = append(a.cells[i], nil)
		}
	}
}

// AsVRow returns the cells of the array stacked into a single
// vertical row with interline spacing, in row-major order.
func (a *ArrayFormula) AsVRow() *atom.VRowAtom {
	vrow := atom.VRow()
	vrow.AddInterline = true
	for _, row := range a.cells {
		for _, cell := range row {
			vrow.Append(cell)
		}
	}
	return vrow
}
