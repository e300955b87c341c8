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

package atom

import (
	"strconv"

	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// LongDivAtom typesets an integer division in the paper long-division
// notation: the quotient on top, the dividend next to the divisor and
// the division symbol, and below them the alternating partial
// products and remainders, one quotient digit at a time.
type LongDivAtom struct {
	ordinary
	Divisor, Dividend int64
}

// LongDiv returns a new LongDivAtom.
func LongDiv(divisor, dividend int64) *LongDivAtom {
	return &LongDivAtom{Divisor: divisor, Dividend: dividend}
}

// Trace returns the rows of the division: the quotient, the dividend,
// and then for each quotient digit the partial product and the
// remainder after subtracting it.
func (a *LongDivAtom) Trace() []string {
	quotient := a.Dividend / a.Divisor
	results := []string{
		strconv.FormatInt(quotient, 10),
		strconv.FormatInt(a.Dividend, 10),
	}

	digits := strconv.FormatInt(quotient, 10)
	place := int64(1)
	for i := 1; i < len(digits); i++ {
		place *= 10
	}
	remaining := a.Dividend
	for i := 0; i < len(digits); i++ {
		product := int64(digits[i]-'0') * place * a.Divisor
		remaining -= product
		results = append(results,
			strconv.FormatInt(product, 10),
			strconv.FormatInt(remaining, 10))
		place /= 10
	}
	return results
}

// CreateBox implements the Atom interface.
func (a *LongDivAtom) CreateBox(e *env.Env) (boxes.Box, error) {
	if a.Divisor <= 0 || a.Dividend < 0 {
		return nil, &InvalidParamError{Msg: "long division divisor must be positive, dividend non-negative"}
	}
	results := a.Trace()

	vrow := VRow()
	vrow.HAlign = boxes.AlignRight
	vrow.VAlign = boxes.AlignTop

	kern := Space(env.Ex(0), env.Ex(2), env.Ex(0.4))
	for i := 1; i < len(results); i++ {
		row := digitRow(results[i])
		if i == 1 {
			row.Add(Space(env.Ex(0), env.Ex(0), env.Ex(0.4)))
			vrow.Append(row)
			continue
		}
		row.Add(kern)
		if i%2 == 0 {
			vrow.Append(UnderBar(row))
		} else {
			vrow.Append(row)
		}
	}

	const enlarge = 1.2

	trace, err := vrow.CreateBox(e)
	if err != nil {
		return nil, err
	}

	hbox := boxes.NewHBox()
	divisor, err := digitRow(strconv.FormatInt(a.Divisor, 10)).CreateBox(e)
	if err != nil {
		return nil, err
	}
	hbox.Add(divisor)
	thin, err := ThinSpace().CreateBox(e)
	if err != nil {
		return nil, err
	}
	hbox.Add(thin)
	div, err := Scaled(Symbol("longdivision", KindOrdinary), enlarge, enlarge).CreateBox(e)
	if err != nil {
		return nil, err
	}
	hbox.Add(div)
	hbox.Add(trace)

	qRow := digitRow(results[0])
	qRow.Add(kern)
	quotient, err := qRow.CreateBox(e)
	if err != nil {
		return nil, err
	}

	vbox := boxes.NewVBox()
	quotient.Extent().Shift = hbox.Width - quotient.Extent().Width
	vbox.Add(quotient)
	t := e.Constants().OverbarRuleThickness * e.Scale() * enlarge
	rule := boxes.Rule(trace.Extent().Width, t, 0)
	rule.Shift = hbox.Width - rule.Width
	vbox.Add(rule)
	vbox.Add(boxes.Strut(0, -t-1, 0))
	vbox.Add(hbox)

	return vbox, nil
}

// digitRow builds a row of character atoms from a decimal string.
func digitRow(s string) *RowAtom {
	row := Row()
	for _, r := range s {
		row.Add(Char(r))
	}
	return row
}

// Clone implements the Atom interface.
func (a *LongDivAtom) Clone() Atom {
	c := *a
	return &c
}
