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
	"seehuhn.de/go/mathtex/boxes"
	"seehuhn.de/go/mathtex/env"
)

// Inter-atom spacing, following the TeX spacing matrix.  Values are
// in math units (1/18 em): 3 = thin, 4 = medium, 5 = thick.  A
// negative value marks a space which is suppressed in script and
// scriptscript styles.
var glueTable = [8][8]int8{
	//              ord  op  bin  rel  open close punct inner
	/* ord   */ {0, 3, -4, -5, 0, 0, 0, -3},
	/* op    */ {3, 3, 0, -5, 0, 0, 0, -3},
	/* bin   */ {-4, -4, 0, 0, -4, 0, 0, -4},
	/* rel   */ {-5, -5, 0, 0, -5, 0, 0, -5},
	/* open  */ {0, 0, 0, 0, 0, 0, 0, 0},
	/* close */ {0, 3, -4, -5, 0, 0, 0, -3},
	/* punct */ {-3, -3, 0, -3, -3, -3, -3, -3},
	/* inner */ {-3, 3, -4, -5, -3, 0, -3, -3},
}

// InterAtomGlue returns the spacing inserted between two neighbouring
// atoms of the given spacing classes, or nil if no space is
// inserted.
func InterAtomGlue(left, right Kind, e *env.Env) boxes.Box {
	l := spacingClass(left)
	r := spacingClass(right)
	if l < 0 || r < 0 {
		return nil
	}
	mu := glueTable[l][r]
	if mu < 0 {
		if e.Style() >= env.Script {
			return nil
		}
		mu = -mu
	}
	if mu == 0 {
		return nil
	}
	return boxes.Strut(env.Mu(float64(mu)).In(e), 0, 0)
}

func spacingClass(k Kind) int {
	if k >= KindOrdinary && k <= KindInner {
		return int(k)
	}
	return -1
}
