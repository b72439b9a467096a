// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package piece

// ID identifies one of the 40 pieces of a Shogi set for its whole
// lifetime, whether it currently sits on the board or in a hand.
type ID int

const NID = 40

// IDRange is a half-open [Lo, Hi) range of piece ids, all of one basic
// ptype.
type IDRange struct {
	Lo, Hi ID
}

// Len returns the number of ids in the range.
func (r IDRange) Len() int {
	return int(r.Hi - r.Lo)
}

// idRanges gives the fixed id allocation per basic ptype: 18 pawns,
// 4 lances, 4 knights, 4 silvers, 4 golds, 2 bishops, 2 rooks, 2 kings.
var idRanges = [NPtype]IDRange{
	Pawn:   {0, 18},
	Knight: {18, 22},
	Silver: {22, 26},
	Gold:   {26, 30},
	King:   {30, 32},
	Lance:  {32, 36},
	Bishop: {36, 38},
	Rook:   {38, 40},
}

// IDRangeOf returns the id range allocated to basic ptype t (promoted
// ptypes share the range of their basic form).
func IDRangeOf(t Ptype) IDRange {
	return idRanges[t.Unpromote()]
}

// BasicPtypeOfID returns the basic ptype that owns id.
func BasicPtypeOfID(id ID) Ptype {
	for _, t := range BasicPtype {
		r := idRanges[t]
		if id >= r.Lo && id < r.Hi {
			return t
		}
	}
	panic("basicPtypeOfID: id out of range")
}
