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

// Package square implements the packed Square/Offset/Direction types
// shared by the whole Shogi core.
//
// A Square is packed as (x+1)*Stride+(y+1) with Stride=16, so that the board
// array can be padded by one ring of Edge squares on every side and
// any single-step neighbor access stays inside the array: the packed
// representation of a step never has to special-case running off one
// edge and wrapping into the next rank, the way an 8-wide mailbox would.
package square

import "fmt"

// Stride is the row pitch used to pack (x, y) into one int. 16 leaves
// a full spare nibble of padding on every file.
const Stride = 16

// Square is a packed board coordinate, one-based, file (x) then rank
// (y), both in [1,9] for on-board squares. Square 1-1 is the top right
// (black's far right) corner in the traditional Shogi diagram orientation.
//
// The packed value carries a +1 bias on both axes (New(1,1) is not
// Stride+1 but 2*Stride+2), so that the one-square ring of Edge
// padding surrounding the board never collides with the Stand
// sentinel: a neighbor lookup one step off the board edge always lands
// on a strictly positive packed value distinct from 0.
type Square int

// Stand is the sentinel square for a piece sitting in a hand.
const Stand Square = 0

// New packs file x and rank y (both 1..9) into a Square.
func New(x, y int) Square {
	return Square((x+1)*Stride + (y + 1))
}

// X returns the file, 1..9 for on-board squares.
func (s Square) X() int {
	return int(s)/Stride - 1
}

// Y returns the rank, 1..9 for on-board squares.
func (s Square) Y() int {
	return int(s)%Stride - 1
}

// IsOnBoard reports whether s names one of the 81 board squares.
func (s Square) IsOnBoard() bool {
	x, y := s.X(), s.Y()
	return x >= 1 && x <= 9 && y >= 1 && y <= 9
}

// IsStand reports whether s is the hand sentinel.
func (s Square) IsStand() bool {
	return s == Stand
}

// Rotate180 returns the point-symmetric square, the same square as
// seen by the other player: (x,y) -> (10-x, 10-y). Stand maps to itself.
func (s Square) Rotate180() Square {
	if s == Stand {
		return Stand
	}
	return New(10-s.X(), 10-s.Y())
}

func (s Square) String() string {
	if s == Stand {
		return "00"
	}
	return fmt.Sprintf("%d%d", s.X(), s.Y())
}

// Offset is a signed step such that Square+Offset moves one or more
// steps across the board; it uses the same Stride-based packing as
// Square so that arithmetic composes directly.
type Offset int

// NewOffset packs a (dx, dy) step.
func NewOffset(dx, dy int) Offset {
	return Offset(dx*Stride + dy)
}

// Add advances s by o. Undefined for s == Stand.
func (s Square) Add(o Offset) Square {
	return Square(int(s) + int(o))
}

// Sub returns the offset from other to s (other + result == s).
func (s Square) Sub(other Square) Offset {
	return Offset(int(s) - int(other))
}

// Offset32 maps an Offset between two on-board squares, |dx|,|dy|<=8,
// into a dense non-negative index suitable for table lookups keyed on
// every reachable relative offset.
func (o Offset) Offset32() int {
	const bias = 8*Stride + 8
	return int(o) + bias
}

const Offset32Size = 2 * (8*Stride + 8) + 1
