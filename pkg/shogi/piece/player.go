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

// Package piece implements the piece-level types shared by the whole
// Shogi core: Player, Ptype, PtypeO, Piece and PieceMask.
package piece

import "fmt"

// Player is one of the two sides of a Shogi game.
type Player int

const (
	Black Player = iota
	White

	NPlayer = 2
)

// NewPlayer creates a Player from its USI/CSA-style id.
func NewPlayer(id string) Player {
	switch id {
	case "b", "+":
		return Black
	case "w", "-":
		return White
	default:
		panic("new player: invalid player id")
	}
}

// Alt returns the other player.
func (p Player) Alt() Player {
	return p ^ White
}

// Sign returns +1 for Black and -1 for White, matching the board-view
// convention used throughout offsets and ranks.
func (p Player) Sign() int {
	if p == Black {
		return 1
	}
	return -1
}

func (p Player) String() string {
	switch p {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("player.String: invalid player")
	}
}

// IsValid reports whether p is Black or White.
func (p Player) IsValid() bool {
	return p == Black || p == White
}

// Ptype is a 4-bit piece-kind code. The low 3 bits select the basic
// piece, bit 3 (value 8) is clear for promoted pieces and set for
// unpromoted ones, so unpromote is `ptype | 8` and promote (when legal)
// is `ptype &^ 8`.
type Ptype int

const (
	Empty Ptype = iota // no piece
	Edge               // off the 9x9 board

	PPawn
	PLance
	PKnight
	PSilver
	PBishop
	PRook

	King
	Gold
	Pawn
	Lance
	Knight
	Silver
	Bishop
	Rook

	NPtype = 16

	BasicMin = King
	PieceMin = PPawn
)

// AllPtype lists every Ptype value including the sentinels, in code order.
var AllPtype = [NPtype]Ptype{
	Empty, Edge,
	PPawn, PLance, PKnight, PSilver, PBishop, PRook,
	King, Gold, Pawn, Lance, Knight, Silver, Bishop, Rook,
}

// BasicPtype lists the eight basic (unpromoted, droppable-or-king) types.
var BasicPtype = [8]Ptype{King, Gold, Pawn, Lance, Knight, Silver, Bishop, Rook}

// PromotedOf maps a basic ptype to its promoted form; Gold and King have
// none and map to Empty.
var promotedOf = map[Ptype]Ptype{
	Pawn: PPawn, Lance: PLance, Knight: PKnight,
	Silver: PSilver, Bishop: PBishop, Rook: PRook,
}

// IsPiece reports whether t is a real piece kind (not Empty or Edge).
func (t Ptype) IsPiece() bool {
	return t >= PieceMin
}

// IsBasic reports whether t is unpromoted (King, Gold, or a basic piece).
func (t Ptype) IsBasic() bool {
	return t >= BasicMin
}

// IsPromoted reports whether t is a promoted piece kind.
func (t Ptype) IsPromoted() bool {
	return t.IsPiece() && t < BasicMin
}

// CanPromote reports whether t is a basic type with a promoted form.
func (t Ptype) CanPromote() bool {
	return t > Gold && t < NPtype
}

// Unpromote returns the unpromoted form of t; a no-op for basic types.
func (t Ptype) Unpromote() Ptype {
	if !t.IsPiece() {
		return t
	}
	return t | 8
}

// Promote returns the promoted form of t, or t unchanged if t cannot
// promote.
func (t Ptype) Promote() Ptype {
	if !t.CanPromote() {
		return t
	}
	return t &^ 8
}

// IsMajorBasic reports whether t (basic form) is a Rook or Bishop.
func (t Ptype) IsMajorBasic() bool {
	return t == Rook || t == Bishop
}

func (t Ptype) String() string {
	names := [NPtype]string{
		Empty: "--", Edge: "EG",
		PPawn: "+P", PLance: "+L", PKnight: "+N", PSilver: "+S", PBishop: "+B", PRook: "+R",
		King: "K", Gold: "G", Pawn: "P", Lance: "L", Knight: "N", Silver: "S", Bishop: "B", Rook: "R",
	}
	if t < 0 || t >= NPtype {
		panic("ptype.String: invalid ptype")
	}
	return names[t]
}

// PtypeO packs a Ptype together with its owning Player into one signed
// value: non-negative for Black, and the bitwise complement of the
// Black encoding for White, so that Alt is a single bitwise NOT.
type PtypeO int

// NewPtypeO builds a PtypeO for the given owner and ptype. Empty and
// Edge are owner-less sentinels but still encode a nominal owner so
// that board padding (Edge, owned by White) is distinguishable from an
// empty square (owned by Black) without a third state.
func NewPtypeO(owner Player, t Ptype) PtypeO {
	if owner == Black {
		return PtypeO(t)
	}
	return ^PtypeO(t)
}

// EmptyO and EdgeO are the two sentinel PtypeO values used to pad the
// board array.
var (
	EmptyO = NewPtypeO(Black, Empty)
	EdgeO  = NewPtypeO(White, Edge)
)

// Ptype extracts the piece kind.
func (po PtypeO) Ptype() Ptype {
	if po >= 0 {
		return Ptype(po)
	}
	return Ptype(^po)
}

// Owner extracts the owning player; undefined for EmptyO.
func (po PtypeO) Owner() Player {
	if po >= 0 {
		return Black
	}
	return White
}

// Alt flips the owner, keeping the ptype.
func (po PtypeO) Alt() PtypeO {
	return ^po
}

// Captured returns the PtypeO a piece takes on after being captured:
// unpromoted and owned by the capturing side (the opposite of its
// owner before capture).
func (po PtypeO) Captured() PtypeO {
	return NewPtypeO(po.Owner().Alt(), po.Ptype().Unpromote())
}

func (po PtypeO) String() string {
	t := po.Ptype()
	if po.Owner() == White && t.IsPiece() {
		return fmt.Sprintf("v%s", t)
	}
	return t.String()
}

// PromotedOf returns the promoted counterpart of basic type t, or
// piece.Empty if t cannot promote (Gold, King).
func PromotedOf(t Ptype) Ptype {
	if p, ok := promotedOf[t]; ok {
		return p
	}
	return Empty
}
