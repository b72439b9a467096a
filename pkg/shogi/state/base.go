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

// Package state implements the Shogi board itself: BaseState (the raw
// position) and EffectState (BaseState plus the incrementally
// maintained attack/pin/king-visibility tables and makeMove).
package state

import (
	"fmt"

	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// gridSize matches effect.Summary's padded board so the two index
// spaces line up without conversion.
const gridSize = 12 * square.Stride

// BaseState is the raw board: the 9x9 grid (padded with Edge), the 40
// piece records indexed by id, per-player hand contents, the
// per-player pawn-file mask, and the side to move.
type BaseState struct {
	board    [gridSize]piece.Piece
	pieces   [piece.NID]piece.Piece
	hand     [piece.NPlayer]piece.Mask
	pawnFile [piece.NPlayer]uint16 // bit x set <=> unpromoted pawn of that player on file x
	taken    piece.Mask            // ids already allocated by SetPiece
	turn     piece.Player
}

// NewEmpty returns a BaseState with an empty board, Black to move, and
// every square off the 9x9 board set to the Edge sentinel.
func NewEmpty() *BaseState {
	b := &BaseState{turn: piece.Black}
	for x := 0; x <= 10; x++ {
		for y := 0; y <= 10; y++ {
			sq := square.New(x, y)
			if x >= 1 && x <= 9 && y >= 1 && y <= 9 {
				b.board[sq] = piece.EmptyPiece
			} else {
				b.board[sq] = piece.EdgePiece
			}
		}
	}
	for id := piece.ID(0); id < piece.NID; id++ {
		b.pieces[id] = piece.NewPiece(piece.Black, piece.Empty, id, square.Stand)
	}
	return b
}

// Turn returns the side to move.
func (b *BaseState) Turn() piece.Player { return b.turn }

// SetTurn sets the side to move; used by construction helpers only.
func (b *BaseState) SetTurn(p piece.Player) { b.turn = p }

// PieceAt returns the piece record at sq in O(1); off-board squares
// return the Edge sentinel so 8-neighbor code never special-cases the
// border.
func (b *BaseState) PieceAt(sq square.Square) piece.Piece {
	return b.board[sq]
}

// PieceOf returns the piece record for id in O(1).
func (b *BaseState) PieceOf(id piece.ID) piece.Piece {
	return b.pieces[id]
}

// SetPiece places a new piece of (owner, t) at sq (Stand for a hand
// piece), allocating the lowest free id in unpromote(t)'s range. It is
// only used to build a position from scratch, never by makeMove.
func (b *BaseState) SetPiece(owner piece.Player, sq square.Square, t piece.Ptype) piece.Piece {
	r := piece.IDRangeOf(t)
	free := piece.RangeMask(r) &^ b.taken
	if !free.Any() {
		panic(fmt.Sprintf("setPiece: no free id for %s", t))
	}
	id := free.Lowest()
	b.taken.Set(id)

	p := piece.NewPiece(owner, t, id, sq)
	b.pieces[id] = p
	if sq.IsStand() {
		b.hand[owner].Set(id)
	} else {
		b.board[sq] = p
		if t == piece.Pawn {
			b.pawnFile[owner] |= 1 << uint(sq.X())
		}
	}
	return p
}

// CountHand returns the number of pieces of basic ptype t owner holds
// in hand.
func (b *BaseState) CountHand(owner piece.Player, t piece.Ptype) int {
	return b.hand[owner].SelectPtype(t).Count()
}

// HandMask returns owner's full hand id mask.
func (b *BaseState) HandMask(owner piece.Player) piece.Mask {
	return b.hand[owner]
}

// PawnInFile reports whether owner has an unpromoted pawn on file x.
func (b *BaseState) PawnInFile(owner piece.Player, x int) bool {
	return b.pawnFile[owner]&(1<<uint(x)) != 0
}

// KingSquare returns the board square of owner's king, or Stand if it
// has somehow been removed (never true for a reachable position).
func (b *BaseState) KingSquare(owner piece.Player) square.Square {
	r := piece.IDRangeOf(piece.King)
	for id := r.Lo; id < r.Hi; id++ {
		p := b.pieces[id]
		if p.Owner() == owner && p.IsOnBoard() {
			return p.Square()
		}
	}
	return square.Stand
}

// IsConsistent checks the structural invariants that must hold
// regardless of the attacker summary: every id's board/hand location
// agrees with the board array and hand masks, no two ids share a
// square, and both kings are on board exactly once.
func (b *BaseState) IsConsistent() bool {
	var seen piece.Mask
	var kings [piece.NPlayer]int
	for id := piece.ID(0); id < piece.NID; id++ {
		p := b.pieces[id]
		if p.ID() != id {
			return false
		}
		onHand := b.hand[piece.Black].IsSet(id) || b.hand[piece.White].IsSet(id)
		if p.IsOnBoard() {
			if onHand || b.PieceAt(p.Square()) != p {
				return false
			}
			if seen.IsSet(id) {
				return false
			}
			seen.Set(id)
			if p.Ptype() == piece.King {
				kings[p.Owner()]++
			}
		} else if !onHand {
			return false
		}
	}
	return kings[piece.Black] == 1 && kings[piece.White] == 1
}

// Rotate180 returns the point-symmetric mirror of b: every piece moves
// to its 180-degree-rotated square and the side to move is unchanged.
// Used by test utilities to check symmetric properties (spec §8).
func (b *BaseState) Rotate180() *BaseState {
	m := NewEmpty()
	m.turn = b.turn
	for id := piece.ID(0); id < piece.NID; id++ {
		p := b.pieces[id]
		if p.IsEmpty() {
			continue
		}
		sq := square.Stand
		if p.IsOnBoard() {
			sq = p.Square().Rotate180()
		}
		m.SetPiece(p.Owner(), sq, p.Ptype())
	}
	return m
}
