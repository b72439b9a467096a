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

import (
	"fmt"

	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// Piece is one of the 40 physical pieces of a Shogi set: its owner,
// kind, permanent id, and current location (Stand if held).
type Piece struct {
	owner  Player
	ptype  Ptype
	id     ID
	square square.Square
}

// NewPiece builds a Piece record.
func NewPiece(owner Player, t Ptype, id ID, sq square.Square) Piece {
	return Piece{owner: owner, ptype: t, id: id, square: sq}
}

// EmptyPiece is the record stored at an unoccupied board square.
var EmptyPiece = Piece{owner: Black, ptype: Empty, id: -1, square: square.Stand}

// EdgePiece is the record returned for any off-board square.
var EdgePiece = Piece{owner: White, ptype: Edge, id: -1, square: square.Stand}

func (p Piece) Owner() Player       { return p.owner }
func (p Piece) Ptype() Ptype        { return p.ptype }
func (p Piece) ID() ID              { return p.id }
func (p Piece) Square() square.Square { return p.square }

// PtypeO returns the owner-tagged ptype of p.
func (p Piece) PtypeO() PtypeO {
	return NewPtypeO(p.owner, p.ptype)
}

// IsEmpty reports whether p is the empty-square sentinel.
func (p Piece) IsEmpty() bool { return p.ptype == Empty }

// IsEdge reports whether p is the off-board sentinel.
func (p Piece) IsEdge() bool { return p.ptype == Edge }

// IsPiece reports whether p is a real, non-sentinel piece.
func (p Piece) IsPiece() bool { return p.ptype.IsPiece() }

// IsOnBoard reports whether p currently sits on the board.
func (p Piece) IsOnBoard() bool { return p.IsPiece() && p.square.IsOnBoard() }

// MovedTo returns a copy of p relocated to sq.
func (p Piece) MovedTo(sq square.Square) Piece {
	p.square = sq
	return p
}

// Promoted returns a copy of p with its ptype promoted.
func (p Piece) Promoted() Piece {
	p.ptype = p.ptype.Promote()
	return p
}

// Captured returns a copy of p as it becomes after being captured:
// unpromoted, owner flipped, moved to Stand.
func (p Piece) Captured() Piece {
	p.ptype = p.ptype.Unpromote()
	p.owner = p.owner.Alt()
	p.square = square.Stand
	return p
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return " * "
	}
	if p.IsEdge() {
		return " # "
	}
	return fmt.Sprintf("%2s%d", p.PtypeO(), p.id)
}
