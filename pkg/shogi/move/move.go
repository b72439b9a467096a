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

// Package move implements the packed Move value used throughout the
// Shogi core, one machine word carrying everything needed to apply or
// undo a move without consulting the board it came from.
package move

import (
	"fmt"

	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// Move packs: from-square (Stand for drops), to-square, the ptype the
// moving piece has after the move (promoted if promoting), the
// captured ptype (Empty if none), a promotion flag, the owner, and a
// 2-bit special tag for the Pass/Resign/DeclareWin pseudo-moves.
type Move uint32

const (
	shiftFrom      = 0
	shiftTo        = 8
	shiftPtypeTo   = 16
	shiftCaptured  = 20
	shiftPromote   = 24
	shiftOwner     = 25
	shiftSpecial   = 26

	maskSquare = 0xff
	maskPtype  = 0xf
)

type special uint32

const (
	specialNone special = iota
	specialPass
	specialResign
	specialDeclareWin
)

// New builds a Move. ptypeAfter is the moving piece's ptype once the
// move has been applied (already promoted, if promoting); captured is
// piece.Empty for a non-capturing move.
func New(from, to square.Square, ptypeAfter, captured piece.Ptype, promote bool, owner piece.Player) Move {
	m := Move(uint32(from)&maskSquare)<<shiftFrom |
		Move(uint32(to)&maskSquare)<<shiftTo |
		Move(uint32(ptypeAfter)&maskPtype)<<shiftPtypeTo |
		Move(uint32(captured)&maskPtype)<<shiftCaptured
	if promote {
		m |= 1 << shiftPromote
	}
	if owner == piece.White {
		m |= 1 << shiftOwner
	}
	return m
}

// Drop builds a hand-to-board drop move.
func Drop(to square.Square, t piece.Ptype, owner piece.Player) Move {
	return New(square.Stand, to, t, piece.Empty, false, owner)
}

// Pass, Resign and DeclareWin are pseudo-moves: they carry no board
// coordinates and are only legal as a whole-move replacement for a
// normal move.
var (
	Pass       = Move(specialPass) << shiftSpecial
	Resign     = Move(specialResign) << shiftSpecial
	DeclareWin = Move(specialDeclareWin) << shiftSpecial
)

// None is the zero Move, returned by searches that found nothing (the
// one-ply checkmate finder's failure sentinel).
const None Move = 0

// IsNone reports whether m is the None sentinel.
func (m Move) IsNone() bool { return m == None }

func (m Move) field(shift, mask uint32) uint32 {
	return (uint32(m) >> shift) & mask
}

func (m Move) From() square.Square { return square.Square(m.field(shiftFrom, maskSquare)) }
func (m Move) To() square.Square   { return square.Square(m.field(shiftTo, maskSquare)) }
func (m Move) PtypeAfter() piece.Ptype {
	return piece.Ptype(m.field(shiftPtypeTo, maskPtype))
}
func (m Move) Captured() piece.Ptype {
	return piece.Ptype(m.field(shiftCaptured, maskPtype))
}
func (m Move) IsPromote() bool { return m&(1<<shiftPromote) != 0 }
func (m Move) Owner() piece.Player {
	if m&(1<<shiftOwner) != 0 {
		return piece.White
	}
	return piece.Black
}
func (m Move) special() special {
	return special(m.field(shiftSpecial, 0x3))
}

// IsNormal reports whether m is an ordinary board move (not a drop,
// Pass, Resign, or DeclareWin).
func (m Move) IsNormal() bool {
	return m.special() == specialNone && !m.From().IsStand()
}

// IsDrop reports whether m drops a piece from hand.
func (m Move) IsDrop() bool {
	return m.special() == specialNone && m.From().IsStand()
}

// IsCapture reports whether m captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured() != piece.Empty
}

// IsPass, IsResign, IsDeclareWin identify the pseudo-moves.
func (m Move) IsPass() bool       { return m.special() == specialPass }
func (m Move) IsResign() bool     { return m.special() == specialResign }
func (m Move) IsDeclareWin() bool { return m.special() == specialDeclareWin }

// PtypeBefore returns the ptype the moving piece had before the move
// (unpromoted form of PtypeAfter if this move promotes).
func (m Move) PtypeBefore() piece.Ptype {
	if m.IsPromote() {
		return m.PtypeAfter().Unpromote()
	}
	return m.PtypeAfter()
}

func (m Move) String() string {
	switch m.special() {
	case specialPass:
		return "pass"
	case specialResign:
		return "resign"
	case specialDeclareWin:
		return "win"
	}
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.PtypeAfter(), m.To())
	}
	suffix := ""
	if m.IsPromote() {
		suffix = "+"
	}
	return fmt.Sprintf("%s%s%s", m.From(), m.To(), suffix)
}
