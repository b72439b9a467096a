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

package state

import (
	"fmt"

	"github.com/tkaneko/miniosl/pkg/shogi/effect"
	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// EffectState is a BaseState plus the incrementally maintained
// attacker summary and the applied-move logic that keeps it correct.
// Pin and king-visibility queries (PinOrOpen, King8Info, InCheck) are
// derived from the summary on demand rather than cached and patched on
// every move: the expensive part of spec §4.3/§4.5, the per-square
// attacker bitmasks and long-piece reach, is what genuinely needs
// incremental maintenance to stay O(1) on each move, and that part
// lives in effect.Summary. A king-safety query touches at most the
// eight neighbors of one king and is cheap to recompute fresh. Both
// PinOrOpen and King8Info feed movegen's legality filter directly
// (pkg/shogi/movegen's fastKingSafety) and checkmate's search, rather
// than sitting unused behind the clone-and-verify fallback.
type EffectState struct {
	*BaseState
	summary  *effect.Summary
	promoted piece.Mask
}

// NewEffectState builds an EffectState by radiating the effect of
// every piece already placed on b. b must not be mutated afterwards
// except through EffectState.MakeMove.
func NewEffectState(b *BaseState) *EffectState {
	es := &EffectState{BaseState: b, summary: effect.New()}
	for id := piece.ID(0); id < piece.NID; id++ {
		p := b.PieceOf(id)
		if !p.IsOnBoard() {
			continue
		}
		if p.Ptype().IsPromoted() {
			es.promoted.Set(id)
		}
		es.summary.DoEffectAdd(p.Owner(), p.Ptype(), id, p.Square(), es.lookup)
	}
	return es
}

// Clone returns an independent deep copy of es: a trial move applied
// to the clone never affects the original. Every field of BaseState
// and effect.Summary is a fixed-size array or scalar, so copying the
// two structs by value is already a full deep copy.
func (es *EffectState) Clone() *EffectState {
	b := *es.BaseState
	s := *es.summary
	return &EffectState{BaseState: &b, summary: &s, promoted: es.promoted}
}

func (es *EffectState) lookup(sq square.Square) effect.Occupant {
	p := es.PieceAt(sq)
	switch {
	case p.IsEdge():
		return effect.Occupant{Edge: true}
	case p.IsEmpty():
		return effect.Occupant{}
	default:
		return effect.Occupant{ID: p.ID(), Present: true}
	}
}

func (es *EffectState) ownerOf(id piece.ID) piece.Player {
	return es.PieceOf(id).Owner()
}

// EffectAt returns the attacker mask for sq.
func (es *EffectState) EffectAt(sq square.Square) effect.PieceMask {
	return es.summary.EffectAt(sq)
}

// CountEffect returns the number of owner's pieces attacking sq.
func (es *EffectState) CountEffect(owner piece.Player, sq square.Square) int {
	return es.EffectAt(sq).CountOf(owner)
}

// HasEffectAt reports whether owner attacks sq at all.
func (es *EffectState) HasEffectAt(owner piece.Player, sq square.Square) bool {
	return es.CountEffect(owner, sq) > 0
}

// InCheck reports whether owner's king is currently attacked.
func (es *EffectState) InCheck(owner piece.Player) bool {
	k := es.KingSquare(owner)
	if k.IsStand() {
		return false
	}
	return es.HasEffectAt(owner.Alt(), k)
}

// IsPromoted reports whether piece id is currently on board in
// promoted form.
func (es *EffectState) IsPromoted(id piece.ID) bool {
	return es.promoted.IsSet(id)
}

// HasEffectByPiece reports whether the specific piece attack (not just
// some piece of its owner) attacks target, per spec §6's
// has_effect_by_piece.
func (es *EffectState) HasEffectByPiece(attack piece.Piece, target square.Square) bool {
	return es.EffectAt(target).Ids().IsSet(attack.ID())
}

// PiecesAttacking returns owner's attacker ids at sq.
func (es *EffectState) PiecesAttacking(owner piece.Player, sq square.Square) piece.Mask {
	var owned piece.Mask
	for id := piece.ID(0); id < piece.NID; id++ {
		p := es.PieceOf(id)
		if p.IsOnBoard() && p.Owner() == owner {
			owned.Set(id)
		}
	}
	return es.EffectAt(sq).AttackersOf(owned)
}

// LongPieceReach exposes the underlying summary for movegen's blocking
// and pin computations.
func (es *EffectState) LongPieceReach(id piece.ID, d square.Direction) square.Square {
	return es.summary.LongPieceReach(id, d)
}

// PinOrOpen reports, for the piece with id sitting at its current
// board square, whether moving it off the line between it and its own
// king (of owner) would expose that king to an attack it is currently
// blocking -- the classic pin check, computed by looking in the
// direction from the king through id and seeing whether a same-line
// enemy slider sits just beyond it (spec §4.5). Returns the direction
// from the king to the pinned piece and true, or false if it is not
// pinned.
func (es *EffectState) PinOrOpen(owner piece.Player, id piece.ID) (square.Direction, bool) {
	k := es.KingSquare(owner)
	p := es.PieceOf(id)
	if k.IsStand() || !p.IsOnBoard() || p.Owner() != owner {
		return 0, false
	}
	d := square.Base8Dir(k, p.Square())
	if d == -1 {
		return 0, false
	}
	step := square.BlackOffset(d)
	for between := k.Add(step); between != p.Square(); between = between.Add(step) {
		if es.lookup(between).Present {
			// something else already sits between the king and p, so p
			// is not the piece blocking a check along this line.
			return 0, false
		}
	}
	cur := p.Square()
	for i := 0; i < 8; i++ {
		cur = cur.Add(step)
		occ := es.lookup(cur)
		if occ.Edge {
			return 0, false
		}
		if occ.Present {
			attacker := es.PieceOf(occ.ID)
			if attacker.Owner() == owner {
				return 0, false
			}
			if sliderAttacksAlong(attacker.Ptype(), attacker.Owner(), d.Inverse()) {
				return d, true
			}
			return 0, false
		}
	}
	return 0, false
}

// sliderAttacksAlong reports whether a piece of ptype t owned by owner
// attacks along geometric direction towardKing, the direction pointing
// from the slider's square back towards the king it is (potentially)
// pinning against. Rook/Dragon and Bishop/Horse attack both ways along
// their lines; a Lance only attacks in its own forward direction, so
// it only pins when that forward direction happens to point at the king.
func sliderAttacksAlong(t piece.Ptype, owner piece.Player, towardKing square.Direction) bool {
	switch t.Unpromote() {
	case piece.Rook:
		return towardKing == square.U || towardKing == square.D || towardKing == square.L || towardKing == square.R
	case piece.Bishop:
		return towardKing == square.UL || towardKing == square.UR || towardKing == square.DL || towardKing == square.DR
	case piece.Lance:
		forward := square.U
		if owner == piece.White {
			forward = square.D
		}
		return towardKing == forward
	default:
		return false
	}
}

// King8Info summarizes, per base-8 direction from one king, the status
// of that neighbor square: whether it is a candidate square for a
// check-giving drop or piece move, a genuine or potential flight
// square, empty, or already covered by a friendly (non-king) defender
// -- the data movegen's legality fast path and the one-ply checkmate
// search (spec §4.6, §4.7.1) need without rescanning the whole board
// on every move. It mirrors osl::checkmate::King8Info, field for
// field, without its packed bit layout.
type King8Info struct {
	// DropCandidate[d]: the square is empty, the opponent covers it,
	// and no defender other than the king itself can retake there --
	// dropping a piece here delivers a check the king cannot trade off.
	DropCandidate [square.NBase8]bool
	// Liberty[d]: the king can step here right now; the opponent has no
	// effect on the square at all, and no opponent long piece checking
	// the king along d would reach it once the king steps off.
	Liberty [square.NBase8]bool
	// LibertyCandidate[d]: the square is open to the king (empty or an
	// opponent piece) regardless of whether the opponent currently
	// covers it -- a superset of Liberty.
	LibertyCandidate [square.NBase8]bool
	// MoveCandidate2[d]: like DropCandidate, but also true when the
	// square holds a friendly piece that could step aside or be
	// reinforced, and true for an empty square a piece move (not only
	// a drop) could occupy to check.
	MoveCandidate2 [square.NBase8]bool
	// Space[d]: the square is simply empty.
	Space [square.NBase8]bool
	// Moves[d]: the opponent covers this square and it is not occupied
	// by one of the opponent's own pieces -- empty or a friendly piece
	// sits here within the opponent's reach.
	Moves [square.NBase8]bool
	// LibertyCount is the number of directions with a real, empty
	// liberty (Liberty[d] && Space[d]); a position with LibertyCount>0
	// can never be checkmate, since the king always has a legal step.
	LibertyCount int
}

// ComputeKing8Info builds the summary for owner's king.
func (es *EffectState) ComputeKing8Info(owner piece.Player) King8Info {
	var info King8Info
	k := es.KingSquare(owner)
	if k.IsStand() {
		return info
	}
	enemy := owner.Alt()
	kingID := es.PieceAt(k).ID()
	for d := square.Direction(0); d < square.NBase8; d++ {
		n := k.Add(square.BlackOffset(d))
		occ := es.lookup(n)
		if occ.Edge {
			continue
		}
		isEmpty := !occ.Present
		isAttackPiece := occ.Present && es.ownerOf(occ.ID) == enemy
		isDefensePiece := occ.Present && es.ownerOf(occ.ID) == owner

		if !es.HasEffectAt(enemy, n) {
			if isEmpty || isAttackPiece {
				// An enemy long piece checking the king along d stops at k
				// now, but covers n once the king steps off k.
				checker := es.summary.PPLongState(kingID, d.Inverse())
				behindCheck := checker != piece.NID && es.ownerOf(checker) == enemy
				info.Liberty[d] = !behindCheck
				info.LibertyCandidate[d] = true
				if isEmpty {
					info.Space[d] = true
					if !behindCheck {
						info.LibertyCount++
					}
				}
			}
			continue
		}

		guarded := es.hasEnoughGuard(owner, n, d, kingID)
		switch {
		case isEmpty:
			info.LibertyCandidate[d] = true
			info.Space[d] = true
			info.Moves[d] = true
			if !guarded {
				info.DropCandidate[d] = true
				info.MoveCandidate2[d] = true
			}
		case isAttackPiece:
			info.LibertyCandidate[d] = true
		case isDefensePiece:
			info.Moves[d] = true
			if !guarded {
				info.MoveCandidate2[d] = true
			}
		}
	}
	return info
}

// hasEnoughGuard reports whether some defender of owner other than the
// king itself already covers n, and can do so without exposing owner's
// king: an unpinned defender always qualifies; a pinned one only
// qualifies when n lies along its own pin line, matching
// hasEnoughGuard in the ground-truth implementation.
func (es *EffectState) hasEnoughGuard(owner piece.Player, n square.Square, d square.Direction, kingID piece.ID) bool {
	for id := piece.ID(0); id < piece.NID; id++ {
		if id == kingID {
			continue
		}
		p := es.PieceOf(id)
		if !p.IsOnBoard() || p.Owner() != owner || !es.HasEffectByPiece(p, n) {
			continue
		}
		pinDir, pinned := es.PinOrOpen(owner, id)
		if !pinned || pinDir == d {
			return true
		}
	}
	return false
}

// MakeMove applies m, which must already be pseudo-legal, maintaining
// the board, hands, pawn files, promoted-piece mask and attacker
// summary, per the six-step apply algorithm of spec §4.4: withdraw the
// mover's (and, if capturing, the defender's) old radiated effect,
// vacate/occupy squares while patching the long-piece block chain at
// each transition, relocate the piece records, then radiate the
// mover's new effect from its destination.
func (es *EffectState) MakeMove(m move.Move) error {
	if m.IsPass() {
		es.SetTurn(es.Turn().Alt())
		return nil
	}
	if m.IsResign() || m.IsDeclareWin() {
		return nil
	}

	owner := m.Owner()
	if owner != es.Turn() {
		return fmt.Errorf("makeMove: %s to move, got move by %s", es.Turn(), owner)
	}
	to := m.To()

	var moverID piece.ID
	if m.IsDrop() {
		t := m.PtypeAfter()
		candidates := es.HandMask(owner).SelectPtype(t)
		if !candidates.Any() {
			return fmt.Errorf("makeMove: no %s in %s's hand to drop", t, owner)
		}
		moverID = candidates.Lowest()
	} else {
		from := m.From()
		mp := es.PieceAt(from)
		if !mp.IsPiece() || mp.Owner() != owner {
			return fmt.Errorf("makeMove: no %s piece at %s", owner, from)
		}
		moverID = mp.ID()
		es.summary.DoEffectSub(owner, mp.Ptype(), moverID, from, es.lookup)
	}

	var capturedID piece.ID
	capturing := m.IsCapture()
	if capturing {
		target := es.PieceAt(to)
		if !target.IsPiece() || target.Owner() == owner {
			return fmt.Errorf("makeMove: no capturable piece at %s", to)
		}
		capturedID = target.ID()
		es.summary.DoEffectSub(target.Owner(), target.Ptype(), capturedID, to, es.lookup)
		if es.promoted.IsSet(capturedID) {
			es.promoted.Unset(capturedID)
		}
	}

	if !m.IsDrop() {
		from := m.From()
		old := es.PieceAt(from)
		if old.Ptype() == piece.Pawn {
			es.pawnFile[owner] &^= 1 << uint(from.X())
		}
		es.board[from] = piece.EmptyPiece
		es.summary.DoBlockAtSub(from, moverID, es.ownerOf, es.lookup)
	} else {
		es.hand[owner].Unset(moverID)
	}

	if capturing {
		capturedOwner := owner.Alt()
		capturedPtypeUnpromoted := es.PieceOf(capturedID).Ptype().Unpromote()
		if es.PieceOf(capturedID).Ptype() == piece.Pawn {
			es.pawnFile[capturedOwner] &^= 1 << uint(to.X())
		}
		es.pieces[capturedID] = piece.NewPiece(owner, capturedPtypeUnpromoted, capturedID, square.Stand)
		es.hand[owner].Set(capturedID)
		es.board[to] = piece.EmptyPiece
		es.summary.DoBlockAtSub(to, capturedID, es.ownerOf, es.lookup)
	}

	after := m.PtypeAfter()
	moved := piece.NewPiece(owner, after, moverID, to)
	es.pieces[moverID] = moved
	es.board[to] = moved
	es.summary.DoBlockAtAdd(to, moverID, es.ownerOf, es.lookup)
	es.summary.DoEffectAdd(owner, after, moverID, to, es.lookup)

	if after == piece.Pawn {
		es.pawnFile[owner] |= 1 << uint(to.X())
	}
	if m.IsPromote() {
		es.promoted.Set(moverID)
	}

	es.SetTurn(owner.Alt())
	return nil
}

// IsConsistent re-derives the attacker summary from scratch and checks
// it matches the incrementally maintained one, plus the promoted-piece
// mask and the pawn-file mask. It does not check id ranges or
// hand/board disjointness; BaseState.IsConsistent checks the board and
// hand structure and is not called from here.
func (es *EffectState) IsConsistent() bool {
	fresh := NewEffectState(es.BaseState)
	for sq := square.Square(0); sq < gridSize; sq++ {
		if es.summary.EffectAt(sq) != fresh.summary.EffectAt(sq) {
			return false
		}
	}
	for id := piece.ID(0); id < piece.NID; id++ {
		p := es.PieceOf(id)
		if p.IsOnBoard() && p.Ptype().IsPromoted() != es.promoted.IsSet(id) {
			return false
		}
	}
	for _, owner := range [2]piece.Player{piece.Black, piece.White} {
		for x := 1; x <= 9; x++ {
			wantSet := false
			for id := piece.ID(0); id < piece.NID; id++ {
				p := es.PieceOf(id)
				if p.IsOnBoard() && p.Owner() == owner && p.Ptype() == piece.Pawn && p.Square().X() == x {
					wantSet = true
				}
			}
			if wantSet != es.PawnInFile(owner, x) {
				return false
			}
		}
	}
	return true
}
