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

// Package movegen generates and validates moves against an
// EffectState: the full legal-move list, the check-giving subset, and
// the single-move legality predicate that backs both.
package movegen

import (
	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
	"github.com/tkaneko/miniosl/pkg/shogi/tables"
)

// GenerateLegal returns every legal move for the side to move in es,
// omitting the unpromoted form wherever a piece strongly prefers
// promotion (Rook, Bishop) and the promoted form is also legal.
func GenerateLegal(es *state.EffectState) []move.Move {
	return generate(es, false)
}

// GenerateWithFullUnpromotions is GenerateLegal plus the unpromoted
// form of every move GenerateLegal suppressed in favor of promoting.
func GenerateWithFullUnpromotions(es *state.EffectState) []move.Move {
	return generate(es, true)
}

// GenerateCheck returns the subset of GenerateLegal that gives check.
func GenerateCheck(es *state.EffectState) []move.Move {
	owner := es.Turn()
	opponent := owner.Alt()
	var out []move.Move
	for _, m := range GenerateLegal(es) {
		clone := es.Clone()
		if err := clone.MakeMove(m); err != nil {
			continue
		}
		if clone.InCheck(opponent) {
			out = append(out, m)
		}
	}
	return out
}

// InCheckmate reports whether the side to move in es is in check with
// no legal reply.
func InCheckmate(es *state.EffectState) bool {
	if !es.InCheck(es.Turn()) {
		return false
	}
	return len(GenerateLegal(es)) == 0
}

// IsLegal reports whether m is a legal move for the side to move in es.
func IsLegal(es *state.EffectState, m move.Move) bool {
	if m.IsPass() || m.IsResign() || m.IsDeclareWin() {
		return true
	}
	if m.Owner() != es.Turn() {
		return false
	}
	if !pseudoLegalPrecondition(es, m) {
		return false
	}
	return legalFilter(es, es.Turn(), m)
}

func generate(es *state.EffectState, full bool) []move.Move {
	owner := es.Turn()
	var candidates []move.Move
	candidates = append(candidates, genPieceMoves(es, owner, full)...)
	candidates = append(candidates, genDrops(es, owner)...)

	var out []move.Move
	for _, m := range candidates {
		if legalFilter(es, owner, m) {
			out = append(out, m)
		}
	}
	return out
}

// legalFilter applies m to a scratch clone and checks the two
// conditions that make a pseudo-legal move actually illegal: leaving
// (or putting) the mover's own king in check, or -- for pawn drops --
// delivering an uchifuzume checkmate. When owner's king is not already
// in check, fastKingSafety proves most moves safe from PinOrOpen and
// King8Info alone and the clone is skipped entirely (pawn drops still
// need the clone to check for uchifuzume).
func legalFilter(es *state.EffectState, owner piece.Player, m move.Move) bool {
	isPawnDrop := m.IsDrop() && m.PtypeAfter() == piece.Pawn
	if !es.InCheck(owner) {
		if safe, ok := fastKingSafety(es, owner, m); ok {
			if !safe {
				return false
			}
			if !isPawnDrop {
				return true
			}
		}
	}

	clone := es.Clone()
	if err := clone.MakeMove(m); err != nil {
		return false
	}
	if clone.InCheck(owner) {
		return false
	}
	if isPawnDrop {
		opponent := owner.Alt()
		if clone.InCheck(opponent) && InCheckmate(clone) {
			return false
		}
	}
	return true
}

// fastKingSafety tries to decide, without simulating m, whether it
// exposes owner's king, given that owner's king is not already in
// check: a drop never moves anything off a pin line and never moves
// the king, so it can only give the opponent an effect on owner's own
// king by being the very move being screened for check elsewhere, not
// by self-exposure -- always safe here. A king move is safe exactly
// when King8Info.Liberty holds for the direction of travel: the
// opponent has no effect at all on the destination, which (since the
// opponent's attacker tables already account for every ray that would
// pass through the destination) remains true once the king vacates its
// old square. A non-king move is safe when the mover is not pinned, or
// is pinned but stays on its own pin line. ok is false when none of
// these shortcuts apply and the caller must fall back to
// clone-and-verify.
func fastKingSafety(es *state.EffectState, owner piece.Player, m move.Move) (safe, ok bool) {
	if m.IsDrop() {
		return true, true
	}
	k := es.KingSquare(owner)
	from := m.From()
	mover := es.PieceAt(from)
	if mover.Ptype() == piece.King {
		info := es.ComputeKing8Info(owner)
		d := square.Base8Dir(k, m.To())
		if d >= 0 && info.Liberty[d] {
			return true, true
		}
		return false, false
	}
	pinDir, pinned := es.PinOrOpen(owner, mover.ID())
	if !pinned {
		return true, true
	}
	along := square.Base8Dir(k, m.To())
	if along == pinDir || along == pinDir.Inverse() {
		return true, true
	}
	return false, true
}

// pseudoLegalPrecondition checks the structural facts IsLegal needs
// before it is safe to hand m to MakeMove on a clone: the squares and
// pieces m names actually exist the way m claims.
func pseudoLegalPrecondition(es *state.EffectState, m move.Move) bool {
	owner := m.Owner()
	if m.IsDrop() {
		t := m.PtypeAfter()
		if es.CountHand(owner, t) == 0 {
			return false
		}
		if !es.PieceAt(m.To()).IsEmpty() {
			return false
		}
		if !tables.LegalDropAt(owner, t, m.To()) {
			return false
		}
		if t == piece.Pawn && es.PawnInFile(owner, m.To().X()) {
			return false
		}
		return true
	}
	from := es.PieceAt(m.From())
	if !from.IsPiece() || from.Owner() != owner {
		return false
	}
	if from.Ptype() != m.PtypeBefore() {
		return false
	}
	target := es.PieceAt(m.To())
	if target.IsPiece() && target.Owner() == owner {
		return false
	}
	kind, step := tables.Effect(from.PtypeO(), m.To().Sub(m.From()))
	switch kind {
	case tables.EffectNone:
		return false
	case tables.EffectLong:
		for cur := m.From().Add(step); cur != m.To(); cur = cur.Add(step) {
			if !es.PieceAt(cur).IsEmpty() {
				return false
			}
		}
	}
	return true
}
