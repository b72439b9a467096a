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

package movegen

import (
	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
	"github.com/tkaneko/miniosl/pkg/shogi/tables"
)

// genPieceMoves enumerates every pseudo-legal on-board move of owner's
// pieces, per spec §4.7.1: short steps test the single target square,
// long rays walk until blocked. Check and pin legality are not applied
// here; legalFilter screens the result.
func genPieceMoves(es *state.EffectState, owner piece.Player, full bool) []move.Move {
	var out []move.Move
	for id := piece.ID(0); id < piece.NID; id++ {
		p := es.PieceOf(id)
		if !p.IsOnBoard() || p.Owner() != owner {
			continue
		}
		from := p.Square()
		t := p.Ptype()
		sign := owner.Sign()
		for d := square.Direction(0); d < square.NDirection; d++ {
			if !tables.CanMove(t, d) {
				continue
			}
			step := square.ToOffset(d, sign)
			if d.IsKnight() || !d.IsLong() {
				to := from.Add(step)
				target := es.PieceAt(to)
				if target.IsEdge() || (target.IsPiece() && target.Owner() == owner) {
					continue
				}
				out = append(out, emitMoves(owner, t, from, to, target.Ptype(), full)...)
				continue
			}
			cur := from
			for i := 0; i < 8; i++ {
				cur = cur.Add(step)
				target := es.PieceAt(cur)
				if target.IsEdge() {
					break
				}
				if target.IsPiece() && target.Owner() == owner {
					break
				}
				out = append(out, emitMoves(owner, t, from, cur, target.Ptype(), full)...)
				if target.IsPiece() {
					break
				}
			}
		}
	}
	return out
}

// emitMoves builds the one or two Move values for a piece of basic-or-
// promoted ptype t moving from -> to, honoring forced promotion
// (Pawn/Lance/Knight on their restricted far ranks) and the preferred-
// promotion rule: Rook and Bishop moving to or from the promotion zone
// always promote in the default generator; full additionally yields
// the suppressed unpromoted form.
func emitMoves(owner piece.Player, t piece.Ptype, from, to square.Square, captured piece.Ptype, full bool) []move.Move {
	if !t.CanPromote() {
		return []move.Move{move.New(from, to, t, captured, false, owner)}
	}

	inZone := tables.PromotionZone(owner, from) || tables.PromotionZone(owner, to)
	if !inZone {
		return []move.Move{move.New(from, to, t, captured, false, owner)}
	}

	if tables.MustPromote(owner, t, to) {
		return []move.Move{move.New(from, to, t.Promote(), captured, true, owner)}
	}

	out := []move.Move{move.New(from, to, t.Promote(), captured, true, owner)}
	if full || !t.IsMajorBasic() {
		out = append(out, move.New(from, to, t, captured, false, owner))
	}
	return out
}

// genDrops enumerates every pseudo-legal drop of owner's held pieces,
// per spec §4.7.2: columns 9..1, each column top-down, skipping nifu
// columns and rank-restricted drops. Pawn-drop-mate is screened later
// by legalFilter, not here.
func genDrops(es *state.EffectState, owner piece.Player) []move.Move {
	var out []move.Move
	for x := 9; x >= 1; x-- {
		nifu := es.PawnInFile(owner, x)
		for y := 1; y <= 9; y++ {
			sq := square.New(x, y)
			if !es.PieceAt(sq).IsEmpty() {
				continue
			}
			for _, t := range piece.BasicPtype {
				if t == piece.King {
					continue
				}
				if t == piece.Pawn && nifu {
					continue
				}
				if es.CountHand(owner, t) == 0 {
					continue
				}
				if !tables.LegalDropAt(owner, t, sq) {
					continue
				}
				out = append(out, move.Drop(sq, t, owner))
			}
		}
	}
	return out
}
