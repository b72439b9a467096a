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

// Package checkmate implements the one-ply checkmate finder: given a
// position where the side to move is not in check, decide whether it
// has a move that checkmates the opponent outright.
package checkmate

import (
	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/movegen"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

// TryCheckmate1Ply returns a move by the side to move that leaves the
// opponent with no legal reply, or move.None if none exists.
//
// For each check-giving candidate, King8Info.LibertyCount on the
// resulting position is consulted before paying for full legal-move
// generation: a nonzero count means the opponent's king still has a
// genuine empty liberty square to step onto (spec §4.6), so the
// candidate cannot be mate and the expensive movegen.InCheckmate call
// is skipped outright. This is the same narrowing the original
// applies per direction; the remainder of the search still confirms
// mate directly via move generation rather than replicating the
// original's per-ptype mating-pattern tables.
func TryCheckmate1Ply(es *state.EffectState) move.Move {
	owner := es.Turn()
	opponent := owner.Alt()
	if es.InCheck(owner) {
		return move.None
	}
	for _, m := range movegen.GenerateCheck(es) {
		clone := es.Clone()
		if err := clone.MakeMove(m); err != nil {
			continue
		}
		if !clone.InCheck(opponent) {
			continue
		}
		if clone.ComputeKing8Info(opponent).LibertyCount > 0 {
			continue
		}
		if movegen.InCheckmate(clone) {
			return m
		}
	}
	return move.None
}
