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

package tables

import (
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// LegalDropAt reports whether basic ptype t may be dropped by owner at
// sq on rank-restriction grounds alone (nifu and mid-game board state
// are checked by the caller). Pawns and Lances cannot drop onto the
// owner's furthest rank; Knights cannot drop onto the furthest two.
func LegalDropAt(owner piece.Player, t piece.Ptype, sq square.Square) bool {
	rank := playerViewRank(owner, sq.Y())
	switch t {
	case piece.Pawn, piece.Lance:
		return rank >= 2
	case piece.Knight:
		return rank >= 3
	default:
		return true
	}
}

// playerViewRank converts a board rank (1 at the top of the diagram,
// Black's far side) into the rank as counted from owner's own side:
// rank 1 is always the row nearest the enemy.
func playerViewRank(owner piece.Player, y int) int {
	if owner == piece.Black {
		return y
	}
	return 10 - y
}

// PromotionZone reports whether square sq lies in owner's promotion
// zone (the furthest three ranks).
func PromotionZone(owner piece.Player, sq square.Square) bool {
	return playerViewRank(owner, sq.Y()) <= 3
}

// MustPromote reports whether a piece of basic ptype t moving to sq
// would have no legal unpromoted placement there (Pawn/Lance on the
// far rank, Knight on the far two ranks) and so must promote.
func MustPromote(owner piece.Player, t piece.Ptype, sq square.Square) bool {
	rank := playerViewRank(owner, sq.Y())
	switch t {
	case piece.Pawn, piece.Lance:
		return rank == 1
	case piece.Knight:
		return rank <= 2
	default:
		return false
	}
}

// DeclareValue gives the point value (major=5, minor=1) of a basic
// ptype for the 27-point entering-king declaration, per spec §6 and
// §9 (literal handicap constants preserved from the original).
var DeclareValue = map[piece.Ptype]int{
	piece.Rook: 5, piece.Bishop: 5,
	piece.Gold: 1, piece.Silver: 1, piece.Knight: 1, piece.Lance: 1, piece.Pawn: 1,
}

// DeclareThreshold is the minimum point total required to declare a
// win by the 27-point rule: 28 for Black (sente), 27 for White.
func DeclareThreshold(owner piece.Player) int {
	if owner == piece.Black {
		return 28
	}
	return 27
}
