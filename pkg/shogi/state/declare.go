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
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/tables"
)

// WinIfDeclare reports whether owner may currently declare a win under
// the 27-point entering-king rule: owner's king must sit in its
// promotion zone, owner must not be in check, and the point value of
// owner's other pieces in the zone plus in hand must reach the
// player-dependent threshold (28 for Black, 27 for White), counting at
// least 10 minor-or-major pieces in the zone.
func (es *EffectState) WinIfDeclare(owner piece.Player) bool {
	k := es.KingSquare(owner)
	if k.IsStand() || !tables.PromotionZone(owner, k) {
		return false
	}
	if es.InCheck(owner) {
		return false
	}

	points := 0
	countInZone := 0
	for id := piece.ID(0); id < piece.NID; id++ {
		p := es.PieceOf(id)
		if p.Owner() != owner || p.Ptype() == piece.King {
			continue
		}
		basic := p.Ptype().Unpromote()
		switch {
		case p.IsOnBoard() && tables.PromotionZone(owner, p.Square()):
			countInZone++
			points += tables.DeclareValue[basic]
		case p.Square() == square.Stand:
			points += tables.DeclareValue[basic]
		}
	}
	if countInZone < 10 {
		return false
	}
	return points >= tables.DeclareThreshold(owner)
}
