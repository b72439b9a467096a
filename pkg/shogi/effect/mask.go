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

// Package effect implements the per-square attacker summary that the
// rest of the core is built on: EffectPieceMask, the single 64-bit word
// that carries a piece.Mask of attacker ids plus two auxiliary fields
// in the same word, and EffectSummary, the per-square table of such
// masks together with the long-piece reach and piece-to-piece
// long-effect chains.
package effect

import (
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// Bit layout of EffectPieceMask, one 64-bit word:
//
//	bits  0..39  piece.Mask  - attacker ids present
//	bits 40..47  long-attacker-from-direction-d bit, one per base8 dir
//	bits 48..53  saturating count of Black attackers (max 63)
//	bits 54..59  saturating count of White attackers (max 63)
//
// Splitting this into three fields updated in lockstep would reopen the
// exact bug class the combined word exists to avoid: incrementing the
// count but forgetting the bit, or vice versa. One add/sub on the whole
// word keeps them atomic by construction.
const (
	longBitShift  = 40
	countShift    = 48
	countBits     = 6
	countMax      = (1 << countBits) - 1
	blackShift    = countShift
	whiteShift    = countShift + countBits
)

// PieceMask is the combined attacker-id-set-plus-counters word.
type PieceMask uint64

// BaseValue returns the "owner tag" that, OR-ed with an id bit (and,
// for long pieces, the long-from-direction bit), produces the value to
// add to a square's PieceMask when a piece starts attacking it.
func BaseValue(owner piece.Player) PieceMask {
	if owner == piece.Black {
		return PieceMask(1) << blackShift
	}
	return PieceMask(1) << whiteShift
}

// LongBit returns the bit marking "a long attacker reaches this square
// from direction d", d being a base-8 direction.
func LongBit(d square.Direction) PieceMask {
	return PieceMask(1) << uint(longBitShift+int(d.Primary()))
}

// Increment builds the word to add to a square's mask when id (owned
// by owner) starts attacking it; longFrom is the base-8 direction the
// attack arrives from if id is a long piece attacking along a ray,
// or -1 otherwise.
func Increment(owner piece.Player, id piece.ID, longFrom square.Direction) PieceMask {
	v := BaseValue(owner) | PieceMask(piece.One(id))
	if longFrom >= 0 {
		v |= LongBit(longFrom)
	}
	return v
}

// Ids returns the piece.Mask of attacker ids.
func (m PieceMask) Ids() piece.Mask {
	return piece.Mask(m & ((1 << 40) - 1))
}

// HasLongFrom reports whether some long attacker reaches this square
// from base-8 direction d.
func (m PieceMask) HasLongFrom(d square.Direction) bool {
	return m&LongBit(d) != 0
}

// CountOf returns the number of attackers owned by owner.
func (m PieceMask) CountOf(owner piece.Player) int {
	if owner == piece.Black {
		return int((m >> blackShift) & countMax)
	}
	return int((m >> whiteShift) & countMax)
}

// AttackersOf returns the subset of attacker ids owned by owner, given
// the caller's mask of ids currently on board and owned by owner.
func (m PieceMask) AttackersOf(ownedByOwner piece.Mask) piece.Mask {
	return m.Ids() & ownedByOwner
}
