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

package effect

import (
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/tables"
)

// gridSize covers every packed Square value a padded 9x9 board can
// produce, including the one-square ring of Edge padding.
const gridSize = 12 * square.Stride

// Occupant is what DoEffect/DoBlockAt need to know about a square on
// the board they don't own: whether it is a real piece, empty, or off
// the board entirely. Summary has no board of its own -- it is handed
// one of these through a Lookup callback supplied by the BaseState
// that embeds it, keeping the two packages from depending on each other.
type Occupant struct {
	ID      piece.ID
	Present bool
	Edge    bool
}

// Lookup answers what occupies a square, from the caller's board.
type Lookup func(square.Square) Occupant

// OwnerOf answers a piece id's current owner, from the caller's board.
type OwnerOf func(piece.ID) piece.Player

// Summary is the per-square attacker table plus the long-piece ray
// bookkeeping that backs it: a PieceMask per square, the furthest
// reach of every long piece along every direction it currently attacks
// in, and the piece-to-piece long-effect chain (spec §3, §4.3).
type Summary struct {
	grid      [gridSize]PieceMask
	longReach [piece.NID][square.NBase8]square.Square
	ppLong    [piece.NID][square.NBase8]piece.ID
}

// New returns an empty Summary with every longReach entry at Stand and
// every ppLong entry at NID ("no blocker").
func New() *Summary {
	s := &Summary{}
	for id := piece.ID(0); id < piece.NID; id++ {
		for d := 0; d < square.NBase8; d++ {
			s.longReach[id][d] = square.Stand
			s.ppLong[id][d] = piece.NID
		}
	}
	return s
}

// EffectAt returns the attacker mask for sq.
func (s *Summary) EffectAt(sq square.Square) PieceMask {
	return s.grid[sq]
}

func (s *Summary) addAt(sq square.Square, v PieceMask) { s.grid[sq] += v }
func (s *Summary) subAt(sq square.Square, v PieceMask) { s.grid[sq] -= v }

// LongPieceReach returns the furthest square long piece id reaches
// along geometric direction d (0..7), or Stand if id does not
// currently radiate along d.
func (s *Summary) LongPieceReach(id piece.ID, d square.Direction) square.Square {
	return s.longReach[id][d]
}

// PPLongState returns the id of the long piece whose ray's first
// blocker, looking from blockerID along geometric direction d, is
// blockerID, or piece.NID if no such ray exists.
func (s *Summary) PPLongState(blockerID piece.ID, d square.Direction) piece.ID {
	return s.ppLong[blockerID][d]
}

func (s *Summary) setReach(id piece.ID, d square.Direction, sq square.Square) {
	s.longReach[id][d] = sq
}

func (s *Summary) setBlocker(blockerID piece.ID, d square.Direction, attacker piece.ID) {
	s.ppLong[blockerID][d] = attacker
}

// DoEffectAdd radiates the attacks of the piece (owner, t, id) sitting
// at sq, per spec §4.3: short directions bump a single square; long
// directions walk the ray until blocked, recording longPieceReach and
// ppLongState at the stop square.
func (s *Summary) DoEffectAdd(owner piece.Player, t piece.Ptype, id piece.ID, sq square.Square, look Lookup) {
	s.walkMoves(owner, t, id, sq, look, s.addAt, true)
}

// DoEffectSub withdraws the attacks radiated by DoEffectAdd and clears
// id's longPieceReach entries (it is no longer on board in this form).
func (s *Summary) DoEffectSub(owner piece.Player, t piece.Ptype, id piece.ID, sq square.Square, look Lookup) {
	s.walkMoves(owner, t, id, sq, look, s.subAt, false)
	for d := 0; d < square.NBase8; d++ {
		s.longReach[id][d] = square.Stand
	}
}

func (s *Summary) walkMoves(owner piece.Player, t piece.Ptype, id piece.ID, sq square.Square, look Lookup, apply func(square.Square, PieceMask), recordReach bool) {
	sign := owner.Sign()
	for d := square.Direction(0); d < square.NDirection; d++ {
		if !tables.CanMove(t, d) {
			continue
		}
		step := square.ToOffset(d, sign)

		if d.IsKnight() || !d.IsLong() {
			target := sq.Add(step)
			if occ := look(target); !occ.Edge {
				apply(target, Increment(owner, id, -1))
			}
			continue
		}

		// Long direction: geomDir is the *geometric* (owner-independent)
		// compass direction of travel, used to index longReach/ppLong/the
		// PieceMask long-bit consistently regardless of which side the
		// attacker belongs to.
		geomDir := square.DirOfStep(step)
		back := geomDir.Inverse()

		cur := sq
		for i := 0; i < 8; i++ {
			cur = cur.Add(step)
			occ := look(cur)
			if occ.Edge {
				if recordReach {
					s.setReach(id, geomDir, cur)
				}
				break
			}
			apply(cur, Increment(owner, id, back))
			if occ.Present {
				if recordReach {
					s.setReach(id, geomDir, cur)
					s.setBlocker(occ.ID, back, id)
				} else {
					s.setBlocker(occ.ID, back, piece.NID)
				}
				break
			}
		}
	}
}

// DoBlockAtAdd is called when sq transitions from empty to occupied by
// newOccupant. Every long ray that currently reaches through sq from
// some geometric direction must be found (by walking back towards the
// attacker) and truncated to stop at sq.
func (s *Summary) DoBlockAtAdd(sq square.Square, newOccupant piece.ID, ownerOf OwnerOf, look Lookup) {
	mask := s.EffectAt(sq)
	for d := square.Direction(0); d < square.NBase8; d++ {
		if !mask.HasLongFrom(d) {
			continue
		}
		// The attacker lies along direction d from sq (that is how the
		// long-bit got set): walk towards it to find its id.
		attacker, ok := s.find(sq, d, look)
		if !ok {
			continue
		}
		travel := d.Inverse()
		owner := ownerOf(attacker)
		oldReach := s.longReach[attacker][travel]
		step := square.BlackOffset(travel)
		cur := sq
		for i := 0; i < 8; i++ {
			cur = cur.Add(step)
			s.subAt(cur, Increment(owner, attacker, d))
			if cur == oldReach {
				break
			}
		}
		s.setReach(attacker, travel, sq)
		s.setBlocker(newOccupant, d, attacker)
	}
}

// DoBlockAtSub is the inverse: sq transitions from occupied (by
// formerOccupant) to empty, so every ray that used to stop at sq must
// be extended past it until the next real blocker or the board edge.
func (s *Summary) DoBlockAtSub(sq square.Square, formerOccupant piece.ID, ownerOf OwnerOf, look Lookup) {
	for d := square.Direction(0); d < square.NBase8; d++ {
		attacker := s.ppLong[formerOccupant][d]
		if attacker == piece.NID {
			continue
		}
		s.setBlocker(formerOccupant, d, piece.NID)

		travel := d.Inverse()
		owner := ownerOf(attacker)
		step := square.BlackOffset(travel)

		cur := sq
		for i := 0; i < 8; i++ {
			cur = cur.Add(step)
			occ := look(cur)
			if occ.Edge {
				s.setReach(attacker, travel, cur)
				break
			}
			s.addAt(cur, Increment(owner, attacker, d))
			if occ.Present {
				s.setReach(attacker, travel, cur)
				s.setBlocker(occ.ID, d, attacker)
				break
			}
		}
	}
}

// find walks from sq along geometric direction d looking for the
// nearest occupied square, returning its id.
func (s *Summary) find(sq square.Square, d square.Direction, look Lookup) (piece.ID, bool) {
	step := square.BlackOffset(d)
	cur := sq
	for i := 0; i < 8; i++ {
		cur = cur.Add(step)
		occ := look(cur)
		if occ.Edge {
			return 0, false
		}
		if occ.Present {
			return occ.ID, true
		}
	}
	return 0, false
}
