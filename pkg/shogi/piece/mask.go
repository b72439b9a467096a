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

import "math/bits"

// Mask is a 64-bit bitset over the 40 piece ids, the Shogi-core
// counterpart of a chess bitboard: instead of indexing squares, it
// indexes the permanent identity of a piece. Everywhere pieces must be
// grouped -- on board, promoted, pinned, attacking a square -- a Mask
// is the representation.
type Mask uint64

// MaskEmpty is the zero mask.
const MaskEmpty Mask = 0

// One returns a mask with just id set.
func One(id ID) Mask {
	return Mask(1) << uint(id)
}

// Set adds id to the mask.
func (m *Mask) Set(id ID) {
	*m |= One(id)
}

// Unset removes id from the mask.
func (m *Mask) Unset(id ID) {
	*m &^= One(id)
}

// IsSet reports whether id is a member.
func (m Mask) IsSet(id ID) bool {
	return m&One(id) != 0
}

// Count returns the number of set ids.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Pop returns the lowest set id and clears it.
func (m *Mask) Pop() ID {
	id := m.Lowest()
	*m &= *m - 1
	return id
}

// Lowest returns the lowest set id, or NID if m is empty.
func (m Mask) Lowest() ID {
	if m == 0 {
		return NID
	}
	return ID(bits.TrailingZeros64(uint64(m)))
}

// Any reports whether m has at least one member.
func (m Mask) Any() bool { return m != 0 }

// RangeMask returns a mask with every id in [lo, hi) set.
func RangeMask(r IDRange) Mask {
	if r.Len() == 0 {
		return 0
	}
	return ((Mask(1) << uint(r.Hi)) - 1) &^ ((Mask(1) << uint(r.Lo)) - 1)
}

// SelectPtype extracts the subset of m belonging to basic ptype t's id
// range.
func (m Mask) SelectPtype(t Ptype) Mask {
	return m & RangeMask(IDRangeOf(t))
}
