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

// EffectKind classifies whether a piece at the origin of a relative
// offset attacks the target square unconditionally, only through
// empty intermediate squares, or not at all.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectDefinite
	EffectLong
)

type effectEntry struct {
	kind EffectKind
	step square.Offset
}

// ptypeEffect[ptypeO][offset32] is the dense table from spec §4.1: for
// every owner-tagged ptype and every relative offset reachable on a 9x9
// board, it records whether that ptype attacks the offset square
// definitely, through empty squares with the given step, or not at all.
var ptypeEffect [piece.NPtype * 2][square.Offset32Size]effectEntry

func ptypeOIndex(po piece.PtypeO) int {
	// Black ptypes occupy [0,NPtype), White occupy [NPtype,2*NPtype).
	if po.Owner() == piece.Black {
		return int(po.Ptype())
	}
	return piece.NPtype + int(po.Ptype())
}

func init() {
	for _, owner := range [2]piece.Player{piece.Black, piece.White} {
		for _, t := range piece.BasicPtype {
			for _, pt := range []piece.Ptype{t, piece.PromotedOf(t)} {
				if pt == piece.Empty {
					continue
				}
				buildEffectRow(piece.NewPtypeO(owner, pt))
			}
		}
	}
}

func buildEffectRow(po piece.PtypeO) {
	row := &ptypeEffect[ptypeOIndex(po)]
	sign := po.Owner().Sign()
	t := po.Ptype()

	for d := square.Direction(0); d < square.NDirection; d++ {
		if !CanMove(t, d) {
			continue
		}
		step := square.ToOffset(d, sign)
		if d.IsLong() {
			cur := step
			for i := 0; i < 8; i++ {
				row[cur.Offset32()] = effectEntry{kind: EffectLong, step: step}
				cur += step
			}
		} else {
			row[step.Offset32()] = effectEntry{kind: EffectDefinite}
		}
	}
}

// Effect reports how the piece ptypeO at the origin attacks the square
// reached by offset o.
func Effect(po piece.PtypeO, o square.Offset) (EffectKind, square.Offset) {
	e := ptypeEffect[ptypeOIndex(po)][o.Offset32()]
	return e.kind, e.step
}
