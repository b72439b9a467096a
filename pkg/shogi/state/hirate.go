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
)

// placement names one (file, rank, ptype) square of Black's half of the
// opening position; White's side is filled by mirroring.
type placement struct {
	x, y int
	t    piece.Ptype
}

var hirateBlack = []placement{
	{1, 9, piece.Lance}, {2, 9, piece.Knight}, {3, 9, piece.Silver}, {4, 9, piece.Gold},
	{5, 9, piece.King}, {6, 9, piece.Gold}, {7, 9, piece.Silver}, {8, 9, piece.Knight}, {9, 9, piece.Lance},
	{2, 8, piece.Rook}, {8, 8, piece.Bishop},
	{1, 7, piece.Pawn}, {2, 7, piece.Pawn}, {3, 7, piece.Pawn}, {4, 7, piece.Pawn}, {5, 7, piece.Pawn},
	{6, 7, piece.Pawn}, {7, 7, piece.Pawn}, {8, 7, piece.Pawn}, {9, 7, piece.Pawn},
}

// NewHirate returns the standard starting position, Black to move.
func NewHirate() *EffectState {
	b := NewEmpty()
	for _, p := range hirateBlack {
		b.SetPiece(piece.Black, square.New(p.x, p.y), p.t)
	}
	for _, p := range hirateBlack {
		mirrored := square.New(10-p.x, 10-p.y)
		b.SetPiece(piece.White, mirrored, p.t)
	}
	return NewEffectState(b)
}
