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

package tables_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/tables"
)

func TestLegalDropAtBoundary(t *testing.T) {
	farRank := square.New(5, 1)
	secondFar := square.New(5, 2)

	if tables.LegalDropAt(piece.Black, piece.Pawn, farRank) {
		t.Error("black pawn must not be droppable on the far rank")
	}
	if !tables.LegalDropAt(piece.Black, piece.Pawn, secondFar) {
		t.Error("black pawn should be droppable on the second-far rank")
	}
	if tables.LegalDropAt(piece.Black, piece.Knight, secondFar) {
		t.Error("black knight must not be droppable on the second-far rank")
	}
}

func TestMustPromoteMatchesLegalDropAt(t *testing.T) {
	for _, owner := range []piece.Player{piece.Black, piece.White} {
		for y := 1; y <= 9; y++ {
			sq := square.New(5, y)
			for _, t2 := range []piece.Ptype{piece.Pawn, piece.Lance, piece.Knight} {
				drop := tables.LegalDropAt(owner, t2, sq)
				forced := tables.MustPromote(owner, t2, sq)
				if forced && drop {
					t.Errorf("%v %v at %s: MustPromote and LegalDropAt both true", owner, t2, sq)
				}
			}
		}
	}
}

func TestDeclareThresholdAsymmetry(t *testing.T) {
	if tables.DeclareThreshold(piece.Black) != 28 {
		t.Errorf("black declare threshold should be 28")
	}
	if tables.DeclareThreshold(piece.White) != 27 {
		t.Errorf("white declare threshold should be 27")
	}
}

func TestEffectTableAgreesWithCanMove(t *testing.T) {
	rook := piece.NewPtypeO(piece.Black, piece.Rook)
	kind, step := tables.Effect(rook, square.NewOffset(0, -3))
	if kind != tables.EffectLong {
		t.Errorf("rook 3 squares up should be a long effect, got %v", kind)
	}
	if step != square.NewOffset(0, -1) {
		t.Errorf("rook long-effect step should be the unit direction, got %v", step)
	}

	if !tables.CanMove(piece.Gold, square.U) {
		t.Errorf("gold should be able to move one step forward")
	}
	if tables.CanMove(piece.Gold, square.DL) {
		t.Errorf("gold should not move diagonally backward")
	}
	if !tables.CanMove(piece.Gold, square.D) {
		t.Errorf("gold should be able to move one step straight backward")
	}
}
