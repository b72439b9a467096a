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

package movegen_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/movegen"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

// From the standard opening, black has exactly 30 legal moves: 9 pawn
// pushes, 2 lance steps, 6 rook moves (one to 18, five along rank 8),
// 2 moves for each silver, 3 for each gold and 3 for the king; the
// knights and the bishop are boxed in by their own pieces. The count
// itself is the testable invariant, not any particular enumeration.
func TestGenerateLegalHirateCount(t *testing.T) {
	es := state.NewHirate()
	moves := movegen.GenerateLegal(es)
	if len(moves) != 30 {
		t.Errorf("got %d legal moves from hirate, want 30", len(moves))
	}
	for _, m := range moves {
		if !movegen.IsLegal(es, m) {
			t.Errorf("GenerateLegal produced a move IsLegal rejects: %s", m)
		}
	}
}

func TestGenerateWithFullUnpromotionsIsSuperset(t *testing.T) {
	es := state.NewHirate()
	// Every move of the plain list must also be in the full list, which
	// therefore never has fewer moves.
	full := movegen.GenerateWithFullUnpromotions(es)
	plain := movegen.GenerateLegal(es)
	if len(full) < len(plain) {
		t.Errorf("full-unpromotion list (%d) smaller than plain list (%d)", len(full), len(plain))
	}
	inFull := make(map[move.Move]bool, len(full))
	for _, m := range full {
		inFull[m] = true
	}
	for _, m := range plain {
		if !inFull[m] {
			t.Errorf("GenerateLegal move %s missing from the full-unpromotion list", m)
		}
	}
}

func TestNifuRejectsSecondPawnOnFile(t *testing.T) {
	b := state.NewEmpty()
	b.SetPiece(piece.Black, square.New(5, 9), piece.King)
	b.SetPiece(piece.White, square.New(5, 1), piece.King)
	b.SetPiece(piece.Black, square.New(7, 6), piece.Pawn)
	b.SetPiece(piece.Black, square.Stand, piece.Pawn)
	es := state.NewEffectState(b)

	drop := move.Drop(square.New(7, 5), piece.Pawn, piece.Black)
	if movegen.IsLegal(es, drop) {
		t.Errorf("nifu: dropping a second pawn on file 7 should be illegal")
	}

	legalDrop := move.Drop(square.New(3, 5), piece.Pawn, piece.Black)
	if !movegen.IsLegal(es, legalDrop) {
		t.Errorf("dropping a pawn on an empty file should be legal")
	}
}

func TestNoSelfCheckMove(t *testing.T) {
	es := state.NewHirate()
	for _, m := range movegen.GenerateLegal(es) {
		clone := es.Clone()
		if err := clone.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s): %v", m, err)
		}
		if clone.InCheck(m.Owner()) {
			t.Errorf("move %s leaves mover in check", m)
		}
	}
}

// A white silver sits on file 5 two ranks ahead of its own king, with
// a black rook on the same file beyond it: the rook's effect stops at
// the silver, so the king is not in check, but the silver is pinned --
// PinOrOpen reports the pin direction as U/D and fastKingSafety must
// reject every diagonal step the silver could otherwise make while
// still allowing the one step that keeps it on file 5.
func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	b := state.NewEmpty()
	b.SetPiece(piece.White, square.New(5, 9), piece.King)
	b.SetPiece(piece.White, square.New(5, 7), piece.Silver)
	b.SetPiece(piece.Black, square.New(5, 1), piece.Rook)
	b.SetPiece(piece.Black, square.New(9, 1), piece.King)
	b.SetTurn(piece.White)
	es := state.NewEffectState(b)

	if es.InCheck(piece.White) {
		t.Fatal("the rook's effect should stop at the pinned silver, not reach the king")
	}

	onFile := square.New(5, 8)
	offFile := []square.Square{
		square.New(4, 8), square.New(6, 8),
		square.New(4, 6), square.New(6, 6),
	}

	moves := movegen.GenerateLegal(es)
	foundOnFile := false
	for _, m := range moves {
		if m.From() != square.New(5, 7) {
			continue
		}
		if m.To() == onFile {
			foundOnFile = true
			continue
		}
		for _, bad := range offFile {
			if m.To() == bad {
				t.Errorf("pinned silver should not be able to move to %s", bad)
			}
		}
	}
	if !foundOnFile {
		t.Error("pinned silver should still be able to step to 58, staying on the pin line")
	}
}

func TestInCheckmate(t *testing.T) {
	if movegen.InCheckmate(state.NewHirate()) {
		t.Error("the opening position is not checkmate")
	}

	b := state.NewEmpty()
	b.SetPiece(piece.White, square.New(1, 1), piece.King)
	b.SetPiece(piece.Black, square.New(9, 9), piece.King)
	b.SetPiece(piece.Black, square.New(1, 9), piece.Lance)
	b.SetPiece(piece.Black, square.Stand, piece.Gold)
	es := state.NewEffectState(b)
	if err := es.MakeMove(move.Drop(square.New(1, 2), piece.Gold, piece.Black)); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if !movegen.InCheckmate(es) {
		t.Error("expected the gold drop at 12 to checkmate the cornered king")
	}
}
