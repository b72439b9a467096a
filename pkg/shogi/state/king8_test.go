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

package state_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

// A white king cornered at 11, with a black lance on file 1 behind it
// and nothing else nearby: the lance's ray already reaches 12 before
// anyone drops there, so King8Info should flag that neighbor as a drop
// candidate and leave exactly the other two on-board neighbors (21 and
// 22) as genuine liberties. This is the position TryCheckmate1Ply
// mates from in pkg/shogi/checkmate, less the black pawn on 32 placed
// there, examined one ply earlier.
func cornerLanceSetup(withGoldInHand bool) *state.EffectState {
	b := state.NewEmpty()
	b.SetPiece(piece.White, square.New(1, 1), piece.King)
	b.SetPiece(piece.Black, square.New(9, 9), piece.King)
	b.SetPiece(piece.Black, square.New(1, 9), piece.Lance)
	if withGoldInHand {
		b.SetPiece(piece.Black, square.Stand, piece.Gold)
	}
	b.SetTurn(piece.Black)
	return state.NewEffectState(b)
}

func TestKing8InfoDropCandidateBeforeDrop(t *testing.T) {
	es := cornerLanceSetup(false)
	info := es.ComputeKing8Info(piece.White)

	if !info.DropCandidate[square.D] {
		t.Errorf("expected 12 (direction D from the corner) to already be a drop candidate")
	}
	if !info.Liberty[square.R] || !info.Liberty[square.DR] {
		t.Errorf("expected 21 (R) and 22 (DR) to be genuine liberties before any drop")
	}
	if info.LibertyCount != 2 {
		t.Errorf("LibertyCount=%d, want 2", info.LibertyCount)
	}
	if info.Space[square.UL] || info.Liberty[square.UL] {
		t.Errorf("off-board neighbor UL should report no fields set")
	}
}

func TestKing8InfoLibertyCountZeroAfterDrop(t *testing.T) {
	es := cornerLanceSetup(true)
	m := move.Drop(square.New(1, 2), piece.Gold, piece.Black)
	if err := es.MakeMove(m); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	info := es.ComputeKing8Info(piece.White)
	if info.LibertyCount != 0 {
		t.Errorf("LibertyCount=%d, want 0 once the gold covers both remaining flight squares", info.LibertyCount)
	}
	if !es.InCheck(piece.White) {
		t.Errorf("white should be in check after the gold drop")
	}
}

// A single white gold stands between its own king and a black rook on
// the same file, with nothing else in the way: the classic pin.
func TestPinOrOpenReportsATruePin(t *testing.T) {
	b := state.NewEmpty()
	b.SetPiece(piece.White, square.New(5, 9), piece.King)
	b.SetPiece(piece.White, square.New(5, 8), piece.Gold)
	b.SetPiece(piece.Black, square.New(5, 1), piece.Rook)
	es := state.NewEffectState(b)

	gold := es.PieceAt(square.New(5, 8))
	d, pinned := es.PinOrOpen(piece.White, gold.ID())
	if !pinned {
		t.Fatal("the sole gold between the king and the rook should be pinned")
	}
	if d != square.U {
		t.Errorf("pin direction = %v, want U", d)
	}
}

// Stack a second white piece (silver) behind the gold, still on the
// same file as the king and the rook: now EITHER one could move off
// the file without exposing the king, since the other still blocks --
// neither is actually pinned. Querying the silver specifically
// exercises the fix to PinOrOpen: before it checked for an occupant
// between the king and the queried piece, it would walk straight past
// the gold and find the rook beyond, wrongly reporting the silver
// pinned.
func TestPinOrOpenIgnoresAFartherBlockerWhenAnotherStandsCloser(t *testing.T) {
	b := state.NewEmpty()
	b.SetPiece(piece.White, square.New(5, 9), piece.King)
	b.SetPiece(piece.White, square.New(5, 8), piece.Gold)
	b.SetPiece(piece.White, square.New(5, 7), piece.Silver)
	b.SetPiece(piece.Black, square.New(5, 1), piece.Rook)
	es := state.NewEffectState(b)

	gold := es.PieceAt(square.New(5, 8))
	if _, pinned := es.PinOrOpen(piece.White, gold.ID()); pinned {
		t.Error("the gold is shielded by the silver behind it and is not actually pinned")
	}

	silver := es.PieceAt(square.New(5, 7))
	if _, pinned := es.PinOrOpen(piece.White, silver.ID()); pinned {
		t.Error("the gold, not the silver, stands nearest the king; the silver must not be reported as pinned")
	}
}

func TestHasEffectByPieceIdentifiesTheSpecificAttacker(t *testing.T) {
	es := cornerLanceSetup(false)
	lance := es.PieceAt(square.New(1, 9))
	if !lance.IsPiece() {
		t.Fatal("expected a lance at 19")
	}
	if !es.HasEffectByPiece(lance, square.New(1, 2)) {
		t.Error("the lance's file-1 ray should reach 12")
	}
	if es.HasEffectByPiece(lance, square.New(2, 2)) {
		t.Error("the lance does not attack 22, off its file")
	}

	king := es.PieceAt(square.New(9, 9))
	if es.HasEffectByPiece(king, square.New(1, 2)) {
		t.Error("the black king on the far side of the board has no effect on 12")
	}
}
