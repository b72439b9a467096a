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

func TestNewHirateConsistent(t *testing.T) {
	es := state.NewHirate()
	if !es.IsConsistent() {
		t.Fatal("hirate position is not internally consistent")
	}
	if es.Turn() != piece.Black {
		t.Errorf("hirate starts with black to move, got %v", es.Turn())
	}
}

func TestMakeMoveRoundTrip(t *testing.T) {
	es := state.NewHirate()
	from := square.New(7, 7)
	to := square.New(7, 6)

	mover := es.PieceAt(from)
	if !mover.IsPiece() || mover.Ptype() != piece.Pawn {
		t.Fatalf("expected a black pawn at 77, got %v", mover)
	}

	m := move.New(from, to, mover.Ptype(), piece.Empty, false, mover.Owner())
	if err := es.MakeMove(m); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	if !es.IsConsistent() {
		t.Fatal("state inconsistent after pawn push")
	}
	if es.Turn() != piece.White {
		t.Errorf("turn should flip to white after black's move")
	}
	if p := es.PieceAt(to); !p.IsPiece() || p.Ptype() != piece.Pawn {
		t.Errorf("pawn did not land on 76: %v", p)
	}
	if p := es.PieceAt(from); p.IsPiece() {
		t.Errorf("77 should be empty after the push, got %v", p)
	}
}

func TestRotate180Idempotent(t *testing.T) {
	es := state.NewHirate()
	once := es.BaseState.Rotate180()
	twice := once.Rotate180()

	for x := 1; x <= 9; x++ {
		for y := 1; y <= 9; y++ {
			sq := square.New(x, y)
			a := es.PieceAt(sq)
			b := twice.PieceAt(sq)
			if a.Ptype() != b.Ptype() || a.Owner() != b.Owner() {
				t.Fatalf("rotate180 twice changed %s: %v -> %v", sq, a, b)
			}
		}
	}
	if !once.IsConsistent() {
		t.Fatal("rotated state inconsistent")
	}
}

func TestInCheckMatchesHasEffectAt(t *testing.T) {
	es := state.NewHirate()
	for _, owner := range []piece.Player{piece.Black, piece.White} {
		king := es.KingSquare(owner)
		got := es.InCheck(owner)
		want := es.HasEffectAt(owner.Alt(), king)
		if got != want {
			t.Errorf("InCheck(%v)=%v want %v", owner, got, want)
		}
	}
}
