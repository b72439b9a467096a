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

package move_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

func TestNewRoundTripsFields(t *testing.T) {
	from := square.New(7, 7)
	to := square.New(7, 6)
	m := move.New(from, to, piece.Pawn, piece.Empty, false, piece.Black)

	if m.From() != from {
		t.Errorf("From()=%s, want %s", m.From(), from)
	}
	if m.To() != to {
		t.Errorf("To()=%s, want %s", m.To(), to)
	}
	if m.PtypeAfter() != piece.Pawn {
		t.Errorf("PtypeAfter()=%v, want Pawn", m.PtypeAfter())
	}
	if m.Owner() != piece.Black {
		t.Errorf("Owner()=%v, want Black", m.Owner())
	}
	if m.IsCapture() || m.IsPromote() || m.IsDrop() {
		t.Errorf("a plain push should not be a capture, promotion, or drop")
	}
	if !m.IsNormal() {
		t.Errorf("IsNormal() should be true for a plain board move")
	}
}

func TestDropIsDropNotNormal(t *testing.T) {
	m := move.Drop(square.New(5, 5), piece.Pawn, piece.White)
	if !m.IsDrop() {
		t.Errorf("IsDrop() should be true")
	}
	if m.IsNormal() {
		t.Errorf("IsNormal() should be false for a drop")
	}
	if !m.From().IsStand() {
		t.Errorf("From() should be Stand for a drop")
	}
}

func TestPromotionRoundTrip(t *testing.T) {
	from := square.New(2, 3)
	to := square.New(2, 2)
	m := move.New(from, to, piece.PPawn, piece.Empty, true, piece.Black)

	if !m.IsPromote() {
		t.Errorf("IsPromote() should be true")
	}
	if m.PtypeBefore() != piece.Pawn {
		t.Errorf("PtypeBefore()=%v, want Pawn", m.PtypeBefore())
	}
	if m.PtypeAfter() != piece.PPawn {
		t.Errorf("PtypeAfter()=%v, want PPawn", m.PtypeAfter())
	}
}

func TestSentinelMoves(t *testing.T) {
	if !move.None.IsNone() {
		t.Errorf("move.None.IsNone() should be true")
	}
	if move.Pass.IsNone() {
		t.Errorf("move.Pass should not be None")
	}
	if !move.Pass.IsPass() || !move.Resign.IsResign() || !move.DeclareWin.IsDeclareWin() {
		t.Errorf("pseudo-move sentinels misclassified")
	}
}
