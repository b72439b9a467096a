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

// Package-level unit tests for PieceMask's packed add/sub arithmetic.
// The Summary type itself (DoEffectAdd/Sub, DoBlockAtAdd/Sub) is
// exercised indirectly and extensively through pkg/shogi/state's tests,
// which drive it via real positions rather than hand-built Lookup/
// OwnerOf closures.
package effect_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/effect"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

func TestIncrementThenDecrementIsIdentity(t *testing.T) {
	var m effect.PieceMask
	inc := effect.Increment(piece.Black, 5, square.U)
	m += inc
	if !m.Ids().IsSet(5) {
		t.Fatal("id 5 should be an attacker after Increment")
	}
	if m.CountOf(piece.Black) != 1 {
		t.Errorf("CountOf(Black)=%d, want 1", m.CountOf(piece.Black))
	}
	if !m.HasLongFrom(square.U) {
		t.Errorf("HasLongFrom(U) should be set")
	}

	m -= inc
	if m != 0 {
		t.Errorf("mask should return to zero after matching decrement, got %#x", uint64(m))
	}
}

func TestCountOfSeparatesOwners(t *testing.T) {
	var m effect.PieceMask
	m += effect.Increment(piece.Black, 1, -1)
	m += effect.Increment(piece.White, 2, -1)
	m += effect.Increment(piece.White, 3, -1)

	if m.CountOf(piece.Black) != 1 {
		t.Errorf("CountOf(Black)=%d, want 1", m.CountOf(piece.Black))
	}
	if m.CountOf(piece.White) != 2 {
		t.Errorf("CountOf(White)=%d, want 2", m.CountOf(piece.White))
	}
	if ids := m.Ids(); !ids.IsSet(1) || !ids.IsSet(2) || !ids.IsSet(3) {
		t.Errorf("Ids()=%v, want 1,2,3 all set", ids)
	}
}

func TestAttackersOfFiltersByOwnedSet(t *testing.T) {
	var m effect.PieceMask
	m += effect.Increment(piece.Black, 1, -1)
	m += effect.Increment(piece.Black, 2, -1)

	var owned piece.Mask
	owned.Set(1)

	got := m.AttackersOf(owned)
	if !got.IsSet(1) || got.IsSet(2) {
		t.Errorf("AttackersOf should only keep ids present in the owned mask, got %v", got)
	}
}
