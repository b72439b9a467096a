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

// Package tables holds every table this core precomputes once at
// process start and never mutates afterwards: move-direction sets per
// ptype, the dense ptype-effect table, drop legality by rank, and the
// declare-win piece values. All of it is built during package
// initialization, matching the teacher's pkg/attacks magic-bitboard tables.
package tables

import (
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// MoveDirections gives, per basic-or-promoted ptype, the set of
// directions (as seen by Black; White mirrors by sign) the piece can
// move in. Indexed by piece.Ptype. It is filled in during package
// variable initialization, which completes before any init function
// runs, so effect.go's init can build the effect table from it.
var MoveDirections [piece.NPtype]uint32

var _ = initMoveDirections()

func dirBit(d square.Direction) uint32 { return 1 << uint(d) }

func initMoveDirections() bool {
	short := func(ds ...square.Direction) uint32 {
		var m uint32
		for _, d := range ds {
			m |= dirBit(d)
		}
		return m
	}

	goldSteps := short(square.UL, square.U, square.UR, square.L, square.R, square.D)
	silverSteps := short(square.UL, square.U, square.UR, square.DL, square.DR)

	MoveDirections[piece.King] = short(square.UL, square.U, square.UR, square.L, square.R, square.DL, square.D, square.DR)
	MoveDirections[piece.Gold] = goldSteps
	MoveDirections[piece.PPawn] = goldSteps
	MoveDirections[piece.PLance] = goldSteps
	MoveDirections[piece.PKnight] = goldSteps
	MoveDirections[piece.PSilver] = goldSteps
	MoveDirections[piece.Silver] = silverSteps
	MoveDirections[piece.Pawn] = short(square.U)
	MoveDirections[piece.Lance] = dirBit(square.LongU)
	MoveDirections[piece.Knight] = short(square.UUL, square.UUR)
	MoveDirections[piece.Bishop] = dirBit(square.LongUL) | dirBit(square.LongUR) | dirBit(square.LongDL) | dirBit(square.LongDR)
	MoveDirections[piece.Rook] = dirBit(square.LongU) | dirBit(square.LongD) | dirBit(square.LongL) | dirBit(square.LongR)
	MoveDirections[piece.PBishop] = MoveDirections[piece.Bishop] | short(square.U, square.D, square.L, square.R)
	MoveDirections[piece.PRook] = MoveDirections[piece.Rook] | short(square.UL, square.UR, square.DL, square.DR)
	return true
}

// CanMove reports whether ptype t can move in direction d (Black view).
func CanMove(t piece.Ptype, d square.Direction) bool {
	return MoveDirections[t]&dirBit(d) != 0
}

// IsLongPiece reports whether t has any long-ray movement, i.e. is a
// Lance, Bishop, Rook or one of their promoted forms.
func IsLongPiece(t piece.Ptype) bool {
	for d := square.LongDirBase; d < square.NDirection; d++ {
		if CanMove(t, d) {
			return true
		}
	}
	return false
}
