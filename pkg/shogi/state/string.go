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
	"fmt"
	"strings"

	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

// String renders a human readable diagram of b: nine ranks, file 9 on
// the left, with each hand's contents listed below.
func (b *BaseState) String() string {
	var sb strings.Builder
	for y := 1; y <= 9; y++ {
		for x := 9; x >= 1; x-- {
			fmt.Fprintf(&sb, "%4s", b.PieceAt(square.New(x, y)).PtypeO())
		}
		sb.WriteByte('\n')
	}
	for _, owner := range [2]piece.Player{piece.Black, piece.White} {
		fmt.Fprintf(&sb, "%s hand:", owner)
		for _, t := range piece.BasicPtype {
			if n := b.CountHand(owner, t); n > 0 {
				fmt.Fprintf(&sb, " %s*%d", t, n)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "turn: %s\n", b.turn)
	return sb.String()
}
