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

package square

// BasicStep returns the unit offset from `from` towards `to` along
// their shared rank, file, or diagonal. It returns the zero Offset if
// the two squares are not collinear (or equal).
func BasicStep(from, to Square) Offset {
	dx := to.X() - from.X()
	dy := to.Y() - from.Y()
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx == 0:
		return NewOffset(0, sign(dy))
	case dy == 0:
		return NewOffset(sign(dx), 0)
	case abs(dx) == abs(dy):
		return NewOffset(sign(dx), sign(dy))
	default:
		return 0
	}
}

// Base8Dir returns the base-8 direction from `from` to `to` as seen by
// Black, or -1 if the squares are not collinear.
func Base8Dir(from, to Square) Direction {
	step := BasicStep(from, to)
	if step == 0 {
		return -1
	}
	for d := Direction(0); d < NBase8; d++ {
		if BlackOffset(d) == step {
			return d
		}
	}
	return -1
}

// IsBetween reports whether `middle` lies strictly between `from` and
// `to` on the straight line joining them.
func IsBetween(middle, from, to Square) bool {
	step := BasicStep(from, to)
	if step == 0 {
		return false
	}
	for s := from.Add(step); s != to; s = s.Add(step) {
		if s == middle {
			return true
		}
		if !s.IsOnBoard() {
			return false
		}
	}
	return false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
