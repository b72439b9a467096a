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

package square_test

import (
	"testing"

	"github.com/tkaneko/miniosl/pkg/shogi/square"
)

func TestRotate180IsInvolution(t *testing.T) {
	for x := 1; x <= 9; x++ {
		for y := 1; y <= 9; y++ {
			s := square.New(x, y)
			if got := s.Rotate180().Rotate180(); got != s {
				t.Errorf("Rotate180 twice on %s gave %s", s, got)
			}
		}
	}
	if got := square.Stand.Rotate180(); got != square.Stand {
		t.Errorf("Rotate180(Stand) = %s, want Stand", got)
	}
}

func TestBase8DirCollinearPairs(t *testing.T) {
	tests := []struct {
		from, to square.Square
		want     bool
	}{
		{square.New(5, 5), square.New(5, 1), true},  // same file
		{square.New(5, 5), square.New(1, 5), true},  // same rank
		{square.New(5, 5), square.New(8, 8), true},  // diagonal
		{square.New(5, 5), square.New(6, 8), false}, // knight-shaped, not collinear
		{square.New(5, 5), square.New(5, 5), false}, // identical squares
	}
	for _, test := range tests {
		d := square.Base8Dir(test.from, test.to)
		got := d != -1
		if got != test.want {
			t.Errorf("Base8Dir(%s, %s) collinear=%v, want %v", test.from, test.to, got, test.want)
		}
	}
}

func TestIsBetween(t *testing.T) {
	from := square.New(5, 9)
	to := square.New(5, 1)
	middle := square.New(5, 5)
	outside := square.New(5, 9) // endpoint itself, not strictly between

	if !square.IsBetween(middle, from, to) {
		t.Errorf("IsBetween should find %s strictly between %s and %s", middle, from, to)
	}
	if square.IsBetween(outside, from, to) {
		t.Errorf("IsBetween should not count an endpoint as between")
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	s := square.New(7, 6)
	if s.String() != "76" {
		t.Errorf("String()=%q, want %q", s.String(), "76")
	}
	if square.Stand.String() != "00" {
		t.Errorf("Stand.String()=%q, want %q", square.Stand.String(), "00")
	}
}
