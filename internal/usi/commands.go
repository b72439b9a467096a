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

package usi

import (
	"fmt"
	"strconv"

	"github.com/tkaneko/miniosl/internal/usi/cmd"
	"github.com/tkaneko/miniosl/pkg/shogi/checkmate"
	"github.com/tkaneko/miniosl/pkg/shogi/move"
	"github.com/tkaneko/miniosl/pkg/shogi/movegen"
	"github.com/tkaneko/miniosl/pkg/shogi/piece"
	"github.com/tkaneko/miniosl/pkg/shogi/square"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

// registerDefaults installs the handful of USI verbs this front-end
// understands: the handshake pair (usi/isready), usinewgame, position,
// quit, and the three debugging extensions d (print the board), moves
// (list legal moves) and checkmate (report a one-ply mate, if any).
func (c *Client) registerDefaults() {
	c.AddCommand(cmd.Command{
		Name: "usi",
		Run: func(i cmd.Interaction) error {
			i.Reply("id name miniosl")
			i.Reply("id author tkaneko")
			i.Reply("usiok")
			return nil
		},
	})

	c.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})

	c.AddCommand(cmd.Command{
		Name: "usinewgame",
		Run: func(i cmd.Interaction) error {
			c.pos = state.NewHirate()
			return nil
		},
	})

	c.AddCommand(cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return errQuit
		},
	})

	c.AddCommand(cmd.Command{
		Name: "position",
		Run: func(i cmd.Interaction) error {
			return c.runPosition(i.Args)
		},
	})

	c.AddCommand(cmd.Command{
		Name: "d",
		Run: func(i cmd.Interaction) error {
			i.Reply(c.pos.String())
			return nil
		},
	})

	c.AddCommand(cmd.Command{
		Name: "moves",
		Run: func(i cmd.Interaction) error {
			for _, m := range movegen.GenerateLegal(c.pos) {
				i.Reply(m.String())
			}
			return nil
		},
	})

	c.AddCommand(cmd.Command{
		Name: "checkmate",
		Run: func(i cmd.Interaction) error {
			m := checkmate.TryCheckmate1Ply(c.pos)
			if m.IsNone() {
				i.Reply("checkmate: none")
				return nil
			}
			i.Reply("checkmate:", m.String())
			return nil
		},
	})
}

// runPosition handles "position startpos [moves m1 m2 ...]". SFEN
// board strings are not accepted: the core leaves text encodings to
// an external collaborator (spec §6), so this front-end only knows
// how to rebuild a position from the standard start plus a move list
// in the core's own from/to notation.
func (c *Client) runPosition(args []string) error {
	if len(args) == 0 || args[0] != "startpos" {
		return fmt.Errorf("position: only \"startpos\" is supported")
	}
	c.pos = state.NewHirate()
	args = args[1:]
	if len(args) == 0 {
		return nil
	}
	if args[0] != "moves" {
		return fmt.Errorf("position: expected \"moves\", got %q", args[0])
	}
	for _, token := range args[1:] {
		m, err := parseMove(c.pos, token)
		if err != nil {
			return err
		}
		if !movegen.IsLegal(c.pos, m) {
			return fmt.Errorf("position: %s is not legal", token)
		}
		if err := c.pos.MakeMove(m); err != nil {
			return err
		}
	}
	return nil
}

// parseMove decodes the core's own two-digit from/to notation, e.g.
// "7776" or a drop "P*55", with an optional trailing "+" for promotion.
func parseMove(pos *state.EffectState, token string) (move.Move, error) {
	promote := false
	if len(token) > 0 && token[len(token)-1] == '+' {
		promote = true
		token = token[:len(token)-1]
	}
	if len(token) >= 3 && token[1] == '*' {
		t := ptypeFromLetter(token[0])
		if t == piece.Empty {
			return move.None, fmt.Errorf("parseMove: unknown drop ptype %q", token[:1])
		}
		to, err := parseSquare(token[2:])
		if err != nil {
			return move.None, err
		}
		return move.Drop(to, t, pos.Turn()), nil
	}
	if len(token) != 4 {
		return move.None, fmt.Errorf("parseMove: malformed move %q", token)
	}
	from, err := parseSquare(token[:2])
	if err != nil {
		return move.None, err
	}
	to, err := parseSquare(token[2:])
	if err != nil {
		return move.None, err
	}
	mover := pos.PieceAt(from)
	if !mover.IsPiece() {
		return move.None, fmt.Errorf("parseMove: no piece at %s", from)
	}
	after := mover.Ptype()
	if promote {
		after = after.Promote()
	}
	captured := pos.PieceAt(to).Ptype()
	if !pos.PieceAt(to).IsPiece() {
		captured = piece.Empty
	}
	return move.New(from, to, after, captured, promote, mover.Owner()), nil
}

func parseSquare(s string) (square.Square, error) {
	if len(s) != 2 {
		return square.Stand, fmt.Errorf("parseSquare: malformed square %q", s)
	}
	x, err := strconv.Atoi(s[0:1])
	if err != nil {
		return square.Stand, err
	}
	y, err := strconv.Atoi(s[1:2])
	if err != nil {
		return square.Stand, err
	}
	return square.New(x, y), nil
}

func ptypeFromLetter(c byte) piece.Ptype {
	switch c {
	case 'P':
		return piece.Pawn
	case 'L':
		return piece.Lance
	case 'N':
		return piece.Knight
	case 'S':
		return piece.Silver
	case 'G':
		return piece.Gold
	case 'B':
		return piece.Bishop
	case 'R':
		return piece.Rook
	default:
		return piece.Empty
	}
}
