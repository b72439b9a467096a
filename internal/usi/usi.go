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

// Package usi implements a minimal USI (Universal Shogi Interface)
// read-eval-print loop over an EffectState, grounded on the teacher's
// pkg/uci Client/Schema split. It speaks just enough of the protocol
// to drive the core interactively: it never attempts a full SFEN
// parser (spec §1 places text I/O out of the core's scope), and
// accepts positions as "startpos" plus a move list in the core's own
// Move.String notation instead.
package usi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tkaneko/miniosl/internal/usi/cmd"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

// errQuit stops Start's loop when the quit command runs.
var errQuit = errors.New("usi: quit")

// Client is a USI engine front-end wrapping one EffectState.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
	pos      *state.EffectState
}

// NewClient builds a Client reading from stdin and writing to stdout,
// starting from the standard initial position.
func NewClient() *Client {
	c := &Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		pos:    state.NewHirate(),
	}
	c.commands = cmd.NewSchema(c.stdout)
	c.registerDefaults()
	return c
}

// AddCommand registers an additional command.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop against c.stdin until quit or a
// read error.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch err := c.Run(args); err {
		case nil:
		case errQuit:
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run dispatches one already-tokenized command line.
func (c *Client) Run(args []string) error {
	name, rest := args[0], args[1:]
	command, found := c.commands.Get(name)
	if !found {
		return errors.New(name + ": command not found")
	}
	return command.RunWith(rest, c.commands)
}

// Println writes a to c.stdout, like fmt.Println.
func (c *Client) Println(a ...any) {
	fmt.Fprintln(c.stdout, a...)
}
