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

// Package cmd implements the USI command-dispatch schema the REPL in
// internal/usi is built on, adapted from the teacher's pkg/uci/cmd:
// a name-keyed registry of commands, each handed an Interaction to
// reply through.
package cmd

import (
	"fmt"
	"io"
)

// NewSchema initializes a new, empty command schema.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema is a client's registered set of commands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under its own name, replacing any previous command
// of that name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is one USI verb the engine understands.
type Command struct {
	// Name is the first token of the command line that selects this Command.
	Name string

	// Run does the actual work, given the remaining tokens of the
	// command line and a way to reply to the GUI.
	Run func(Interaction) error
}

// RunWith parses no flags (USI commands here are positional) and
// invokes c.Run.
func (c Command) RunWith(args []string, schema Schema) error {
	return c.Run(Interaction{
		stdout: schema.replyWriter,
		Args:   args,
	})
}

// Interaction carries one command invocation's arguments and its
// reply sink.
type Interaction struct {
	stdout io.Writer
	Args   []string
}

// Reply writes a line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a newline-terminated line to the GUI, like fmt.Printf.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
