// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive command shell for parsing,
// evaluating, rendering and inspecting prefix boolean expressions
// against a mutable key-value dictionary.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/pbglang/pbg/dict"
)

// A Host runs a sequence of commands read from an io.Reader, writing
// responses to an io.Writer. It owns the dictionary against which
// expressions are evaluated.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	isTerminal  bool
	store       *dict.Store
	lastCmd     *cmd.Selection
	lastExpr    string
}

// New creates a new, empty command host.
func New() *Host {
	return &Host{
		store:      dict.New(),
		isTerminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// RunCommands reads commands from r and writes responses to w until r is
// exhausted or a command requests termination (e.g. "quit"). When
// interactive is true, a prompt is displayed before each command read.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	h.lastCmd = nil

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		if err := h.processCommand(line); err != nil {
			break
		}
	}
	h.flush()
}

func (h *Host) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			h.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v\n", err)
			return nil
		}
	} else if h.lastCmd != nil {
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		h.displayCommands(c.Command.Subtree, nil)
		return nil
	}

	h.lastCmd = &c

	handler := c.Command.Data.(func(*Host, cmd.Selection) error)
	return handler(h, c)
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if !h.interactive {
		return
	}
	h.printf("pbg> ")
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		h.printf("Usage: %s\n", c.Usage)
	}
}

func (h *Host) displayCommands(commands *cmd.Tree, c *cmd.Command) {
	h.printf("%s commands:\n", commands.Title)
	for _, cc := range commands.Commands {
		if cc.Brief != "" {
			h.printf("    %-15s  %s\n", cc.Name, cc.Brief)
		}
	}
	h.println()
}
