// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bufio"
	"os"
	"strings"

	"github.com/beevik/cmd"

	"github.com/pbglang/pbg"
	"github.com/pbglang/pbg/dict"
)

func (h *Host) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		h.displayCommands(cmds, nil)
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		switch {
		case s.Command.Subtree != nil:
			h.displayCommands(s.Command.Subtree, s.Command)
		default:
			if s.Command.Usage != "" {
				h.printf("Usage: %s\n\n", s.Command.Usage)
			}
			switch {
			case s.Command.Description != "":
				h.printf("Description:\n%s\n\n", indentWrap(h, 3, s.Command.Description))
			case s.Command.Brief != "":
				h.printf("Description:\n%s.\n\n", indentWrap(h, 3, s.Command.Brief))
			}
		}
	}
	return nil
}

func (h *Host) cmdParse(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}
	src := strings.Join(c.Args, " ")
	e, err := pbg.Parse(src)
	if err != nil {
		h.errorWithCaret(src, err)
		return nil
	}
	defer e.Close()

	if err := pbg.Dump(e, h.output); err != nil {
		h.errorf(err)
	}
	h.flush()
	return nil
}

func (h *Host) cmdEval(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}
	h.lastExpr = strings.Join(c.Args, " ")
	e, err := pbg.Parse(h.lastExpr)
	if err != nil {
		h.errorWithCaret(h.lastExpr, err)
		return nil
	}
	defer e.Close()

	v, err := e.Evaluate(h.store.Resolve)
	if err != nil {
		h.errorf(err)
		return nil
	}
	if v {
		h.println("TRUE")
	} else {
		h.println("FALSE")
	}
	return nil
}

func (h *Host) cmdRender(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}
	src := strings.Join(c.Args, " ")
	e, err := pbg.Parse(src)
	if err != nil {
		h.errorWithCaret(src, err)
		return nil
	}
	defer e.Close()

	s, err := pbg.Render(e)
	if err != nil {
		h.errorf(err)
		return nil
	}
	h.println(s)
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		for _, name := range h.store.Names() {
			h.printf("    %s\n", name)
		}
		return nil
	case 1:
		h.displayUsage(c.Command)
		return nil
	}

	key := c.Args[0]
	literal := strings.Join(c.Args[1:], " ")
	n, err := dict.ParseLiteral(literal)
	if err != nil {
		h.errorf(err)
		return nil
	}
	h.store.Set(key, n)
	return nil
}

func (h *Host) cmdGet(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.displayUsage(c.Command)
		return nil
	}
	// Exact name takes priority; an unambiguous prefix of a stored name
	// is also accepted, so "get thresh" works when "threshold" is the
	// only stored name starting with "thresh".
	n := h.store.Resolve(c.Args[0])
	if n.Kind == pbg.UNKNOWN {
		var err error
		n, err = h.store.Find(c.Args[0])
		if err != nil {
			h.printf("%s is not set\n", c.Args[0])
			return nil
		}
	}
	h.println(n.String())
	return nil
}

func (h *Host) cmdUnset(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.displayUsage(c.Command)
		return nil
	}
	h.store.Delete(c.Args[0])
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.displayUsage(c.Command)
		return nil
	}

	file, err := os.Open(c.Args[0])
	if err != nil {
		h.errorf(err)
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			h.printf("ignoring malformed line: %q\n", line)
			continue
		}
		n, err := dict.ParseLiteral(strings.TrimSpace(fields[1]))
		if err != nil {
			h.printf("%s: %v\n", fields[0], err)
			continue
		}
		h.store.Set(fields[0], n)
	}
	return scanner.Err()
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errQuit
}
