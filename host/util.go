// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"os"
	"strings"

	"github.com/beevik/term"

	"github.com/pbglang/pbg"
)

// errQuit signals processCommand's caller to stop the read loop; it is
// not displayed to the user.
var errQuit = errors.New("quit")

func (h *Host) errorf(err error) {
	h.printf("ERROR: %v\n", err)
}

// errorWithCaret reports a parse error, additionally pointing a caret at
// the offending byte offset within src when err carries one. Grounded on
// the teacher's assembler error records (message + source position),
// rendered the way a terminal-attached assembler diagnostic would be.
func (h *Host) errorWithCaret(src string, err error) {
	perr, ok := err.(*pbg.Error)
	if !ok || perr.Offset < 0 || perr.Offset > len(src) {
		h.errorf(err)
		return
	}
	h.printf("%s\n%s^\n", src, strings.Repeat(" ", perr.Offset))
	h.errorf(err)
}

// indentWrap word-wraps s to the host's terminal width (or a sensible
// default when not attached to a terminal), indenting every line by
// indent spaces.
func indentWrap(h *Host, indent int, s string) string {
	width := 80
	if h.isTerminal {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > indent+10 {
			width = w
		}
	}

	ss := strings.Fields(s)
	if len(ss) == 0 {
		return ""
	}

	var counts []int
	count := 1
	l := indent + len(ss[0])
	for i := 1; i < len(ss); i++ {
		if l+1+len(ss[i]) < width {
			count++
			l += 1 + len(ss[i])
			continue
		}
		counts = append(counts, count)
		count = 1
		l = indent + len(ss[i])
	}
	counts = append(counts, count)

	var lines []string
	i := 0
	for _, c := range counts {
		line := strings.Repeat(" ", indent) + strings.Join(ss[i:i+c], " ")
		lines = append(lines, line)
		i += c
	}
	return strings.Join(lines, "\n")
}
