// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable, indented pretty-print of e to w
// (spec.md §6's "Debug dump" interface). It is not required to
// round-trip and is intended for interactive inspection, not storage.
//
// Grounded on disasm.Disassemble's "one node, one formatted line" idiom
// plus the indentation host.Host's nested listings use for grouped
// command output.
func Dump(e *Expression, w io.Writer) error {
	if e.closed {
		return renderErrorf("cannot dump a closed expression")
	}
	return dumpNode(e, 0, 0, w)
}

func dumpNode(e *Expression, ref ChildRef, depth int, w io.Writer) error {
	n := e.node(ref)
	indent := strings.Repeat("  ", depth)

	if n.Kind.IsOperator() {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, n.Kind); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := dumpNode(e, child, depth+1, w); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := fmt.Fprintf(w, "%s%s\n", indent, n.String())
	return err
}
