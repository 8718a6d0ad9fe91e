// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import (
	"strconv"
	"strings"
)

// Render produces the canonical textual form of e (spec.md §4.4 and
// §6). The result re-parses to a structurally identical tree, modulo
// NUMBER round-tripping (spec.md §8).
//
// Grounded on disasm.Disassemble (teacher), which formats one typed
// value into one canonical line; Render applies the same "typed value
// in, canonical token out" idiom recursively over the whole tree.
func Render(e *Expression) (string, error) {
	if e.closed {
		return "", renderErrorf("cannot render a closed expression")
	}
	var b strings.Builder
	if err := renderNode(e, 0, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderNode(e *Expression, ref ChildRef, b *strings.Builder) error {
	n := e.node(ref)
	switch n.Kind {
	case TRUE:
		b.WriteString("TRUE")
	case FALSE:
		b.WriteString("FALSE")
	case NUMBER:
		b.WriteString(formatNumber(n.Number))
	case STRING:
		b.WriteByte('\'')
		b.Write(n.Bytes)
		b.WriteByte('\'')
	case KEY:
		b.WriteByte('[')
		b.Write(n.Bytes)
		b.WriteByte(']')
	case DATE:
		b.WriteString(n.Date.String())
	case UNKNOWN:
		return renderErrorf("cannot render an UNKNOWN node")
	default:
		if !n.Kind.IsOperator() {
			return renderErrorf("unrecognized node kind %s", n.Kind)
		}
		b.WriteByte('(')
		b.WriteString(n.Kind.symbol())
		for _, child := range n.Children {
			b.WriteByte(',')
			if err := renderNode(e, child, b); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	}
	return nil
}

// formatNumber renders a NUMBER literal using the shortest decimal
// representation that round-trips exactly back to v. DESIGN.md resolves
// spec.md §9's Open Question in favor of this over the reference's
// fixed two-fractional-digit "%.2f", which loses precision and breaks
// round-tripping.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
