// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

// pos tracks a byte offset within the original expression text, so that
// error reporting can point at the exact byte that failed to parse.
// Grounded on asm.fstring's position-tracking cursor, trimmed to just
// the offset bookkeeping the parser's error paths actually use: phase 1
// (scanFields) hand-indexes the source bytes directly, and both phases
// only ever advance pos to a known byte offset to report an error, so
// the fuller consume-while-predicate cursor asm.fstring offers has no
// call site here.
type pos struct {
	offset int
	str    string
}

func newPos(s string) pos {
	return pos{0, s}
}

func (p pos) consume(n int) pos {
	return pos{p.offset + n, p.str[n:]}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
