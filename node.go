// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "fmt"

// Date is the payload of a DATE literal: a year/month/day triple. The
// parser does not perform calendar validation beyond the range check
// described in DESIGN.md (month 1-12, day 1-31); it never constructs a
// time.Time, since PBG dates are opaque triples compared only for
// structural equality (spec.md §4.3's EQ semantics).
type Date struct {
	Year, Month, Day int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ChildRef is a signed reference to a child node, using the arena
// encoding from spec.md §3: a non-negative value indexes the static
// arena directly; a negative value -1-i indexes dynamic arena slot i.
// This mirrors the asm package's child0/child1 pointers, generalized
// from a fixed two-child binary tree to an arbitrary-arity child list
// addressed through a single flat arena pair.
type ChildRef int32

func dynamicRef(i int) ChildRef { return ChildRef(-1 - i) }

func (r ChildRef) isDynamic() bool { return r < 0 }

func (r ChildRef) dynamicIndex() int { return int(-1 - r) }

// Node is a tagged variant holding either a literal value or an
// operator's child list. Only the fields relevant to Kind are
// meaningful; this plays the role of the reference implementation's
// untyped byte-pointer-plus-length payload, but as a disciplined tagged
// struct (the "Tagged union" note of spec.md §9).
type Node struct {
	Kind     Kind
	Number   float64   // NUMBER
	Bytes    []byte    // STRING, KEY payload (delimiters stripped)
	Date     Date      // DATE
	Children []ChildRef // operator kinds only, in stored/textual order
}

func (n *Node) String() string {
	switch n.Kind {
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NUMBER:
		return formatNumber(n.Number)
	case STRING:
		return "'" + string(n.Bytes) + "'"
	case KEY:
		return "[" + string(n.Bytes) + "]"
	case DATE:
		return n.Date.String()
	case UNKNOWN:
		return "UNKNOWN"
	default:
		return n.Kind.String()
	}
}

// Expression is a parsed PBG tree: a pair of node arenas (spec.md §3).
// The static arena holds every literal that appeared textually plus
// every operator node; the dynamic arena holds exactly the KEY
// literals, segregated so Evaluate can substitute a resolved-values
// arena of identical shape without touching the static arena.
//
// An Expression is read-only except for the transient dynamic-arena
// swap Evaluate performs for the duration of a single walk (spec.md §5
// "Shared resources"): it is not safe to evaluate the same Expression
// concurrently from two goroutines.
type Expression struct {
	static  []Node
	dynamic []Node
	closed  bool
}

// Root returns the expression's root node, always static index 0.
func (e *Expression) Root() *Node {
	return &e.static[0]
}

// node dereferences a child reference against the expression's current
// arena pair. During Evaluate, dynamic temporarily points at the
// resolved-values arena rather than the raw KEY arena; this is the
// uniform dereference rule spec.md §4.3 depends on.
func (e *Expression) node(ref ChildRef) *Node {
	if ref.isDynamic() {
		return &e.dynamic[ref.dynamicIndex()]
	}
	return &e.static[ref]
}

// Keys returns the textual names of every KEY node in the dynamic
// arena, in dynamic-arena order (the order Evaluate will invoke the
// dictionary callback in).
func (e *Expression) Keys() []string {
	names := make([]string, len(e.dynamic))
	for i := range e.dynamic {
		names[i] = string(e.dynamic[i].Bytes)
	}
	return names
}

// Close releases the expression's arenas. Freeing is idempotent per
// spec.md §3's Lifecycle invariant; Go's garbage collector reclaims the
// payload memory itself, so Close's job is to make a closed Expression
// unusable rather than to free anything by hand.
func (e *Expression) Close() {
	e.static = nil
	e.dynamic = nil
	e.closed = true
}
