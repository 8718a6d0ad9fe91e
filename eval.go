// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "bytes"

// Dictionary resolves a key's name to a literal node at evaluation
// time. It must be a pure function of name: spec.md §4.3 treats the
// caller's dictionary as an external collaborator, so PBG itself never
// mutates or caches anything through it. Returning a node of kind
// UNKNOWN signals that name is not present.
//
// Grounded on host.resolver in the teacher's second expression
// evaluator (host/expr.go), which resolves bare identifiers to int64
// values through an equivalent callback.
type Dictionary func(name string) Node

// Evaluate walks e against dict and returns the single boolean result
// described by spec.md §4.3. It is equivalent to EvaluateTraced(dict,
// nil).
func (e *Expression) Evaluate(dict Dictionary) (bool, error) {
	return e.EvaluateTraced(dict, nil)
}

// EvaluateTraced evaluates e exactly like Evaluate, additionally
// notifying tracer of every node the recursive walk visits. This is the
// mechanism spec.md §8 requires to distinguish short-circuited children
// (never visited by the walk) from eagerly resolved keys (every key is
// always dereferenced against dict, regardless of short-circuiting).
func (e *Expression) EvaluateTraced(dict Dictionary, tracer Tracer) (bool, error) {
	names := e.Keys()
	resolved := make([]Node, len(e.dynamic))
	for i, name := range names {
		resolved[i] = dict(name)
	}

	// Swap in the resolved arena for the duration of the walk, per
	// spec.md §4.3's protocol; restore it before returning so the
	// Expression's dynamic arena always holds raw KEY nodes between
	// evaluations.
	saved := e.dynamic
	e.dynamic = resolved
	defer func() { e.dynamic = saved }()

	ctx := &evalCtx{e: e, tracer: tracer, keyNames: names}
	return ctx.walkBool(0)
}

// evalCtx carries the per-call state of a single evaluation: the
// expression being walked (with its dynamic arena already swapped to
// resolved values), an optional tracer, and the original key names
// (needed for error messages once the dynamic arena no longer holds
// the raw KEY payloads).
type evalCtx struct {
	e        *Expression
	tracer   Tracer
	keyNames []string
}

func (c *evalCtx) node(ref ChildRef) *Node {
	return c.e.node(ref)
}

func (c *evalCtx) visit(ref ChildRef, k Kind) {
	if c.tracer != nil {
		c.tracer.OnVisit(ref, k)
	}
}

func (c *evalCtx) nameFor(ref ChildRef) string {
	if ref.isDynamic() {
		return c.keyNames[ref.dynamicIndex()]
	}
	return ""
}

// walkBool implements the operator semantics table of spec.md §4.3.
// Boolean operators walk children in stored (textual) order and
// short-circuit exactly as mandated by spec.md §5.
func (c *evalCtx) walkBool(ref ChildRef) (bool, error) {
	n := c.node(ref)
	c.visit(ref, n.Kind)

	switch n.Kind {
	case TRUE:
		return true, nil
	case FALSE:
		return false, nil

	case NOT:
		v, err := c.walkBool(n.Children[0])
		if err != nil {
			return false, err
		}
		return !v, nil

	case AND:
		for _, child := range n.Children {
			v, err := c.walkBool(child)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil

	case OR:
		for _, child := range n.Children {
			v, err := c.walkBool(child)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil

	case EQ:
		return c.evalEQ(n)

	case NEQ:
		eq, err := c.evalEQ(n)
		if err != nil {
			return false, err
		}
		return !eq, nil

	case LT, LTE, GT, GTE:
		return c.evalCompare(n)

	case EXST:
		return c.evalExist(n)

	case UNKNOWN:
		return false, unknownKeyErrorf(c.nameFor(ref))

	default:
		return false, typeErrorf("%s cannot be evaluated as a boolean", n.Kind)
	}
}

// evalEQ implements EQ's structural, typed comparison (spec.md §4.3):
// true iff every child equals child 0 in kind and payload. A child that
// is itself an operator subexpression is first reduced to a TRUE/FALSE
// value so that EQ can compare the outcome of a nested boolean
// expression the same way it compares any other literal.
func (c *evalCtx) evalEQ(n *Node) (bool, error) {
	first, err := c.valueOf(n.Children[0])
	if err != nil {
		return false, err
	}
	for _, ref := range n.Children[1:] {
		v, err := c.valueOf(ref)
		if err != nil {
			return false, err
		}
		if !nodeEqual(first, v) {
			return false, nil
		}
	}
	return true, nil
}

// valueOf resolves a child reference to a comparable literal node,
// reducing nested operator subexpressions to TRUE/FALSE first. UNKNOWN
// is not an error here: EQ/NEQ treat it as an ordinary kind that simply
// never matches anything else (spec.md §8 scenario 4 requires
// `(=,[name],'alice')` to evaluate to false, not error, when name
// resolves to UNKNOWN).
func (c *evalCtx) valueOf(ref ChildRef) (Node, error) {
	n := c.node(ref)
	if n.Kind.IsOperator() {
		v, err := c.walkBool(ref)
		if err != nil {
			return Node{}, err
		}
		if v {
			return Node{Kind: TRUE}, nil
		}
		return Node{Kind: FALSE}, nil
	}
	c.visit(ref, n.Kind)
	return *n, nil
}

// nodeEqual reports whether a and b are structurally identical per
// spec.md §4.3: same Kind, same payload. NUMBER equality is by value
// (DESIGN.md's resolution of the spec's Open Question), not by the
// reference implementation's raw payload-byte comparison.
func nodeEqual(a, b Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NUMBER:
		return a.Number == b.Number
	case STRING, KEY:
		return bytes.Equal(a.Bytes, b.Bytes)
	case DATE:
		return a.Date == b.Date
	default:
		return true // TRUE, FALSE: kind equality already decides it
	}
}

// evalCompare implements LT/LTE/GT/GTE: both operands must be NUMBER
// (spec.md §4.3); anything else is a type error.
func (c *evalCtx) evalCompare(n *Node) (bool, error) {
	a, err := c.numberOf(n.Children[0])
	if err != nil {
		return false, err
	}
	b, err := c.numberOf(n.Children[1])
	if err != nil {
		return false, err
	}
	switch n.Kind {
	case LT:
		return a < b, nil
	case LTE:
		return a <= b, nil
	case GT:
		return a > b, nil
	default: // GTE
		return a >= b, nil
	}
}

func (c *evalCtx) numberOf(ref ChildRef) (float64, error) {
	n := c.node(ref)
	if n.Kind == UNKNOWN {
		return 0, unknownKeyErrorf(c.nameFor(ref))
	}
	c.visit(ref, n.Kind)
	if n.Kind != NUMBER {
		return 0, typeErrorf("comparison operand must be NUMBER, got %s", n.Kind)
	}
	return n.Number, nil
}

// evalExist implements EXST (spec.md §4.3): true iff the child's
// resolved kind is not UNKNOWN. Unlike every other operator, EXST must
// not treat UNKNOWN as an error — that is the one case it exists to
// detect.
func (c *evalCtx) evalExist(n *Node) (bool, error) {
	ref := n.Children[0]
	child := c.node(ref)
	c.visit(ref, child.Kind)
	return child.Kind != UNKNOWN, nil
}
