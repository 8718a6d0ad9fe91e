// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"fmt"

	"github.com/pbglang/pbg"
)

// ParseLiteral parses s as a single PBG literal (TRUE, FALSE, a number, a
// quoted string or a date) for use as the right-hand side of a "set"
// command. A bracketed key is rejected, since Parse does not accept one
// as the root. Operator expressions are rejected too: a stored value
// must be a literal, not a subexpression to re-evaluate on lookup.
func ParseLiteral(s string) (pbg.Node, error) {
	e, err := pbg.Parse(s)
	if err != nil {
		return pbg.Node{}, err
	}
	defer e.Close()

	// Parse already rejects a bare key as the root expression, so any
	// surviving non-operator root is a genuine literal.
	root := e.Root()
	if root.Kind.IsOperator() {
		return pbg.Node{}, fmt.Errorf("%q is an expression, not a literal", s)
	}
	return *root, nil
}
