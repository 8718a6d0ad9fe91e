// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "testing"

func TestChildRefEncoding(t *testing.T) {
	cases := []int{0, 1, 2, 10}
	for _, i := range cases {
		r := dynamicRef(i)
		if !r.isDynamic() {
			t.Fatalf("dynamicRef(%d) should be dynamic", i)
		}
		if got := r.dynamicIndex(); got != i {
			t.Errorf("dynamicRef(%d).dynamicIndex() = %d", i, got)
		}
	}

	static := ChildRef(5)
	if static.isDynamic() {
		t.Error("non-negative ref should not be dynamic")
	}
}

func TestExpressionCloseIsIdempotent(t *testing.T) {
	e := mustParse(t, "(=,1,1)")
	e.Close()
	e.Close() // must not panic
	if e.static != nil || e.dynamic != nil {
		t.Error("arenas should be nil after Close")
	}
}

func TestKeysReturnsDynamicArenaNames(t *testing.T) {
	e := mustParse(t, "(&,[a],[b])")
	names := e.Keys()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("got %v", names)
	}
}
