// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "testing"

func mustParse(t *testing.T, src string) *Expression {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return e
}

func TestParseLiterals(t *testing.T) {
	e := mustParse(t, "TRUE")
	if e.Root().Kind != TRUE {
		t.Errorf("got kind %v", e.Root().Kind)
	}

	e = mustParse(t, "(=,1,1)")
	if e.Root().Kind != EQ || len(e.Root().Children) != 2 {
		t.Errorf("got %+v", e.Root())
	}
}

func TestParseNested(t *testing.T) {
	e := mustParse(t, "(!,(&,TRUE,FALSE))")
	root := e.Root()
	if root.Kind != NOT || len(root.Children) != 1 {
		t.Fatalf("got %+v", root)
	}
	and := e.node(root.Children[0])
	if and.Kind != AND || len(and.Children) != 2 {
		t.Fatalf("got %+v", and)
	}
}

func TestParseKeyGoesToDynamicArena(t *testing.T) {
	e := mustParse(t, "(?,[name])")
	root := e.Root()
	if root.Kind != EXST || len(root.Children) != 1 {
		t.Fatalf("got %+v", root)
	}
	ref := root.Children[0]
	if !ref.isDynamic() {
		t.Fatalf("expected key child to be a dynamic reference, got %v", ref)
	}
	if len(e.dynamic) != 1 || e.dynamic[0].Kind != KEY || string(e.dynamic[0].Bytes) != "name" {
		t.Fatalf("dynamic arena = %+v", e.dynamic)
	}
}

func TestParseStringEscape(t *testing.T) {
	e := mustParse(t, `'it\'s'`)
	if e.Root().Kind != STRING {
		t.Fatalf("got kind %v", e.Root().Kind)
	}
	if got, want := string(e.Root().Bytes), `it\'s`; got != want {
		t.Errorf("payload = %q, want %q", got, want)
	}
}

func TestParseStringContainsBoundaryChars(t *testing.T) {
	// A comma and a closing paren inside a string literal must not be
	// treated as field/grouping boundaries.
	e := mustParse(t, "(=,'a,b)c','a,b)c')")
	if e.Root().Kind != EQ {
		t.Fatalf("got %+v", e.Root())
	}
	if len(e.Root().Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(e.Root().Children))
	}
}

func TestParseDateLiteral(t *testing.T) {
	e := mustParse(t, "2024-01-02")
	if e.Root().Kind != DATE {
		t.Fatalf("got kind %v", e.Root().Kind)
	}
	if e.Root().Date != (Date{2024, 1, 2}) {
		t.Errorf("got %v", e.Root().Date)
	}
}

func TestParseRejectsInvalidDate(t *testing.T) {
	if _, err := Parse("0000-13-40"); err == nil {
		t.Error("expected an error for an out-of-range date")
	}
}

func TestParseRejectsWrongArity(t *testing.T) {
	cases := []string{
		"(!,TRUE,FALSE)",
		"(!)",
		"(&)",
		"(=,1)",
		"(<,1,2,3)",
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected an arity error", src)
		}
	}
}

func TestParseRejectsMismatchedParens(t *testing.T) {
	cases := []string{
		"(=,1,1",
		"=,1,1)",
		"(=,1,1))",
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected a mismatched-parenthesis error", src)
		}
	}
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	if _, err := Parse("(=,'abc,1)"); err == nil {
		t.Error("expected an error for an unterminated string literal")
	}
}

func TestParseRejectsBareKeyAsRoot(t *testing.T) {
	if _, err := Parse("[x]"); err == nil {
		t.Error("expected an error for a bare key as the root expression")
	}
}

func TestParseRejectsUnrecognizedToken(t *testing.T) {
	if _, err := Parse("(=,1,@)"); err == nil {
		t.Error("expected an error for an unrecognized token")
	}
}

func TestParseLeadingAndTrailingWhitespace(t *testing.T) {
	mustParse(t, "  (=, 1 , 1)  ")
}

func TestParseKeyWithSpaceInName(t *testing.T) {
	e := mustParse(t, "(?,[my key])")
	ref := e.Root().Children[0]
	if string(e.dynamic[ref.dynamicIndex()].Bytes) != "my key" {
		t.Errorf("got %q", e.dynamic[ref.dynamicIndex()].Bytes)
	}
}
