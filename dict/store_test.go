// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"testing"

	"github.com/pbglang/pbg"
)

func TestStoreSetResolveDelete(t *testing.T) {
	s := New()
	if got := s.Resolve("name"); got.Kind != pbg.UNKNOWN {
		t.Fatalf("expected UNKNOWN for unset name, got %v", got.Kind)
	}

	s.Set("Name", pbg.Node{Kind: pbg.STRING, Bytes: []byte("alice")})
	got := s.Resolve("name")
	if got.Kind != pbg.STRING || string(got.Bytes) != "alice" {
		t.Fatalf("got %+v", got)
	}

	s.Delete("NAME")
	if got := s.Resolve("name"); got.Kind != pbg.UNKNOWN {
		t.Fatalf("expected UNKNOWN after delete, got %v", got.Kind)
	}
}

func TestStoreFindByPrefix(t *testing.T) {
	s := New()
	s.Set("region", pbg.Node{Kind: pbg.STRING, Bytes: []byte("us-east")})

	n, err := s.Find("reg")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if n.Kind != pbg.STRING || string(n.Bytes) != "us-east" {
		t.Errorf("got %+v", n)
	}
}

func TestStoreFindAmbiguous(t *testing.T) {
	s := New()
	s.Set("region", pbg.Node{Kind: pbg.NUMBER, Number: 1})
	s.Set("retries", pbg.Node{Kind: pbg.NUMBER, Number: 2})

	if _, err := s.Find("re"); err == nil {
		t.Error("expected an error for an ambiguous prefix")
	}
}

func TestStoreUsableAsDictionary(t *testing.T) {
	s := New()
	s.Set("threshold", pbg.Node{Kind: pbg.NUMBER, Number: 10})

	e, err := pbg.Parse("(>,[threshold],5)")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Evaluate(s.Resolve)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("expected true")
	}
}

func TestStoreNamesSorted(t *testing.T) {
	s := New()
	s.Set("b", pbg.Node{Kind: pbg.TRUE})
	s.Set("a", pbg.Node{Kind: pbg.TRUE})
	names := s.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("got %v", names)
	}
}

func TestParseLiteralRejectsExpression(t *testing.T) {
	if _, err := ParseLiteral("(=,1,1)"); err == nil {
		t.Error("expected an error parsing an operator expression as a literal")
	}
}

func TestParseLiteralAcceptsPlainValues(t *testing.T) {
	cases := []string{"TRUE", "FALSE", "42", "'hello'", "2024-01-02"}
	for _, src := range cases {
		if _, err := ParseLiteral(src); err != nil {
			t.Errorf("ParseLiteral(%q): %v", src, err)
		}
	}
}
