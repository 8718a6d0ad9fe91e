// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict provides a mutable, in-memory pbg.Dictionary backed by a
// prefix tree, suitable for an interactive host's "set"/"get"/"unset"
// commands.
package dict

import (
	"sort"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/pbglang/pbg"
)

// Store holds named literal values and resolves them for expression
// evaluation. Names are matched case-insensitively.
//
// The underlying prefixtree.Tree is built for unambiguous-prefix lookup
// (as in host.settingsTree), but since its entries change at runtime the
// tree is rebuilt on every Set/Delete rather than mutated in place.
type Store struct {
	values map[string]pbg.Node
	tree   *prefixtree.Tree[*pbg.Node]
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]pbg.Node),
		tree:   prefixtree.New[*pbg.Node](),
	}
}

// Set assigns a value to name, replacing any existing value.
func (s *Store) Set(name string, n pbg.Node) {
	s.values[strings.ToLower(name)] = n
	s.rebuild()
}

// Delete removes name from the store. It is a no-op if name is absent.
func (s *Store) Delete(name string) {
	delete(s.values, strings.ToLower(name))
	s.rebuild()
}

func (s *Store) rebuild() {
	tree := prefixtree.New[*pbg.Node]()
	for name := range s.values {
		n := s.values[name]
		tree.Add(name, &n)
	}
	s.tree = tree
}

// Resolve implements pbg.Dictionary. Lookup is by exact name only; a
// name with no assigned value resolves to UNKNOWN, never an error, so
// that EXST can distinguish "absent" from "every other operator must
// reject this".
func (s *Store) Resolve(name string) pbg.Node {
	if n, ok := s.values[strings.ToLower(name)]; ok {
		return n
	}
	return pbg.Node{Kind: pbg.UNKNOWN}
}

// Find resolves name by unambiguous prefix match, returning an error if
// no entry matches or more than one does.
func (s *Store) Find(name string) (pbg.Node, error) {
	n, err := s.tree.FindValue(strings.ToLower(name))
	if err != nil {
		return pbg.Node{}, err
	}
	return *n, nil
}

// Names returns the stored names in lexical order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
