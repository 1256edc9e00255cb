/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package nametable implements an immutable, bidirectional index between a
// closed set of keys and their canonical names.
//
// A Table is built once from a single ordered list of entries. The forward
// index (key -> name), the reverse index (name -> key) and the set of
// registered keys all come from that list, so they always agree.
package nametable

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Entry pairs a key with its canonical name.
type Entry[K cmp.Ordered] struct {
	Key  K
	Name string
}

// Table is an immutable key <-> name index. Lookups are O(1) and safe for
// concurrent use once constructed.
type Table[K cmp.Ordered] struct {
	// names maps every registered key to its name.
	names map[K]string
	// keys is the reverse index of names.
	keys map[string]K
	// order keeps the keys in the order the entries were declared.
	order []K
	// fallback is returned by Name for keys that are not registered.
	fallback string
}

var (
	// ErrEmptyName is returned when an entry has an empty name.
	ErrEmptyName = errors.New("nametable: empty name")
	// ErrDuplicateKey is returned when two entries share a key.
	ErrDuplicateKey = errors.New("nametable: duplicate key")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("nametable: duplicate name")
	// ErrEmptyFallback is returned when the fallback name is empty.
	ErrEmptyFallback = errors.New("nametable: empty fallback")
)

// New validates entries and builds a Table.
//
// Every entry must have a non-empty name, and neither keys nor names may
// repeat. The fallback must be non-empty and must not collide with a
// registered name, otherwise an unknown key would be indistinguishable from
// a known one.
//
// The entries slice is copied; later changes to it are not observed.
func New[K cmp.Ordered](fallback string, entries []Entry[K]) (*Table[K], error) {
	if fallback == "" {
		return nil, ErrEmptyFallback
	}
	t := &Table[K]{
		names:    make(map[K]string, len(entries)),
		keys:     make(map[string]K, len(entries)),
		order:    make([]K, 0, len(entries)),
		fallback: fallback,
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d (key %v): %w", i, e.Key, ErrEmptyName)
		}
		if prev, ok := t.names[e.Key]; ok {
			return nil, fmt.Errorf("entry %d (key %v) already named %q: %w", i, e.Key, prev, ErrDuplicateKey)
		}
		if e.Name == fallback {
			return nil, fmt.Errorf("entry %d (key %v) uses the fallback name %q: %w", i, e.Key, e.Name, ErrDuplicateName)
		}
		if prev, ok := t.keys[e.Name]; ok {
			return nil, fmt.Errorf("entry %d (key %v) reuses name %q of key %v: %w", i, e.Key, e.Name, prev, ErrDuplicateName)
		}
		t.names[e.Key] = e.Name
		t.keys[e.Name] = e.Key
		t.order = append(t.order, e.Key)
	}
	return t, nil
}

// MustNew is the panic-on-error variant of New. It is meant for
// package-level tables, where a bad entry is a programming error.
func MustNew[K cmp.Ordered](fallback string, entries []Entry[K]) *Table[K] {
	t, err := New(fallback, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the name registered for k, or the fallback.
func (t *Table[K]) Name(k K) string {
	if n, ok := t.names[k]; ok {
		return n
	}
	return t.fallback
}

// Lookup returns the name registered for k and whether there is one.
func (t *Table[K]) Lookup(k K) (string, bool) {
	n, ok := t.names[k]
	return n, ok
}

// Key returns the key registered under name.
func (t *Table[K]) Key(name string) (K, bool) {
	k, ok := t.keys[name]
	return k, ok
}

// Keys returns the registered keys in declaration order.
func (t *Table[K]) Keys() []K {
	return slices.Clone(t.order)
}

// Len returns the number of registered keys.
func (t *Table[K]) Len() int {
	return len(t.order)
}

// Fallback returns the name used for unregistered keys.
func (t *Table[K]) Fallback() string {
	return t.fallback
}

// Missing returns the keys yielded by known that have no registered name,
// sorted ascending and without duplicates. It returns nil when every key
// is registered.
func (t *Table[K]) Missing(known iter.Seq[K]) []K {
	var out []K
	for k := range known {
		if _, ok := t.names[k]; !ok {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
