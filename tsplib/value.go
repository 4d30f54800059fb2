// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"slices"
	"strconv"
)

// ValueKind tags the payload held by a Value.
type ValueKind uint8

const (
	// KindInvalid is the zero Value's kind.
	KindInvalid ValueKind = iota
	// KindText marks a string payload.
	KindText
	// KindInt marks an integer payload.
	KindInt
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Value is a specification value: either text or an integer.
type Value struct {
	kind ValueKind
	text string
	num  int
}

// TextValue wraps s.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// IntValue wraps n.
func IntValue(n int) Value { return Value{kind: KindInt, num: n} }

// Kind reports the payload kind.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string payload or ErrValueKind.
func (v Value) Text() (string, error) {
	if v.kind != KindText {
		return "", fmt.Errorf("%w: want %s, have %s", ErrValueKind, KindText, v.kind)
	}

	return v.text, nil
}

// Int returns the integer payload or ErrValueKind.
func (v Value) Int() (int, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: want %s, have %s", ErrValueKind, KindInt, v.kind)
	}

	return v.num, nil
}

// String renders the payload regardless of kind.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.Itoa(v.num)
	default:
		return ""
	}
}

// Entries is the write-once key→Value store filled during the
// specification phase. Once a key is present its value never changes.
type Entries struct {
	m map[string]Value
}

// NewEntries returns an empty store.
func NewEntries() *Entries {
	return &Entries{m: make(map[string]Value)}
}

// put inserts key once; a second insert keeps the first value and
// returns ErrDuplicateEntry.
func (e *Entries) put(key string, v Value) error {
	if _, ok := e.m[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, key)
	}
	e.m[key] = v

	return nil
}

// Lookup returns the value stored under key.
func (e *Entries) Lookup(key string) (Value, bool) {
	v, ok := e.m[key]

	return v, ok
}

// Has reports whether key was declared.
func (e *Entries) Has(key string) bool {
	_, ok := e.m[key]

	return ok
}

// Text returns the text stored under key.
// Errors: ErrMissingEntry, ErrValueKind.
func (e *Entries) Text(key string) (string, error) {
	v, ok := e.m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingEntry, key)
	}
	s, err := v.Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}

	return s, nil
}

// Int returns the integer stored under key.
// Errors: ErrMissingEntry, ErrValueKind.
func (e *Entries) Int(key string) (int, error) {
	v, ok := e.m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingEntry, key)
	}
	n, err := v.Int()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}

// Len returns the number of stored entries.
func (e *Entries) Len() int { return len(e.m) }

// Keys returns the stored keys in lexicographic order.
func (e *Entries) Keys() []string {
	keys := make([]string, 0, len(e.m))
	for k := range e.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
