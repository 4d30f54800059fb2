// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"regexp"
	"strings"
)

// entryKind distinguishes header lines from section markers.
type entryKind uint8

const (
	entrySpecification entryKind = iota + 1 // KEY: value
	entryDataMarker                         // KEY
)

func (k entryKind) String() string {
	switch k {
	case entrySpecification:
		return "specification"
	case entryDataMarker:
		return "data marker"
	default:
		return "unknown"
	}
}

// entry is one classified substantive line.
type entry struct {
	kind  entryKind
	key   string
	value string // right-trimmed; empty for data markers
}

var (
	// strictEntryRe requires the separator to be exactly ": " right after the key.
	strictEntryRe = regexp.MustCompile(`^[ \t]*([A-Za-z0-9_]+)(: )?[ \t]*(.*)$`)

	// lenientEntryRe also accepts "KEY : value" and "KEY:value".
	lenientEntryRe = regexp.MustCompile(`^[ \t]*([A-Za-z0-9_]+)[ \t]*(:)?[ \t]*(.*)$`)
)

// classify splits a substantive line into an entry.
// A line without a leading key, or a section marker followed by other text,
// fails with ErrMalformedLine.
//
// Complexity: O(len(line)).
func classify(line string, lenient bool) (entry, error) {
	var re = strictEntryRe
	if lenient {
		re = lenientEntryRe
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	var (
		key   = m[1]
		colon = m[2]
		rest  = strings.TrimRight(m[3], whitespace)
	)
	if colon != "" {
		return entry{kind: entrySpecification, key: key, value: rest}, nil
	}
	if rest != "" {
		return entry{}, fmt.Errorf("%w: unexpected text after %s: %q", ErrMalformedLine, key, rest)
	}

	return entry{kind: entryDataMarker, key: key}, nil
}
