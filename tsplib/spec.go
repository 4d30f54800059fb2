// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"strconv"
	"strings"
)

// applySpecification validates one KEY: value entry and records it.
//
// Rules:
//   - NAME, COMMENT, EDGE_WEIGHT_FORMAT: any text (the format is checked
//     when EDGE_WEIGHT_SECTION is read).
//   - TYPE must be TSP; EDGE_WEIGHT_TYPE must be EXPLICIT; NODE_COORD_TYPE
//     must be NO_COORDS; DISPLAY_DATA_TYPE must be TWOD_DISPLAY or NO_DISPLAY.
//   - DIMENSION must be a positive integer and is stored as KindInt.
//   - Any other key fails with ErrUnsupportedKey.
//   - A key already in store is left untouched and reported as ErrDuplicateEntry.
//
// Complexity: O(len(value)).
func applySpecification(store *Entries, key, value string) error {
	var v = TextValue(value)

	switch key {
	case KeyName, KeyComment, KeyEdgeWeightFormat:
	case KeyType:
		if value != TypeTSP {
			return invalidValue(key, value)
		}
	case KeyDimension:
		n, err := parseDimension(value)
		if err != nil {
			return err
		}
		v = IntValue(n)
	case KeyEdgeWeightType:
		if value != EdgeWeightExplicit {
			return invalidValue(key, value)
		}
	case KeyNodeCoordType:
		if value != NodeCoordNone {
			return invalidValue(key, value)
		}
	case KeyDisplayDataType:
		if value != DisplayTwoD && value != DisplayNone {
			return invalidValue(key, value)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}

	return store.put(key, v)
}

func invalidValue(key, value string) error {
	return fmt.Errorf("%w: field %s does not support the value %q", ErrInvalidValue, key, value)
}

// parseDimension accepts base-10 integers > 0.
func parseDimension(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidDimension, value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidDimension, n)
	}

	return n, nil
}
