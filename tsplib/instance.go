// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"

	"github.com/katalvlaran/tsplib/matrix"
)

// Instance is a parsed explicit-distance TSP instance.
type Instance struct {
	// Name and Comment echo the NAME and COMMENT fields (empty when absent).
	Name    string
	Comment string

	// Dimension is the node count n.
	Dimension int

	// EdgeWeightFormat is the layout the distances were read from.
	EdgeWeightFormat EdgeWeightFormat

	// Distances is the n×n distance matrix. It is always non-nil.
	Distances *matrix.Dense

	// Coordinates is the n×2 display table (x, y per node), or nil when the
	// instance has no DISPLAY_DATA_SECTION.
	Coordinates *matrix.Dense

	// Entries holds every accepted specification field.
	Entries *Entries
}

// HasCoordinates reports whether display coordinates were read.
func (in *Instance) HasCoordinates() bool { return in.Coordinates != nil }

// Coordinate returns the display position of the 0-based node i.
func (in *Instance) Coordinate(i int) (x, y float64, err error) {
	if in.Coordinates == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingEntry, SectionDisplayData)
	}
	if x, err = in.Coordinates.At(i, 0); err != nil {
		return 0, 0, err
	}
	if y, err = in.Coordinates.At(i, 1); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}
