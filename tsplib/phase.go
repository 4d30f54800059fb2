// SPDX-License-Identifier: MIT

package tsplib

// phase is the section state of the reader. It starts in
// phaseSpecification and moves to phaseData on the first section marker;
// the move is one-way.
type phase uint8

const (
	phaseSpecification phase = iota
	phaseData
)

func (p phase) String() string {
	if p == phaseData {
		return "data"
	}

	return "specification"
}

// advance returns the phase after reading an entry of kind k.
// A specification entry in the data phase fails with ErrSpecificationInData.
func (p phase) advance(k entryKind) (phase, error) {
	switch k {
	case entryDataMarker:
		return phaseData, nil
	case entrySpecification:
		if p == phaseData {
			return p, ErrSpecificationInData
		}
	}

	return p, nil
}
