package tsplib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		lenient bool
		want    entry
		wantErr error
	}{
		{name: "spec", line: "NAME: foo bar  ", want: entry{kind: entrySpecification, key: "NAME", value: "foo bar"}},
		{name: "leading space", line: "  DIMENSION: 5", want: entry{kind: entrySpecification, key: "DIMENSION", value: "5"}},
		{name: "extra space after separator", line: "TYPE:   TSP", want: entry{kind: entrySpecification, key: "TYPE", value: "TSP"}},
		{name: "empty value", line: "COMMENT: ", want: entry{kind: entrySpecification, key: "COMMENT", value: ""}},
		{name: "marker", line: "EDGE_WEIGHT_SECTION", want: entry{kind: entryDataMarker, key: "EDGE_WEIGHT_SECTION"}},
		{name: "marker trailing blanks", line: "EDGE_WEIGHT_SECTION \t", want: entry{kind: entryDataMarker, key: "EDGE_WEIGHT_SECTION"}},
		{name: "marker with data", line: "EDGE_WEIGHT_SECTION 1 2", wantErr: ErrMalformedLine},
		{name: "no key", line: "-1 2", wantErr: ErrMalformedLine},
		{name: "punctuation", line: "%% comment", wantErr: ErrMalformedLine},
		{name: "strict rejects spaced colon", line: "NAME : x", wantErr: ErrMalformedLine},
		{name: "strict rejects tight colon", line: "NAME:x", wantErr: ErrMalformedLine},
		{name: "lenient spaced colon", line: "NAME : x", lenient: true, want: entry{kind: entrySpecification, key: "NAME", value: "x"}},
		{name: "lenient tight colon", line: "NAME:x", lenient: true, want: entry{kind: entrySpecification, key: "NAME", value: "x"}},
		{name: "lenient marker", line: "DISPLAY_DATA_SECTION", lenient: true, want: entry{kind: entryDataMarker, key: "DISPLAY_DATA_SECTION"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classify(tc.line, tc.lenient)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPhaseAdvance(t *testing.T) {
	p, err := phaseSpecification.advance(entrySpecification)
	require.NoError(t, err)
	require.Equal(t, phaseSpecification, p)

	p, err = p.advance(entryDataMarker)
	require.NoError(t, err)
	require.Equal(t, phaseData, p)

	p, err = p.advance(entryDataMarker)
	require.NoError(t, err)
	require.Equal(t, phaseData, p)

	p, err = p.advance(entrySpecification)
	require.ErrorIs(t, err, ErrSpecificationInData)
	require.Equal(t, phaseData, p)

	require.Equal(t, "specification", phaseSpecification.String())
	require.Equal(t, "data", phaseData.String())
}
