// SPDX-License-Identifier: MIT

package tsplib

// Specification keys.
const (
	KeyName             = "NAME"
	KeyType             = "TYPE"
	KeyComment          = "COMMENT"
	KeyDimension        = "DIMENSION"
	KeyEdgeWeightType   = "EDGE_WEIGHT_TYPE"
	KeyEdgeWeightFormat = "EDGE_WEIGHT_FORMAT"
	KeyNodeCoordType    = "NODE_COORD_TYPE"
	KeyDisplayDataType  = "DISPLAY_DATA_TYPE"
)

// Data section markers.
const (
	SectionEdgeWeight  = "EDGE_WEIGHT_SECTION"
	SectionDisplayData = "DISPLAY_DATA_SECTION"
)

// Accepted literal values.
const (
	TypeTSP            = "TSP"
	EdgeWeightExplicit = "EXPLICIT"
	NodeCoordNone      = "NO_COORDS"
	DisplayTwoD        = "TWOD_DISPLAY"
	DisplayNone        = "NO_DISPLAY"
)

// eofMarker terminates an instance.
const eofMarker = "EOF"

// whitespace is the blank set used by the line filter and the tokenizer.
const whitespace = " \t\n\r\f\v"
