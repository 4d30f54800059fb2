// SPDX-License-Identifier: MIT

package tsplib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/tsplib/matrix"
)

// parser holds the state of one Parse call. Nothing in it outlives the call.
type parser struct {
	src   *lineSource
	opts  options
	phase phase

	entries  *Entries
	format   EdgeWeightFormat
	dist     *matrix.Dense
	coords   *matrix.Dense
	sections map[string]bool

	lastEntry string // last header or section line, for diagnostics
}

// ParseFile opens path, parses it with Parse and closes it on every path.
func ParseFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads one instance from r.
//
// Implementation:
//   - Stage 1: pull the next non-blank line; stop on a line that is exactly EOF.
//   - Stage 2: classify it as KEY: value or a bare section marker.
//   - Stage 3: advance the phase (specification → data is one-way).
//   - Stage 4: validate a header entry or read the announced section.
//   - Stage 5: after EOF, require a distance matrix and assemble the Instance.
//
// Errors: every failure is a *ParseError wrapping a sentinel from errors.go
// (or the reader's error inside ErrRead). The first failure aborts the parse.
//
// Complexity: O(L + n²) for L input bytes and n = DIMENSION.
func Parse(r io.Reader, opts ...Option) (*Instance, error) {
	p := &parser{
		src:      newLineSource(r),
		opts:     gatherOptions(opts...),
		phase:    phaseSpecification,
		entries:  NewEntries(),
		sections: make(map[string]bool, 2),
	}
	if err := p.run(); err != nil {
		return nil, &ParseError{Line: p.src.line, Entry: p.lastEntry, Err: err}
	}

	return p.instance()
}

func (p *parser) run() error {
	for {
		line, err := p.src.nextSubstantive()
		if errors.Is(err, io.EOF) {
			return ErrMissingEOF
		}
		if err != nil {
			return err
		}
		if line == eofMarker {
			break
		}
		p.lastEntry = strings.Trim(line, whitespace)

		e, err := classify(line, p.opts.lenient)
		if err != nil {
			return err
		}
		next, err := p.phase.advance(e.kind)
		if err != nil {
			return err
		}
		if next != p.phase {
			p.opts.logger.Debugf("line %d: %s phase -> %s phase", p.src.line, p.phase, next)
			p.phase = next
		}

		switch e.kind {
		case entrySpecification:
			err = p.applySpecification(e.key, e.value)
		case entryDataMarker:
			err = p.readSection(e.key)
		}
		if err != nil {
			return err
		}
	}

	if p.dist == nil {
		return ErrNoDistanceMatrix
	}

	return nil
}

// applySpecification records one header entry. A key that is already
// present keeps its first value unless WithStrictEntries is set.
func (p *parser) applySpecification(key, value string) error {
	err := applySpecification(p.entries, key, value)
	if errors.Is(err, ErrDuplicateEntry) && !p.opts.strictEntries {
		p.opts.logger.Debugf("line %d: %s already set, skipping %q", p.src.line, key, value)
		return nil
	}

	return err
}

// readSection dispatches a section marker to its reader.
func (p *parser) readSection(key string) error {
	if key != SectionEdgeWeight && key != SectionDisplayData {
		return fmt.Errorf("%w: %s", ErrUnsupportedSection, key)
	}
	if p.sections[key] {
		return fmt.Errorf("%w: %s", ErrDuplicateSection, key)
	}
	p.sections[key] = true

	n, err := p.dimension()
	if err != nil {
		return err
	}

	switch key {
	case SectionEdgeWeight:
		err = p.readEdgeWeightSection(n)
	case SectionDisplayData:
		err = p.readDisplaySection(n)
	}
	if err != nil {
		return err
	}
	p.opts.logger.Debugf("line %d: read %s (n=%d)", p.src.line, key, n)

	return nil
}

// dimension returns DIMENSION, enforcing WithMaxDimension.
func (p *parser) dimension() (int, error) {
	n, err := p.entries.Int(KeyDimension)
	if err != nil {
		return 0, err
	}
	if p.opts.maxDimension > 0 && n > p.opts.maxDimension {
		return 0, fmt.Errorf("%w: %d exceeds limit %d", ErrInvalidDimension, n, p.opts.maxDimension)
	}

	return n, nil
}

func (p *parser) readEdgeWeightSection(n int) error {
	name, err := p.entries.Text(KeyEdgeWeightFormat)
	if err != nil {
		return err
	}
	f, err := ParseEdgeWeightFormat(name)
	if err != nil {
		return err
	}
	m, err := readEdgeWeights(p.src, f, n)
	if err != nil {
		return err
	}
	if f == FullMatrix && p.opts.checkSymmetry {
		if err = matrix.ValidateSymmetric(m, p.opts.symmetryEps); err != nil {
			return fmt.Errorf("%w: %w", ErrAsymmetricMatrix, err)
		}
	}
	p.format, p.dist = f, m

	return nil
}

func (p *parser) readDisplaySection(n int) error {
	kind, err := p.entries.Text(KeyDisplayDataType)
	if err != nil {
		return err
	}
	if kind != DisplayTwoD {
		return fmt.Errorf("%w: %s is %s", ErrDisplayTypeMismatch, KeyDisplayDataType, kind)
	}
	coords, err := readDisplayData(p.src, n)
	if err != nil {
		return err
	}
	p.coords = coords

	return nil
}

// instance assembles the result from the entry store and the read sections.
func (p *parser) instance() (*Instance, error) {
	n, err := p.entries.Int(KeyDimension)
	if err != nil {
		return nil, &ParseError{Line: p.src.line, Entry: p.lastEntry, Err: err}
	}
	in := &Instance{
		Dimension:        n,
		EdgeWeightFormat: p.format,
		Distances:        p.dist,
		Coordinates:      p.coords,
		Entries:          p.entries,
	}
	if v, ok := p.entries.Lookup(KeyName); ok {
		in.Name = v.String()
	}
	if v, ok := p.entries.Lookup(KeyComment); ok {
		in.Comment = v.String()
	}
	p.opts.logger.Debugf("parsed instance %q: n=%d, format=%s, coordinates=%t",
		in.Name, in.Dimension, in.EdgeWeightFormat, in.HasCoordinates())

	return in, nil
}
