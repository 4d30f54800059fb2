// SPDX-License-Identifier: MIT

package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// tokenReader yields whitespace-separated tokens, crossing line boundaries.
// It returns io.EOF once the input is exhausted.
type tokenReader interface {
	nextToken() (string, error)
}

// lineSource is the single read cursor shared by the line loop and the
// section readers. Tokens are taken from the current line; whatever is left
// of that line is what the next nextLine call returns.
type lineSource struct {
	r    *bufio.Reader
	line int // 1-based number of the last line pulled from r

	cur    string // line being tokenized
	pos    int    // offset of the first unread byte in cur
	inLine bool   // cur still has unread bytes
}

var _ tokenReader = (*lineSource)(nil)

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{r: bufio.NewReader(r)}
}

// readRaw pulls one physical line from r with its "\n" or "\r\n" ending removed.
func (s *lineSource) readRaw() (string, error) {
	raw, err := s.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if err != nil && raw == "" {
		return "", io.EOF
	}
	s.line++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")

	return raw, nil
}

// nextLine returns the unread remainder of the current line, or the next
// physical line when the current one is exhausted.
func (s *lineSource) nextLine() (string, error) {
	if s.inLine {
		s.inLine = false
		return s.cur[s.pos:], nil
	}

	return s.readRaw()
}

// nextSubstantive skips blank lines and returns the first line holding any
// non-whitespace byte.
func (s *lineSource) nextSubstantive() (string, error) {
	for {
		line, err := s.nextLine()
		if err != nil {
			return "", err
		}
		if !isBlank(line) {
			return line, nil
		}
	}
}

// nextToken returns the next run of non-whitespace bytes.
// Complexity: amortised O(1) per byte consumed.
func (s *lineSource) nextToken() (string, error) {
	for {
		if !s.inLine {
			raw, err := s.readRaw()
			if err != nil {
				return "", err
			}
			s.cur, s.pos, s.inLine = raw, 0, true
		}
		for s.pos < len(s.cur) && isSpace(s.cur[s.pos]) {
			s.pos++
		}
		if s.pos == len(s.cur) {
			s.inLine = false
			continue
		}
		start := s.pos
		for s.pos < len(s.cur) && !isSpace(s.cur[s.pos]) {
			s.pos++
		}

		return s.cur[start:s.pos], nil
	}
}

func isSpace(b byte) bool { return strings.IndexByte(whitespace, b) >= 0 }

func isBlank(line string) bool { return strings.Trim(line, whitespace) == "" }
