// github.com/emre-aki/s-buffer - a scanline hidden-surface span buffer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sbuffervalidate is an independent round-trip check for
// sbuffer.Buffer.Dump's text format: it re-parses the dump without
// touching the tree that produced it, and re-derives the ordering and
// disjointness invariants from scratch, so a bug shared between the
// engine and its own Dump method cannot hide from the check.
package sbuffervalidate

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Span is one parsed dump line.
type Span struct {
	ID     byte
	X0, X1 float64
}

var lineRE = regexp.MustCompile(`^\s*\[(.)\] \[([^,]+), ([^)]+)\)\s*$`)

// ErrMalformedDump is returned when a line doesn't match the
// "[id] [x0, x1)" shape Buffer.Dump produces.
var ErrMalformedDump = errors.New("sbuffervalidate: malformed dump line")

// Parse reads a Buffer.Dump transcript back into an ordered slice of
// Spans, in the same left-to-right order the dump was written in. The
// special "(empty)" line parses to a nil, error-free slice.
func Parse(dump string) ([]Span, error) {
	trimmed := strings.TrimSpace(dump)
	if trimmed == "(empty)" {
		return nil, nil
	}

	var out []Span
	scanner := bufio.NewScanner(strings.NewReader(dump))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Wrapf(ErrMalformedDump, "line %q", line)
		}
		x0, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedDump, "x0 in line %q", line)
		}
		x1, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedDump, "x1 in line %q", line)
		}
		out = append(out, Span{ID: m[1][0], X0: x0, X1: x1})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "sbuffervalidate: scanning dump")
	}
	return out, nil
}

// ErrOutOfOrder means two consecutive parsed spans are not in
// strictly left-to-right, non-overlapping order.
var ErrOutOfOrder = errors.New("sbuffervalidate: spans out of order or overlapping")

// ErrDegenerate means a parsed span's x-range is empty or inverted.
var ErrDegenerate = errors.New("sbuffervalidate: degenerate span range")

// Validate re-checks the ordering and disjointness invariants (spec
// invariants 1 and 2) against a freshly parsed span sequence, with no
// access to the tree that produced it.
func Validate(spans []Span) error {
	for i, s := range spans {
		if s.X1 <= s.X0 {
			return errors.Wrapf(ErrDegenerate, "span %d: [%g,%g)", i, s.X0, s.X1)
		}
		if i > 0 && spans[i-1].X1 > s.X0 {
			return errors.Wrapf(ErrOutOfOrder, "span %d [%g,%g) follows span %d [%g,%g)",
				i, s.X0, s.X1, i-1, spans[i-1].X0, spans[i-1].X1)
		}
	}
	return nil
}

// ParseAndValidate is the full round-trip check: parse the dump text,
// then validate the result.
func ParseAndValidate(dump string) ([]Span, error) {
	spans, err := Parse(dump)
	if err != nil {
		return nil, err
	}
	if err := Validate(spans); err != nil {
		return nil, err
	}
	return spans, nil
}
