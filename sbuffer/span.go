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

package sbuffer

// Span is a currently visible, opaque interval [X0, X1) on the
// scanline, together with the reciprocal view-space depth at each
// endpoint. A Span owns its two optional children exclusively: left
// holds spans with strictly smaller X0, right holds spans with
// strictly larger X0.
type Span struct {
	X0, X1 float64
	W0, W1 float64
	ID     byte

	left, right *Span
	height      int
}

// newSpan constructs a leaf span. Both children are absent and height
// is 0, matching the height-cache convention that an absent child
// contributes -1.
func newSpan(x0, x1, w0, w1 float64, id byte) *Span {
	return &Span{X0: x0, X1: x1, W0: w0, W1: w1, ID: id, height: 0}
}

// Left returns the left child subtree, or nil if absent.
func (s *Span) Left() *Span { return s.left }

// Right returns the right child subtree, or nil if absent.
func (s *Span) Right() *Span { return s.right }

// Height returns the cached subtree height; an absent span (nil
// receiver) has height -1.
func (s *Span) Height() int {
	if s == nil {
		return -1
	}
	return s.height
}

// recomputeHeight restores the height cache invariant for s from its
// children's current heights. Callers must invoke this after any
// mutation that could change a child's height.
func (s *Span) recomputeHeight() {
	lh, rh := s.left.Height(), s.right.Height()
	if lh > rh {
		s.height = lh + 1
	} else {
		s.height = rh + 1
	}
}

// balanceFactor is height(right) - height(left). The balancer's
// invariant requires this to stay within [-1, 1] for every node.
func balanceFactor(s *Span) int {
	return s.right.Height() - s.left.Height()
}
