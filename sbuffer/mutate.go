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

import "github.com/emre-aki/s-buffer/geom"

// trimLeft contracts s's left endpoint to newX0, re-interpolating the
// depth at the new endpoint from s's own (pre-mutation) endpoints.
func trimLeft(s *Span, newX0 float64) {
	s.W0 = geom.Lerp(s.W0, s.W1, newX0-s.X0, s.X1-s.X0)
	s.X0 = newX0
	s.recomputeHeight()
}

// trimRight contracts s's right endpoint to newX1, re-interpolating
// the depth at the new endpoint from s's own (pre-mutation) endpoints.
func trimRight(s *Span, newX1 float64) {
	s.W1 = geom.Lerp(s.W0, s.W1, newX1-s.X0, s.X1-s.X0)
	s.X1 = newX1
	s.recomputeHeight()
}

// overwriteSpan replaces s's depth endpoints and id wholesale, keeping
// its x-range.
func overwriteSpan(s *Span, w0, w1 float64, id byte) {
	s.W0, s.W1 = w0, w1
	s.ID = id
	s.recomputeHeight()
}

// bisect splits s into three pieces. s itself becomes the middle
// piece, spanning [midX0, midX1) with the given depths and id. The
// outer pieces, built here from s's original x-range and depths, are
// returned so the caller can attach them
// as s's new left/right children; either may be nil when the
// corresponding outer region is empty (the middle piece abuts one of
// s's original endpoints exactly).
func bisect(s *Span, midX0, midX1, midW0, midW1 float64, midID byte) (leftOuter, rightOuter *Span) {
	oldX0, oldX1, oldW0, oldW1, oldID := s.X0, s.X1, s.W0, s.W1, s.ID

	if midX0 > oldX0 {
		w1 := geom.Lerp(oldW0, oldW1, midX0-oldX0, oldX1-oldX0)
		leftOuter = newSpan(oldX0, midX0, oldW0, w1, oldID)
	}
	if midX1 < oldX1 {
		w0 := geom.Lerp(oldW0, oldW1, midX1-oldX0, oldX1-oldX0)
		rightOuter = newSpan(midX1, oldX1, w0, oldW1, oldID)
	}

	s.X0, s.X1 = midX0, midX1
	s.W0, s.W1 = midW0, midW1
	s.ID = midID
	s.recomputeHeight()

	return leftOuter, rightOuter
}

// attachLeftOuter installs outer as s.left, pushing any previous left
// child below it (the previous subtree's x-range precedes outer's
// entirely, by construction, so the previous subtree becomes outer's
// left child). A local rotation repairs outer's subtree immediately
// if attaching the old subtree unbalances it by more than one.
func attachLeftOuter(s *Span, outer *Span) {
	outer.left = s.left
	outer.recomputeHeight()
	if !isBalanced(outer) {
		outer = rebalance(outer)
	}
	s.left = outer
}

// attachRightOuter is the mirror of attachLeftOuter for s.right.
func attachRightOuter(s *Span, outer *Span) {
	outer.right = s.right
	outer.recomputeHeight()
	if !isBalanced(outer) {
		outer = rebalance(outer)
	}
	s.right = outer
}
