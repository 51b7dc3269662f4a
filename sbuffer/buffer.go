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

// Package sbuffer implements a self-balancing span buffer for hidden
// surface removal on a single scanline: a tree of non-overlapping,
// opaque, screen-space intervals kept disjoint and depth-correct as
// new geometry is pushed in, in any order, including geometry that
// interpenetrates what is already visible.
package sbuffer

import (
	"github.com/pkg/errors"
)

// minSpanWidth is the smallest x-extent the engine will ever carve
// out as its own span or forked window. Anything thinner is treated
// as fully consumed; it exists to keep floating-point round-off at a
// bisection boundary from spawning an infinite chain of vanishingly
// thin forks.
const minSpanWidth = 1e-9

// Stats is a point-in-time snapshot of a Buffer's bookkeeping
// counters, returned by Buffer.Stats.
type Stats struct {
	Nodes      int
	Height     int
	Pushes     int
	Occlusions int
	Rebalances int
}

// Buffer is a hidden-surface span tree for one scanline of width
// size. zNear is the distance from the eye to the projection plane
// used by the perspective lift in geom.ToView; maxDepth bounds the
// descent stack a single Push may use, guaranteeing termination on
// pathological trees.
type Buffer struct {
	root *Span

	size     int
	zNear    float64
	maxDepth int

	pushes     int
	occlusions int
	rebalances int
}

// New constructs an empty Buffer. size must be at least 1 and zNear
// must be positive; maxDepth bounds the tree depth a single Push may
// traverse before giving up with ErrMaxDepthExceeded.
func New(size int, zNear float64, maxDepth int) (*Buffer, error) {
	if size < 1 || zNear <= 0 || maxDepth < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "sbuffer.New(size=%d, zNear=%g, maxDepth=%d)", size, zNear, maxDepth)
	}
	return &Buffer{size: size, zNear: zNear, maxDepth: maxDepth}, nil
}

// Stats reports the buffer's current node count, cached tree height
// and cumulative push/occlusion counters. It walks the tree once to
// count nodes, so it is O(n); callers on a hot path should not call
// it per pixel.
func (b *Buffer) Stats() Stats {
	return Stats{
		Nodes:      countNodes(b.root),
		Height:     b.root.Height(),
		Pushes:     b.pushes,
		Occlusions: b.occlusions,
		Rebalances: b.rebalances,
	}
}

func countNodes(s *Span) int {
	if s == nil {
		return 0
	}
	return 1 + countNodes(s.left) + countNodes(s.right)
}

// Push inserts a new opaque span [x0, x1) at reciprocal depths
// (w0, w1) tagged with id, resolving visibility against everything
// already in the tree. It returns StatusFullyOccluded, with the tree
// left unchanged, when the newcomer turned out entirely hidden behind
// existing geometry.
func (b *Buffer) Push(x0, x1, w0, w1 float64, id byte) (Status, error) {
	if x0 >= x1 || w0 <= 0 || w1 <= 0 {
		return 0, errors.Wrapf(ErrInvalidInput, "sbuffer.Push(x0=%g, x1=%g, w0=%g, w1=%g)", x0, x1, w0, w1)
	}
	b.pushes++

	if b.root == nil {
		cx0, cx1 := max(x0, 0), min(x1, float64(b.size))
		if cx1-cx0 < minSpanWidth {
			b.occlusions++
			return StatusFullyOccluded, nil
		}
		pending := pendingPush{x0, x1, w0, w1}
		b.root = newSpan(cx0, cx1, pending.wAt(cx0), pending.wAt(cx1), id)
		return StatusInserted, nil
	}

	pending := pendingPush{x0, x1, w0, w1}
	work := []segment{{cursor: x0, remaining: x1 - x0}}
	anyChange := false

	// Bounded by maxDepth*maxDepth: each of at most maxDepth descent
	// levels can fork off at most two further windows, and every fork
	// is strictly narrower than the window that produced it.
	budget := b.maxDepth * b.maxDepth
	for len(work) > 0 {
		budget--
		if budget < 0 {
			return 0, errors.Wrapf(ErrMaxDepthExceeded, "sbuffer.Push(x0=%g, x1=%g, id=%d)", x0, x1, id)
		}
		seg := work[0]
		work = work[1:]
		if seg.remaining < minSpanWidth {
			continue
		}
		changed, err := b.insertSegment(pending, id, seg.cursor, seg.remaining, &work)
		if err != nil {
			return 0, errors.Wrapf(err, "sbuffer.Push(x0=%g, x1=%g, id=%d)", x0, x1, id)
		}
		anyChange = anyChange || changed
	}

	if !anyChange {
		b.occlusions++
		return StatusFullyOccluded, nil
	}
	return StatusInserted, nil
}

// frame records one step of a descent: slot is the address of the
// pointer that led here (either &Buffer.root or a parent's left/right
// field), so a rotation's new subtree root can be written straight
// back into the tree.
type frame struct {
	slot        **Span
	left, right float64
}

// insertSegment walks the tree from the root looking for the first
// node the window [cursor, cursor+remaining) overlaps, or an empty
// slot admissible under the window and the path's accumulated
// [left,right) bound. It applies at most one arbitration (or one leaf
// insertion) per call, queuing any leftover windows into work, then
// rebalances every ancestor it passed through.
func (b *Buffer) insertSegment(pending pendingPush, id byte, cursor, remaining float64, work *[]segment) (bool, error) {
	subX1 := cursor + remaining
	curSlot := &b.root
	curLeft, curRight := 0.0, float64(b.size)
	var stack []frame

	for {
		node := *curSlot
		if node == nil {
			x0c, x1c := max(cursor, curLeft), min(subX1, curRight)
			if x1c-x0c < minSpanWidth {
				return false, nil
			}
			*curSlot = newSpan(x0c, x1c, pending.wAt(x0c), pending.wAt(x1c), id)
			b.unwind(stack)
			return true, nil
		}

		if len(stack) >= b.maxDepth {
			return false, ErrMaxDepthExceeded
		}
		stack = append(stack, frame{slot: curSlot, left: curLeft, right: curRight})

		if subX1 <= node.X0 {
			curRight = node.X0
			curSlot = &node.left
			continue
		}
		if cursor >= node.X1 {
			curLeft = node.X1
			curSlot = &node.right
			continue
		}

		changed, forkLeft, forkRight := arbitrate(node, pending, cursor, subX1, id, float64(b.size), b.zNear)
		if changed {
			b.unwind(stack)
		}
		if forkLeft != nil {
			*work = append(*work, *forkLeft)
		}
		if forkRight != nil {
			*work = append(*work, *forkRight)
		}
		return changed, nil
	}
}

// unwind recomputes cached heights and repairs the balance-factor
// invariant along a descent path, deepest frame first, writing any
// rotated subtree root back through the frame's recorded slot.
func (b *Buffer) unwind(stack []frame) {
	for i := len(stack) - 1; i >= 0; i-- {
		fr := stack[i]
		node := *fr.slot
		if node == nil {
			continue
		}
		node.recomputeHeight()
		if !isBalanced(node) {
			*fr.slot = rebalance(node)
			b.rebalances++
		}
	}
}
