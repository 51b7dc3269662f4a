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

import (
	"github.com/emre-aki/s-buffer/geom"
	"seehuhn.de/go/geom/vec"
)

// pendingPush is the newcomer's x-range and depth endpoints, fixed for
// the whole of one Push call. wAt interpolates the depth the newcomer
// would show at any x within [x0,x1], the same way an existing Span
// interpolates between its own endpoints.
type pendingPush struct {
	x0, x1, w0, w1 float64
}

func (p pendingPush) wAt(x float64) float64 {
	return geom.Lerp(p.w0, p.w1, x-p.x0, p.x1-p.x0)
}

// segment is an unresolved, not-yet-placed window of the newcomer's
// x-range, queued by the insertion engine whenever an overlap
// resolution leaves a piece that still needs its own descent.
type segment struct {
	cursor, remaining float64
}

// arbitrate decides how the newcomer's current window [cursor, subX1)
// interacts with an existing node it overlaps, and applies whatever
// mutation the decision calls for directly to node. It reports
// whether node's content actually changed, plus up to two leftover
// windows (forkLeft precedes node's x-range, forkRight follows it)
// that the engine must still place elsewhere in the tree.
//
// The two segments overlap on [ov0, ov1) = [max(cursor,node.X0),
// min(subX1,node.X1)). If their depth functions cross inside that
// range, visibility flips partway through and the overlap splits into
// a near half and a far half with opposite winners; otherwise a
// single winner, found by the integer-quantized depth-tie discipline
// with a leftness tiebreak, covers the whole overlap.
func arbitrate(node *Span, pending pendingPush, cursor, subX1 float64, id byte, size, zNear float64) (mutated bool, forkLeft, forkRight *segment) {
	ov0 := max(cursor, node.X0)
	ov1 := min(subX1, node.X1)

	wNewOv0, wNewOv1 := pending.wAt(ov0), pending.wAt(ov1)
	wParOv0 := geom.Lerp(node.W0, node.W1, ov0-node.X0, node.X1-node.X0)
	wParOv1 := geom.Lerp(node.W0, node.W1, ov1-node.X0, node.X1-node.X0)

	pA := geom.ToView(ov0, wNewOv0, size, zNear)
	pB := geom.ToView(ov1, wNewOv1, size, zNear)
	qA := geom.ToView(ov0, wParOv0, size, zNear)
	qB := geom.ToView(ov1, wParOv1, size, zNear)

	if ix := geom.Intersect(pA, pB, qA, qB); ix.Kind == geom.Intersecting {
		newcomerAheadAtOv0 := wNewOv0 > wParOv0
		newcomerAheadAtOv1 := wNewOv1 > wParOv1
		if newcomerAheadAtOv0 != newcomerAheadAtOv1 {
			// ix.T is the parameter along the view-space chord pA->pB,
			// which is not linear in screen-x under the perspective
			// lift; the crossing's screen-x must come from reprojecting
			// ix.Point itself, not from lerping ov0..ov1 by ix.T.
			splitX := size/2 + ix.Point.X*zNear/ix.Point.Y
			if newcomerAheadAtOv0 {
				return splitNode(node, pending, id, ov0, splitX, cursor, subX1)
			}
			return splitNode(node, pending, id, splitX, ov1, cursor, subX1)
		}
		// The two endpoints agree after all (a near-tangent crossing
		// right at the acceptance window's edge); fall through to the
		// single-winner path below rather than split on a phantom tie.
	}

	newcomerWins := depthWins(wNewOv0, wParOv0, pA, pB, qA, qB)
	if !newcomerWins {
		return false, outsideLeft(node, cursor), outsideRight(node, subX1)
	}
	return splitNode(node, pending, id, ov0, ov1, cursor, subX1)
}

// depthWins applies the depth-tie discipline: compare integer-
// quantized depth units first, and only fall back to the leftness
// tiebreak on an exact tie. Using floor(w*1e6) rather than a float
// AlmostEqual comparison is deliberate (see geom.DepthUnits) and must
// not be replaced by it.
func depthWins(wNew, wPar float64, pA, pB, qA, qB vec.Vec2) bool {
	nu, pu := geom.DepthUnits(wNew), geom.DepthUnits(wPar)
	if nu != pu {
		return nu > pu
	}
	return geom.Leftness(pA, pB, qA, qB) > 0
}

// outsideLeft reports the newcomer's unresolved prefix, if any, that
// lies entirely before node's x-range.
func outsideLeft(node *Span, cursor float64) *segment {
	if cursor < node.X0 {
		return &segment{cursor: cursor, remaining: node.X0 - cursor}
	}
	return nil
}

// outsideRight reports the newcomer's unresolved suffix, if any, that
// lies entirely beyond node's x-range.
func outsideRight(node *Span, subX1 float64) *segment {
	if subX1 > node.X1 {
		return &segment{cursor: node.X1, remaining: subX1 - node.X1}
	}
	return nil
}

// splitNode gives the newcomer the sub-range [midX0, midX1) of node,
// bisecting node's old content around it when that range doesn't
// reach one or both of node's original endpoints, and reports any
// part of the newcomer's window that fell outside node's x-range
// entirely.
func splitNode(node *Span, pending pendingPush, id byte, midX0, midX1, cursor, subX1 float64) (bool, *segment, *segment) {
	oldX0, oldX1 := node.X0, node.X1

	leftOuter, rightOuter := bisect(node, midX0, midX1, pending.wAt(midX0), pending.wAt(midX1), id)
	if leftOuter != nil {
		attachLeftOuter(node, leftOuter)
	}
	if rightOuter != nil {
		attachRightOuter(node, rightOuter)
	}
	node.recomputeHeight()

	var fl, fr *segment
	if cursor < oldX0 {
		fl = &segment{cursor: cursor, remaining: oldX0 - cursor}
	}
	if subX1 > oldX1 {
		fr = &segment{cursor: oldX1, remaining: subX1 - oldX1}
	}
	return true, fl, fr
}
