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

// Package geom provides the 2-D algebra the span buffer's visibility
// arbiter needs: perspective lift from screen space to view space,
// segment intersection, and the leftness/almost-equal tie-breakers.
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon bounds the open acceptance interval (Epsilon, 1-Epsilon) for
// parametric intersection parameters. Widening it turns near-endpoint
// brushes into bisections; narrowing it risks infinite loops on
// coincident endpoints. Both directions are load-bearing, see the
// arbiter's depth-tie discipline.
const Epsilon = 1e-6

// depthScale is the resolution used to quantize reciprocal depth into
// integers for deterministic tie-breaking (see DepthUnits).
const depthScale = 1e6

// Lerp linearly interpolates between a and b at position p out of a
// total span t. It is used to recover the reciprocal depth at an
// intermediate screen-space x from a span's two endpoint depths.
func Lerp(a, b, p, t float64) float64 {
	if t == 0 {
		return a
	}
	return a + (b-a)*p/t
}

// ToView lifts a screen-space endpoint (x, w) back to view space. w is
// the reciprocal view-space depth at x; size is the scanline width and
// zNear the distance from the eye to the projection plane.
func ToView(x, w, size, zNear float64) vec.Vec2 {
	zView := 1 / w
	xView := (x - size/2) * zView / zNear
	return vec.Vec2{X: xView, Y: zView}
}

// Kind classifies the outcome of a segment intersection test.
type Kind int

const (
	// Intersecting means the segments cross strictly inside both,
	// i.e. both parametric parameters fall in (Epsilon, 1-Epsilon).
	Intersecting Kind = iota
	// Parallel means the determinant is zero but the numerator is
	// not: the lines never meet.
	Parallel
	// Degenerate means both numerator and denominator are zero: the
	// segments are collinear.
	Degenerate
	// NotIntersecting means the lines meet, but outside the open
	// acceptance window of at least one segment (including exactly
	// at an endpoint).
	NotIntersecting
)

// Intersection is the result of intersecting two parametric segments
// a->b and c->d.
type Intersection struct {
	Kind  Kind
	Point vec.Vec2 // valid only when Kind == Intersecting
	T     float64  // parameter along a->b; valid only when Intersecting
	Q     float64  // parameter along c->d; valid only when Intersecting
}

// Intersect computes where segment a->b crosses segment c->d, using
// the standard 2x2 cross-product solve. Coincident endpoints are
// deliberately excluded from Intersecting (T, Q must fall in the open
// interval (Epsilon, 1-Epsilon)); callers fall back to Leftness for
// those cases.
func Intersect(a, b, c, d vec.Vec2) Intersection {
	r := vec.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
	s := vec.Vec2{X: d.X - c.X, Y: d.Y - c.Y}
	ca := vec.Vec2{X: c.X - a.X, Y: c.Y - a.Y}

	denom := cross(r, s)
	numT := cross(ca, s)
	numQ := cross(ca, r)

	if denom == 0 {
		if numT == 0 && numQ == 0 {
			return Intersection{Kind: Degenerate}
		}
		return Intersection{Kind: Parallel}
	}

	t := numT / denom
	q := numQ / denom
	if t <= Epsilon || t >= 1-Epsilon || q <= Epsilon || q >= 1-Epsilon {
		return Intersection{Kind: NotIntersecting, T: t, Q: q}
	}

	return Intersection{
		Kind:  Intersecting,
		Point: vec.Vec2{X: a.X + t*r.X, Y: a.Y + t*r.Y},
		T:     t,
		Q:     q,
	}
}

// cross returns the Z component of the 3-D cross product of two 2-D
// vectors, i.e. u.X*v.Y - u.Y*v.X.
func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Leftness reports the sign of the cross product between two
// view-space direction vectors, pRef->pFar and qRef->qFar, each
// describing a span's depth trend across a shared screen-space
// interval. A positive result means the first (p) span is in front.
//
// This resolves an open question the original source left as a
// TODO: there is no recoverable reference formula for leftness, so
// the two vectors are taken across the overlapping x-interval rather
// than at a single shared view-space point, since a single screen-x
// does not correspond to the same view-space point for two spans at
// different depths.
func Leftness(pRef, pFar, qRef, qFar vec.Vec2) float64 {
	v1 := vec.Vec2{X: pFar.X - pRef.X, Y: pFar.Y - pRef.Y}
	v2 := vec.Vec2{X: qFar.X - qRef.X, Y: qFar.Y - qRef.Y}
	return cross(v1, v2)
}

// AlmostEqual reports whether a and b differ by less than 1e-6. The
// comparison reinterprets the IEEE-754 bit pattern of the difference
// with the sign bit cleared, rather than calling math.Abs, matching
// the reference implementation's exact bit trick.
func AlmostEqual(a, b float64) bool {
	diff := a - b
	bits := math.Float64bits(diff) &^ (1 << 63)
	return math.Float64frombits(bits) < Epsilon
}

// DepthUnits quantizes a reciprocal depth into integer micro-units for
// deterministic tie-breaking. This exact quantization (floor(w*1e6))
// is load-bearing: it is what keeps the arbiter's depth comparisons
// from oscillating on near-coincident inputs. Do not replace it with
// AlmostEqual on raw floats.
func DepthUnits(w float64) int64 {
	return int64(math.Floor(w * depthScale))
}
