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
	"math"
	"testing"

	"github.com/emre-aki/s-buffer/sbuffer/sbuffervalidate"
	"github.com/stretchr/testify/assert"
)

// TestScenarioSingleSpan covers the trivial first push into an empty
// buffer.
func TestScenarioSingleSpan(t *testing.T) {
	b, _ := New(6, 1, 32)
	status, err := b.Push(0, 6, 1, 1, 'A')
	assert.NoError(t, err)
	assert.Equal(t, StatusInserted, status)
	assert.Equal(t, "AAAAAA", b.Print())
}

// TestScenarioAbuttingNoOverlap is the plain non-overlapping BST
// insertion path: no arbitration ever runs.
func TestScenarioAbuttingNoOverlap(t *testing.T) {
	b, _ := New(9, 1, 32)
	b.Push(0, 3, 1, 1, 'A')
	b.Push(6, 9, 1, 1, 'C')
	b.Push(3, 6, 1, 1, 'B')
	assert.Equal(t, "AAABBBCCC", b.Print())
	assertOrderedDisjoint(t, b)
}

// TestScenarioCloserBisectsMiddle is the three-way bisect where the
// newcomer's x-range sits entirely inside one existing span.
func TestScenarioCloserBisectsMiddle(t *testing.T) {
	b, _ := New(6, 1, 32)
	b.Push(0, 6, 1, 1, 'A')
	status, err := b.Push(2, 4, 2, 2, 'B')
	assert.NoError(t, err)
	assert.Equal(t, StatusInserted, status)
	assert.Equal(t, "AABBAA", b.Print())

	dump, verr := sbuffervalidate.ParseAndValidate(b.Dump())
	assert.NoError(t, verr)
	assert.Len(t, dump, 3)
}

// TestScenarioFartherFullyOccluded covers a newcomer discarded whole:
// the tree is left untouched and Push reports StatusFullyOccluded.
func TestScenarioFartherFullyOccluded(t *testing.T) {
	b, _ := New(6, 1, 32)
	b.Push(0, 6, 2, 2, 'A')
	status, err := b.Push(1, 5, 1, 1, 'B')
	assert.NoError(t, err)
	assert.Equal(t, StatusFullyOccluded, status)
	assert.Equal(t, "AAAAAA", b.Print())
	assert.Equal(t, 1, b.Stats().Nodes)
}

// TestScenarioInterpenetrationSplitsAtCrossing exercises the
// intersecting-depth-functions path: two spans covering the same
// x-range whose reciprocal depths cross partway through. The crossing
// x comes from reprojecting geom.Intersect's view-space intersection
// point back to screen space; for these symmetric inputs that
// reprojection lands on the same x=3 the raw w values cross at, which
// is also the boundary spec.md's own worked example states.
func TestScenarioInterpenetrationSplitsAtCrossing(t *testing.T) {
	b, _ := New(6, 1, 32)
	_, err := b.Push(0, 6, 2, 0.5, 'A') // tilts away from the eye
	assert.NoError(t, err)
	status, err := b.Push(0, 6, 0.5, 2, 'B') // tilts toward the eye
	assert.NoError(t, err)
	assert.Equal(t, StatusInserted, status)

	assert.Equal(t, "AAABBB", b.Print())
	assertOrderedDisjoint(t, b)

	dump, verr := sbuffervalidate.ParseAndValidate(b.Dump())
	assert.NoError(t, verr)
	assert.Len(t, dump, 2)
}

// TestScenarioLeftStartBisectClipsOffViewport exercises a left-start
// overlap (the newcomer starts before the existing span's x0) whose
// own leading portion falls outside [0, size) and must vanish rather
// than spawn a stray node.
func TestScenarioLeftStartBisectClipsOffViewport(t *testing.T) {
	b, _ := New(6, 1, 32)
	b.Push(0, 6, 1, 1, 'A')
	status, err := b.Push(-2, 4, 2, 2, 'B')
	assert.NoError(t, err)
	assert.Equal(t, StatusInserted, status)

	assert.Equal(t, "BBBBAA", b.Print())
	assertOrderedDisjoint(t, b)
}

// TestScenarioRoundTripDump is the spec's round-trip requirement: the
// tree's own Dump output, re-parsed by the independent validator
// package, must reproduce the same ordered span sequence Print shows.
func TestScenarioRoundTripDump(t *testing.T) {
	b, _ := New(10, 1, 32)
	b.Push(0, 10, 1, 1, 'A')
	b.Push(2, 5, 2, 2, 'B')
	b.Push(7, 9, 3, 3, 'C')

	parsed, err := sbuffervalidate.ParseAndValidate(b.Dump())
	assert.NoError(t, err)

	want := b.InOrder()
	assert.Len(t, parsed, len(want))
	for i, s := range want {
		assert.Equal(t, s.ID, parsed[i].ID)
		assert.InDelta(t, s.X0, parsed[i].X0, 1e-9)
		assert.InDelta(t, s.X1, parsed[i].X1, 1e-9)
	}
}

// TestDepthBoundApproximatelyLogarithmic checks the AVL height bound
// height <= 1.44*log2(n+2) holds after a run of pushes that forces
// many rebalances.
func TestDepthBoundApproximatelyLogarithmic(t *testing.T) {
	b, _ := New(200, 1, 32)
	for i := 0; i < 100; i++ {
		x0 := float64(i * 2)
		_, err := b.Push(x0, x0+1, 1, 1, byte('a'+i%26))
		assert.NoError(t, err)
	}
	n := b.Stats().Nodes
	h := b.Stats().Height
	bound := 1.44 * math.Log2(float64(n+2))
	assert.LessOrEqual(t, float64(h), bound)
}
