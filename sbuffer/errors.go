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

import "github.com/pkg/errors"

// ErrInvalidInput is returned when a Push call violates the input
// conventions: x0 >= x1, a non-positive w, or a buffer constructed
// with size < 1.
var ErrInvalidInput = errors.New("sbuffer: invalid input")

// ErrMaxDepthExceeded is returned when the per-push descent stack
// would grow past the buffer's maxDepth, or when one Push has to
// process more than maxDepth*maxDepth windows. The buffer may already carry partial
// mutations from before the abort; it remains valid to Destroy but
// its further behaviour is not guaranteed by the insertion engine.
var ErrMaxDepthExceeded = errors.New("sbuffer: max depth exceeded")

// Status reports the outcome of a successful Push call.
type Status int

const (
	// StatusInserted means the newcomer (or some part of it) is now
	// visible in the tree.
	StatusInserted Status = iota
	// StatusFullyOccluded means the newcomer was entirely behind
	// already-visible geometry; the tree is unchanged. This is
	// informational, not an error.
	StatusFullyOccluded
)

func (s Status) String() string {
	switch s {
	case StatusInserted:
		return "inserted"
	case StatusFullyOccluded:
		return "fully_occluded"
	default:
		return "unknown"
	}
}
