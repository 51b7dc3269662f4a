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

// rotateRight performs a single right rotation, promoting p.left to
// the subtree root. Only pointers move; ids, x-ranges and w's are
// untouched. Both affected nodes get their heights recomputed.
func rotateRight(p *Span) *Span {
	l := p.left
	p.left = l.right
	l.right = p
	p.recomputeHeight()
	l.recomputeHeight()
	return l
}

// rotateLeft performs a single left rotation, promoting p.right to
// the subtree root.
func rotateLeft(p *Span) *Span {
	r := p.right
	p.right = r.left
	r.left = p
	p.recomputeHeight()
	r.recomputeHeight()
	return r
}

// rebalance restores the balance-factor invariant at s, returning the
// new subtree root. s itself must already have an up-to-date height;
// if s turns out balanced it is returned unchanged.
//
// Left-heavy with a right-heavy child takes a left-right double
// rotation; right-heavy with a left-heavy child takes the mirror.
// Single rotations handle the remaining two cases.
func rebalance(s *Span) *Span {
	bf := balanceFactor(s)
	switch {
	case bf > 1:
		if balanceFactor(s.right) < 0 {
			s.right = rotateRight(s.right)
		}
		return rotateLeft(s)
	case bf < -1:
		if balanceFactor(s.left) > 0 {
			s.left = rotateLeft(s.left)
		}
		return rotateRight(s)
	default:
		return s
	}
}

// isBalanced reports whether s itself satisfies the balance-factor
// invariant; it does not recurse into children.
func isBalanced(s *Span) bool {
	bf := balanceFactor(s)
	return bf >= -1 && bf <= 1
}
