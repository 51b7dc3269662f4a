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
	"fmt"
	"math"
	"strings"
)

// InOrder returns the buffer's visible spans left to right. The
// returned slice is a snapshot; mutating the buffer afterwards does
// not affect it.
func (b *Buffer) InOrder() []Span {
	out := make([]Span, 0, b.size)
	stack := make([]*Span, 0, b.maxDepth+1)
	node := b.root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, *node)
		node = node.right
	}
	return out
}

// Print rasterizes the buffer to a single line of b.size characters:
// each covered span fills its pixel range with its id, and every
// uncovered pixel is '_'. A span's pixel range is the half-open
// interval [ceil(x0-0.5), ceil(x1-0.5)), matching pixel-center sampling.
func (b *Buffer) Print() string {
	row := make([]byte, b.size)
	for i := range row {
		row[i] = '_'
	}
	for _, s := range b.InOrder() {
		p0 := int(math.Ceil(s.X0 - 0.5))
		p1 := int(math.Ceil(s.X1 - 0.5))
		if p0 < 0 {
			p0 = 0
		}
		if p1 > b.size {
			p1 = b.size
		}
		for i := p0; i < p1; i++ {
			row[i] = s.ID
		}
	}
	return string(row)
}

// Dump renders the tree's shape as indented lines, one per node, each
// reading "[id] [x0, x1)" with four spaces of indent per depth level.
// An empty buffer dumps a single diagnostic line rather than nothing,
// so the output is never ambiguous with a read error.
func (b *Buffer) Dump() string {
	var sb strings.Builder
	if b.root == nil {
		sb.WriteString("(empty)\n")
		return sb.String()
	}
	dumpNode(&sb, b.root, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, s *Span, depth int) {
	if s == nil {
		return
	}
	dumpNode(sb, s.left, depth+1)
	fmt.Fprintf(sb, "%s[%c] [%.3f, %.3f)\n", strings.Repeat("    ", depth), s.ID, s.X0, s.X1)
	dumpNode(sb, s.right, depth+1)
}

// Destroy detaches every node from the tree, leaving the Buffer empty
// and ready for reuse. It tolerates a partially-built tree (e.g. after
// an ErrMaxDepthExceeded abort mid-Push) since it only ever follows
// live child pointers.
func (b *Buffer) Destroy() {
	destroy(b.root)
	b.root = nil
	b.pushes = 0
	b.occlusions = 0
	b.rebalances = 0
}

func destroy(s *Span) {
	if s == nil {
		return
	}
	destroy(s.left)
	destroy(s.right)
	s.left, s.right = nil, nil
}
