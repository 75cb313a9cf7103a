package main

import (
	"fmt"
	"strings"

	"hyperchess/game"
)

// renderProjection flattens the board into 2-D planes for the terminal.
// The first two axes of order span the plane (columns, then rows); every
// combination of the remaining axes' values gets its own plane under a
// "Depth axis=value" header. A nil order means the natural axis order.
func renderProjection(snap game.Snapshot, order []int) ([]string, error) {
	dims := snap.Dims
	if order == nil {
		order = make([]int, len(dims))
		for i := range order {
			order[i] = i
		}
	}
	if err := checkAxisOrder(order, len(dims)); err != nil {
		return nil, err
	}

	occupied := make(map[string]game.PieceSnapshot, len(snap.Pieces))
	for _, p := range snap.Pieces {
		// An alien can sit outside the bounds after an axis operation;
		// it has no square to draw.
		if p.Active && game.InBounds(p.Pos, dims) {
			occupied[p.Pos.Key()] = p
		}
	}

	colAxis, rowAxis := order[0], order[1]
	depthAxes := order[2:]

	var lines []string
	depth := make([]int, len(depthAxes))
	for {
		if len(depthAxes) > 0 {
			pairs := make([]string, len(depthAxes))
			for i, axis := range depthAxes {
				pairs[i] = fmt.Sprintf("%d=%d", axis, depth[i])
			}
			lines = append(lines, "Depth "+strings.Join(pairs, ","))
		}
		for row := 0; row < dims[rowAxis]; row++ {
			var cells strings.Builder
			for col := 0; col < dims[colAxis]; col++ {
				c := make(game.Coord, len(dims))
				c[colAxis] = col
				c[rowAxis] = row
				for i, axis := range depthAxes {
					c[axis] = depth[i]
				}
				cells.WriteString(glyphAt(occupied, c))
			}
			lines = append(lines, cells.String())
		}
		lines = append(lines, "")
		if !advanceDepth(depth, depthAxes, dims) {
			break
		}
	}
	return lines, nil
}

func glyphAt(occupied map[string]game.PieceSnapshot, c game.Coord) string {
	p, ok := occupied[c.Key()]
	if !ok {
		return "."
	}
	if p.Owner%2 == 1 {
		return strings.ToLower(p.Kind.Glyph())
	}
	return p.Kind.Glyph()
}

// advanceDepth steps the depth counters, last axis fastest. It reports
// false once every combination has been visited.
func advanceDepth(depth []int, axes []int, dims game.Dims) bool {
	for i := len(depth) - 1; i >= 0; i-- {
		depth[i]++
		if depth[i] < dims[axes[i]] {
			return true
		}
		depth[i] = 0
	}
	return false
}

func checkAxisOrder(order []int, axes int) error {
	if len(order) != axes {
		return fmt.Errorf("projection wants %d axis indices, got %d", axes, len(order))
	}
	seen := make([]bool, axes)
	for _, axis := range order {
		if axis < 0 || axis >= axes || seen[axis] {
			return fmt.Errorf("%v is not a permutation of the axes", order)
		}
		seen[axis] = true
	}
	return nil
}
