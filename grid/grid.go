// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/geo"
)

// New builds a Grid from a non-empty rectangular matrix.
//
// Errors:
//   - ErrEmptyGrid if cells has no rows or no columns.
//   - ErrNonRectangular if any row length differs.
//   - ErrInvalidSpacing if opts.Spacing is not finite and positive.
//
// Complexity: O(W×H) time and memory.
func New(cells [][]int, opts Options) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	if !(opts.Spacing > 0) || math.IsInf(opts.Spacing, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, opts.Spacing)
	}

	cp := make([][]int, h)
	for y := range cells {
		cp[y] = make([]int, w)
		copy(cp[y], cells[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{Width: w, Height: h, Cells: cp, opts: opts, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Width && y >= 0 && y < gr.Height
}

// Passable reports whether (x,y) is in bounds and at least PassThreshold.
func (gr *Grid) Passable(x, y int) bool {
	return gr.InBounds(x, y) && gr.Cells[y][x] >= gr.opts.PassThreshold
}

// ID formats the node identifier of cell (x,y) as "x,y".
func (gr *Grid) ID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// Cell parses a node identifier produced by ID. ok is false for malformed
// or out-of-bounds IDs.
func (gr *Grid) Cell(id string) (x, y int, ok bool) {
	var rest string
	n, _ := fmt.Sscanf(id, "%d,%d%s", &x, &y, &rest)
	if n != 2 || !gr.InBounds(x, y) {
		return 0, 0, false
	}

	return x, y, true
}

// Coord returns the position of cell (x,y).
func (gr *Grid) Coord(x, y int) core.Coord {
	return core.Coord{
		Lat: gr.opts.Origin.Lat + float64(y)*gr.opts.Spacing,
		Lng: gr.opts.Origin.Lng + float64(x)*gr.opts.Spacing,
	}
}

// ToGraph converts the passable cells into a *core.Graph.
//
// Every passable cell becomes a node "x,y" located at Coord(x,y). Each pair of
// passable neighbors under the chosen connectivity is joined in both
// directions with weight geo.Euclidean between the two positions, so the
// Euclidean A* heuristic is admissible on the result.
//
// Complexity: O(W×H×d) time, where d = 4 or 8.
func (gr *Grid) ToGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(gr.Width * gr.Height))
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			if !gr.Passable(x, y) {
				continue
			}
			c := gr.Coord(x, y)
			_ = g.AddNode(gr.ID(x, y), core.WithCoord(c.Lat, c.Lng))
		}
	}
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			if !gr.Passable(x, y) {
				continue
			}
			from, c := gr.ID(x, y), gr.Coord(x, y)
			for _, d := range gr.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gr.Passable(nx, ny) {
					continue
				}
				// Weights are finite and non-negative by construction.
				_ = g.AddNeighbor(from, gr.ID(nx, ny), geo.Euclidean(c, gr.Coord(nx, ny)))
			}
		}
	}

	return g
}

// Components returns the connected regions of passable cells.
//
// Regions are ordered by their first cell in row-major order; cells within a
// region are listed in flood-fill order from that first cell.
//
// Complexity: O(W×H×d).
func (gr *Grid) Components() [][]string {
	seen := make([]bool, gr.Width*gr.Height)
	var comps [][]string

	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			i0 := gr.index(x, y)
			if !gr.Passable(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []string

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gr.coordinate(queue[qi])
				comp = append(comp, gr.ID(ux, uy))
				for _, d := range gr.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gr.Passable(vx, vy) {
						continue
					}
					if vi := gr.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// index maps (x,y) to a row-major index.
func (gr *Grid) index(x, y int) int { return y*gr.Width + x }

// coordinate converts a row-major index back to (x,y).
func (gr *Grid) coordinate(i int) (x, y int) { return i % gr.Width, i / gr.Width }
