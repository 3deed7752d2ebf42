// SPDX-License-Identifier: MIT

package grid

import (
	"errors"

	"github.com/katalvlaran/pathkit/core"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrInvalidSpacing indicates a spacing that is not a finite positive number.
	ErrInvalidSpacing = errors.New("grid: spacing must be finite and positive")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 additionally links the four diagonals.
	Conn8
)

// DefaultSpacing is the distance between adjacent cell centers in degrees
// (about 11.1 m under geo.MetersPerDegree).
const DefaultSpacing = 0.0001

// Options tunes how cells map to graph nodes.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// PassThreshold is the minimum cell value considered passable.
	PassThreshold int
	// Spacing is the degree offset between adjacent cells on both axes.
	Spacing float64
	// Origin is the position of cell (0,0). X grows along Lng, Y along Lat.
	Origin core.Coord
}

// DefaultOptions returns Conn4, PassThreshold=1, DefaultSpacing and a zero origin.
func DefaultOptions() Options {
	return Options{
		Conn:          Conn4,
		PassThreshold: 1,
		Spacing:       DefaultSpacing,
	}
}

// Grid treats a rectangular matrix of integer cells as a located graph.
// It is immutable once built; Cells[y][x] holds a private copy of the input.
type Grid struct {
	Width, Height int
	Cells         [][]int

	opts    Options
	offsets [][2]int
}
