// SPDX-License-Identifier: MIT

package astar

import (
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/geo"
)

// Heuristic estimates the remaining cost between two node positions.
// It must never overestimate the true path cost for A* to stay optimal.
type Heuristic func(from, to core.Coord) float64

// Euclidean is the default heuristic: straight-line degree distance scaled by
// geo.MetersPerDegree. It is admissible when edge weights are at least the
// scaled straight-line distance between their endpoints.
func Euclidean(from, to core.Coord) float64 { return geo.Euclidean(from, to) }

// Haversine is the great-circle distance in meters. It is admissible for road
// graphs whose weights are great-circle segment lengths.
func Haversine(from, to core.Coord) float64 { return geo.Haversine(from, to) }

// Zero makes A* behave like Dijkstra.
func Zero(_, _ core.Coord) float64 { return 0 }
