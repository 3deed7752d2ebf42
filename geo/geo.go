// SPDX-License-Identifier: MIT

// Package geo holds the coordinate math used by A* heuristics and by callers
// that need to snap an arbitrary position onto a graph.
package geo

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathkit/core"
)

const (
	// MetersPerDegree approximates the length of one degree of latitude.
	MetersPerDegree = 111000.0

	// EarthRadius is the mean Earth radius in meters used by Haversine.
	EarthRadius = 6371e3
)

// ErrEmptyGraph indicates that no node of the graph carries a coordinate.
var ErrEmptyGraph = errors.New("geo: graph has no located nodes")

// Euclidean returns the straight-line distance between a and b in degree
// space, scaled by MetersPerDegree:
//
//	sqrt((a.Lat-b.Lat)² + (a.Lng-b.Lng)²) × 111000
func Euclidean(a, b core.Coord) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng) * MetersPerDegree
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b core.Coord) float64 {
	const rad = math.Pi / 180
	dLat := (b.Lat - a.Lat) * rad
	dLng := (b.Lng - a.Lng) * rad
	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*rad)*math.Cos(b.Lat*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadius * 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// NearestNode returns the located node closest to c by Haversine distance and
// that distance. Ties go to the smallest ID. Unlocated nodes are skipped.
//
// Complexity: O(V log V) (node IDs are enumerated in sorted order).
func NearestNode(g *core.Graph, c core.Coord) (string, float64, error) {
	best, bestDist := "", math.Inf(1)
	for _, id := range g.Nodes() {
		p, ok, err := g.Coord(id)
		if err != nil || !ok {
			continue
		}
		if d := Haversine(c, p); d < bestDist {
			best, bestDist = id, d
		}
	}
	if best == "" {
		return "", 0, ErrEmptyGraph
	}

	return best, bestDist, nil
}
