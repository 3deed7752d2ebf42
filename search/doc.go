// Package search defines the contract every pathkit engine honors.
//
// An engine exposes
//
//	FindPath(g *core.Graph, startID, endID string, opts ...search.Option) (*search.Result, error)
//
// and returns a Result with three fields:
//
//   - VisitedOrder: node IDs in the order the engine finalized or expanded them.
//   - Path: start → end inclusive; empty (non-nil) when end is unreachable.
//   - Distance: accumulated weight along Path; +Inf when end is unreachable.
//
// An unreachable end is a legitimate Result, never an error. Errors are
// reserved for precondition violations detected before the search loop starts
// (see Precheck): ErrNilGraph, core.ErrEmptyNodeID and core.ErrNodeNotFound.
//
// Engines run synchronously, perform no I/O and own all their working state,
// so concurrent calls may share one read-only *core.Graph.
//
// Options:
//
//	– WithOnVisit(fn)       observe each ID as it joins VisitedOrder.
//	– WithFrontier(kind)    FrontierLinear (default) or FrontierHeap for
//	                        Dijkstra and A*. Both break ties by ascending ID and
//	                        therefore produce identical results.
package search
