// Package instrument adds observability around any search.Finder without
// touching the engines, which stay free of logging and metrics.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	m := instrument.NewMetrics(reg)
//
//	f := instrument.Wrap("astar", astar.New(astar.Euclidean),
//	    instrument.WithMetrics(m),
//	    instrument.WithTracer(otel.Tracer("router")),
//	    instrument.WithLogger(slog.Default()),
//	    instrument.WithSlowThreshold(50*time.Millisecond),
//	)
//	res, err := f.FindPathContext(ctx, g, "A", "C")
//
// Every call produces one "pathkit.FindPath" span carrying the algorithm,
// endpoints, outcome, expanded count, hops and (when found) distance. Errors
// set the span status to codes.Error. Unreachable is a successful outcome.
package instrument
