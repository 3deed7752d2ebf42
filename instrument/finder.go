// SPDX-License-Identifier: MIT

package instrument

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/search"
)

// TracerName is the instrumentation scope used when no tracer is configured.
const TracerName = "github.com/katalvlaran/pathkit/instrument"

// Option configures a Finder.
type Option func(f *Finder)

// WithMetrics records every search into m. Nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(f *Finder) { f.metrics = m }
}

// WithTracer overrides the tracer. Nil keeps the default, which is
// otel.Tracer(TracerName) from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(f *Finder) {
		if t != nil {
			f.tracer = t
		}
	}
}

// WithLogger logs each search at debug level and failures at warn level.
// Nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) { f.logger = l }
}

// WithSlowThreshold logs searches slower than d at warn level.
// Zero disables the check. Requires WithLogger.
func WithSlowThreshold(d time.Duration) Option {
	return func(f *Finder) { f.slow = d }
}

// Finder decorates a search.Finder with metrics, tracing and logging.
// It implements search.Finder itself, so decorated engines drop into any
// place a bare engine fits, including compare.Algorithm.
type Finder struct {
	name    string
	next    search.Finder
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
	slow    time.Duration
}

var _ search.Finder = (*Finder)(nil)

// Wrap decorates next under the algorithm label name.
func Wrap(name string, next search.Finder, opts ...Option) *Finder {
	f := &Finder{
		name:   name,
		next:   next,
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Name returns the algorithm label.
func (f *Finder) Name() string { return f.name }

// FindPath runs the wrapped engine under context.Background().
func (f *Finder) FindPath(g *core.Graph, startID, endID string) (*search.Result, error) {
	return f.FindPathContext(context.Background(), g, startID, endID)
}

// FindPathContext runs the wrapped engine inside a span named
// "pathkit.FindPath" that is a child of any span carried by ctx.
// The search itself is not cancellable; ctx only carries trace and log context.
func (f *Finder) FindPathContext(ctx context.Context, g *core.Graph, startID, endID string) (*search.Result, error) {
	ctx, span := f.tracer.Start(ctx, "pathkit.FindPath",
		trace.WithAttributes(
			attribute.String("pathkit.algorithm", f.name),
			attribute.String("pathkit.start", startID),
			attribute.String("pathkit.end", endID),
		),
	)
	defer span.End()

	began := time.Now()
	res, err := f.next.FindPath(g, startID, endID)
	elapsed := time.Since(began)

	if f.metrics != nil {
		f.metrics.Observe(f.name, res, err, elapsed)
	}

	outcome := Outcome(res, err)
	span.SetAttributes(attribute.String("pathkit.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.log(ctx, slog.LevelWarn, "path_search_failed",
			slog.String("algorithm", f.name),
			slog.String("start", startID),
			slog.String("end", endID),
			slog.Any("error", err),
		)

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("pathkit.expanded", res.Expanded()),
		attribute.Int("pathkit.hops", res.Hops()),
	)
	if res.Found() {
		span.SetAttributes(attribute.Float64("pathkit.distance", res.Distance))
	}
	span.SetStatus(codes.Ok, outcome)

	logAttrs := []slog.Attr{
		slog.String("algorithm", f.name),
		slog.String("start", startID),
		slog.String("end", endID),
		slog.String("outcome", outcome),
		slog.Int("expanded", res.Expanded()),
		slog.Duration("duration", elapsed),
	}
	if res.Found() {
		// +Inf has no JSON encoding
		logAttrs = append(logAttrs, slog.Float64("distance", res.Distance))
	}
	f.log(ctx, slog.LevelDebug, "path_search_complete", logAttrs...)
	if f.slow > 0 && elapsed > f.slow {
		f.log(ctx, slog.LevelWarn, "slow_path_search",
			slog.String("algorithm", f.name),
			slog.Duration("duration", elapsed),
			slog.Duration("threshold", f.slow),
			slog.Int("expanded", res.Expanded()),
		)
	}

	return res, nil
}

func (f *Finder) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if f.logger == nil {
		return
	}
	f.logger.LogAttrs(ctx, level, msg, attrs...)
}
