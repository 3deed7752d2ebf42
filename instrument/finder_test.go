package instrument_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathkit/compare"
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/instrument"
	"github.com/katalvlaran/pathkit/search"
)

// FinderSuite wires a fresh in-memory span exporter, JSON logger and
// triangle graph A→B(1), A→C(4), B→C(2) for every test.
type FinderSuite struct {
	suite.Suite
	exporter *tracetest.InMemoryExporter
	tp       *sdktrace.TracerProvider
	tracer   trace.Tracer
	logs     bytes.Buffer
	logger   *slog.Logger
	g        *core.Graph
}

func (s *FinderSuite) SetupTest() {
	s.exporter = tracetest.NewInMemoryExporter()
	s.tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(s.exporter))
	s.tracer = s.tp.Tracer("test")

	s.logs.Reset()
	s.logger = slog.New(slog.NewJSONHandler(&s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.g = core.NewGraph()
	s.Require().NoError(s.g.AddNeighbor("A", "B", 1))
	s.Require().NoError(s.g.AddNeighbor("A", "C", 4))
	s.Require().NoError(s.g.AddNeighbor("B", "C", 2))
}

func (s *FinderSuite) TearDownTest() {
	_ = s.tp.Shutdown(context.Background())
}

func (s *FinderSuite) wrap(opts ...instrument.Option) *instrument.Finder {
	opts = append([]instrument.Option{instrument.WithTracer(s.tracer), instrument.WithLogger(s.logger)}, opts...)
	return instrument.Wrap("dijkstra", dijkstra.New(), opts...)
}

func (s *FinderSuite) onlySpan() sdktrace.ReadOnlySpan {
	spans := s.exporter.GetSpans().Snapshots()
	s.Require().Len(spans, 1)
	return spans[0]
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}

	return m
}

// TestPassesThroughResult: the decorator never alters the engine's answer.
func (s *FinderSuite) TestPassesThroughResult() {
	f := s.wrap()
	s.Equal("dijkstra", f.Name())

	got, err := f.FindPath(s.g, "A", "C")
	s.Require().NoError(err)
	want, err := dijkstra.FindPath(s.g, "A", "C")
	s.Require().NoError(err)
	s.Equal(want, got)
}

// TestSpanOnSuccess: one span with endpoints, outcome and path figures.
func (s *FinderSuite) TestSpanOnSuccess() {
	_, err := s.wrap().FindPathContext(context.Background(), s.g, "A", "C")
	s.Require().NoError(err)

	span := s.onlySpan()
	s.Equal("pathkit.FindPath", span.Name())
	s.Equal(codes.Ok, span.Status().Code)

	a := attrs(span.Attributes())
	s.Equal("dijkstra", a["pathkit.algorithm"].AsString())
	s.Equal("A", a["pathkit.start"].AsString())
	s.Equal("C", a["pathkit.end"].AsString())
	s.Equal(instrument.OutcomeFound, a["pathkit.outcome"].AsString())
	s.Equal(int64(3), a["pathkit.expanded"].AsInt64())
	s.Equal(int64(2), a["pathkit.hops"].AsInt64())
	s.Equal(3.0, a["pathkit.distance"].AsFloat64())

	s.Contains(s.logs.String(), `"msg":"path_search_complete"`)
	s.Contains(s.logs.String(), `"expanded":3`)
}

// TestSpanOnUnreachable: unreachable is not an error and has no distance.
func (s *FinderSuite) TestSpanOnUnreachable() {
	res, err := s.wrap().FindPath(s.g, "C", "A")
	s.Require().NoError(err)
	s.False(res.Found())

	span := s.onlySpan()
	a := attrs(span.Attributes())
	s.Equal(instrument.OutcomeUnreachable, a["pathkit.outcome"].AsString())
	_, hasDistance := a["pathkit.distance"]
	s.False(hasDistance)
	s.Equal(codes.Ok, span.Status().Code)
	s.NotContains(s.logs.String(), `"distance"`)
}

// TestSpanAndLogOnError: engine errors mark the span and log at warn.
func (s *FinderSuite) TestSpanAndLogOnError() {
	_, err := s.wrap().FindPath(s.g, "A", "Z")
	s.Require().ErrorIs(err, core.ErrNodeNotFound)

	span := s.onlySpan()
	s.Equal(codes.Error, span.Status().Code)
	s.Require().NotEmpty(span.Events())
	s.Equal("exception", span.Events()[0].Name)

	s.Contains(s.logs.String(), `"msg":"path_search_failed"`)
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

// TestChildOfCallerSpan: the search span nests under the caller's span.
func (s *FinderSuite) TestChildOfCallerSpan() {
	ctx, parent := s.tracer.Start(context.Background(), "route")
	_, err := s.wrap().FindPathContext(ctx, s.g, "A", "C")
	s.Require().NoError(err)
	parent.End()

	spans := s.exporter.GetSpans().Snapshots()
	s.Require().Len(spans, 2)
	// The child ends first.
	s.Equal("pathkit.FindPath", spans[0].Name())
	s.Equal(spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

// TestSlowThreshold: searches slower than the threshold log a warning.
func (s *FinderSuite) TestSlowThreshold() {
	_, err := s.wrap(instrument.WithSlowThreshold(time.Nanosecond)).FindPath(s.g, "A", "C")
	s.Require().NoError(err)
	s.Contains(s.logs.String(), `"msg":"slow_path_search"`)
}

// TestNilLoggerIsSilent: WithLogger(nil) turns logging off.
func (s *FinderSuite) TestNilLoggerIsSilent() {
	_, err := s.wrap(instrument.WithLogger(nil)).FindPath(s.g, "A", "C")
	s.Require().NoError(err)
	s.Empty(s.logs.String())
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

func TestFinder_MetricsAndCompare(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := instrument.NewMetrics(reg)

	g := core.NewGraph()
	require.NoError(t, g.AddNeighbor("A", "B", 1))
	require.NoError(t, g.AddNeighbor("A", "C", 4))
	require.NoError(t, g.AddNeighbor("B", "C", 2))

	var algs []compare.Algorithm
	for _, a := range compare.Defaults(search.WithFrontier(search.FrontierHeap)) {
		algs = append(algs, compare.Algorithm{
			Name:   a.Name,
			Finder: instrument.Wrap(a.Name, a.Finder, instrument.WithMetrics(m)),
		})
	}

	rep, err := compare.Run(context.Background(), g, "A", "C", algs...)
	require.NoError(t, err)
	require.True(t, rep.Agree("dijkstra", "astar"))

	// One searches_total series per algorithm, all "found".
	n, err := testutil.GatherAndCount(reg, "pathkit_searches_total")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
