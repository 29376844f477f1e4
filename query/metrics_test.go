package query_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gremlin/core"
	"github.com/katalvlaran/gremlin/query"
)

func TestMetricsByOutcome(t *testing.T) {
	g := loadNorse(t)
	reg := prometheus.NewRegistry()
	m, err := query.NewMetrics(reg)
	require.NoError(t, err)

	q := newQuery(g, query.WithMetrics(m)).Seed("thor").Out(parents)
	_, err = q.Run()
	require.NoError(t, err)
	_, err = q.Run()
	require.ErrorIs(t, err, query.ErrPipelineAlreadyRun)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newQuery(g, query.WithMetrics(m)).Seed("thor").RunContext(ctx)
	require.Error(t, err)

	_, err = newQuery(g, query.WithMetrics(m)).Seed("loki").Out(parents).Run()
	require.Error(t, err)

	expected := `
# HELP gremlin_query_results_total The total number of nodes produced by query runs.
# TYPE gremlin_query_results_total counter
gremlin_query_results_total 2
# HELP gremlin_query_runs_total The total number of query runs, by outcome.
# TYPE gremlin_query_runs_total counter
gremlin_query_runs_total{outcome="already_run"} 1
gremlin_query_runs_total{outcome="canceled"} 1
gremlin_query_runs_total{outcome="error"} 1
gremlin_query_runs_total{outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gremlin_query_runs_total", "gremlin_query_results_total"))

	n, err := testutil.GatherAndCount(reg, "gremlin_query_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMetricsCountRejectedRuns(t *testing.T) {
	g := loadNorse(t)
	reg := prometheus.NewRegistry()
	m, err := query.NewMetrics(reg)
	require.NoError(t, err)

	_, err = newQuery(g, query.WithMetrics(m)).Seed("thor").As("").Run()
	require.ErrorIs(t, err, query.ErrEmptyLabel)
	_, err = query.New[string, *core.Edge](nil, query.WithMetrics(m)).Seed("thor").Run()
	require.ErrorIs(t, err, query.ErrNilGraph)

	q := newQuery(g, query.WithMetrics(m)).Seed("thor")
	_, err = q.Run()
	require.NoError(t, err)
	_, err = q.Out(parents).Run()
	require.ErrorIs(t, err, query.ErrPipelineAlreadyRun)

	expected := `
# HELP gremlin_query_runs_total The total number of query runs, by outcome.
# TYPE gremlin_query_runs_total counter
gremlin_query_runs_total{outcome="already_run"} 1
gremlin_query_runs_total{outcome="error"} 2
gremlin_query_runs_total{outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gremlin_query_runs_total"))
}

func TestNewMetricsTwiceOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := query.NewMetrics(reg)
	require.NoError(t, err)
	_, err = query.NewMetrics(reg)
	require.Error(t, err)
}

func TestRunSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := loadNorse(t)
	_, err := newQuery(g, query.WithTracer(tp.Tracer("test"))).Seed("thor").Out(parents).Run()
	require.NoError(t, err)
	_, err = newQuery(g, query.WithTracer(tp.Tracer("test"))).Seed("loki").Out(parents).Run()
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "query.Run", spans[0].Name())
	require.Contains(t, spans[0].Attributes(), attribute.Int("gremlin.stages", 2))
	require.Contains(t, spans[0].Attributes(), attribute.Int("gremlin.results", 2))
	require.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Equal(t, codes.Error, spans[1].Status().Code)

	_, err = newQuery(g, query.WithTracer(tp.Tracer("test"))).Seed("thor").Back("").Run()
	require.ErrorIs(t, err, query.ErrEmptyLabel)
	spans = recorder.Ended()
	require.Len(t, spans, 3)
	require.Equal(t, codes.Error, spans[2].Status().Code)
}

func TestRunLogging(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	g := loadNorse(t)

	_, err := newQuery(g, query.WithLogger(zap.New(observed))).Seed("thor").Out(parents).Run()
	require.NoError(t, err)
	_, err = newQuery(g, query.WithLogger(zap.New(observed)), query.WithStrictLabels()).Seed("thor").Back("x").Run()
	require.Error(t, err)

	require.Equal(t, 2, logs.FilterMessage("query run started").Len())
	finished := logs.FilterMessage("query run finished").All()
	require.Len(t, finished, 1)
	require.EqualValues(t, 2, finished[0].ContextMap()["results"])
	require.NotEmpty(t, finished[0].ContextMap()["run_id"])

	failed := logs.FilterMessage("query run failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zap.WarnLevel, failed[0].Level)
}
