package middleware_test

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/xraph/schedstore/middleware"
)

const (
	durationMetric   = "schedstore.storage.duration"
	operationsMetric = "schedstore.storage.operations"
)

// series is one recorded data point: the instrument, its attribute set
// flattened to strings, and the number of observations behind it.
type series struct {
	instrument string
	attrs      map[string]string
	count      int64
}

func collectSeries(t *testing.T, reader *sdkmetric.ManualReader) []series {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var out []series
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					out = append(out, series{m.Name, flatten(dp.Attributes.ToSlice()), int64(dp.Count)})
				}
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					out = append(out, series{m.Name, flatten(dp.Attributes.ToSlice()), dp.Value})
				}
			}
		}
	}
	return out
}

func newMetricsChain() (*sdkmetric.ManualReader, middleware.Middleware) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return reader, middleware.MetricsWithMeter(mp.Meter("test"))
}

func TestMetricsAttributesPerKindAndOutcome(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		kind   middleware.Kind
		err    error
		status string
	}{
		{"read ok", middleware.KindRead, nil, "ok"},
		{"read error", middleware.KindRead, boom, "error"},
		{"write ok", middleware.KindWrite, nil, "ok"},
		{"write error", middleware.KindWrite, boom, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, mw := newMetricsChain()
			op := middleware.Op{Kind: tt.kind, Storage: "memory"}

			err := mw(context.Background(), op, func(context.Context) error { return tt.err })
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}

			got := collectSeries(t, reader)
			if len(got) != 2 {
				t.Fatalf("got %d series, want one per instrument: %+v", len(got), got)
			}
			want := map[string]string{"storage": "memory", "kind": string(tt.kind), "status": tt.status}
			seen := map[string]bool{}
			for _, s := range got {
				seen[s.instrument] = true
				if s.count != 1 {
					t.Errorf("%s: count = %d, want 1", s.instrument, s.count)
				}
				if !sameAttrs(s.attrs, want) {
					t.Errorf("%s: attrs = %v, want %v", s.instrument, s.attrs, want)
				}
			}
			if !seen[durationMetric] || !seen[operationsMetric] {
				t.Errorf("instruments = %v", seen)
			}
		})
	}
}

func TestMetricsSeparatesSeries(t *testing.T) {
	reader, mw := newMetricsChain()
	ctx := context.Background()
	read := middleware.Op{Kind: middleware.KindRead, Storage: "memory"}
	write := middleware.Op{Kind: middleware.KindWrite, Storage: "memory"}

	for range 3 {
		_ = mw(ctx, read, func(context.Context) error { return nil })
	}
	_ = mw(ctx, write, func(context.Context) error { return errors.New("rejected") })
	_ = mw(ctx, write, func(context.Context) error { return nil })

	counts := map[string]int64{}
	for _, s := range collectSeries(t, reader) {
		if s.instrument == operationsMetric {
			counts[s.attrs["kind"]+"/"+s.attrs["status"]] = s.count
		}
	}
	want := map[string]int64{"read/ok": 3, "write/error": 1, "write/ok": 1}
	if len(counts) != len(want) {
		t.Fatalf("series = %v, want %v", counts, want)
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s = %d, want %d", k, counts[k], n)
		}
	}
}

func TestMetricsWithoutProvider(t *testing.T) {
	called := false
	err := middleware.Metrics()(context.Background(), middleware.Op{Kind: middleware.KindRead}, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("err = %v, called = %v", err, called)
	}
}
