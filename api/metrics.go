package api

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	mRequests = stats.Int64("areactl/api/request_count", "number of backend requests", stats.UnitDimensionless)
	mLatency  = stats.Float64("areactl/api/request_latency", "backend request latency", stats.UnitMilliseconds)

	keyEndpoint = tag.MustNewKey("endpoint")
	keyStatus   = tag.MustNewKey("status")
)

// RegisterViews registers the request views with opencensus. Call once at
// startup when metrics are wanted; the client records unconditionally and
// recording without views is a no-op.
func RegisterViews() error {
	return view.Register(
		&view.View{
			Name:        "areactl/api/request_count",
			Measure:     mRequests,
			Description: "backend requests by endpoint and status",
			TagKeys:     []tag.Key{keyEndpoint, keyStatus},
			Aggregation: view.Count(),
		},
		&view.View{
			Name:        "areactl/api/request_latency",
			Measure:     mLatency,
			Description: "backend request latency by endpoint",
			TagKeys:     []tag.Key{keyEndpoint},
			Aggregation: view.Distribution(5, 25, 100, 250, 1000, 5000),
		},
	)
}

func recordRequest(ctx context.Context, endpoint, status string, start time.Time) {
	ctx, err := tag.New(ctx,
		tag.Upsert(keyEndpoint, endpoint),
		tag.Upsert(keyStatus, status),
	)
	if err != nil {
		return
	}
	stats.Record(ctx,
		mRequests.M(1),
		mLatency.M(float64(time.Since(start).Milliseconds())),
	)
}
