package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xpal/pkg/observability/xmetrics"
)

// opCount 一个 operation/status 组合的调用次数
type opCount struct {
	operation string
	status    string
	count     int64
}

// collectCounts 从 reader 收集 xmetrics 操作计数，按 operation、status 排序。
func collectCounts(ctx context.Context, reader sdkmetric.Reader) ([]opCount, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}
	var out []opCount
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != xmetrics.MetricOperationTotal {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out = append(out, opCount{
					operation: attrString(dp.Attributes, "operation"),
					status:    attrString(dp.Attributes, "status"),
					count:     dp.Value,
				})
			}
		}
	}
	slices.SortFunc(out, func(x, y opCount) int {
		if c := strings.Compare(x.operation, y.operation); c != 0 {
			return c
		}
		return strings.Compare(x.status, y.status)
	})
	return out, nil
}

func attrString(set attribute.Set, key string) string {
	v, ok := set.Value(attribute.Key(key))
	if !ok {
		return ""
	}
	return v.AsString()
}

func writeStats(ctx context.Context, reader sdkmetric.Reader, w io.Writer) error {
	counts, err := collectCounts(ctx, reader)
	if err != nil {
		return err
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "stats: operation=%s status=%s count=%d\n", c.operation, c.status, c.count); err != nil {
			return err
		}
	}
	return nil
}
