package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricChartAggregationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgcharts_chart_aggregation_total",
			Help: "Number of chart data aggregations, by outcome",
		},
		[]string{"outcome"},
	)

	MetricChartAggregationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orgcharts_chart_aggregation_duration_seconds",
			Help:    "Duration of chart data aggregations",
			Buckets: prometheus.DefBuckets,
		},
	)

	MetricChartRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orgcharts_chart_rows",
			Help:    "Number of rows returned by a chart data aggregation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	MetricHierarchyTraversalDepth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orgcharts_hierarchy_traversal_depth",
			Help:    "Number of levels walked when expanding the descendants of an org unit",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		},
	)
)
