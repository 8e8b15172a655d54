// Package metrics provides Prometheus metrics for the indexing core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "indexlab"

var (
	// DocumentsIndexed counts documents processed per build mode.
	DocumentsIndexed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_indexed_total",
			Help:      "Total documents fed into index builds",
		},
		[]string{"mode"}, // mode: "sequential" or "parallel"
	)

	// BuildDuration tracks wall time of index builds per mode.
	BuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Index build wall time",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"mode"},
	)

	// IndexTerms reports the distinct term count after the last build or
	// maintenance operation.
	IndexTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_terms",
			Help:      "Distinct terms in the most recently touched index",
		},
	)

	// CodecDuration tracks compression and decompression wall time.
	CodecDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "codec_duration_seconds",
			Help:      "Index compression/decompression wall time",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"direction"}, // direction: "compress" or "decompress"
	)

	// CompressionRatio reports compact size over in-memory size for the
	// last compression pass, as measured by the caller.
	CompressionRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "compression_ratio",
			Help:      "Compact index size divided by in-memory index size",
		},
	)

	// MaintenanceOps counts in-place index mutations.
	MaintenanceOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maintenance_ops_total",
			Help:      "Total add/remove document operations",
		},
		[]string{"op"}, // op: "add" or "remove"
	)
)
