// Package native 提供资产登记相关的监控指标
package native

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
//                          Prometheus 监控指标
// ============================================================================

var (
	// registerTotal 资产登记总次数（按结果分类）
	registerTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "luoshu",
			Subsystem: "asset_registry",
			Name:      "register_total",
			Help:      "Total number of asset register calls by result",
		},
		[]string{"result"}, // success, invalid_address, exists, cycles_limit, error
	)

	// queryTotal 资产查询总次数（按结果分类）
	queryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "luoshu",
			Subsystem: "asset_registry",
			Name:      "query_total",
			Help:      "Total number of asset query calls by result",
		},
		[]string{"result"}, // success, not_found, error
	)

	// registerDuration 资产登记耗时（直方图）
	registerDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "luoshu",
		Subsystem: "asset_registry",
		Name:      "register_duration_seconds",
		Help:      "Duration of asset register calls in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 0.1ms ~ 1.6s
	})
)

// ============================================================================
//                          指标注册
// ============================================================================

func init() {
	prometheus.MustRegister(registerTotal)
	prometheus.MustRegister(queryTotal)
	prometheus.MustRegister(registerDuration)
}
