// Package metrics 提供基于Prometheus的HTTP指标收集
//
// 指标说明：
// - http_requests_total: 按method/path/status维度的请求计数（Counter）
// - http_request_duration_seconds: 请求耗时分布（Histogram，自动计算分位数）
//
// 指标通过GET /metrics端点暴露，由Prometheus Server定期抓取
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics HTTP请求指标集合
type HTTPMetrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics 创建并注册HTTP指标
// 使用独立的Registry而非全局DefaultRegisterer，便于测试时隔离
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	return &HTTPMetrics{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// Registry 返回底层Registry（供promhttp.HandlerFor暴露）
func (m *HTTPMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe 记录一次请求
// path应使用路由模板（如/products/:page）而非实际URL，避免标签基数爆炸
func (m *HTTPMetrics) Observe(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
