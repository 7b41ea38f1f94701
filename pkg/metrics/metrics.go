// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：请求总数、耗时、处理中的请求数（由HTTP中间件记录）
//   - 图书指标：领域服务操作次数与耗时、当前存储的图书数、事件发布结果
//
// 所有指标注册到Prometheus默认Registry，通过 /metrics 端点暴露：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 命名规范：
//  1. Counter 以 `_total` 结尾
//  2. Histogram 以单位结尾（`_seconds`）
//  3. 标签只使用有限取值（method、status、operation），不要把图书ID放进标签
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册（重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书业务指标

	// BookOperationsTotal 领域服务操作总数（Counter）
	// 标签：operation（GetBooks/AddBook...）、status（ok/not_found/internal_error）
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 领域服务操作耗时（Histogram）
	// 每次操作都会整体读写存储，耗时随图书数量线性增长
	BookOperationDuration *prometheus.HistogramVec

	// BooksStored 当前存储中的图书数量（Gauge）
	BooksStored prometheus.Gauge

	// BookEventsPublishedTotal 图书事件发布总数（Counter）
	// 标签：type（book.created/book.updated/book.deleted）、result（success/failure）
	BookEventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标
// 可以重复调用，只有第一次生效
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书服务操作总数",
			},
			[]string{"operation", "status"},
		)

		BookOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "book_operation_duration_seconds",
				Help:    "图书服务操作耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)

		BooksStored = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "books_stored",
				Help: "当前存储中的图书数量",
			},
		)

		BookEventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_events_published_total",
				Help: "图书事件发布总数",
			},
			[]string{"type", "result"},
		)
	})
}

// ObserveBookOperation 记录一次领域服务操作
func ObserveBookOperation(operation, status string, elapsed time.Duration) {
	InitMetrics()
	BookOperationsTotal.With(prometheus.Labels{
		"operation": operation,
		"status":    status,
	}).Inc()
	BookOperationDuration.With(prometheus.Labels{"operation": operation}).Observe(elapsed.Seconds())
}

// SetBooksStored 设置当前图书数量
func SetBooksStored(n int) {
	InitMetrics()
	BooksStored.Set(float64(n))
}

// IncBookEvent 记录一次事件发布结果
func IncBookEvent(eventType, result string) {
	InitMetrics()
	BookEventsPublishedTotal.With(prometheus.Labels{
		"type":   eventType,
		"result": result,
	}).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
