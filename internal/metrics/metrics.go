// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 訪問記録アップサートの結果ラベル
const (
	VisitOutcomeCreated  = "created"
	VisitOutcomeUpdated  = "updated"
	VisitOutcomeRejected = "rejected"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアとハンドラーから利用する。
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordRecommendations(mode string, count int)
	RecordVisitUpsert(outcome string)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	recommendedLocs *prometheus.HistogramVec
	visitUpserts    *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabilog_http_requests_total",
			Help: "ルートパターン・ステータスコード別のHTTPリクエスト数",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tabilog_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabilog_recommendations_served_total",
			Help: "モード別の推薦レスポンス数",
		}, []string{"mode"}),
		recommendedLocs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tabilog_recommendation_result_size",
			Help:    "推薦レスポンスに含まれるロケーション数",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		}, []string{"mode"}),
		visitUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabilog_visit_upserts_total",
			Help: "結果別の訪問記録アップサート数",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.recommendations,
		c.recommendedLocs,
		c.visitUpserts,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエスト数と処理時間を記録する。
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendations は推薦レスポンスとその件数を記録する。
func (c *Collector) RecordRecommendations(mode string, count int) {
	c.recommendations.WithLabelValues(mode).Inc()
	c.recommendedLocs.WithLabelValues(mode).Observe(float64(count))
}

// RecordVisitUpsert は訪問記録アップサートの結果を記録する。
func (c *Collector) RecordVisitUpsert(outcome string) {
	c.visitUpserts.WithLabelValues(outcome).Inc()
}

// NopCollector は何も記録しないMetricsCollector。
// メトリクスを使わないテストや構成で使う。
type NopCollector struct{}

func (NopCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
func (NopCollector) RecordRecommendations(string, int)                    {}
func (NopCollector) RecordVisitUpsert(string)                             {}

var (
	_ MetricsCollector = (*Collector)(nil)
	_ MetricsCollector = NopCollector{}
)

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
