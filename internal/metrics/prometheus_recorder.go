package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	menuBuildDuration prom.Histogram
	menuNodes         prom.Gauge
	outlineAnchors    prom.Histogram
	outlineToggles    *prom.CounterVec
	indexDuration     prom.Histogram
	indexedPages      prom.Gauge
	indexRuns         *prom.CounterVec
	reloads           *prom.CounterVec
	activeSessions    prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		menuBuildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "menu_build_duration_seconds",
			Help:      "Duration of menu tree construction",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
		}),
		menuNodes: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "menu_nodes",
			Help:      "Number of nodes in the last built menu",
		}),
		outlineAnchors: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "outline_anchors",
			Help:      "Top-level anchors per parsed outline",
			Buckets:   prom.LinearBuckets(0, 5, 8),
		}),
		outlineToggles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "outline_toggles_total",
			Help:      "Outline toggle requests by whether the state changed",
		}, []string{"applied"}),
		indexDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "index_duration_seconds",
			Help:      "Duration of content indexing runs",
			Buckets:   prom.DefBuckets,
		}),
		indexedPages: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "indexed_pages",
			Help:      "Pages in the index after the last run",
		}),
		indexRuns: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "index_runs_total",
			Help:      "Indexing runs by result",
		}, []string{"result"}),
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Re-index runs by trigger and result",
		}, []string{"trigger", "result"}),
		activeSessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "outline_sessions",
			Help:      "Outline sessions currently held by the server",
		}),
	}
	reg.MustRegister(pr.menuBuildDuration, pr.menuNodes, pr.outlineAnchors, pr.outlineToggles,
		pr.indexDuration, pr.indexedPages, pr.indexRuns, pr.reloads, pr.activeSessions)
	return pr
}

func (p *PrometheusRecorder) ObserveMenuBuild(d time.Duration, nodes int) {
	if p == nil {
		return
	}
	p.menuBuildDuration.Observe(d.Seconds())
	p.menuNodes.Set(float64(nodes))
}

func (p *PrometheusRecorder) ObserveOutlineParse(anchors int) {
	if p == nil {
		return
	}
	p.outlineAnchors.Observe(float64(anchors))
}

func (p *PrometheusRecorder) IncOutlineToggle(applied bool) {
	if p == nil {
		return
	}
	label := "false"
	if applied {
		label = "true"
	}
	p.outlineToggles.WithLabelValues(label).Inc()
}

func (p *PrometheusRecorder) ObserveIndex(d time.Duration, pages int, result ResultLabel) {
	if p == nil {
		return
	}
	p.indexDuration.Observe(d.Seconds())
	p.indexRuns.WithLabelValues(string(result)).Inc()
	if result == ResultSuccess {
		p.indexedPages.Set(float64(pages))
	}
}

func (p *PrometheusRecorder) IncReload(trigger ReloadTrigger, result ResultLabel) {
	if p == nil {
		return
	}
	p.reloads.WithLabelValues(string(trigger), string(result)).Inc()
}

func (p *PrometheusRecorder) SetActiveSessions(n int) {
	if p == nil {
		return
	}
	p.activeSessions.Set(float64(n))
}

// HTTPHandler returns an http.Handler that serves the metrics in reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
