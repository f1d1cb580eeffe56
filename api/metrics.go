package api

import (
	"sort"
	"sync"
	"time"
)

// samplesPerRoute bounds the durations kept per route for percentiles
const samplesPerRoute = 512

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	P95Time     time.Duration `json:"p95Time"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSummary is a point in time view of the collector
type MetricsSummary struct {
	Since         time.Time      `json:"since"`
	TotalRequests int64          `json:"totalRequests"`
	TotalErrors   int64          `json:"totalErrors"`
	Routes        []RouteMetrics `json:"routes"`
}

type routeStats struct {
	RouteMetrics
	total   time.Duration
	samples []time.Duration
	next    int
}

// MetricsCollector collects request metrics in memory, keyed by route template
type MetricsCollector struct {
	mu            sync.Mutex
	since         time.Time
	routes        map[string]*routeStats
	totalRequests int64
	totalErrors   int64
}

// NewMetricsCollector returns an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{since: time.Now(), routes: make(map[string]*routeStats)}
}

// Record adds one finished request
func (mc *MetricsCollector) Record(method, path string, status int, d time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := method + " " + path
	rs, ok := mc.routes[key]
	if !ok {
		rs = &routeStats{RouteMetrics: RouteMetrics{Method: method, Path: path, MinTime: d}}
		mc.routes[key] = rs
	}

	rs.Count++
	rs.total += d
	if d < rs.MinTime {
		rs.MinTime = d
	}
	if d > rs.MaxTime {
		rs.MaxTime = d
	}
	rs.LastRequest = time.Now()
	if len(rs.samples) < samplesPerRoute {
		rs.samples = append(rs.samples, d)
	} else {
		rs.samples[rs.next] = d
		rs.next = (rs.next + 1) % samplesPerRoute
	}

	mc.totalRequests++
	if status >= 400 {
		rs.ErrorCount++
		mc.totalErrors++
	}
}

// Summary returns the per route metrics, slowest average first
func (mc *MetricsCollector) Summary() MetricsSummary {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	routes := make([]RouteMetrics, 0, len(mc.routes))
	for _, rs := range mc.routes {
		m := rs.RouteMetrics
		m.AvgTime = rs.total / time.Duration(rs.Count)
		m.P95Time = percentile(rs.samples, 0.95)
		routes = append(routes, m)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].AvgTime != routes[j].AvgTime {
			return routes[i].AvgTime > routes[j].AvgTime
		}
		return routes[i].Method+routes[i].Path < routes[j].Method+routes[j].Path
	})

	return MetricsSummary{
		Since:         mc.since,
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		Routes:        routes,
	}
}

func percentile(samples []time.Duration, p float64) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}
