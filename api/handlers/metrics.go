package handlers

import (
	"net/http"
	"time"

	"github.com/stressbuster/stressbuster-api/api"
)

// formatRouteMetrics converts duration fields to milliseconds for JSON serialization
func formatRouteMetrics(routes []api.RouteMetrics) []map[string]interface{} {
	result := make([]map[string]interface{}, len(routes))
	for i, route := range routes {
		result[i] = map[string]interface{}{
			"method":      route.Method,
			"path":        route.Path,
			"count":       route.Count,
			"errorCount":  route.ErrorCount,
			"avgTime":     route.AvgTime.Milliseconds(),
			"minTime":     route.MinTime.Milliseconds(),
			"maxTime":     route.MaxTime.Milliseconds(),
			"p95Time":     route.P95Time.Milliseconds(),
			"lastRequest": route.LastRequest,
		}
	}
	return result
}

// MetricsHandler handles metrics dashboard requests
type MetricsHandler struct {
	Base
	Metrics *api.MetricsCollector
}

// GetMetricsDashboard returns the request metrics collected since startup, slowest
// routes first
func (m MetricsHandler) GetMetricsDashboard(w http.ResponseWriter, r *http.Request) {
	summary := m.Metrics.Summary()

	var errorRate float64
	if summary.TotalRequests > 0 {
		errorRate = float64(summary.TotalErrors) / float64(summary.TotalRequests)
	}
	m.Render.Success(w, http.StatusOK, "Metrics retrieved successfully", map[string]interface{}{
		"summary": map[string]interface{}{
			"since":         summary.Since,
			"uptimeSeconds": int64(time.Since(summary.Since).Seconds()),
			"totalRequests": summary.TotalRequests,
			"totalErrors":   summary.TotalErrors,
			"errorRate":     errorRate,
			"routeCount":    len(summary.Routes),
		},
		"routes": formatRouteMetrics(summary.Routes),
	})
}
