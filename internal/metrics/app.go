package metrics

import (
	"time"

	"github.com/brandlens/brandlens/internal/observability"
)

// Application-level metrics following Prometheus conventions
var (
	// Availability check metrics
	ChecksTotal        = "app_checks_total"
	CheckDuration      = "app_check_duration_ms"
	CheckVariantsTotal = "app_check_variants_total"

	// Browser session metrics
	BrowserSessionsTotal = "app_browser_sessions_total"
	ActiveSessions       = "app_active_browser_sessions"

	// Health check metrics
	HealthCheckTotal    = "app_health_check_total"
	HealthCheckDuration = "app_health_check_duration_ms"

	// Server lifecycle metrics
	ServerStartTime = "app_server_start_time_seconds"
	ServerUptime    = "app_server_uptime_seconds"
)

// RecordCheck records one availability check per source with its outcome
// status, e.g. source=trademark status=unavailable.
func RecordCheck(source string, status string, duration time.Duration) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			ChecksTotal,
			1,
			map[string]string{
				"source": source,
				"status": status,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			CheckDuration,
			duration,
			map[string]string{
				"source": source,
			},
		)
	}
}

// RecordCheckVariants records how many handle variations one check expanded to
func RecordCheckVariants(count int) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			CheckVariantsTotal,
			float64(count),
			nil,
		)
	}
}

// RecordBrowserSession records a browser session launch with outcome
func RecordBrowserSession(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			BrowserSessionsTotal,
			1,
			map[string]string{
				"status": status,
			},
		)
	}
}

// SetActiveSessions sets the current number of live browser sessions
func SetActiveSessions(count int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ActiveSessions,
			float64(count),
			nil,
		)
	}
}

// RecordHealthCheck records a health check execution
func RecordHealthCheck(checkName string, healthy bool, duration time.Duration) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			HealthCheckTotal,
			1,
			map[string]string{
				"check":  checkName,
				"status": status,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			HealthCheckDuration,
			duration,
			map[string]string{
				"check": checkName,
			},
		)
	}
}

// SetServerStartTime records the server start time (Unix timestamp)
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerStartTime,
			float64(timestamp),
			nil,
		)
	}
}

// SetServerUptime records the server uptime in seconds
func SetServerUptime(seconds int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerUptime,
			float64(seconds),
			nil,
		)
	}
}
