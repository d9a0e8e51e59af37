package metrics

import (
	"testing"
	"time"

	"github.com/fulmenhq/gofulmen/telemetry"
	telemetrytesting "github.com/fulmenhq/gofulmen/telemetry/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/internal/observability"
)

func setupTelemetry(t *testing.T) *telemetrytesting.FakeCollector {
	t.Helper()

	collector := telemetrytesting.NewFakeCollector()
	config := &telemetry.Config{
		Enabled: true,
		Emitter: collector,
	}

	sys, err := telemetry.NewSystem(config)
	require.NoError(t, err)

	originalTelemetry := observability.TelemetrySystem
	observability.TelemetrySystem = sys

	t.Cleanup(func() {
		observability.TelemetrySystem = originalTelemetry
	})

	return collector
}

func TestRecordCheck(t *testing.T) {
	collector := setupTelemetry(t)

	RecordCheck("trademark", "unavailable", 250*time.Millisecond)
	RecordCheck("handle", "available", 100*time.Millisecond)

	assert.Equal(t, 2, collector.CountMetricsByName(ChecksTotal),
		"expected one check counter per source")
	assert.Equal(t, 2, collector.CountMetricsByName(CheckDuration),
		"expected one duration sample per source")
}

func TestRecordCheckVariants(t *testing.T) {
	collector := setupTelemetry(t)

	RecordCheckVariants(3)
	RecordCheckVariants(1)

	assert.Equal(t, 2, collector.CountMetricsByName(CheckVariantsTotal))
}

func TestRecordBrowserSession(t *testing.T) {
	collector := setupTelemetry(t)

	RecordBrowserSession(true)
	RecordBrowserSession(false)

	assert.Equal(t, 2, collector.CountMetricsByName(BrowserSessionsTotal))
}

func TestSetActiveSessions(t *testing.T) {
	collector := setupTelemetry(t)

	SetActiveSessions(2)
	SetActiveSessions(1)

	assert.Greater(t, collector.CountMetricsByName(ActiveSessions), 0,
		"expected active-session gauge to be emitted")
}

func TestMetricsWithTelemetryDisabled(t *testing.T) {
	originalTelemetry := observability.TelemetrySystem
	observability.TelemetrySystem = nil
	defer func() {
		observability.TelemetrySystem = originalTelemetry
	}()

	// All recorders must be no-ops, not panics, without a telemetry system.
	RecordCheck("trademark", "error", time.Second)
	RecordCheckVariants(4)
	RecordBrowserSession(true)
	SetActiveSessions(0)
	RecordHealthCheck("browser", true, time.Millisecond)
	SetServerStartTime(time.Now().Unix())
	SetServerUptime(60)
}
