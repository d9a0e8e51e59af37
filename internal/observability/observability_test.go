package observability_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/observability"
)

func TestInitCLILogger(t *testing.T) {
	observability.InitCLILogger("brandlens-test", false)

	if observability.CLILogger == nil {
		t.Fatal("CLI logger should not be nil after initialization")
	}

	observability.CLILogger.Info("check starting",
		zap.String("name", "acme"))
}

func TestInitCLILoggerVerbose(t *testing.T) {
	observability.InitCLILogger("brandlens-test", true)

	if observability.CLILogger == nil {
		t.Fatal("CLI logger should not be nil after initialization")
	}

	observability.CLILogger.Debug("verbose diagnostics enabled")
}

func TestInitServerLogger(t *testing.T) {
	observability.InitServerLogger("brandlens-test", "info", "brandlens")

	if observability.ServerLogger == nil {
		t.Fatal("server logger should not be nil after initialization")
	}

	observability.ServerLogger.Info("check completed",
		zap.String("source", "trademark"),
		zap.String("status", "available"))
}
