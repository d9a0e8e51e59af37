package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/browser"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/core"
	"github.com/brandlens/brandlens/internal/core/engine"
	"github.com/brandlens/brandlens/internal/core/handle"
	"github.com/brandlens/brandlens/internal/core/trademark"
	"github.com/brandlens/brandlens/internal/observability"
	"github.com/brandlens/brandlens/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <name>...",
	Short: "Check brand name availability",
	Long: `Check whether one or more brand names are available as registered
trademarks (INPI) and as Instagram handles. Names with spaces must be quoted.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Int("class", 0, "Nice classification (1-45) to narrow the trademark search")
	checkCmd.Flags().Bool("trademark-only", false, "Skip the Instagram handle check")
	checkCmd.Flags().Bool("handles-only", false, "Skip the trademark registry check")
	checkCmd.Flags().String("output-format", "table", "Output format: table, json, markdown")
	checkCmd.Flags().String("names-file", "", "Read names from a file, one per line (- for stdin)")
	checkCmd.Flags().String("out", "", "Write output to a file instead of stdout")
	checkCmd.Flags().String("out-dir", "", "Write one output file per name into a directory")
}

func runCheck(cmd *cobra.Command, args []string) error {
	namesFile, err := cmd.Flags().GetString("names-file")
	if err != nil {
		return err
	}
	names, err := resolveNames(args, namesFile)
	if err != nil {
		return err
	}

	nclClass, err := cmd.Flags().GetInt("class")
	if err != nil {
		return err
	}
	var classFilter *int
	if nclClass != 0 {
		if !core.NclClassValid(nclClass) {
			return fmt.Errorf("--class must be between 1 and 45, got %d", nclClass)
		}
		classFilter = &nclClass
	}

	trademarkOnly, err := cmd.Flags().GetBool("trademark-only")
	if err != nil {
		return err
	}
	handlesOnly, err := cmd.Flags().GetBool("handles-only")
	if err != nil {
		return err
	}
	if trademarkOnly && handlesOnly {
		return errors.New("--trademark-only and --handles-only are mutually exclusive")
	}

	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}
	outPath, outDir, err := resolveOutputTargets(cmd)
	if err != nil {
		return err
	}
	outDir, err = ensureOutDir(outDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	controller := browser.NewController(browser.Config{
		Headless:        cfg.Browser.Headless,
		ViewportWidth:   cfg.Browser.ViewportWidth,
		ViewportHeight:  cfg.Browser.ViewportHeight,
		UserAgent:       cfg.Browser.UserAgent,
		InstallBrowsers: cfg.Browser.InstallBrowsers,
	})
	defer controller.Stop() // nolint:errcheck // best-effort driver teardown

	aggregator := buildAggregator(cfg, controller, trademarkOnly, handlesOnly)

	ctx := cmd.Context()
	startedAt := time.Now()
	results := make([]*core.AvailabilityResult, 0, len(names))
	for _, name := range names {
		result, err := aggregator.Check(ctx, name, classFilter)
		if err != nil {
			return err
		}
		pruneSkippedSources(result, trademarkOnly, handlesOnly)
		results = append(results, result)
	}

	if outDir != "" {
		for _, result := range results {
			rendered, err := output.NewFormatter(format).FormatResult(result)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, sanitizeFilename(result.Name)+"."+outputExtension(format))
			sink, err := openSink(path)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(sink.writer, rendered); err != nil {
				_ = sink.close()
				return err
			}
			if err := sink.close(); err != nil {
				return err
			}
			observability.CLILogger.Info("Wrote result", zap.String("name", result.Name), zap.String("path", sink.path))
		}
	} else {
		rendered, err := output.FormatResultList(format, results)
		if err != nil {
			return err
		}
		sink, err := openSink(outPath)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(sink.writer, rendered); err != nil {
			_ = sink.close()
			return err
		}
		if err := sink.close(); err != nil {
			return err
		}
	}

	if format != output.FormatJSON {
		logThroughput(len(results), startedAt)
	}
	return nil
}

// buildAggregator wires the browser-backed checkers from configuration. A
// skipped source is left unconfigured and pruned from the result afterwards.
func buildAggregator(cfg *config.Config, controller *browser.Controller, trademarkOnly, handlesOnly bool) *engine.Aggregator {
	aggregator := &engine.Aggregator{
		ToolVersion: versionInfo.Version,
		Logger:      observability.CLILogger,
	}

	if !handlesOnly {
		aggregator.Trademark = &trademark.Checker{
			Browser:   controller,
			SearchURL: cfg.Registry.SearchURL,
			Credentials: trademark.Credentials{
				Username: cfg.Registry.Username,
				Password: cfg.Registry.Password,
			},
			ScreenshotPath:      cfg.Registry.ScreenshotPath,
			NavigationTimeout:   cfg.Registry.NavigationTimeout,
			ResultsTimeout:      cfg.Registry.ResultsTimeout,
			ResultsFallbackWait: cfg.Registry.ResultsFallbackWait,
			SettleDelay:         cfg.Registry.SettleDelay,
			PollAttempts:        cfg.Registry.PollAttempts,
			PollInterval:        cfg.Registry.PollInterval,
			Logger:              observability.CLILogger,
		}
	}
	if !trademarkOnly {
		aggregator.Handle = &handle.Checker{
			Browser:           controller,
			BaseURL:           cfg.Social.BaseURL,
			NavigationTimeout: cfg.Social.NavigationTimeout,
			MaxConcurrent:     cfg.Social.MaxConcurrent,
			Logger:            observability.CLILogger,
		}
	}
	return aggregator
}

// pruneSkippedSources drops the degraded placeholder result of a source the
// user asked to skip, so renderers only show what was actually checked.
func pruneSkippedSources(result *core.AvailabilityResult, trademarkOnly, handlesOnly bool) {
	if result == nil {
		return
	}
	if handlesOnly {
		result.Trademark = nil
	}
	if trademarkOnly {
		result.Handle = nil
	}
}

func logThroughput(count int, startedAt time.Time) {
	if count <= 0 {
		return
	}
	elapsed := time.Since(startedAt)
	if elapsed <= 0 {
		return
	}
	rate := float64(count) / elapsed.Seconds()
	observability.CLILogger.Info(
		"Check throughput",
		zap.Int("names", count),
		zap.Duration("elapsed", elapsed),
		zap.Float64("rate_per_sec", rate),
	)
}
