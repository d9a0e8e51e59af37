package trademark

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/browser"
)

// searchFieldSelector matches the basic-search input under either of the
// names the registry has shipped it with.
const searchFieldSelector = `input[name="marca"], input[name="expressaoPesquisa"]`

var errSearchFieldPending = errors.New("search field not present yet")

// locateSearchForm polls the main page and every nested frame for the search
// input. The registry builds its frameset asynchronously, so the field often
// materializes a few seconds after the navigation settles.
func (c *Checker) locateSearchForm(ctx context.Context, page browser.Page) (browser.Frame, error) {
	var found browser.Frame

	probe := func() error {
		if page.Exists(searchFieldSelector) {
			found = page
			return nil
		}
		for _, frame := range page.Frames() {
			if frame.Exists(searchFieldSelector) {
				found = frame
				return nil
			}
		}
		return errSearchFieldPending
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.pollInterval()), uint64(c.pollAttempts()-1)),
		ctx,
	)
	if err := backoff.Retry(probe, policy); err == nil {
		return found, nil
	}

	c.captureDebugScreenshot(page)

	// Distinguish a stale login wall from a genuinely missing form. Any
	// other page state resolves to a missing form as well.
	html, err := page.Content()
	if err != nil {
		return nil, ErrFormNotFound
	}
	if ClassifyPageState(html) == StateLoginRequired {
		return nil, errors.Join(ErrAuthentication, errors.New("login wall still present, check credentials"))
	}
	return nil, ErrFormNotFound
}

func (c *Checker) captureDebugScreenshot(page browser.Page) {
	if c.ScreenshotPath == "" {
		return
	}
	if err := page.Screenshot(c.ScreenshotPath); err != nil {
		c.logWarn("debug screenshot failed", zap.Error(err))
		return
	}
	c.logWarn("search form not found, screenshot captured", zap.String("path", c.ScreenshotPath))
}
