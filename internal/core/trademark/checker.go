package trademark

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/browser"
	"github.com/brandlens/brandlens/internal/core"
)

// DefaultSearchURL is the registry's basic search page for word marks.
const DefaultSearchURL = "https://busca.inpi.gov.br/pePI/jsp/marcas/Pesquisa_classe_basica.jsp"

const (
	defaultNavigationTimeout   = 30 * time.Second
	defaultResultsTimeout      = 20 * time.Second
	defaultResultsFallbackWait = 8 * time.Second
	defaultSettleDelay         = 3 * time.Second
	defaultPollAttempts        = 5
	defaultPollInterval        = time.Second
)

// Search form and results selectors, legacy JSP variants included.
const (
	classFieldSelector   = `input[name="classe"], input[name="classificacao"]`
	searchSubmitSelector = `input[type="submit"], button[type="submit"], a[href*="pesquisar"]`
	resultsTableSelector = `table`
	resultsFontSelector  = `font.normal[color="#000000"]`
	resultsLinkSelector  = `a.visitado`
)

// Content markers that identify the frame carrying the results table.
var resultsFrameMarkers = []string{
	"tabela_resultados",
	"Nenhum registro",
	"brandName",
}

// Checker drives a full registry search through a browser session: navigate,
// authenticate if the login wall appears, locate the frame-nested search
// form, submit, and extract the results table.
type Checker struct {
	Browser     browser.SessionRunner
	SearchURL   string
	Credentials Credentials

	// ScreenshotPath, when set, receives a capture of the page whenever the
	// search form cannot be located.
	ScreenshotPath string

	NavigationTimeout   time.Duration
	ResultsTimeout      time.Duration
	ResultsFallbackWait time.Duration
	SettleDelay         time.Duration
	PollAttempts        int
	PollInterval        time.Duration

	Logger *logging.Logger
	Clock  func() time.Time
}

// Check searches the registry for name, optionally scoped to one Nice class.
// Pipeline failures are returned as errors; the caller converts them into an
// error-status result so the other source's outcome survives.
func (c *Checker) Check(ctx context.Context, name string, nclClass *int) (*core.TrademarkResult, error) {
	if c == nil || c.Browser == nil {
		return nil, errors.New("trademark checker is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	value := strings.TrimSpace(name)
	if value == "" {
		return nil, errors.New("brand name is required")
	}
	if nclClass != nil && !core.NclClassValid(*nclClass) {
		return nil, fmt.Errorf("ncl class %d outside valid range 1-45", *nclClass)
	}

	var result *core.TrademarkResult
	err := c.Browser.WithSession(ctx, func(session browser.Session) error {
		page, err := session.NewPage(ctx)
		if err != nil {
			return err
		}
		defer page.Close()

		r, err := c.run(ctx, page, value, nclClass)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Checker) run(ctx context.Context, page browser.Page, name string, nclClass *int) (*core.TrademarkResult, error) {
	// A slow frameset can blow the navigation budget while still delivering
	// usable markup, so timeouts here are logged and tolerated.
	if _, err := c.navigate(ctx, page); err != nil {
		c.logWarn("initial navigation did not settle, inspecting content anyway", zap.Error(err))
	}

	state := c.classify(page)
	c.logDebug("registry page classified", zap.String("state", state.String()))

	if state == StateLoginRequired {
		if err := c.authenticate(ctx, page); err != nil {
			return nil, err
		}
		// The post-login redirect lands on an arbitrary frame page; force
		// the search page regardless.
		if _, err := c.navigate(ctx, page); err != nil {
			c.logWarn("post-login navigation did not settle", zap.Error(err))
		}
		state = c.classify(page)
		c.logDebug("registry page classified after login", zap.String("state", state.String()))
		if state == StateLoginRequired {
			return nil, fmt.Errorf("%w: login wall persists after submit", ErrAuthentication)
		}
	}

	frame, err := c.locateSearchForm(ctx, page)
	if err != nil {
		return nil, err
	}

	if err := frame.Fill(searchFieldSelector, name); err != nil {
		return nil, fmt.Errorf("%w: fill search field: %v", ErrFormNotFound, err)
	}
	if nclClass != nil && frame.Exists(classFieldSelector) {
		if err := frame.Fill(classFieldSelector, strconv.Itoa(*nclClass)); err != nil {
			c.logWarn("class field fill failed, searching without class filter", zap.Error(err))
		}
	}

	if !frame.Exists(searchSubmitSelector) {
		return nil, fmt.Errorf("%w: no submit control", ErrFormNotFound)
	}
	if err := frame.Click(searchSubmitSelector); err != nil {
		return nil, fmt.Errorf("%w: submit search: %v", ErrFormNotFound, err)
	}

	c.awaitResults(ctx, frame)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := c.resultsContent(page)
	if err != nil {
		return nil, err
	}

	if HasNoResultsMarker(html) {
		return c.result(core.TrademarkAvailable, "Nenhum registro exato encontrado no INPI.", nil), nil
	}

	records, err := ExtractRecords(html, name)
	if err != nil {
		// Heuristic extraction over hostile markup; an unparsable table is
		// treated the same as an empty one.
		c.logWarn("record extraction failed, treating as no results", zap.Error(err))
		records = nil
	}

	if len(records) > 0 {
		details := fmt.Sprintf("%d processos encontrados.", len(records))
		return c.result(core.TrademarkUnavailable, details, records), nil
	}
	return c.result(core.TrademarkAvailable, "Nenhum registro exato encontrado.", nil), nil
}

func (c *Checker) navigate(ctx context.Context, page browser.Page) (int, error) {
	return page.Navigate(ctx, c.searchURL(), browser.NavigateOptions{
		WaitUntil: "networkidle",
		Timeout:   c.navigationTimeout(),
	})
}

func (c *Checker) classify(page browser.Page) PageState {
	html, err := page.Content()
	if err != nil {
		c.logWarn("page content read failed", zap.Error(err))
		return StateUnknown
	}
	return ClassifyPageState(html)
}

// awaitResults blocks until either results signal appears, the fallback
// window elapses, or ctx expires, then lets the staged rendering settle.
func (c *Checker) awaitResults(ctx context.Context, frame browser.Frame) {
	signals := []string{resultsTableSelector, resultsFontSelector}
	ready := make(chan struct{}, len(signals))
	for _, selector := range signals {
		go func(sel string) {
			if err := frame.WaitForSelector(sel, c.resultsTimeout()); err == nil {
				select {
				case ready <- struct{}{}:
				default:
				}
			}
		}(selector)
	}

	select {
	case <-ready:
	case <-time.After(c.resultsFallbackWait()):
		c.logDebug("no results signal before fallback window elapsed")
	case <-ctx.Done():
		return
	}

	select {
	case <-time.After(c.settleDelay()):
	case <-ctx.Done():
	}
}

// resultsContent returns the markup of whichever frame holds the results,
// falling back to the main page when no frame matches.
func (c *Checker) resultsContent(page browser.Page) (string, error) {
	for _, frame := range page.Frames() {
		if frame.Exists(resultsFontSelector) || frame.Exists(resultsLinkSelector) {
			if html, err := frame.Content(); err == nil {
				return html, nil
			}
			continue
		}
		html, err := frame.Content()
		if err != nil {
			continue
		}
		for _, marker := range resultsFrameMarkers {
			if strings.Contains(html, marker) {
				return html, nil
			}
		}
	}

	html, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return html, nil
}

func (c *Checker) result(status core.TrademarkStatus, details string, records []core.TrademarkRecord) *core.TrademarkResult {
	return &core.TrademarkResult{
		Status:  status,
		Details: details,
		Records: records,
		Link:    c.searchURL(),
	}
}

func (c *Checker) searchURL() string {
	if c.SearchURL != "" {
		return c.SearchURL
	}
	return DefaultSearchURL
}

func (c *Checker) navigationTimeout() time.Duration {
	if c.NavigationTimeout > 0 {
		return c.NavigationTimeout
	}
	return defaultNavigationTimeout
}

func (c *Checker) resultsTimeout() time.Duration {
	if c.ResultsTimeout > 0 {
		return c.ResultsTimeout
	}
	return defaultResultsTimeout
}

func (c *Checker) resultsFallbackWait() time.Duration {
	if c.ResultsFallbackWait > 0 {
		return c.ResultsFallbackWait
	}
	return defaultResultsFallbackWait
}

func (c *Checker) settleDelay() time.Duration {
	if c.SettleDelay > 0 {
		return c.SettleDelay
	}
	return defaultSettleDelay
}

func (c *Checker) pollAttempts() int {
	if c.PollAttempts > 0 {
		return c.PollAttempts
	}
	return defaultPollAttempts
}

func (c *Checker) pollInterval() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return defaultPollInterval
}

func (c *Checker) logDebug(msg string, fields ...zap.Field) {
	if c.Logger != nil {
		c.Logger.Debug(msg, fields...)
	}
}

func (c *Checker) logWarn(msg string, fields ...zap.Field) {
	if c.Logger != nil {
		c.Logger.Warn(msg, fields...)
	}
}
