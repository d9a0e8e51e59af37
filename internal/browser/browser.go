package browser

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/playwright-community/playwright-go"

	"github.com/brandlens/brandlens/internal/metrics"
)

// Default launch tuning for constrained hosts (containers without a usable
// sandbox, small /dev/shm).
var defaultLaunchArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--window-size=1280,800",
	"--disable-features=IsolateOrigins,site-per-process",
}

const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 800
)

// Config controls how sessions are launched.
type Config struct {
	Headless       bool
	ViewportWidth  int
	ViewportHeight int
	UserAgent      string
	LaunchArgs     []string

	// InstallBrowsers downloads the driver and browser bundle on first use.
	InstallBrowsers bool
}

// Controller launches one ephemeral Chromium session per check. Isolation is
// preferred over reuse: the startup cost buys clean cookie/auth state for
// every candidate name.
type Controller struct {
	cfg Config

	mu      sync.Mutex
	pw      *playwright.Playwright
	started bool
	active  atomic.Int64
}

// NewController returns a controller; the driver is started lazily on the
// first session.
func NewController(cfg Config) *Controller {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = defaultViewportWidth
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = defaultViewportHeight
	}
	if len(cfg.LaunchArgs) == 0 {
		cfg.LaunchArgs = defaultLaunchArgs
	}
	return &Controller{cfg: cfg}
}

// Start brings up the automation driver. Safe to call more than once.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked()
}

func (c *Controller) startLocked() error {
	if c.started {
		return nil
	}

	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if c.cfg.InstallBrowsers {
		if err := playwright.Install(opts); err != nil {
			return fmt.Errorf("install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("start playwright driver: %w", err)
	}

	c.pw = pw
	c.started = true
	return nil
}

// Stop shuts the driver down. Sessions handed to WithSession are already
// closed by the time their callbacks return.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return nil
	}
	c.started = false
	pw := c.pw
	c.pw = nil

	if err := pw.Stop(); err != nil {
		return fmt.Errorf("stop playwright driver: %w", err)
	}
	return nil
}

// WithSession acquires one browser session, invokes fn, and guarantees the
// session is torn down whether fn returns, fails, or ctx expires. A launch
// failure is fatal to this invocation only.
func (c *Controller) WithSession(ctx context.Context, fn func(Session) error) error {
	c.mu.Lock()
	if err := c.startLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	pw := c.pw
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(c.cfg.Headless),
		Args:     c.cfg.LaunchArgs,
	})
	metrics.RecordBrowserSession(err == nil)
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	metrics.SetActiveSessions(c.active.Add(1))
	defer func() {
		metrics.SetActiveSessions(c.active.Add(-1))
	}()

	// Closing the browser aborts every in-flight navigation and wait, so a
	// caller deadline tears the whole session down mid-step.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = b.Close()
		case <-done:
		}
	}()

	defer func() {
		close(done)
		_ = b.Close()
	}()

	return fn(&session{browser: b, cfg: c.cfg})
}

type session struct {
	browser playwright.Browser
	cfg     Config
}

func (s *session) NewPage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.cfg.ViewportWidth,
			Height: s.cfg.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}
	if s.cfg.UserAgent != "" {
		opts.UserAgent = playwright.String(s.cfg.UserAgent)
	}

	bctx, err := s.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	pg, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &page{pw: pg, ctx: bctx, frame: frame{f: pg.MainFrame()}}, nil
}
