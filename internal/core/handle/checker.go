package handle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/brandlens/brandlens/internal/browser"
	"github.com/brandlens/brandlens/internal/core"
)

// DefaultBaseURL is the profile host. Profile pages live at <base>/<handle>/.
const DefaultBaseURL = "https://www.instagram.com/"

const (
	defaultNavigationTimeout = 30 * time.Second
	defaultMaxConcurrent     = 2
)

// Checker resolves the profile availability of every variation derived from
// a brand name. Each variation gets its own page context so the platform's
// per-session throttling and login nags do not bleed across variants.
type Checker struct {
	Browser           browser.SessionRunner
	BaseURL           string
	NavigationTimeout time.Duration

	// MaxConcurrent bounds simultaneous profile loads within one session.
	MaxConcurrent int

	Logger *logging.Logger
}

// Check resolves name's handle variations. A single variation returns its
// result directly; multiple variations return a multiple-status wrapper with
// one nested entry per variant, in derivation order.
func (c *Checker) Check(ctx context.Context, name string) (*core.HandleResult, error) {
	if c == nil || c.Browser == nil {
		return nil, errors.New("handle checker is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	variants := Variations(name)
	if len(variants) == 0 {
		return nil, errors.New("no usable handle variation could be derived")
	}

	results := make([]core.HandleResult, len(variants))
	err := c.Browser.WithSession(ctx, func(session browser.Session) error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.maxConcurrent())
		for i, variant := range variants {
			g.Go(func() error {
				// Variant failures become ambiguous results, never
				// errors: one broken lookup must not sink its siblings.
				results[i] = c.checkVariation(gctx, session, variant)
				return nil
			})
		}
		return g.Wait()
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 1 {
		single := results[0]
		return &single, nil
	}
	return &core.HandleResult{
		Status:     core.HandleMultiple,
		Variations: results,
	}, nil
}

func (c *Checker) checkVariation(ctx context.Context, session browser.Session, handle string) core.HandleResult {
	link := c.profileURL(handle)

	page, err := session.NewPage(ctx)
	if err != nil {
		c.logWarn("profile page open failed", zap.String("handle", handle), zap.Error(err))
		return ambiguousResult(handle, link)
	}
	defer page.Close()

	status, err := page.Navigate(ctx, link, browser.NavigateOptions{
		WaitUntil: "networkidle",
		Timeout:   c.navigationTimeout(),
	})
	if err != nil {
		// Some loads surface the 404 as a navigation failure instead of a
		// response status.
		if strings.Contains(err.Error(), "404") {
			return core.HandleResult{
				Status:  core.HandleAvailable,
				Variant: handle,
				Message: "Disponível",
				Link:    link,
			}
		}
		c.logWarn("profile navigation failed", zap.String("handle", handle), zap.Error(err))
		return ambiguousResult(handle, link)
	}

	title, err := page.Title()
	if err != nil {
		c.logWarn("profile title read failed", zap.String("handle", handle), zap.Error(err))
	}
	html, err := page.Content()
	if err != nil {
		c.logWarn("profile content read failed", zap.String("handle", handle), zap.Error(err))
		return ambiguousResult(handle, link)
	}

	return Classify(ProfilePage{
		Handle:     handle,
		Link:       link,
		StatusCode: status,
		Title:      title,
		FinalURL:   page.URL(),
		HTML:       html,
	})
}

func ambiguousResult(handle, link string) core.HandleResult {
	return core.HandleResult{
		Status:  core.HandleAmbiguous,
		Variant: handle,
		Message: "Erro",
		Link:    link,
	}
}

func (c *Checker) profileURL(handle string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + handle + "/"
}

func (c *Checker) navigationTimeout() time.Duration {
	if c.NavigationTimeout > 0 {
		return c.NavigationTimeout
	}
	return defaultNavigationTimeout
}

func (c *Checker) maxConcurrent() int {
	if c.MaxConcurrent > 0 {
		return c.MaxConcurrent
	}
	return defaultMaxConcurrent
}

func (c *Checker) logWarn(msg string, fields ...zap.Field) {
	if c.Logger != nil {
		c.Logger.Warn(msg, fields...)
	}
}
