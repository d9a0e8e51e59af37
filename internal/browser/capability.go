package browser

import (
	"context"
	"time"
)

// The pipelines drive the browser exclusively through these interfaces; no
// automation-client types leak past this package, and tests substitute fakes.

// Session is one isolated automation session. Sessions are never reused
// across candidate names.
type Session interface {
	// NewPage opens a page in its own context (independent cookies/storage).
	NewPage(ctx context.Context) (Page, error)
}

// SessionRunner hands out scoped sessions. Controller implements it; tests
// provide fakes.
type SessionRunner interface {
	WithSession(ctx context.Context, fn func(Session) error) error
}

// Frame is a page or one of its nested frames.
type Frame interface {
	// Exists reports whether the selector currently matches an element.
	Exists(selector string) bool

	Fill(selector, value string) error
	Click(selector string) error

	// Press sends a single key to the element matching selector.
	Press(selector, key string) error

	// WaitForSelector waits until selector appears, up to timeout.
	WaitForSelector(selector string, timeout time.Duration) error

	// Content returns the frame's current HTML markup.
	Content() (string, error)
}

// Page is a top-level page. Its Frame methods operate on the main frame.
type Page interface {
	Frame

	// Navigate loads url and returns the main response status code
	// (0 when the navigation produced no response).
	Navigate(ctx context.Context, url string, opts NavigateOptions) (int, error)

	URL() string
	Title() (string, error)
	Frames() []Frame
	Screenshot(path string) error
	Close() error
}

// NavigateOptions controls the wait condition and budget for one navigation.
type NavigateOptions struct {
	// WaitUntil is one of "domcontentloaded", "load", "networkidle".
	WaitUntil string
	Timeout   time.Duration
}
