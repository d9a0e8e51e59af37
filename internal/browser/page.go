package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// page adapts a playwright page (plus its private context) to the Page
// capability. Frame methods delegate to the main frame adapter.
type page struct {
	frame

	pw  playwright.Page
	ctx playwright.BrowserContext
}

func (p *page) Navigate(ctx context.Context, url string, opts NavigateOptions) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	gotoOpts := playwright.PageGotoOptions{}
	if opts.Timeout > 0 {
		gotoOpts.Timeout = playwright.Float(float64(opts.Timeout.Milliseconds()))
	}
	if state := waitUntilState(opts.WaitUntil); state != nil {
		gotoOpts.WaitUntil = state
	}

	resp, err := p.pw.Goto(url, gotoOpts)
	if err != nil {
		return 0, fmt.Errorf("navigation failed: %w", err)
	}
	if resp == nil {
		return 0, nil
	}
	return resp.Status(), nil
}

func (p *page) URL() string {
	return p.pw.URL()
}

func (p *page) Title() (string, error) {
	return p.pw.Title()
}

func (p *page) Frames() []Frame {
	pwFrames := p.pw.Frames()
	frames := make([]Frame, 0, len(pwFrames))
	for _, f := range pwFrames {
		frames = append(frames, &frame{f: f})
	}
	return frames
}

func (p *page) Screenshot(path string) error {
	_, err := p.pw.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}
	return nil
}

func (p *page) Close() error {
	if err := p.pw.Close(); err != nil {
		return err
	}
	return p.ctx.Close()
}

// frame adapts a playwright frame to the Frame capability.
type frame struct {
	f playwright.Frame
}

func (fr *frame) Exists(selector string) bool {
	el, err := fr.f.QuerySelector(selector)
	return err == nil && el != nil
}

func (fr *frame) Fill(selector, value string) error {
	return fr.f.Fill(selector, value)
}

func (fr *frame) Click(selector string) error {
	return fr.f.Click(selector)
}

func (fr *frame) Press(selector, key string) error {
	return fr.f.Press(selector, key)
}

func (fr *frame) WaitForSelector(selector string, timeout time.Duration) error {
	opts := playwright.FrameWaitForSelectorOptions{}
	if timeout > 0 {
		opts.Timeout = playwright.Float(float64(timeout.Milliseconds()))
	}
	_, err := fr.f.WaitForSelector(selector, opts)
	return err
}

func (fr *frame) Content() (string, error) {
	return fr.f.Content()
}

func waitUntilState(value string) *playwright.WaitUntilState {
	switch value {
	case "domcontentloaded":
		return playwright.WaitUntilStateDomcontentloaded
	case "load":
		return playwright.WaitUntilStateLoad
	case "networkidle":
		return playwright.WaitUntilStateNetworkidle
	default:
		return nil
	}
}
