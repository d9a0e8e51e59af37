package trademark

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/browser"
)

// Credentials authenticate against the registry's login wall.
type Credentials struct {
	Username string
	Password string
}

// Configured reports whether both fields are non-blank.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// Login form selectors. The login page markup is legacy JSP with unstable
// names, so the username field is probed from most to least specific.
const passwordFieldSelector = `input[type="password"]`

var usernameFieldSelectors = []string{
	`input[name*="user"]`,
	`input[name*="login"]`,
	`input[type="text"]`,
}

const loginSubmitSelector = `input[type="submit"], button[type="submit"], button:not([type])`

// authenticate fills and submits the login form on the current page. The
// caller re-navigates to the search page afterwards regardless of where the
// post-login redirect landed.
func (c *Checker) authenticate(ctx context.Context, page browser.Page) error {
	if !c.Credentials.Configured() {
		return ErrMissingCredentials
	}

	if !page.Exists(passwordFieldSelector) {
		return fmt.Errorf("%w: no password field on login page", ErrAuthentication)
	}

	usernameSelector := ""
	for _, selector := range usernameFieldSelectors {
		if page.Exists(selector) {
			usernameSelector = selector
			break
		}
	}
	if usernameSelector == "" {
		return fmt.Errorf("%w: no username field on login page", ErrAuthentication)
	}

	if err := page.Fill(usernameSelector, c.Credentials.Username); err != nil {
		return fmt.Errorf("%w: fill username: %v", ErrAuthentication, err)
	}
	if err := page.Fill(passwordFieldSelector, c.Credentials.Password); err != nil {
		return fmt.Errorf("%w: fill password: %v", ErrAuthentication, err)
	}

	if page.Exists(loginSubmitSelector) {
		if err := page.Click(loginSubmitSelector); err != nil {
			c.logWarn("login submit click failed", zap.Error(err))
		}
	} else if err := page.Press(passwordFieldSelector, "Enter"); err != nil {
		c.logWarn("login submit keypress failed", zap.Error(err))
	}

	// Give the post-login redirect a moment before the forced re-navigation.
	select {
	case <-time.After(c.settleDelay()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
