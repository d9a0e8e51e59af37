package trademark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/internal/browser"
)

const searchReadyHTML = `<html><body>
<h2>Pesquisa básica</h2>
<form><input name="marca"></form>
</body></html>`

const loginWallHTML = `<html><body>
<h1>Acesso ao sistema</h1>
<form><input type="text" name="usuario"><input type="password" name="senha"></form>
</body></html>`

const resultsHTML = `<html><body>
<h2>Pesquisa básica</h2><input name="marca">
<table id="tabela_resultados">
  <tr><td>912345678</td><td>ACME</td><td>NCL(11) 35</td><td>Registro de marca em vigor</td></tr>
</table>
</body></html>`

const emptyResultsHTML = `<html><body>
<h2>Pesquisa básica</h2><input name="marca">
<p>Nenhum registro encontrado</p>
</body></html>`

type fakeRunner struct {
	session browser.Session
	err     error
}

func (r *fakeRunner) WithSession(_ context.Context, fn func(browser.Session) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(r.session)
}

type fakeSession struct {
	page *fakePage
}

func (s *fakeSession) NewPage(context.Context) (browser.Page, error) {
	return s.page, nil
}

// fakePage serves successive Content calls from a queue, holding the last
// entry once the queue drains.
type fakePage struct {
	contents  []string
	selectors map[string]bool
	frames    []browser.Frame

	fills       map[string]string
	clicks      []string
	presses     []string
	screenshots []string
	navigations int
	closed      bool
}

func (p *fakePage) Content() (string, error) {
	if len(p.contents) == 0 {
		return "", nil
	}
	html := p.contents[0]
	if len(p.contents) > 1 {
		p.contents = p.contents[1:]
	}
	return html, nil
}

func (p *fakePage) Exists(selector string) bool {
	return p.selectors[selector]
}

func (p *fakePage) Fill(selector, value string) error {
	if p.fills == nil {
		p.fills = map[string]string{}
	}
	p.fills[selector] = value
	return nil
}

func (p *fakePage) Click(selector string) error {
	p.clicks = append(p.clicks, selector)
	return nil
}

func (p *fakePage) Press(selector, key string) error {
	p.presses = append(p.presses, selector+":"+key)
	return nil
}

func (p *fakePage) WaitForSelector(string, time.Duration) error {
	return nil
}

func (p *fakePage) Navigate(context.Context, string, browser.NavigateOptions) (int, error) {
	p.navigations++
	return 200, nil
}

func (p *fakePage) URL() string { return DefaultSearchURL }

func (p *fakePage) Title() (string, error) { return "", nil }

func (p *fakePage) Frames() []browser.Frame { return p.frames }

func (p *fakePage) Screenshot(path string) error {
	p.screenshots = append(p.screenshots, path)
	return nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

func newTestChecker(page *fakePage) *Checker {
	return &Checker{
		Browser:             &fakeRunner{session: &fakeSession{page: page}},
		Credentials:         Credentials{Username: "user", Password: "pass"},
		ResultsTimeout:      time.Millisecond,
		ResultsFallbackWait: time.Millisecond,
		SettleDelay:         time.Millisecond,
		PollAttempts:        2,
		PollInterval:        time.Millisecond,
	}
}

func TestCheckerFindsRecords(t *testing.T) {
	page := &fakePage{
		contents: []string{searchReadyHTML, resultsHTML},
		selectors: map[string]bool{
			searchFieldSelector:  true,
			searchSubmitSelector: true,
		},
	}

	result, err := newTestChecker(page).Check(context.Background(), "Acme", nil)
	require.NoError(t, err)

	require.Equal(t, "unavailable", string(result.Status))
	require.Equal(t, "1 processos encontrados.", result.Details)
	require.Len(t, result.Records, 1)
	require.Equal(t, "ACME", result.Records[0].BrandName)
	require.Equal(t, DefaultSearchURL, result.Link)
	require.Equal(t, "Acme", page.fills[searchFieldSelector])
	require.True(t, page.closed)
}

func TestCheckerFindsActiveRecordForClassFilteredSearch(t *testing.T) {
	const apexResultsHTML = `<html><body>
<h2>Pesquisa básica</h2><input name="marca">
<table id="tabela_resultados">
  <tr><td>123456789</td><td>APEX</td><td>NCL(11) 35</td><td>Em vigor</td></tr>
</table>
</body></html>`

	page := &fakePage{
		contents: []string{searchReadyHTML, apexResultsHTML},
		selectors: map[string]bool{
			searchFieldSelector:  true,
			classFieldSelector:   true,
			searchSubmitSelector: true,
		},
	}

	class := 35
	result, err := newTestChecker(page).Check(context.Background(), "Apex", &class)
	require.NoError(t, err)

	require.Equal(t, "unavailable", string(result.Status))
	require.Len(t, result.Records, 1)
	require.Equal(t, "APEX", result.Records[0].BrandName)
	require.Equal(t, "123456789", result.Records[0].ProcessNumber)
	require.Equal(t, "Em vigor", result.Records[0].Situation)
	require.True(t, IsActive(result.Records))
	require.Equal(t, "35", page.fills[classFieldSelector])
}

func TestCheckerReportsAvailableOnExplicitNoResults(t *testing.T) {
	page := &fakePage{
		contents: []string{searchReadyHTML, emptyResultsHTML},
		selectors: map[string]bool{
			searchFieldSelector:  true,
			searchSubmitSelector: true,
		},
	}

	result, err := newTestChecker(page).Check(context.Background(), "Acme", nil)
	require.NoError(t, err)
	require.Equal(t, "available", string(result.Status))
	require.Equal(t, "Nenhum registro exato encontrado no INPI.", result.Details)
	require.Empty(t, result.Records)
}

func TestCheckerFillsClassFieldWhenPresent(t *testing.T) {
	page := &fakePage{
		contents: []string{searchReadyHTML, emptyResultsHTML},
		selectors: map[string]bool{
			searchFieldSelector:  true,
			classFieldSelector:   true,
			searchSubmitSelector: true,
		},
	}

	class := 35
	_, err := newTestChecker(page).Check(context.Background(), "Acme", &class)
	require.NoError(t, err)
	require.Equal(t, "35", page.fills[classFieldSelector])
}

func TestCheckerAuthenticatesThroughLoginWall(t *testing.T) {
	page := &fakePage{
		contents: []string{loginWallHTML, searchReadyHTML, emptyResultsHTML},
		selectors: map[string]bool{
			passwordFieldSelector: true,
			`input[name*="user"]`: true,
			loginSubmitSelector:   true,
			searchFieldSelector:   true,
			searchSubmitSelector:  true,
		},
	}

	checker := newTestChecker(page)
	checker.SettleDelay = time.Millisecond

	result, err := checker.Check(context.Background(), "Acme", nil)
	require.NoError(t, err)
	require.Equal(t, "available", string(result.Status))

	require.Equal(t, "user", page.fills[`input[name*="user"]`])
	require.Equal(t, "pass", page.fills[passwordFieldSelector])
	require.Contains(t, page.clicks, loginSubmitSelector)
	// Initial navigation plus the forced post-login one.
	require.Equal(t, 2, page.navigations)
}

func TestCheckerFailsFastWithoutCredentials(t *testing.T) {
	page := &fakePage{
		contents:  []string{loginWallHTML},
		selectors: map[string]bool{passwordFieldSelector: true},
	}

	checker := newTestChecker(page)
	checker.Credentials = Credentials{}

	_, err := checker.Check(context.Background(), "Acme", nil)
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCheckerReportsFormNotFound(t *testing.T) {
	page := &fakePage{
		contents: []string{searchReadyHTML},
	}

	checker := newTestChecker(page)
	checker.ScreenshotPath = "/tmp/debug.png"

	_, err := checker.Check(context.Background(), "Acme", nil)
	require.ErrorIs(t, err, ErrFormNotFound)
	require.Equal(t, []string{"/tmp/debug.png"}, page.screenshots)
}

func TestCheckerReportsFormNotFoundOnUnrecognizedPage(t *testing.T) {
	// A maintenance page matches neither the login nor the search markers;
	// poll exhaustion on it still resolves to a missing form.
	page := &fakePage{
		contents: []string{searchReadyHTML, `<html><body><p>Sistema em manutenção</p></body></html>`},
	}

	_, err := newTestChecker(page).Check(context.Background(), "Acme", nil)
	require.ErrorIs(t, err, ErrFormNotFound)
}

func TestCheckerMapsStaleLoginWallToAuthError(t *testing.T) {
	// The form poll exhausts while the login wall is still up, but the
	// password field never appears for the auth flow to use.
	page := &fakePage{
		contents: []string{searchReadyHTML, loginWallHTML},
	}

	_, err := newTestChecker(page).Check(context.Background(), "Acme", nil)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestCheckerRejectsInvalidInput(t *testing.T) {
	checker := newTestChecker(&fakePage{})

	_, err := checker.Check(context.Background(), "   ", nil)
	require.Error(t, err)

	class := 99
	_, err = checker.Check(context.Background(), "Acme", &class)
	require.Error(t, err)
}
