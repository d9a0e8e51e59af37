package handle

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brandlens/brandlens/internal/core"
)

// The platform serves no structured availability signal, so classification
// leans on phrase tables and Open Graph metadata.

// Title phrases the platform renders for a username that does not exist.
var notFoundTitlePhrases = []string{
	"Page Not Found",
	"Página não encontrada",
}

// Body phrases rendered for profiles that exist but were removed or banned.
var brokenProfilePhrases = []string{
	"Sorry, this page isn't available",
	"A página não está disponível",
	"Esta página não está disponível",
	"Profile isn't available",
	"isn't available",
}

// ProfilePage is everything Classify needs from one loaded profile page.
type ProfilePage struct {
	Handle     string
	Link       string
	StatusCode int
	Title      string
	FinalURL   string
	HTML       string
}

// Classify maps a loaded profile page to an availability outcome. Signals
// are checked strongest first: an explicit 404 beats metadata, metadata
// beats the login-redirect heuristic, and only a page with no signal at all
// is called probably available.
func Classify(page ProfilePage) core.HandleResult {
	result := core.HandleResult{
		Variant: page.Handle,
		Link:    page.Link,
	}

	if page.StatusCode == 404 || containsAny(page.Title, notFoundTitlePhrases) {
		result.Status = core.HandleAvailable
		result.Message = "Disponível"
		return result
	}

	if containsAny(page.HTML, brokenProfilePhrases) {
		result.Status = core.HandleUnavailable
		result.Message = "Indisponível (Link Quebrado/Banido)"
		result.Profile = &core.ProfileSummary{
			Username: page.Handle,
			Name:     "Perfil Indisponível",
			Details:  "Este perfil foi removido, banido ou está temporariamente indisponível.",
		}
		return result
	}

	title, description, image := openGraphMeta(page.HTML)
	if isProfileTitle(title, page.Handle) {
		result.Status = core.HandleUnavailable
		result.Message = "Perfil encontrado"
		result.Profile = &core.ProfileSummary{
			Username: page.Handle,
			Name:     displayName(title),
			Details:  shortDescription(description),
			ImageURL: image,
		}
		return result
	}

	if strings.Contains(page.FinalURL, "login") {
		result.Status = core.HandleAmbiguous
		result.Message = "Exige Login"
		return result
	}

	result.Status = core.HandleAvailable
	result.Message = "Provavelmente disponível"
	return result
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func openGraphMeta(html string) (title, description, image string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", ""
	}
	read := func(property string) string {
		value, _ := doc.Find(`meta[property="` + property + `"]`).Attr("content")
		return value
	}
	return read("og:title"), read("og:description"), read("og:image")
}

// isProfileTitle reports whether an og:title looks like a real profile
// header for handle, e.g. `Acme Inc (@acme) • Photos`.
func isProfileTitle(title, handle string) bool {
	if title == "" {
		return false
	}
	return strings.Contains(title, "(@"+handle+")") ||
		strings.Contains(title, "@"+handle) ||
		(strings.Contains(title, "(") && strings.Contains(title, ")"))
}

// displayName takes the part of an og:title before the parenthesized handle.
func displayName(title string) string {
	if i := strings.Index(title, "("); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	return strings.TrimSpace(title)
}

// shortDescription keeps the follower/post counts before the first dash of
// an og:description.
func shortDescription(description string) string {
	if i := strings.Index(description, "-"); i >= 0 {
		return strings.TrimSpace(description[:i])
	}
	return strings.TrimSpace(description)
}
