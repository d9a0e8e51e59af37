package trademark

import "strings"

// PageState classifies what the registry served after a navigation. The site
// routes through frame-nested JSP pages whose URLs carry no meaning, so the
// only reliable signal is marker text in the rendered markup.
type PageState int

const (
	StateUnknown PageState = iota
	StateLoginRequired
	StateSearchReady
)

func (s PageState) String() string {
	switch s {
	case StateLoginRequired:
		return "login_required"
	case StateSearchReady:
		return "search_ready"
	default:
		return "unknown"
	}
}

// Marker phrases observed on the registry's login wall and basic search page.
var (
	loginMarkers = []string{
		"Acesso ao sistema",
		"Login",
		"Usuário",
	}

	searchPageMarker   = "Pesquisa básica"
	searchFieldMarkers = []string{"marca", "expressaoPesquisa"}
)

// ClassifyPageState inspects raw markup. Login detection wins over search
// detection: the login wall also mentions search terms in its navigation.
func ClassifyPageState(html string) PageState {
	for _, marker := range loginMarkers {
		if strings.Contains(html, marker) {
			return StateLoginRequired
		}
	}

	if strings.Contains(html, searchPageMarker) {
		for _, marker := range searchFieldMarkers {
			if strings.Contains(html, marker) {
				return StateSearchReady
			}
		}
	}

	return StateUnknown
}
