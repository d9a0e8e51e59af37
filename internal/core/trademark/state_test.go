package trademark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPageState(t *testing.T) {
	tests := []struct {
		name string
		html string
		want PageState
	}{
		{
			name: "login wall",
			html: `<html><body><h1>Acesso ao sistema</h1><form></form></body></html>`,
			want: StateLoginRequired,
		},
		{
			name: "login marker beats search markers",
			html: `<html><body>Login <div>Pesquisa básica</div><input name="marca"></body></html>`,
			want: StateLoginRequired,
		},
		{
			name: "search page with marca field",
			html: `<html><body><h2>Pesquisa básica</h2><input name="marca"></body></html>`,
			want: StateSearchReady,
		},
		{
			name: "search page with expressaoPesquisa field",
			html: `<html><body>Pesquisa básica<input name="expressaoPesquisa"></body></html>`,
			want: StateSearchReady,
		},
		{
			name: "search heading without field marker",
			html: `<html><body>Pesquisa básica</body></html>`,
			want: StateUnknown,
		},
		{
			name: "unrelated page",
			html: `<html><body>Bem-vindo</body></html>`,
			want: StateUnknown,
		},
		{
			name: "empty markup",
			html: "",
			want: StateUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyPageState(tc.html))
		})
	}
}

func TestPageStateString(t *testing.T) {
	require.Equal(t, "login_required", StateLoginRequired.String())
	require.Equal(t, "search_ready", StateSearchReady.String())
	require.Equal(t, "unknown", StateUnknown.String())
}
