package httphandler

import (
	"net/http"
	"strings"

	"github.com/niksmo/shopfront/internal/core/port"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

func AdminOnly(gate port.AdminGate, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(
			r.Header.Get("Authorization"), "Bearer ",
		)
		if !ok || !gate.IsAdmin(token) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// TokenGate grants admin access on an exact match with the configured
// token. An empty configured token grants nobody.
type TokenGate struct {
	token string
}

func NewTokenGate(token string) TokenGate {
	return TokenGate{token}
}

func (g TokenGate) IsAdmin(token string) bool {
	return g.token != "" && token == g.token
}
