package middleware

import "net/http"

// ForceHTTPS redirects plain-HTTP requests that arrive through a proxy.
// The proxy terminates TLS, so the scheme is read from X-Forwarded-Proto
// rather than from the connection.
func ForceHTTPS(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enabled && r.Header.Get("X-Forwarded-Proto") == "http" {
				target := "https://" + r.Host + r.URL.RequestURI()
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
