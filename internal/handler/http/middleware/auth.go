package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests that did not carry a verifiable access
// token. Missing and invalid tokens are both forbidden rather than
// unauthorized; the dashboard only treats 401 as a credential problem.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if err == jwtauth.ErrNoTokenFound {
					response.Forbidden(w, "Access Denied: No Token Provided")
					return
				}
				response.Forbidden(w, "Invalid Token")
				return
			}

			if token == nil {
				response.Forbidden(w, "Invalid Token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Forbidden(w, "Invalid Token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Forbidden(w, "Invalid Token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
