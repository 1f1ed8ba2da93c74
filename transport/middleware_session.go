package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/takatrack/waste-monitoring/application/auth"
	utilsContext "github.com/takatrack/waste-monitoring/utils/context"
)

// SessionMiddleware resolves the Authorization header into an account and
// stores it in the request context. It never rejects: a missing, malformed,
// expired or orphaned credential leaves the request anonymous, because public
// dashboard endpoints must keep working without a token. Handlers that need a
// session check the context themselves.
func SessionMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := authApp.ResolveSession(r.Context(), r.Header.Get("Authorization"))
			if user != nil {
				r = r.WithContext(utilsContext.WithSessionUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}
