package middleware

import (
	"context"
	"net/http"

	authshell "github.com/projecthealth/authshell"
)

type sessionContextKey struct{}

// SessionFromContext returns the session a guard injected for this request.
func SessionFromContext(ctx context.Context) (authshell.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(authshell.Session)
	return sess, ok
}

// Guard redirects unauthenticated requests to entryPath with 302 Found.
// The wrapped handler is only reached with an active session already in the
// request context; there is no window where protected content renders for an
// anonymous request.
func Guard(store *authshell.Store, entryPath string) func(http.Handler) http.Handler {
	if entryPath == "" {
		entryPath = "/login"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}

			sess, ok := store.CurrentUser()
			if !ok {
				http.Redirect(w, r, entryPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireManager rejects requests whose context session does not carry the
// manager role. Compose it after Guard; without a session in the context the
// request is rejected too.
func RequireManager() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok || !sess.IsManager() {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
