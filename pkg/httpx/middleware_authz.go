package httpx

import "net/http"

// RequireRole lets the request through only when the authenticated caller
// holds role. Anyone else gets a 403 carrying detail. It must run after
// AuthnMiddleware.
func RequireRole(role, detail string) Middleware {
	return RequireAnyRole(detail, role)
}

// RequireAnyRole is RequireRole for several acceptable roles.
func RequireAnyRole(detail string, roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteDetail(w, http.StatusUnauthorized, DetailNotAuthenticated)
				return
			}
			if _, ok := want[id.Role]; !ok {
				WriteDetail(w, http.StatusForbidden, detail)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
