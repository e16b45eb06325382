package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/kirana/pkg/auth"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// claimsKey is the unexported context key for authenticated JWT claims.
type claimsKey struct{}

// ClaimsFromCtx returns the authenticated operator's claims, if any.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// Auth rejects requests without a valid Bearer token. On success the parsed
// claims are stored in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
