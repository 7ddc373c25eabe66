package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
)

// Bearer values at least this long are assumed to be JWTs; shorter values may
// be raw account ids from the pre-token era.
const legacyBearerMaxLen = 50

// middlewareAuthentication resolves the requesting account and stores its
// claims in the context.
//
// Resolution order: verify the bearer as a session JWT and load the account by
// its embedded id; otherwise, when the legacy fallback is enabled, treat a
// short bearer value as a raw account id. A role claim on a verified token
// overrides the stored role for this request.
func middlewareAuthentication(
	verifier jwt.JWT,
	resolver AccountResolver,
	cfg config.Config,
	publicEndpoints map[string]map[string]struct{},
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}
			bearer := p[1]

			claims, verifyErr := verifier.Verify(bearer)

			var identity *Identity
			if verifyErr == nil && claims.AccountID != 0 {
				identity, _ = resolver.Resolve(r.Context(), claims.AccountID)
			}

			if identity == nil && cfg.GetBool("auth.legacy_bearer_fallback") && len(bearer) < legacyBearerMaxLen {
				if accountID, err := strconv.ParseInt(bearer, 10, 64); err == nil {
					identity, _ = resolver.Resolve(r.Context(), accountID)
				}
			}

			if identity == nil {
				writeJSON(w, map[string]string{"message": "No valid token or account found"}, http.StatusForbidden)
				return
			}

			role := identity.Role
			if verifyErr == nil && claims.Role != "" {
				role = claims.Role
			}

			ctx := jwt.SetAuth(r.Context(), jwt.Claims{
				AccountID: identity.ID,
				Phone:     identity.Phone,
				Role:      role,
				Purpose:   claims.Purpose,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
