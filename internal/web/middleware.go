package web

import (
	"context"
	"net/http"

	"github.com/erazemk/najdeno/internal/auth"
	"github.com/erazemk/najdeno/internal/fixtures"
	"github.com/erazemk/najdeno/internal/store"
)

type webContextKey string

const webClaimsKey webContextKey = "webclaims"

// UserMiddleware resolves the role cookie into claims on the context.
// Browsing needs no role selection, so a missing or invalid cookie
// degrades to the default regular user instead of redirecting; the
// invalid cookie is cleared on the way.
func UserMiddleware(secret string, st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims *auth.Claims

			if cookie, err := r.Cookie("role"); err == nil && cookie.Value != "" {
				claims, err = auth.ValidateToken(secret, cookie.Value)
				if err != nil {
					clearRoleCookie(w)
					claims = nil
				}
			}

			if claims == nil {
				if user, ok := st.GetUser(fixtures.DefaultUserID); ok {
					claims = &auth.Claims{UserID: user.ID, Name: user.Name, Role: user.Role}
				}
			}

			ctx := context.WithValue(r.Context(), webClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin redirects non-admin visitors to the role-selection page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetWebClaims(r.Context())
		if claims == nil || !claims.Role.Admin() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clearRoleCookie clears the role cookie with consistent attributes.
func clearRoleCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "role",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetWebClaims retrieves the role claims from web context.
func GetWebClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(webClaimsKey).(*auth.Claims)
	return claims
}
