package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/najdeno/internal/auth"
	"github.com/erazemk/najdeno/internal/model"
)

// LoginPage handles GET /login. Login is a role switch: the visitor
// picks a role and becomes the fixture user holding it.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "login.html", &PageData{Title: "Switch User", User: claims})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	role := model.Role(r.FormValue("role"))
	if !role.Valid() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, ok := s.Store.GetUserByRole(role)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user)
	if err != nil {
		slog.Error("failed to generate role token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "role",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	slog.Info("role selected", "user", user.Name, "role", user.Role)
	if role.Admin() {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout, reverting to the default user.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearRoleCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
