package web

import (
	"net/http"

	"github.com/erazemk/najdeno/internal/store"
	webembed "github.com/erazemk/najdeno/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(st *store.Store, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	withUser := UserMiddleware(jwtSecret, st)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Role selection.
	mux.Handle("GET /login", withUser(http.HandlerFunc(s.LoginPage)))
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Public pages.
	mux.Handle("GET /{$}", withUser(http.HandlerFunc(s.HomePage)))
	mux.Handle("GET /report", withUser(http.HandlerFunc(s.ReportPage)))
	mux.Handle("POST /report", withUser(http.HandlerFunc(s.ReportSubmit)))
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)

	// Admin pages.
	mux.Handle("GET /admin", withUser(RequireAdmin(http.HandlerFunc(s.Dashboard))))
	mux.Handle("GET /admin/items", withUser(RequireAdmin(http.HandlerFunc(s.AdminItemsPage))))
	mux.Handle("POST /admin/items/{id}/status", withUser(RequireAdmin(http.HandlerFunc(s.ItemStatusSubmit))))
	mux.Handle("GET /admin/categories", withUser(RequireAdmin(http.HandlerFunc(s.CategoriesPage))))
	mux.Handle("POST /admin/categories", withUser(RequireAdmin(http.HandlerFunc(s.CategoryCreateSubmit))))

	return mux, nil
}
