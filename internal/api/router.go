package api

import (
	"net/http"

	"github.com/erazemk/najdeno/internal/describe"
	"github.com/erazemk/najdeno/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store, session *describe.Session, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: st, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Store: st}
	categoriesHandler := &CategoriesHandler{Store: st}
	describeHandler := &DescribeHandler{Store: st, Session: session}
	statsHandler := &StatsHandler{Store: st}

	// claims populates the request context when a token is present but
	// never rejects: browsing needs no role selection.
	claims := ClaimsMiddleware(jwtSecret)
	requireAdmin := RequireAdmin

	// Role selection.
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// Listing and reporting (open to everyone).
	mux.Handle("GET /api/items", claims(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", claims(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", claims(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("GET /api/items/{id}/image", claims(http.HandlerFunc(itemsHandler.GetImage)))
	mux.Handle("GET /api/categories", claims(http.HandlerFunc(categoriesHandler.List)))
	mux.Handle("POST /api/describe", claims(http.HandlerFunc(describeHandler.Generate)))

	// Admin operations.
	mux.Handle("PUT /api/items/{id}/status", claims(requireAdmin(http.HandlerFunc(itemsHandler.UpdateStatus))))
	mux.Handle("POST /api/categories", claims(requireAdmin(http.HandlerFunc(categoriesHandler.Create))))
	mux.Handle("GET /api/stats", claims(requireAdmin(http.HandlerFunc(statsHandler.Get))))

	return mux
}
