package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/najdeno/internal/store"
)

// CategoriesHandler handles category endpoints.
type CategoriesHandler struct {
	Store *store.Store
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Categories())
}

// Create handles POST /api/categories. The store refuses empty and
// duplicate names as no-ops; this endpoint surfaces the refusal to the
// caller.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	cmd := &store.AddCategory{Name: req.Name}
	h.Store.Apply(cmd)
	if !cmd.Added {
		jsonError(w, http.StatusConflict, "category already exists")
		return
	}

	slog.Info("category created", "category", cmd.Created.Name, "id", cmd.Created.ID)
	jsonResponse(w, http.StatusCreated, cmd.Created)
}
