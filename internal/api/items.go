package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/fixtures"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/query"
	"github.com/erazemk/najdeno/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	Store *store.Store
}

type createItemRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CategoryID  int64        `json:"category_id"`
	Location    string       `json:"location"`
	Status      model.Status `json:"status"`
}

type updateStatusRequest struct {
	Status model.Status `json:"status"`
}

// List handles GET /api/items. The q and category parameters apply the
// search pipeline; without them the full collection is returned, newest
// first.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := query.Options{Term: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		opts.CategoryID = id
	}

	items := query.Filter(h.Store.Items(), opts)
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items. Reports with an empty name, category,
// or location, or a non-reportable status, are refused.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.CategoryID == 0 || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "name, category and location required")
		return
	}
	if !req.Status.Reportable() {
		jsonError(w, http.StatusBadRequest, "status must be Lost or Found")
		return
	}

	userID := fixtures.DefaultUserID
	if claims := GetClaims(r.Context()); claims != nil {
		userID = claims.UserID
	}

	cmd := &store.AddItem{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
		Location:    req.Location,
		UserID:      userID,
	}
	h.Store.Apply(cmd)

	slog.Info("item reported", "item", cmd.Created.Name, "id", cmd.Created.ID, "status", cmd.Created.Status)
	jsonResponse(w, http.StatusCreated, cmd.Created)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, ok := h.Store.GetItem(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// UpdateStatus handles PUT /api/items/{id}/status. An unknown item ID
// leaves the collection untouched and reports not found.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	cmd := &store.SetStatus{ItemID: id, Status: req.Status}
	h.Store.Apply(cmd)
	if !cmd.Updated {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	item, _ := h.Store.GetItem(id)
	slog.Info("item status changed", "item", item.Name, "id", id, "status", req.Status)
	jsonResponse(w, http.StatusOK, item)
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, ok := h.Store.ItemImage(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
