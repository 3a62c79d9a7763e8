package api

import (
	"errors"
	"net/http"

	"github.com/erazemk/najdeno/internal/describe"
	"github.com/erazemk/najdeno/internal/store"
)

// DescribeHandler handles the description-assist endpoint backing the
// report form's generate button.
type DescribeHandler struct {
	Store   *store.Store
	Session *describe.Session
}

type describeRequest struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	Location   string `json:"location"`
}

type describeResponse struct {
	Description string `json:"description"`
}

// Generate handles POST /api/describe. At most one generation request
// runs at a time; overlapping calls get 409 and the client retries
// after the pending one settles. Generation failures are not errors:
// the response then carries the fixed manual-entry fallback text.
func (h *DescribeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.CategoryID == 0 || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "name, category and location required")
		return
	}

	categoryName := "general"
	if category, ok := h.Store.GetCategory(req.CategoryID); ok {
		categoryName = category.Name
	}

	text, err := h.Session.Generate(r.Context(), req.Name, categoryName, req.Location)
	if errors.Is(err, describe.ErrPending) {
		jsonError(w, http.StatusConflict, "a description is already being generated")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate description")
		return
	}

	jsonResponse(w, http.StatusOK, describeResponse{Description: text})
}
