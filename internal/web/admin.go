package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/query"
	"github.com/erazemk/najdeno/internal/stats"
	"github.com/erazemk/najdeno/internal/store"
)

// Dashboard handles GET /admin.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	summary := stats.Compute(s.Store.Items(), s.Store.Categories())

	s.Templates.Render(w, "admin_dashboard.html", &struct {
		PageData
		Summary stats.Summary
		Max     int
	}{
		PageData: PageData{Title: "Admin Dashboard", User: claims},
		Summary:  summary,
		Max:      summary.MaxCount(),
	})
}

// AdminItemsPage handles GET /admin/items. The search and category
// filters apply here the same way they do on the public listing.
func (s *Server) AdminItemsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	opts := queryOptions(r)
	items := query.Filter(s.Store.Items(), opts)

	s.Templates.Render(w, "admin_items.html", &struct {
		PageData
		Items      []itemView
		Categories []model.Category
		Query      query.Options
		Statuses   []model.Status
	}{
		PageData:   PageData{Title: "Manage Items", User: claims},
		Items:      s.itemViews(items),
		Categories: s.Store.Categories(),
		Query:      opts,
		Statuses:   model.Statuses(),
	})
}

// ItemStatusSubmit handles POST /admin/items/{id}/status. A stale form
// posting an unknown item ID changes nothing.
func (s *Server) ItemStatusSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	status := model.Status(r.FormValue("status"))
	if !status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	cmd := &store.SetStatus{ItemID: id, Status: status}
	s.Store.Apply(cmd)
	if cmd.Updated {
		slog.Info("item status changed", "user", claims.Name, "id", id, "status", status)
	}
	http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
}

// CategoriesPage handles GET /admin/categories.
func (s *Server) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	s.renderCategoriesPage(w, r, "")
}

func (s *Server) renderCategoriesPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "admin_categories.html", &struct {
		PageData
		Categories []model.Category
	}{
		PageData:   PageData{Title: "Manage Categories", User: claims, Error: errMsg},
		Categories: s.Store.Categories(),
	})
}

// CategoryCreateSubmit handles POST /admin/categories. Empty and
// duplicate names are refused without touching the collection.
func (s *Server) CategoryCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	name := r.FormValue("name")

	cmd := &store.AddCategory{Name: name}
	s.Store.Apply(cmd)
	if !cmd.Added {
		s.renderCategoriesPage(w, r, "Category name is empty or already exists.")
		return
	}

	slog.Info("category created", "user", claims.Name, "category", cmd.Created.Name)
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}
