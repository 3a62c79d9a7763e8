package web

import (
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/query"
)

// itemView is an item with its category reference resolved for display.
type itemView struct {
	model.Item
	CategoryName string
}

// itemViews resolves category names; unresolved references render as
// "Unknown" rather than failing.
func (s *Server) itemViews(items []model.Item) []itemView {
	names := s.Store.CategoryNames()
	views := make([]itemView, len(items))
	for i, item := range items {
		name, ok := names[item.CategoryID]
		if !ok {
			name = "Unknown"
		}
		views[i] = itemView{Item: item, CategoryName: name}
	}
	return views
}

// queryOptions reads the transient search state from the URL.
func queryOptions(r *http.Request) query.Options {
	opts := query.Options{Term: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			opts.CategoryID = id
		}
	}
	return opts
}

// HomePage handles GET /.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	opts := queryOptions(r)
	items := query.Filter(s.Store.Items(), opts)

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Items      []itemView
		Categories []model.Category
		Query      query.Options
	}{
		PageData:   PageData{Title: "Lost & Found", User: claims},
		Items:      s.itemViews(items),
		Categories: s.Store.Categories(),
		Query:      opts,
	})
}
