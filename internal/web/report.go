package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/fixtures"
	"github.com/erazemk/najdeno/internal/imaging"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
)

// reportForm carries submitted values back into the template when the
// submission is refused, so the visitor does not lose their input.
type reportForm struct {
	Name        string
	Description string
	CategoryID  int64
	Location    string
	Status      model.Status
}

// ReportPage handles GET /report.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	s.renderReportPage(w, r, reportForm{Status: model.StatusFound}, "")
}

func (s *Server) renderReportPage(w http.ResponseWriter, r *http.Request, form reportForm, errMsg string) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "report.html", &struct {
		PageData
		Form       reportForm
		Categories []model.Category
	}{
		PageData:   PageData{Title: "Report an Item", User: claims, Error: errMsg},
		Form:       form,
		Categories: s.Store.Categories(),
	})
}

// ReportSubmit handles POST /report. Incomplete submissions re-render
// the form with an error; nothing is appended until the required fields
// are present and the status is Lost or Found.
func (s *Server) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "form too large", http.StatusBadRequest)
		return
	}

	categoryID, _ := strconv.ParseInt(r.FormValue("category_id"), 10, 64)
	form := reportForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		CategoryID:  categoryID,
		Location:    r.FormValue("location"),
		Status:      model.Status(r.FormValue("status")),
	}

	if form.Name == "" || form.CategoryID == 0 || form.Location == "" {
		s.renderReportPage(w, r, form, "Item name, category and location are required.")
		return
	}
	if !form.Status.Reportable() {
		s.renderReportPage(w, r, form, "Status must be Lost or Found.")
		return
	}

	var image []byte
	var imageMime string
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		result, err := imaging.Process(file)
		if err != nil {
			s.renderReportPage(w, r, form, err.Error())
			return
		}
		image = result.Data
		imageMime = result.MIME
	}

	userID := fixtures.DefaultUserID
	if claims != nil {
		userID = claims.UserID
	}

	cmd := &store.AddItem{
		Name:        form.Name,
		Description: form.Description,
		CategoryID:  form.CategoryID,
		Status:      form.Status,
		Location:    form.Location,
		Image:       image,
		ImageMime:   imageMime,
		UserID:      userID,
	}
	s.Store.Apply(cmd)

	slog.Info("item reported", "user", userID, "item", cmd.Created.Name, "id", cmd.Created.ID, "status", cmd.Created.Status)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
