package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-tracker/internal/platform/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page template names.
const (
	indexTemplate   = "index.html"
	addTaskTemplate = "add_task.html"
)

// PageHandler renders the HTML views. Both pages load their data from the
// JSON API in the browser, so rendering needs no service access.
type PageHandler struct {
	templates *template.Template
}

// NewPageHandler creates a PageHandler using the embedded templates.
func NewPageHandler() *PageHandler {
	return &PageHandler{templates: pageTemplates}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, indexTemplate)
}

// AddTask handles GET /add.
func (h *PageHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, addTaskTemplate)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, nil); err != nil {
		logger.FromContext(r.Context()).Error("failed to render page",
			slog.String("template", name),
			slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
