package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/middlewares"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// AboutResponse represents the about page payload
// swagger:model AboutResponse
type AboutResponse struct {
	// About message
	// default: This is the introduction page of the memo app.
	Message string `json:"message"`
}

// NewHomePageHandler returns an HTTP handler that renders the landing
// page. The page greets the user by name when a session is active.
// @Summary Landing page
// @Description Renders the HTML landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "Rendered page"
// @Router / [get]
func NewHomePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := struct {
			Username string
		}{
			Username: middlewares.GetUsernameFromContext(r.Context()),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplates.ExecuteTemplate(w, "home.html", data); err != nil {
			logger.Log.Errorw("failed to render home page", "err", err)
		}
	}
}

// NewAboutHandler returns an HTTP handler for the about page.
// @Summary About page
// @Description Returns the introduction message
// @Tags pages
// @Produce json
// @Success 200 {object} handlers.AboutResponse "About message"
// @Router /about [get]
func NewAboutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AboutResponse{
			Message: "This is the introduction page of the memo app.",
		})
	}
}
