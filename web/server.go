// Package web serves a localhost-only single-user UI; it intentionally has no
// auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"weeklog/cache"
	"weeklog/config"
	"weeklog/display"
	"weeklog/internal/timeutil"
	"weeklog/refresh"
	"weeklog/storage"
	"weeklog/submitter"
	"weeklog/weekrecord"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store   *storage.SQLiteStore
	cfg     config.Config
	service *submitter.Service
	cache   *cache.Cache
	adapter *display.Adapter
	mux     *http.ServeMux
}

// NewServer wires the submission service, query cache, and one display
// adapter over the shared refresh bus. Additional adapters can subscribe to
// the same bus without the server knowing about them.
func NewServer(store *storage.SQLiteStore, bus *refresh.Bus, cfg config.Config) (*Server, error) {
	recordCache := cache.New(store)
	adapter, err := display.NewAdapter(recordCache, bus)
	if err != nil {
		return nil, fmt.Errorf("load initial week records: %w", err)
	}

	server := &Server{
		store:   store,
		cfg:     cfg,
		service: submitter.NewService(store, bus, cfg.AnchorWeekday()),
		cache:   recordCache,
		adapter: adapter,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /api/weeks", server.handleAPIWeeks)
	mux.HandleFunc("POST /api/week", server.handleAPIWeekSubmit)
	server.mux = mux

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Close releases the display adapter's bus subscription.
func (s *Server) Close() {
	s.adapter.Close()
}

type indexPageView struct {
	Title      string
	AnchorDay  string
	DayHeaders []string
	Rows       []display.Row
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := indexPageView{
		Title:      "weeklog",
		AnchorDay:  s.service.Anchor().String(),
		DayHeaders: display.DayHeaders(),
		Rows:       s.adapter.Rows(),
	}
	if err := renderTemplate(w, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIWeeks(w http.ResponseWriter, r *http.Request) {
	records, err := s.cache.FetchAll()
	if err != nil {
		http.Error(w, fmt.Sprintf("fetch week records: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, buildWeekViews(records))
}

func (s *Server) handleAPIWeekSubmit(w http.ResponseWriter, r *http.Request) {
	var body submitRequest
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, feedback{
			Title:   "Submission failed",
			Message: err.Error(),
			Variant: "error",
		})
		return
	}

	weekStart, err := s.service.NormalizeSelectedDate(body.SelectedDate)
	if err != nil {
		resp := feedback{Title: "Invalid date", Message: err.Error(), Variant: "error"}
		var wrongDay *timeutil.WrongWeekdayError
		if errors.As(err, &wrongDay) {
			// The wrong weekday was picked; the form must drop it.
			resp.ClearDate = true
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	draft := weekrecord.Draft{WeekStart: weekStart, Hours: body.Hours.toDraftHours()}
	rec, err := s.service.Submit(draft)
	if err != nil {
		writeJSON(w, submitErrorStatus(err), feedback{
			Title:   "Submission failed",
			Message: err.Error(),
			Variant: "error",
		})
		return
	}

	writeJSON(w, http.StatusCreated, feedback{
		Title:      "Week saved",
		Message:    fmt.Sprintf("Recorded hours for the week starting %s.", rec.WeekStart.Format("2006-01-02")),
		Variant:    "success",
		ClearDraft: true,
	})
}

func submitErrorStatus(err error) int {
	var invalidHours *weekrecord.InvalidHoursError
	switch {
	case errors.Is(err, storage.ErrDuplicateWeek):
		return http.StatusConflict
	case errors.Is(err, submitter.ErrMissingDate), errors.As(err, &invalidHours):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").Funcs(template.FuncMap{
		"fmtHours": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
	}).ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
