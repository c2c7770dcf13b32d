// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily mode. Every player gets the same target on the
// same UTC day; selection is deterministic from date + salt.
//   - GET  /daily/today → today's date key
//   - POST /daily/new   → start a session on today's word

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type todayRes struct {
	Date string `json:"date"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	picker := s.picker
	r.Route("/daily", func(r chi.Router) {
		r.Get("/today", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, todayRes{Date: picker.Today()})
		})
		r.Post("/new", func(w http.ResponseWriter, r *http.Request) {
			s.createSession(w, r, picker)
		})
	})
}
