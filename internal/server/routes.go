package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bpguide/internal/search"
	"github.com/ziadkadry99/bpguide/internal/site"
	"github.com/ziadkadry99/bpguide/internal/view"
)

func (s *Server) registerPages(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, r, s.reg.DefaultID())
	})
	r.Get("/sections/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !s.reg.Catalog().Has(id) {
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		s.writePage(w, r, id)
	})
	r.Get("/assets/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(site.CSS()))
	})
	r.Get("/assets/script.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write([]byte(site.JS()))
	})
}

// writePage renders a fresh view for one request. ?sidebar=open lets the menu
// work without scripts.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, id string) {
	st := view.New(s.reg, view.WithSection(id), view.WithScrollThreshold(s.cfg.ScrollThreshold))
	if r.URL.Query().Get("sidebar") == "open" {
		st.ToggleSidebar()
	}

	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, st); err != nil {
		s.logger.Error("rendering page", zap.String("section", id), zap.Error(err))
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// registerAPI mounts the JSON endpoints under /api.
func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleSections)
		r.Get("/sections/{id}", s.handleSection)
		r.Get("/search", s.handleSearch)
	})
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Catalog().Groups())
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.reg.Catalog().Has(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "section not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.reg.Resolve(id))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a number"})
			return
		}
		limit = n
	}

	hits, err := s.index.Search(r.Context(), q.Get("q"), limit)
	if err != nil {
		s.logger.Error("search", zap.String("query", q.Get("q")), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed"})
		return
	}
	if hits == nil {
		hits = []search.Hit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": hits})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
