package http

import (
	"net/http"
	"strings"

	"github.com/S4ng4/winery-resolver/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

type summaryResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

type wineryResponse struct {
	Key         string        `json:"key"`
	Strategy    string        `json:"strategy"`
	Winery      domain.Winery `json:"winery"`
	Description string        `json:"description,omitempty"`
}

func newWineryResponse(m domain.Match) wineryResponse {
	desc, _ := domain.Describe(&m.Winery)
	return wineryResponse{
		Key:         m.Key,
		Strategy:    m.Strategy.String(),
		Winery:      m.Winery,
		Description: desc,
	}
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	keys := s.table.Keys()
	out := make([]summaryResponse, 0, len(keys))
	for _, key := range keys {
		m, ok := s.table.Lookup(key)
		if !ok {
			continue
		}
		out = append(out, summaryResponse{Key: m.Key, Name: m.Winery.Name, Region: m.Winery.Region})
	}
	sharedobs.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	producer := r.URL.Query().Get("producer")
	if strings.TrimSpace(producer) == "" {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"status": "bad request",
			"error":  "producer query parameter is required",
		})
		return
	}

	m, ok := s.resolver.Resolve(producer)
	if !ok {
		s.logger.Debug("producer not resolved", "producer", producer)
		writeNotFound(w)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, newWineryResponse(m))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	m, ok := s.table.Lookup(r.PathValue("key"))
	if !ok {
		writeNotFound(w)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, newWineryResponse(m))
}

func writeNotFound(w http.ResponseWriter) {
	sharedobs.WriteJSON(w, http.StatusNotFound, map[string]string{"status": "not found"})
}
