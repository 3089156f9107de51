package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bondar-aleksandr/netdesk/internal/terminal"
)

// HandleHealth reports liveness and the number of open sessions
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

// HandleOpenSession starts a terminal with a fresh device
func (s *Server) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	id, sess := s.sessions.Open()
	s.logger.Infof("Opened session %s", id)
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     id,
		"prompt": sess.Prompt(),
		"lines":  sess.Lines(),
	})
}

func (s *Server) HandleCloseSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Close(id); err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.logger.Infof("Closed session %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleExecute runs one command line and returns the engine result
func (s *Server) HandleExecute(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}

	var req struct {
		Command string `json:"command"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.respondJSON(w, http.StatusOK, sess.Submit(req.Command))
}

func (s *Server) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"prompt": sess.Prompt(),
		"lines":  sess.Lines(),
	})
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, terminal.ErrSessionNotFound) {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warnf("Unable to encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
