package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/GustavoCaso/apero/internal/protocol"
)

func (s *Server) handleCopy(w http.ResponseWriter, req *http.Request) {
	var payload protocol.CopyRequest
	if !s.openRequest(w, req, "copy", &payload) {
		return
	}
	if !s.verify(w, req, payload.Content, payload.Signature) {
		return
	}

	id, err := s.store.Add(payload.Content)
	if err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("unable to store payload")
		responseString(w, "internal server error", http.StatusInternalServerError)
		return
	}

	hlog.FromRequest(req).Debug().Stringer("id", id).Msg("entry added")

	s.respondSealed(w, req, id[:], http.StatusAccepted)
}

func (s *Server) handleMove(w http.ResponseWriter, req *http.Request) {
	s.handleEntry(w, req, "move", true)
}

func (s *Server) handlePaste(w http.ResponseWriter, req *http.Request) {
	s.handleEntry(w, req, "paste", false)
}

// handleEntry serves move and paste, which only differ in whether the entry
// is removed from the store.
func (s *Server) handleEntry(w http.ResponseWriter, req *http.Request, name string, remove bool) {
	var payload protocol.EntryRequest
	if !s.openRequest(w, req, name, &payload) {
		return
	}
	if !s.verify(w, req, payload.SignedContent(), payload.Signature) {
		return
	}

	var (
		content []byte
		err     error
	)
	switch {
	case remove && payload.ID == uuid.Nil:
		content, err = s.store.RemoveFirst()
	case remove:
		content, err = s.store.Remove(payload.ID)
	case payload.ID == uuid.Nil:
		content, err = s.store.CopyFirst()
	default:
		content, err = s.store.Copy(payload.ID)
	}

	if err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("unable to retrieve entry")
		responseString(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(content) == 0 {
		responseStatusCode(w, http.StatusNotFound)
		return
	}

	s.respondSealed(w, req, content, http.StatusOK)
}

func (s *Server) handleList(w http.ResponseWriter, req *http.Request) {
	var payload protocol.ListRequest
	if !s.openRequest(w, req, "list", &payload) {
		return
	}
	if !s.verify(w, req, protocol.ListSignedContent, payload.Signature) {
		return
	}

	entries, err := s.store.ListAll()
	if err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("unable to list all entries")
		responseString(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := protocol.ListResponse{Entries: entries}
	if resp.Entries == nil {
		resp.Entries = []uuid.UUID{}
	}

	content, err := json.Marshal(resp)
	if err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("unable to marshal list response")
		responseString(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.respondSealed(w, req, content, http.StatusOK)
}
