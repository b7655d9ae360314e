package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/umputun/eduflow/pkg/assistant"
	"github.com/umputun/eduflow/pkg/domain"
)

// chatView is a tutor session as rendered by clients
type chatView struct {
	SessionID string           `json:"session_id"`
	ItemID    string           `json:"item_id"`
	Subject   string           `json:"subject"`
	Busy      bool             `json:"busy"`
	Messages  []domain.Message `json:"messages"`
}

type messageRequest struct {
	Text string `json:"text"`
}

// openChatHandler opens a tutor session for an item
func (s *Server) openChatHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.OpenChat(r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, newChatView(sess))
}

// getChatHandler returns the session transcript
func (s *Server) getChatHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.Chat(r.PathValue("sid"))
	if err != nil {
		renderChatError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, newChatView(sess))
}

// sendMessageHandler asks the tutor and waits for the reply
func (s *Server) sendMessageHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.Chat(r.PathValue("sid"))
	if err != nil {
		renderChatError(w, r, err)
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid message: %w", err), http.StatusBadRequest)
		return
	}

	if _, err := sess.Send(r.Context(), req.Text); err != nil {
		renderChatError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, newChatView(sess))
}

// closeChatHandler discards the session
func (s *Server) closeChatHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.CloseChat(r.PathValue("sid")); err != nil {
		renderChatError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newChatView(sess *assistant.Session) chatView {
	return chatView{
		SessionID: sess.ID,
		ItemID:    sess.ItemID,
		Subject:   sess.Subject,
		Busy:      sess.Busy(),
		Messages:  sess.Messages(),
	}
}

func renderChatError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmpty):
		RenderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, assistant.ErrBusy):
		RenderError(w, r, err, http.StatusConflict)
	case errors.Is(err, assistant.ErrNotFound), errors.Is(err, assistant.ErrClosed):
		RenderError(w, r, err, http.StatusNotFound)
	default:
		RenderError(w, r, err, http.StatusInternalServerError)
	}
}
