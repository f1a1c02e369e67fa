package handlers

//go:generate mockgen -source=chatbot.go -destination=chatbot_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// ChatQuerier asks the assistant a question.
type ChatQuerier interface {
	Query(ctx context.Context, userID int64, message string) (*models.ChatMessage, error)
}

// ChatHistoryLister returns recent chatbot exchanges.
type ChatHistoryLister interface {
	History(ctx context.Context, userID int64) ([]models.ChatMessage, error)
}

// ChatRequest represents the JSON body for a chatbot query
// swagger:model ChatRequest
type ChatRequest struct {
	// Question for the assistant
	// required: true
	// default: Is it safe to walk home at night?
	Message string `json:"message" validate:"required,max=2000"`
}

// NewChatQueryHandler returns an HTTP handler that asks the assistant.
// @Summary Ask the chatbot
// @Description Provider errors produce a canned reply instead of a failure.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Question"
// @Success 200 {object} models.ChatMessage
// @Failure 400 {object} handlers.ErrorResponse "message is required"
// @Security BearerAuth
// @Router /api/chatbot/query [post]
func NewChatQueryHandler(svc ChatQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req ChatRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		msg, err := svc.Query(r.Context(), userID, req.Message)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, msg)
	}
}

// NewChatHistoryHandler returns an HTTP handler for the caller's chat history.
// @Summary Chat history
// @Tags chatbot
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Security BearerAuth
// @Router /api/chatbot/history [get]
func NewChatHistoryHandler(svc ChatHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		messages, err := svc.History(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if messages == nil {
			messages = []models.ChatMessage{}
		}
		writeJSON(w, http.StatusOK, messages)
	}
}
