package services

//go:generate mockgen -source=chatbot.go -destination=chatbot_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// FallbackReply is returned when the assistant is unavailable.
const FallbackReply = "I'm sorry, I'm having trouble processing your request. Please try again later."

const chatHistoryLimit = 50

// ChatStore defines chat history persistence.
type ChatStore interface {
	Save(ctx context.Context, userID int64, message, response string) (*models.ChatMessage, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
}

// Assistant answers a prompt with free text.
type Assistant interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// ChatbotService answers user questions and keeps the history.
type ChatbotService struct {
	chats     ChatStore
	assistant Assistant
}

// NewChatbotService creates a new ChatbotService.
func NewChatbotService(chats ChatStore, assistant Assistant) *ChatbotService {
	return &ChatbotService{chats: chats, assistant: assistant}
}

// Query asks the assistant and stores the exchange. Provider errors degrade to FallbackReply.
func (s *ChatbotService) Query(ctx context.Context, userID int64, message string) (*models.ChatMessage, error) {
	reply, err := s.assistant.Reply(ctx, message)
	if err != nil {
		logger.Log.Errorw("assistant failed, using fallback reply", "user_id", userID, "error", err)
		reply = FallbackReply
	}

	saved, err := s.chats.Save(ctx, userID, message, reply)
	if err != nil {
		logger.Log.Errorw("failed to save chat message", "user_id", userID, "error", err)
		return nil, err
	}
	return saved, nil
}

// History returns the last messages of the user, oldest first.
func (s *ChatbotService) History(ctx context.Context, userID int64) ([]models.ChatMessage, error) {
	messages, err := s.chats.ListRecent(ctx, userID, chatHistoryLimit)
	if err != nil {
		logger.Log.Errorw("failed to load chat history", "user_id", userID, "error", err)
		return nil, err
	}
	return messages, nil
}
