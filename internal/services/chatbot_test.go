package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotService_Query(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		replyErr  error
		wantReply string
	}{
		{name: "assistant reply", reply: "Call 112 right away.", wantReply: "Call 112 right away."},
		{name: "fallback", replyErr: errors.New("quota exceeded"), wantReply: services.FallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chats := services.NewMockChatStore(ctrl)
			assistant := services.NewMockAssistant(ctrl)
			svc := services.NewChatbotService(chats, assistant)

			assistant.EXPECT().Reply(gomock.Any(), "what now?").Return(tt.reply, tt.replyErr)
			chats.EXPECT().Save(gomock.Any(), int64(1), "what now?", tt.wantReply).
				Return(&models.ChatMessage{ID: 1, UserID: 1, Message: "what now?", Response: tt.wantReply}, nil)

			msg, err := svc.Query(context.Background(), 1, "what now?")
			require.NoError(t, err)
			assert.Equal(t, tt.wantReply, msg.Response)
		})
	}
}

func TestChatbotService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	chats := services.NewMockChatStore(ctrl)
	svc := services.NewChatbotService(chats, services.NewMockAssistant(ctrl))

	chats.EXPECT().ListRecent(gomock.Any(), int64(1), 50).Return([]models.ChatMessage{{ID: 1}, {ID: 2}}, nil)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
