package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestChatQueryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reply", func(t *testing.T) {
		m := NewMockChatQuerier(ctrl)
		m.EXPECT().Query(gomock.Any(), int64(2), "hello").Return(&models.ChatMessage{ID: 1, Message: "hello", Response: "hi"}, nil)

		rr := serve(NewChatQueryHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/chatbot/query", map[string]string{"message": "hello"}), 2))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "hi", decodeMap(t, rr)["response"])
	})

	t.Run("empty message", func(t *testing.T) {
		m := NewMockChatQuerier(ctrl)

		rr := serve(NewChatQueryHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/chatbot/query", map[string]string{"message": ""}), 2))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "message is required", decodeMap(t, rr)["error"])
	})
}

func TestChatHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockChatHistoryLister(ctrl)
	m.EXPECT().History(gomock.Any(), int64(2)).Return(nil, nil)

	rr := serve(NewChatHistoryHandler(m), asUser(newJSONRequest(t, http.MethodGet, "/api/chatbot/history", nil), 2))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}
