package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		m := NewMockProfileGetter(ctrl)
		m.EXPECT().Get(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Username: "asha", PasswordHash: "hash"}, nil)

		rr := serve(NewGetProfileHandler(m), asUser(newJSONRequest(t, http.MethodGet, "/api/user/profile", nil), 5))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeMap(t, rr)
		assert.Equal(t, "asha", body["username"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("no claims", func(t *testing.T) {
		m := NewMockProfileGetter(ctrl)

		rr := serve(NewGetProfileHandler(m), newJSONRequest(t, http.MethodGet, "/api/user/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	name := "asha2"
	update := models.ProfileUpdate{Username: &name}

	t.Run("own profile by route id", func(t *testing.T) {
		m := NewMockProfileUpdater(ctrl)
		m.EXPECT().Update(gomock.Any(), int64(5), update).Return(&models.User{ID: 5, Username: name}, nil)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodPut, "/api/profile/5", map[string]string{"username": name}), 5), "id", "5")
		rr := serve(NewUpdateProfileHandler(m), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Profile updated", decodeMap(t, rr)["message"])
	})

	t.Run("another user's profile", func(t *testing.T) {
		m := NewMockProfileUpdater(ctrl)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodPut, "/api/profile/6", map[string]string{"username": name}), 5), "id", "6")
		rr := serve(NewUpdateProfileHandler(m), req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("username taken", func(t *testing.T) {
		m := NewMockProfileUpdater(ctrl)
		m.EXPECT().Update(gomock.Any(), int64(5), update).Return(nil, services.ErrUsernameTaken)

		rr := serve(NewUpdateProfileHandler(m), asUser(newJSONRequest(t, http.MethodPut, "/api/user/profile", map[string]string{"username": name}), 5))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Username already taken", decodeMap(t, rr)["error"])
	})
}

func TestUpdateSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         map[string]any
		mockSetup    func(m *MockSettingsUpdater)
		expectedCode int
	}{
		{
			name: "theme",
			body: map[string]any{"theme": "dark"},
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().UpdateSettings(gomock.Any(), int64(5), gomock.Any()).
					DoAndReturn(func(_ any, _ int64, in models.SettingsUpdate) (*models.User, error) {
						assert.Equal(t, "dark", *in.Theme)
						assert.Nil(t, in.NotificationsEnabled)
						return &models.User{ID: 5, Theme: "dark"}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown theme",
			body:         map[string]any{"theme": "neon"},
			mockSetup:    func(m *MockSettingsUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "new password without current",
			body:         map[string]any{"new_password": "secret456"},
			mockSetup:    func(m *MockSettingsUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "wrong current password",
			body: map[string]any{"current_password": "nope", "new_password": "secret456"},
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().UpdateSettings(gomock.Any(), int64(5), models.SettingsUpdate{
					CurrentPassword: "nope",
					NewPassword:     "secret456",
				}).Return(nil, services.ErrWrongPassword)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockSettingsUpdater(ctrl)
			tt.mockSetup(m)

			rr := serve(NewUpdateSettingsHandler(m), asUser(newJSONRequest(t, http.MethodPatch, "/api/profile/settings", tt.body), 5))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
