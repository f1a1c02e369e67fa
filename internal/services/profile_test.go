package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newProfileService(t *testing.T) (*services.ProfileService, *services.MockUserReader, *services.MockProfileWriter) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockProfileWriter(ctrl)
	return services.NewProfileService(reader, writer), reader, writer
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	in := models.ProfileUpdate{Username: strPtr("taken")}

	t.Run("username taken", func(t *testing.T) {
		svc, _, writer := newProfileService(t)
		writer.EXPECT().UpdateProfile(gomock.Any(), int64(1), in).Return(nil, repositories.ErrUniqueViolation)

		_, err := svc.Update(ctx, 1, in)
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, _, writer := newProfileService(t)
		writer.EXPECT().UpdateProfile(gomock.Any(), int64(1), in).Return(nil, nil)

		_, err := svc.Update(ctx, 1, in)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestProfileService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 1, PasswordHash: string(hash)}

	t.Run("wrong current password", func(t *testing.T) {
		svc, reader, writer := newProfileService(t)
		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		writer.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		writer.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateSettings(ctx, 1, models.SettingsUpdate{CurrentPassword: "nope", NewPassword: "new-pass-123"})
		assert.ErrorIs(t, err, services.ErrWrongPassword)
	})

	t.Run("password changed", func(t *testing.T) {
		svc, reader, writer := newProfileService(t)
		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		writer.EXPECT().UpdatePassword(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, newHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-pass-123")))
				return nil
			})
		writer.EXPECT().UpdateSettings(gomock.Any(), int64(1), nil, nil).Return(stored, nil)

		_, err := svc.UpdateSettings(ctx, 1, models.SettingsUpdate{CurrentPassword: "current-pass", NewPassword: "new-pass-123"})
		assert.NoError(t, err)
	})

	t.Run("theme only", func(t *testing.T) {
		svc, _, writer := newProfileService(t)
		theme := "light"
		writer.EXPECT().UpdateSettings(gomock.Any(), int64(1), nil, &theme).Return(&models.User{ID: 1, Theme: theme}, nil)

		user, err := svc.UpdateSettings(ctx, 1, models.SettingsUpdate{Theme: &theme})
		require.NoError(t, err)
		assert.Equal(t, "light", user.Theme)
	})
}
