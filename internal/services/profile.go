package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ProfileWriter defines profile and settings updates.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID int64, p models.ProfileUpdate) (*models.User, error)
	UpdateSettings(ctx context.Context, userID int64, notifications *bool, theme *string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ProfileService reads and updates the signed-in user's profile.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader UserReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial profile update.
func (s *ProfileService) Update(ctx context.Context, userID int64, p models.ProfileUpdate) (*models.User, error) {
	user, err := s.writer.UpdateProfile(ctx, userID, p)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateSettings changes notification and theme preferences and, when NewPassword
// is set, the password after checking the current one.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID int64, in models.SettingsUpdate) (*models.User, error) {
	if in.NewPassword != "" {
		user, err := s.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
				logger.Log.Warnw("wrong current password on settings update", "user_id", userID)
				return nil, ErrWrongPassword
			}
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		if err := s.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
			logger.Log.Errorw("failed to update password", "user_id", userID, "error", err)
			return nil, err
		}
	}

	user, err := s.writer.UpdateSettings(ctx, userID, in.NotificationsEnabled, in.Theme)
	if err != nil {
		logger.Log.Errorw("failed to update settings", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
