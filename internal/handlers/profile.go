package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// ProfileGetter loads the caller's profile.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
}

// ProfileUpdater applies a partial profile update.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, p models.ProfileUpdate) (*models.User, error)
}

// SettingsUpdater applies notification, theme and password settings.
type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, userID int64, in models.SettingsUpdate) (*models.User, error)
}

// ProfileUpdateRequest represents the JSON body for a profile update
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// New username
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=80"`

	// New phone number
	Phone *string `json:"phone,omitempty"`

	// New location
	Location *string `json:"location,omitempty"`
}

// SettingsRequest represents the JSON body for a settings update
// swagger:model SettingsRequest
type SettingsRequest struct {
	// Enable or disable notifications
	NotificationsEnabled *bool `json:"notifications_enabled,omitempty"`

	// UI theme
	// default: light
	Theme *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`

	// Current password, required when changing the password
	CurrentPassword string `json:"current_password,omitempty"`

	// New password
	NewPassword string `json:"new_password,omitempty" validate:"omitempty,min=6"`
}

// ProfileResponse wraps an updated profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Success message
	Message string `json:"message"`

	// Current profile
	User *models.User `json:"user"`
}

// NewGetProfileHandler returns an HTTP handler that returns the caller's profile.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/user/profile [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that updates the caller's profile.
// When the route carries an {id} parameter it must match the caller.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Username already taken"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Cannot update another user's profile"
// @Security BearerAuth
// @Router /api/user/profile [put]
// @Router /api/profile/{id} [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		if hasURLParam(r, "id") {
			id, ok := pathID(w, r, "id")
			if !ok {
				return
			}
			if id != userID {
				writeErrorMessage(w, http.StatusForbidden, "Cannot update another user's profile")
				return
			}
		}

		var req ProfileUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), userID, models.ProfileUpdate{
			Username: req.Username,
			Phone:    req.Phone,
			Location: req.Location,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{Message: "Profile updated", User: user})
	}
}

// NewUpdateSettingsHandler returns an HTTP handler for account settings.
// @Summary Update settings
// @Description Changes notifications and theme. A password change needs the current password.
// @Tags profile
// @Accept json
// @Produce json
// @Param settingsRequest body handlers.SettingsRequest true "Settings"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Current password is incorrect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/profile/settings [patch]
func NewUpdateSettingsHandler(svc SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req SettingsRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.NewPassword != "" && req.CurrentPassword == "" {
			writeErrorMessage(w, http.StatusBadRequest, "current_password is required")
			return
		}

		user, err := svc.UpdateSettings(r.Context(), userID, models.SettingsUpdate{
			NotificationsEnabled: req.NotificationsEnabled,
			Theme:                req.Theme,
			CurrentPassword:      req.CurrentPassword,
			NewPassword:          req.NewPassword,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{Message: "Settings updated", User: user})
	}
}
