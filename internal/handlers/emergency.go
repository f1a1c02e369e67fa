package handlers

//go:generate mockgen -source=emergency.go -destination=emergency_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// ContactLister lists a user's emergency contacts.
type ContactLister interface {
	List(ctx context.Context, userID int64) ([]models.EmergencyContact, error)
}

// ContactAdder stores a new emergency contact.
type ContactAdder interface {
	Add(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error)
}

// ContactDeleter removes an emergency contact owned by the caller.
type ContactDeleter interface {
	Delete(ctx context.Context, actorID, id int64) error
}

// PrimaryContactSetter creates or replaces the caller's first contact.
type PrimaryContactSetter interface {
	SetPrimary(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error)
}

// NearbyFinder lists nearby help locations.
type NearbyFinder interface {
	Nearby(ctx context.Context) []models.NearbyPlace
}

// AlertAcknowledger acknowledges a one-shot emergency alert.
type AlertAcknowledger interface {
	Acknowledge(ctx context.Context, userID int64) string
}

// ContactRequest represents the JSON body for an emergency contact
// swagger:model ContactRequest
type ContactRequest struct {
	// Contact name
	// required: true
	Name string `json:"name" validate:"required"`

	// Contact phone
	// required: true
	// default: 9876543210
	Phone string `json:"phone" validate:"required"`

	// Relationship to the user
	// default: Mother
	Relationship string `json:"relationship"`
}

// ContactResponse wraps a stored contact
// swagger:model ContactResponse
type ContactResponse struct {
	// Success message
	Message string `json:"message"`

	// Stored contact
	Contact *models.EmergencyContact `json:"contact"`
}

// AlertResponse acknowledges an emergency alert
// swagger:model AlertResponse
type AlertResponse struct {
	// Success message
	Message string `json:"message"`

	// Alert reference
	AlertID string `json:"alert_id"`
}

// NewListContactsHandler returns an HTTP handler listing the caller's contacts.
// @Summary List emergency contacts
// @Tags emergency
// @Produce json
// @Param user_id path int true "User id, must be the caller"
// @Success 200 {array} models.EmergencyContact
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Cannot view another user's contacts"
// @Security BearerAuth
// @Router /api/emergency/contacts/{user_id} [get]
func NewListContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "user_id")
		if !ok {
			return
		}
		if id != userID {
			writeErrorMessage(w, http.StatusForbidden, "Cannot view another user's contacts")
			return
		}

		contacts, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if contacts == nil {
			contacts = []models.EmergencyContact{}
		}
		writeJSON(w, http.StatusOK, contacts)
	}
}

// NewAddContactHandler returns an HTTP handler that adds an emergency contact.
// @Summary Add emergency contact
// @Tags emergency
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Contact"
// @Success 201 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/emergency/contacts [post]
func NewAddContactHandler(svc ContactAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req ContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		c, err := svc.Add(r.Context(), models.EmergencyContact{
			UserID:       userID,
			Name:         req.Name,
			Phone:        req.Phone,
			Relationship: req.Relationship,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ContactResponse{Message: "Contact added", Contact: c})
	}
}

// NewDeleteContactHandler returns an HTTP handler that deletes one of the caller's contacts.
// @Summary Delete emergency contact
// @Tags emergency
// @Produce json
// @Param id path int true "Contact id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Contact belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Contact not found"
// @Security BearerAuth
// @Router /api/emergency/contacts/{id} [delete]
func NewDeleteContactHandler(svc ContactDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Contact deleted"})
	}
}

// NewSetPrimaryContactHandler returns an HTTP handler that sets the caller's primary contact.
// @Summary Set primary emergency contact
// @Description Updates the first contact or creates one. The phone must be exactly 10 digits.
// @Tags emergency
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Contact"
// @Success 200 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse "Phone number must be 10 digits"
// @Security BearerAuth
// @Router /api/profile/emergency-contact [put]
func NewSetPrimaryContactHandler(svc PrimaryContactSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req ContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		c, err := svc.SetPrimary(r.Context(), models.EmergencyContact{
			UserID:       userID,
			Name:         req.Name,
			Phone:        req.Phone,
			Relationship: req.Relationship,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ContactResponse{Message: "Emergency contact updated", Contact: c})
	}
}

// NewNearbyHandler returns an HTTP handler listing nearby help locations.
// @Summary Nearby help
// @Tags emergency
// @Produce json
// @Success 200 {array} models.NearbyPlace
// @Router /api/emergency/nearby [get]
func NewNearbyHandler(svc NearbyFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Nearby(r.Context()))
	}
}

// NewEmergencyAlertHandler returns an HTTP handler that acknowledges an emergency alert.
// @Summary Emergency alert
// @Tags emergency
// @Produce json
// @Success 200 {object} handlers.AlertResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/emergency/alert [post]
func NewEmergencyAlertHandler(svc AlertAcknowledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, AlertResponse{
			Message: "Emergency alert sent",
			AlertID: svc.Acknowledge(r.Context(), userID),
		})
	}
}
