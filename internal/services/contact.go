package services

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

import (
	"context"
	"regexp"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

var tenDigitPhone = regexp.MustCompile(`^\d{10}$`)

// ContactStore defines emergency contact persistence.
type ContactStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.EmergencyContact, error)
	GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error)
	Create(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error)
	Update(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactService manages the people notified when a user starts an SOS alert.
type ContactService struct {
	contacts ContactStore
}

// NewContactService creates a new ContactService.
func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// List returns the user's contacts.
func (s *ContactService) List(ctx context.Context, userID int64) ([]models.EmergencyContact, error) {
	contacts, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "user_id", userID, "error", err)
		return nil, err
	}
	return contacts, nil
}

// Add stores a new contact. The phone format is not checked on this path.
func (s *ContactService) Add(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error) {
	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create contact", "user_id", c.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

// Delete removes a contact owned by actorID.
func (s *ContactService) Delete(ctx context.Context, actorID, id int64) error {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "contact_id", id, "error", err)
		return err
	}
	if c == nil {
		return ErrContactNotFound
	}
	if c.UserID != actorID {
		logger.Log.Warnw("contact delete by non-owner", "contact_id", id, "actor_id", actorID)
		return ErrNotContactOwner
	}

	existed, err := s.contacts.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete contact", "contact_id", id, "error", err)
		return err
	}
	if !existed {
		return ErrContactNotFound
	}
	return nil
}

// SetPrimary validates a 10 digit phone and updates the user's first contact,
// creating one when the user has none.
func (s *ContactService) SetPrimary(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error) {
	if !tenDigitPhone.MatchString(c.Phone) {
		return nil, ErrInvalidPhone
	}

	existing, err := s.List(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return s.Add(ctx, c)
	}

	c.ID = existing[0].ID
	updated, err := s.contacts.Update(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to update contact", "contact_id", c.ID, "error", err)
		return nil, err
	}
	return updated, nil
}
