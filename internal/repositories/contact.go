package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const contactColumns = `id, user_id, name, phone, relationship, created_at`

// ContactRepository stores emergency contacts.
type ContactRepository struct {
	base
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{base{db: db}}
}

// ListByUser returns the user's contacts in creation order.
func (r *ContactRepository) ListByUser(ctx context.Context, userID int64) ([]models.EmergencyContact, error) {
	query := `SELECT ` + contactColumns + ` FROM emergency_contacts WHERE user_id = $1 ORDER BY id`

	contacts := []models.EmergencyContact{}
	if err := r.selectAll(ctx, &contacts, query, userID); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID returns the contact or nil when it does not exist.
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	query := `SELECT ` + contactColumns + ` FROM emergency_contacts WHERE id = $1`

	var c models.EmergencyContact
	found, err := r.get(ctx, &c, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// Create inserts a contact.
func (r *ContactRepository) Create(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error) {
	query := `
		INSERT INTO emergency_contacts (user_id, name, phone, relationship)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + contactColumns

	var created models.EmergencyContact
	if _, err := r.get(ctx, &created, query, c.UserID, c.Name, c.Phone, c.Relationship); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overwrites name, phone and relationship. Returns nil if the contact is gone.
func (r *ContactRepository) Update(ctx context.Context, c models.EmergencyContact) (*models.EmergencyContact, error) {
	query := `
		UPDATE emergency_contacts SET name = $2, phone = $3, relationship = $4
		WHERE id = $1
		RETURNING ` + contactColumns

	var updated models.EmergencyContact
	found, err := r.get(ctx, &updated, query, c.ID, c.Name, c.Phone, c.Relationship)
	if err != nil || !found {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a contact and reports whether it existed.
func (r *ContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	return n > 0, err
}
