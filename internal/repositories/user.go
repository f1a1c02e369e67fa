package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const userColumns = `id, username, email, password_hash, role, phone, location, aadhaar, pan,
	is_verified, otp, otp_created_at, notifications_enabled, theme, created_at, updated_at`

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	base
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{base{db: db}}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByAadhaar returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByAadhaar(ctx context.Context, aadhaar string) (*models.User, error) {
	return r.getBy(ctx, "aadhaar", aadhaar)
}

// GetByPAN returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByPAN(ctx context.Context, pan string) (*models.User, error) {
	return r.getBy(ctx, "pan", pan)
}

func (r *UserReadRepository) getBy(ctx context.Context, column string, value any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	var user models.User
	found, err := r.get(ctx, &user, query, value)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user writes.
type UserWriteRepository struct {
	base
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a user. Returns ErrUniqueViolation when the email, username,
// Aadhaar or PAN is taken. A passcode in u is stored with the row.
func (r *UserWriteRepository) Create(ctx context.Context, u models.NewUser) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, phone, location, aadhaar, pan, is_verified, otp, otp_created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	var user models.User
	if _, err := r.get(ctx, &user, query,
		u.Username, u.Email, u.PasswordHash, u.Role, u.Phone, u.Location, u.Aadhaar, u.PAN, u.IsVerified,
		u.OTP, u.OTPCreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetOTP stores a new passcode, replacing any previous one.
func (r *UserWriteRepository) SetOTP(ctx context.Context, userID int64, otp string, issuedAt time.Time) error {
	const query = `
		UPDATE users SET otp = $2, otp_created_at = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.exec(ctx, query, userID, otp, issuedAt)
	return err
}

// MarkVerified flags the account as verified and clears the passcode.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, userID int64) error {
	const query = `
		UPDATE users SET is_verified = TRUE, otp = NULL, otp_created_at = NULL, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.exec(ctx, query, userID)
	return err
}

// UpdatePassword replaces the password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.exec(ctx, query, userID, passwordHash)
	return err
}

// UpdateProfile applies the non-nil fields and returns the updated user, or nil if missing.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID int64, p models.ProfileUpdate) (*models.User, error) {
	query := `
		UPDATE users SET
			username = COALESCE($2, username),
			phone = COALESCE($3, phone),
			location = COALESCE($4, location),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	found, err := r.get(ctx, &user, query, userID, p.Username, p.Phone, p.Location)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// UpdateSettings applies the non-nil preferences and returns the updated user, or nil if missing.
func (r *UserWriteRepository) UpdateSettings(ctx context.Context, userID int64, notifications *bool, theme *string) (*models.User, error) {
	query := `
		UPDATE users SET
			notifications_enabled = COALESCE($2, notifications_enabled),
			theme = COALESCE($3, theme),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	found, err := r.get(ctx, &user, query, userID, notifications, theme)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}
