package models

import "time"

// RoleUser is the default role assigned on registration.
const RoleUser = "user"

// User represents a user record in the database
type User struct {
	ID                   int64      `json:"id" db:"id"`                                       // Primary key
	Username             string     `json:"username" db:"username"`                           // Unique username
	Email                string     `json:"email" db:"email"`                                 // Unique email
	PasswordHash         string     `json:"-" db:"password_hash"`                             // Bcrypt hash, empty for Google-only accounts
	Role                 string     `json:"role" db:"role"`                                   // Role name
	Phone                *string    `json:"phone" db:"phone"`                                 // Contact phone
	Location             *string    `json:"location" db:"location"`                           // Free-form location
	Aadhaar              *string    `json:"aadhaar,omitempty" db:"aadhaar"`                   // Aadhaar number
	PAN                  *string    `json:"pan,omitempty" db:"pan"`                           // PAN number
	IsVerified           bool       `json:"is_verified" db:"is_verified"`                     // Email verified via OTP or OAuth
	OTP                  *string    `json:"-" db:"otp"`                                       // Active one-time passcode
	OTPCreatedAt         *time.Time `json:"-" db:"otp_created_at"`                            // OTP issuance time
	NotificationsEnabled bool       `json:"notifications_enabled" db:"notifications_enabled"` // Settings: notifications
	Theme                string     `json:"theme" db:"theme"`                                 // Settings: UI theme
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`                       // Creation timestamp
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`                       // Last update timestamp
}

// NewUser holds the fields needed to insert a user.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Phone        *string
	Location     *string
	Aadhaar      *string
	PAN          *string
	IsVerified   bool
	OTP          *string
	OTPCreatedAt *time.Time
}

// ProfileUpdate is a partial profile update. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username *string
	Phone    *string
	Location *string
}

// SettingsUpdate is a partial settings update. Nil fields are left unchanged.
type SettingsUpdate struct {
	NotificationsEnabled *bool
	Theme                *string
	CurrentPassword      string
	NewPassword          string
}

// AuthResult is returned by every successful login path.
type AuthResult struct {
	Token string `json:"access_token"`
	User  *User  `json:"user"`
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Email string
	Name  string
}
