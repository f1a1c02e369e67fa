package services

import "errors"

// Error kinds. Every error returned by a service wraps exactly one of them,
// so callers can classify failures with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrExternal     = errors.New("external service failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Identity errors.
var (
	ErrUserNotFound           = newError(ErrNotFound, "User not found")
	ErrEmailAlreadyRegistered = newError(ErrConflict, "Email already registered")
	ErrUserAlreadyExists      = newError(ErrConflict, "Username or identifier already registered")
	ErrAccountNotVerified     = newError(ErrForbidden, "Account not verified. Please verify OTP first.")
	ErrInvalidCredentials     = newError(ErrUnauthorized, "Invalid credentials")
	ErrOTPNotFound            = newError(ErrNotFound, "No OTP found. Please request a new one.")
	ErrOTPExpired             = newError(ErrValidation, "OTP expired. Please request a new one.")
	ErrOTPMismatch            = newError(ErrValidation, "Invalid OTP")
	ErrInvalidGoogleToken     = newError(ErrUnauthorized, "Google login failed")
	ErrInvalidResetToken      = newError(ErrValidation, "Invalid or expired reset token")
	ErrWrongPassword          = newError(ErrValidation, "Current password is incorrect")
	ErrUsernameTaken          = newError(ErrConflict, "Username already taken")
)

// Emergency errors.
var (
	ErrSOSNotFound     = newError(ErrNotFound, "SOS alert not found")
	ErrSOSStopped      = newError(ErrConflict, "SOS alert already stopped")
	ErrContactNotFound = newError(ErrNotFound, "Contact not found")
	ErrNotContactOwner = newError(ErrForbidden, "Contact belongs to another user")
	ErrInvalidPhone    = newError(ErrValidation, "Phone number must be 10 digits")
)

// Content errors.
var (
	ErrPostNotFound = newError(ErrNotFound, "Post not found")
	ErrNotPostOwner = newError(ErrForbidden, "Post belongs to another user")
	ErrInvalidImage = newError(ErrValidation, "Unsupported image type")
)

// Equality errors.
var (
	ErrCompanyExists        = newError(ErrConflict, "Company already registered")
	ErrInvalidEqualityScore = newError(ErrValidation, "gender_equality_score must be between 0 and 100")
)

// Skill exchange errors.
var (
	ErrSkillNotFound            = newError(ErrNotFound, "Skill not found")
	ErrUserSkillNotFound        = newError(ErrNotFound, "User skill not found")
	ErrNotSkillOwner            = newError(ErrForbidden, "Skill belongs to another user")
	ErrInvalidSkillType         = newError(ErrValidation, "skill_type must be teach or learn")
	ErrSelfMatch                = newError(ErrValidation, "Cannot request a match with yourself")
	ErrTeacherDoesNotOfferSkill = newError(ErrValidation, "Teacher does not offer this skill")
	ErrDuplicateMatchRequest    = newError(ErrConflict, "A pending request for this skill already exists")
	ErrMatchNotFound            = newError(ErrNotFound, "Match request not found")
	ErrNotMatchTeacher          = newError(ErrForbidden, "Only the teacher can respond to this request")
	ErrInvalidAction            = newError(ErrValidation, "Action must be accept or reject")
	ErrMatchNotPending          = newError(ErrConflict, "Request already responded")
	ErrInvalidMatchListType     = newError(ErrValidation, "type must be received or sent")
	ErrInvalidRating            = newError(ErrValidation, "Rating must be between 1 and 5")
	ErrSelfRating               = newError(ErrValidation, "Cannot rate yourself")
	ErrDuplicateRating          = newError(ErrConflict, "You have already rated this match")
	ErrRatingMatchRequired      = newError(ErrValidation, "match_id is required")
	ErrNotMatchParticipant      = newError(ErrForbidden, "You can only rate your match partner")
	ErrMatchNotRateable         = newError(ErrValidation, "Only accepted or completed matches can be rated")
)
