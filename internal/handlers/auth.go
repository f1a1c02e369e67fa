package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, bool, error)
}

// OTPVerifier verifies an emailed passcode.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, email, code string) (*models.AuthResult, error)
}

// OTPResender re-issues a passcode.
type OTPResender interface {
	ResendOTP(ctx context.Context, email string) (bool, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
}

// IdentifierOTPSender emails a passcode to the holder of an Aadhaar or PAN number.
type IdentifierOTPSender interface {
	SendIdentifierOTP(ctx context.Context, kind, value string) error
}

// IdentifierOTPVerifier signs in the holder of an Aadhaar or PAN number.
type IdentifierOTPVerifier interface {
	VerifyIdentifierOTP(ctx context.Context, kind, value, code string) (*models.AuthResult, error)
}

// GoogleLoginer signs in with a Google ID token.
type GoogleLoginer interface {
	GoogleLogin(ctx context.Context, idToken string) (*models.AuthResult, error)
}

// PasswordForgetter starts a password reset.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter completes a password reset.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: asha
	Username string `json:"username" validate:"required,min=3,max=80"`

	// Email
	// required: true
	// default: asha@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Phone number
	Phone *string `json:"phone,omitempty"`

	// Free-form location
	Location *string `json:"location,omitempty"`

	// Aadhaar number, separators allowed
	Aadhaar *string `json:"aadhaar,omitempty"`

	// PAN number
	PAN *string `json:"pan,omitempty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Registration successful. Please check your email for the OTP.
	Message string `json:"message"`

	// Id of the registered user
	UserID int64 `json:"user_id"`
}

// VerifyOTPRequest represents the JSON body for email OTP verification
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Six digit code
	// required: true
	OTP string `json:"otp" validate:"required"`
}

// EmailRequest represents a JSON body carrying only an email
// swagger:model EmailRequest
type EmailRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: asha@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// IdentifierOTPRequest represents the JSON body for Aadhaar or PAN passcode requests
// swagger:model IdentifierOTPRequest
type IdentifierOTPRequest struct {
	// Aadhaar number, for Aadhaar routes
	Aadhaar string `json:"aadhaar,omitempty"`

	// PAN number, for PAN routes
	PAN string `json:"pan,omitempty"`

	// Aadhaar or PAN, for verify-login-otp
	Identifier string `json:"identifier,omitempty"`

	// Six digit code, for verify routes
	OTP string `json:"otp,omitempty"`
}

func (r IdentifierOTPRequest) value(kind string) string {
	switch kind {
	case services.IdentifierAadhaar:
		return r.Aadhaar
	case services.IdentifierPAN:
		return r.PAN
	default:
		return r.Identifier
	}
}

// GoogleLoginRequest represents the JSON body for Google sign-in
// swagger:model GoogleLoginRequest
type GoogleLoginRequest struct {
	// Google ID token
	// required: true
	Token string `json:"token" validate:"required"`
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	Password string `json:"password" validate:"required,min=6"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and emails a 6 digit OTP. Registering an unverified email again re-sends the OTP.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User registered, OTP sent"
// @Success 200 {object} handlers.RegisterResponse "Account not verified yet, OTP re-sent"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, created, err := svc.Register(r.Context(), services.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Location: req.Location,
			Aadhaar:  req.Aadhaar,
			PAN:      req.PAN,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !created {
			writeJSON(w, http.StatusOK, RegisterResponse{
				Message: "Account exists but not verified. A new OTP has been sent.",
				UserID:  user.ID,
			})
			return
		}
		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "Registration successful. Please check your email for the OTP.",
			UserID:  user.ID,
		})
	}
}

// NewVerifyOTPHandler returns an HTTP handler that verifies the registration OTP.
// @Summary Verify email OTP
// @Description Marks the account verified and returns an access token. The OTP is valid for 5 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyOTPRequest body handlers.VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} models.AuthResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid, expired or missing OTP"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/verify-otp [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.VerifyOTP(r.Context(), req.Email, req.OTP)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewResendOTPHandler returns an HTTP handler that re-sends the registration OTP.
// @Summary Resend OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/resend-otp [post]
func NewResendOTPHandler(svc OTPResender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		verified, err := svc.ResendOTP(r.Context(), req.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if verified {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Account already verified"})
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "OTP sent successfully"})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a verified user and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} models.AuthResult "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 403 {object} handlers.ErrorResponse "Account not verified"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewSendIdentifierOTPHandler returns an HTTP handler that emails a login OTP to the
// holder of an Aadhaar (kind "aadhaar") or PAN (kind "pan") number.
// @Summary Send Aadhaar or PAN login OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param identifierOTPRequest body handlers.IdentifierOTPRequest true "aadhaar or pan"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Identifier missing"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/send-aadhaar-otp [post]
// @Router /api/auth/send-pan-otp [post]
func NewSendIdentifierOTPHandler(svc IdentifierOTPSender, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IdentifierOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		value := req.value(kind)
		if value == "" {
			writeErrorMessage(w, http.StatusBadRequest, kind+" is required")
			return
		}

		if err := svc.SendIdentifierOTP(r.Context(), kind, value); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "OTP sent to your registered email"})
	}
}

// NewVerifyIdentifierOTPHandler returns an HTTP handler that signs in with an Aadhaar or PAN OTP.
// Kind "any" reads the identifier field and tries Aadhaar first.
// @Summary Verify Aadhaar or PAN login OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param identifierOTPRequest body handlers.IdentifierOTPRequest true "identifier and otp"
// @Success 200 {object} models.AuthResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid, expired or missing OTP"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/verify-aadhaar-otp [post]
// @Router /api/auth/verify-pan-otp [post]
// @Router /api/auth/verify-login-otp [post]
func NewVerifyIdentifierOTPHandler(svc IdentifierOTPVerifier, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IdentifierOTPRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		value := req.value(kind)
		if value == "" || req.OTP == "" {
			writeErrorMessage(w, http.StatusBadRequest, "identifier and otp are required")
			return
		}

		res, err := svc.VerifyIdentifierOTP(r.Context(), kind, value, req.OTP)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewGoogleLoginHandler returns an HTTP handler for Google sign-in.
// @Summary Google login
// @Description Verifies a Google ID token and signs the user in, creating a verified account on first use.
// @Tags auth
// @Accept json
// @Produce json
// @Param googleLoginRequest body handlers.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} models.AuthResult
// @Failure 401 {object} handlers.ErrorResponse "Google login failed"
// @Router /api/auth/google-login [post]
func NewGoogleLoginHandler(svc GoogleLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleLoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.GoogleLogin(r.Context(), req.Token)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewForgotPasswordHandler returns an HTTP handler that emails a password reset link.
// @Summary Forgot password
// @Description Always answers 200 so the response does not reveal whether the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Router /api/auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "If the email is registered, a reset link has been sent"})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password from a reset token.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token"
// @Router /api/auth/reset-password/{token} [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ResetPassword(r.Context(), chi.URLParam(r, "token"), req.Password); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset"})
	}
}
