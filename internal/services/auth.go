package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const (
	// OTPTTL is how long an issued passcode stays valid.
	OTPTTL = 5 * time.Minute
	// ResetTokenTTL is how long a password reset link stays valid.
	ResetTokenTTL = 30 * time.Minute

	otpDigits = 6
)

// Identifier kinds accepted by the passcode login flows.
const (
	IdentifierAadhaar = "aadhaar"
	IdentifierPAN     = "pan"
	IdentifierAny     = "any"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAadhaar(ctx context.Context, aadhaar string) (*models.User, error)
	GetByPAN(ctx context.Context, pan string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, u models.NewUser) (*models.User, error)
	SetOTP(ctx context.Context, userID int64, otp string, issuedAt time.Time) error
	MarkVerified(ctx context.Context, userID int64) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, role string) (string, error)
}

// GoogleVerifier verifies Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.GoogleIdentity, error)
}

// ResetTokenStore keeps password reset tokens with a TTL.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// RegisterInput holds the registration form.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    *string
	Location *string
	Aadhaar  *string
	PAN      *string
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithClock overrides the time source used for passcode expiry.
func WithClock(now func() time.Time) AuthOpt {
	return func(s *AuthService) {
		s.now = now
	}
}

// WithResetURL sets the base URL of the password reset page.
func WithResetURL(url string) AuthOpt {
	return func(s *AuthService) {
		s.resetURL = strings.TrimRight(url, "/")
	}
}

// AuthService handles registration, passcodes and every login path.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	notifier    Notifier
	google      GoogleVerifier
	resetTokens ResetTokenStore
	resetURL    string
	now         func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	notifier Notifier,
	google GoogleVerifier,
	resetTokens ResetTokenStore,
	opts ...AuthOpt,
) *AuthService {
	s := &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		notifier:    notifier,
		google:      google,
		resetTokens: resetTokens,
		resetURL:    "http://localhost:3000/reset-password",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account and emails a passcode. Registering an email that
// exists but is not verified yet re-issues the passcode instead; created is false then.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (user *models.User, created bool, err error) {
	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", in.Email, "err", err)
		return nil, false, err
	}
	if existing != nil {
		if existing.IsVerified {
			logger.Log.Warnw("email already registered", "email", in.Email)
			return nil, false, ErrEmailAlreadyRegistered
		}
		if err := svc.issueOTP(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, false, err
	}
	code, err := generateOTP()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return nil, false, err
	}
	issuedAt := svc.now().UTC()

	user, err = svc.writer.Create(ctx, models.NewUser{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
		Phone:        in.Phone,
		Location:     in.Location,
		Aadhaar:      normalizeOptional(in.Aadhaar, NormalizeAadhaar),
		PAN:          normalizeOptional(in.PAN, NormalizePAN),
		OTP:          &code,
		OTPCreatedAt: &issuedAt,
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("user already exists", "username", in.Username, "email", in.Email)
		return nil, false, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, false, err
	}

	svc.sendOTP(ctx, user.Email, code)
	return user, true, nil
}

// ResendOTP issues a fresh passcode. It reports alreadyVerified without sending anything
// when the account needs no verification.
func (svc *AuthService) ResendOTP(ctx context.Context, email string) (alreadyVerified bool, err error) {
	user, err := svc.getByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user.IsVerified {
		return true, nil
	}
	return false, svc.issueOTP(ctx, user)
}

// VerifyOTP checks the emailed passcode, marks the account verified and signs the user in.
func (svc *AuthService) VerifyOTP(ctx context.Context, email, code string) (*models.AuthResult, error) {
	user, err := svc.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return svc.completeOTP(ctx, user, code)
}

// SendIdentifierOTP emails a login passcode to the account holding the Aadhaar or PAN number.
func (svc *AuthService) SendIdentifierOTP(ctx context.Context, kind, value string) error {
	user, err := svc.getByIdentifier(ctx, kind, value)
	if err != nil {
		return err
	}
	return svc.issueOTP(ctx, user)
}

// VerifyIdentifierOTP signs in the account holding the identifier. IdentifierAny tries Aadhaar, then PAN.
func (svc *AuthService) VerifyIdentifierOTP(ctx context.Context, kind, value, code string) (*models.AuthResult, error) {
	user, err := svc.getByIdentifier(ctx, kind, value)
	if err != nil {
		return nil, err
	}
	return svc.completeOTP(ctx, user, code)
}

// Login authenticates a verified user by email and password.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := svc.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified {
		logger.Log.Warnw("login of unverified account", "user_id", user.ID)
		return nil, ErrAccountNotVerified
	}
	if user.PasswordHash == "" {
		logger.Log.Warnw("password login for account without password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return svc.signIn(ctx, user)
}

// GoogleLogin signs in with a Google ID token, creating a verified account on first use.
func (svc *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.AuthResult, error) {
	identity, err := svc.google.Verify(ctx, idToken)
	if err != nil {
		logger.Log.Warnw("google token rejected", "error", err)
		return nil, ErrInvalidGoogleToken
	}

	user, err := svc.reader.GetByEmail(ctx, identity.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", identity.Email, "err", err)
		return nil, err
	}
	if user != nil {
		return svc.signIn(ctx, user)
	}

	username := identity.Name
	if username == "" {
		username, _, _ = strings.Cut(identity.Email, "@")
	}
	newUser := models.NewUser{
		Username:   username,
		Email:      identity.Email,
		Role:       models.RoleUser,
		IsVerified: true,
	}

	user, err = svc.writer.Create(ctx, newUser)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		// Display names are not unique, so fall back to a suffixed one.
		newUser.Username = fmt.Sprintf("%s_%s", username, uuid.NewString()[:8])
		user, err = svc.writer.Create(ctx, newUser)
	}
	if err != nil {
		logger.Log.Errorw("failed to create google user", "email", identity.Email, "err", err)
		return nil, err
	}
	logger.Log.Infow("google account created", "user_id", user.ID)

	return svc.signIn(ctx, user)
}

// ForgotPassword emails a reset link. Unknown emails are ignored so the response does not leak accounts.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return err
	}
	if user == nil {
		logger.Log.Infow("password reset requested for unknown email", "email", email)
		return nil
	}

	token := uuid.NewString()
	if err := svc.resetTokens.Save(ctx, token, user.ID, ResetTokenTTL); err != nil {
		logger.Log.Errorw("failed to save reset token", "user_id", user.ID, "err", err)
		return err
	}

	link := svc.resetURL + "/" + token
	sendEmail(ctx, svc.notifier, user.Email, "Password Reset - Women Safety App",
		fmt.Sprintf("Use the link below to reset your password. It expires in %d minutes.\n\n%s", int(ResetTokenTTL.Minutes()), link))
	return nil
}

// ResetPassword sets a new password using a token from ForgotPassword. Tokens are single use.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := svc.resetTokens.Get(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to read reset token", "err", err)
		return err
	}
	if userID == 0 {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}
	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}

	if err := svc.resetTokens.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete reset token", "user_id", userID, "err", err)
	}
	return nil
}

// issueOTP stores a fresh passcode, replacing any previous one, and emails it once.
func (svc *AuthService) issueOTP(ctx context.Context, user *models.User) error {
	code, err := generateOTP()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return err
	}
	if err := svc.writer.SetOTP(ctx, user.ID, code, svc.now().UTC()); err != nil {
		logger.Log.Errorw("failed to store otp", "user_id", user.ID, "err", err)
		return err
	}

	svc.sendOTP(ctx, user.Email, code)
	return nil
}

func (svc *AuthService) sendOTP(ctx context.Context, email, code string) {
	sendEmail(ctx, svc.notifier, email, "OTP Verification - Women Safety App",
		fmt.Sprintf("Your OTP for verification is: %s\nIt expires in %d minutes.", code, int(OTPTTL.Minutes())))
}

// completeOTP validates the code against the stored one and signs the user in.
func (svc *AuthService) completeOTP(ctx context.Context, user *models.User, code string) (*models.AuthResult, error) {
	if err := svc.checkOTP(user, code); err != nil {
		logger.Log.Warnw("otp rejected", "user_id", user.ID, "reason", err)
		return nil, err
	}
	if err := svc.writer.MarkVerified(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to mark user verified", "user_id", user.ID, "err", err)
		return nil, err
	}
	user.IsVerified = true
	user.OTP = nil
	user.OTPCreatedAt = nil
	return svc.signIn(ctx, user)
}

// checkOTP applies the passcode rules in order: present, not expired, matching.
func (svc *AuthService) checkOTP(user *models.User, code string) error {
	if user.OTP == nil || user.OTPCreatedAt == nil {
		return ErrOTPNotFound
	}
	if svc.now().After(user.OTPCreatedAt.Add(OTPTTL)) {
		return ErrOTPExpired
	}
	if *user.OTP != strings.TrimSpace(code) {
		return ErrOTPMismatch
	}
	return nil
}

func (svc *AuthService) signIn(ctx context.Context, user *models.User) (*models.AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	return &models.AuthResult{Token: token, User: user}, nil
}

func (svc *AuthService) getByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (svc *AuthService) getByIdentifier(ctx context.Context, kind, value string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	switch kind {
	case IdentifierAadhaar:
		user, err = svc.reader.GetByAadhaar(ctx, NormalizeAadhaar(value))
	case IdentifierPAN:
		user, err = svc.reader.GetByPAN(ctx, NormalizePAN(value))
	default:
		user, err = svc.reader.GetByAadhaar(ctx, NormalizeAadhaar(value))
		if err == nil && user == nil {
			user, err = svc.reader.GetByPAN(ctx, NormalizePAN(value))
		}
	}
	if err != nil {
		logger.Log.Errorw("failed to get user by identifier", "kind", kind, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("no user for identifier", "kind", kind)
		return nil, ErrUserNotFound
	}
	return user, nil
}

// NormalizeAadhaar strips separators from an Aadhaar number.
func NormalizeAadhaar(v string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(v))
}

// NormalizePAN upper-cases a PAN number.
func NormalizePAN(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// normalizeOptional applies fn to a non-empty value; empty values become nil so they
// do not clash on the unique indexes.
func normalizeOptional(v *string, fn func(string) string) *string {
	if v == nil {
		return nil
	}
	n := fn(*v)
	if n == "" {
		return nil
	}
	return &n
}

func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
