package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// TokenValidator validates a Google ID token for an audience. Implemented by *idtoken.Validator.
type TokenValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// GoogleVerifier checks Google sign-in ID tokens issued for this application.
type GoogleVerifier struct {
	validator TokenValidator
	clientID  string
}

// NewGoogleVerifier creates a GoogleVerifier backed by the idtoken package.
// Google's public certificates need no credentials, so a plain HTTP client is used.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(http.DefaultClient))
	if err != nil {
		return nil, fmt.Errorf("create idtoken validator: %w", err)
	}
	return NewGoogleVerifierWithValidator(v, clientID), nil
}

// NewGoogleVerifierWithValidator creates a GoogleVerifier around an existing validator.
func NewGoogleVerifierWithValidator(v TokenValidator, clientID string) *GoogleVerifier {
	return &GoogleVerifier{validator: v, clientID: clientID}
}

// Verify validates the token and returns the email and name it carries.
func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*models.GoogleIdentity, error) {
	payload, err := g.validator.Validate(ctx, idToken, g.clientID)
	if err != nil {
		logger.Log.Warnw("google id token rejected", "error", err)
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google id token has no email claim")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, fmt.Errorf("google email %s is not verified", email)
	}

	name, _ := payload.Claims["name"].(string)
	return &models.GoogleIdentity{Email: email, Name: name}, nil
}
