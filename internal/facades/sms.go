package facades

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrSMSNotConfigured is returned by UnconfiguredSMS for every message.
var ErrSMSNotConfigured = errors.New("sms provider not configured")

// MessageCreator creates outbound messages. Implemented by the Twilio API service.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSMS sends SMS through the Twilio REST API.
type TwilioSMS struct {
	client      MessageCreator
	from        string
	countryCode string
}

// NewTwilioSMS creates a TwilioSMS from account credentials.
func NewTwilioSMS(accountSID, authToken, from, countryCode string) *TwilioSMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewTwilioSMSWithClient(client.Api, from, countryCode)
}

// NewTwilioSMSWithClient creates a TwilioSMS around an existing message client.
func NewTwilioSMSWithClient(client MessageCreator, from, countryCode string) *TwilioSMS {
	return &TwilioSMS{client: client, from: from, countryCode: countryCode}
}

// SendSMS sends body to the given phone number.
func (s *TwilioSMS) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(s.e164(to))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.CreateMessage(params)
	if err != nil {
		logger.Log.Errorw("failed to send SMS via Twilio", "to", to, "error", err)
		return err
	}

	var sid string
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	logger.Log.Infow("SMS sent", "to", to, "sid", sid)
	return nil
}

// e164 keeps numbers that already carry a '+' or a 00 international prefix.
// Other numbers lose a single trunk 0 and get the country code.
func (s *TwilioSMS) e164(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return "+" + digitsOnly(phone)
	}
	digits := digitsOnly(phone)
	if strings.HasPrefix(digits, "00") {
		return "+" + digits[2:]
	}
	return s.countryCode + strings.TrimPrefix(digits, "0")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnconfiguredSMS fails every send so contacts are reported as not notified.
type UnconfiguredSMS struct{}

// SendSMS always returns ErrSMSNotConfigured.
func (UnconfiguredSMS) SendSMS(_ context.Context, to, _ string) error {
	logger.Log.Warnw("sms provider not configured", "to", to)
	return ErrSMSNotConfigured
}
