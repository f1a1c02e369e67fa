package facades

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Username: "noreply@example.com", Password: "secret"})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), "user@example.com", "Your OTP", "Your code is 123456")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Your OTP\r\n")
	assert.True(t, strings.HasSuffix(string(gotMsg), "\r\n\r\nYour code is 123456"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 2525, From: "a@example.com"})
	boom := errors.New("connection refused")
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := m.Send(context.Background(), "user@example.com", "s", "b")
	assert.ErrorIs(t, err, boom)

	assert.Error(t, m.Send(context.Background(), "", "s", "b"))
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"})
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("should not dial")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, "user@example.com", "s", "b"), context.Canceled)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, LogMailer{}.Send(context.Background(), "user@example.com", "s", "b"))
}
