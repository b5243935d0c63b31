package mail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetBody(t *testing.T) {
	body, err := ResetBody("A", "http://localhost:8080/reset-password?token=abc", 15*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, body, "Hello A,")
	assert.Contains(t, body, `href="http://localhost:8080/reset-password?token=abc"`)
	assert.Contains(t, body, "expire in 15 minutes")
}

func TestResetBodyEscapesName(t *testing.T) {
	body, err := ResetBody("<script>", "http://x/r?token=1", time.Minute)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}

func TestNewSMTPValidates(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{From: "no-reply@barkwise.com"})
	assert.Error(t, err)

	_, err = NewSMTP(SMTPConfig{Host: "smtp.example.com"})
	assert.Error(t, err)

	d, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@barkwise.com"})
	require.NoError(t, err)

	_, err = d.Send(context.Background(), "no-reply@barkwise.com", "s", "b")
	assert.Error(t, err)
}

func TestLogDispatcher(t *testing.T) {
	id, err := LogDispatcher{}.Send(context.Background(), "a@x.com", ResetSubject, "<p>hi</p>")
	require.NoError(t, err)
	assert.Len(t, id, 24)
}
