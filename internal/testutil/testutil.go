// Package testutil holds helpers shared by tests
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"barkwise/pet-api/db"
	"barkwise/pet-api/pkg/security"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database private to t
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	d, err := db.New(db.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := d.DB()
	require.NoError(t, err)

	// One connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return d
}

// Hasher returns a cheap argon2id hasher
func Hasher() *security.ArgonHash {
	return security.NewWithParams(1024, 1, 1)
}

// Clock is a manually advanced time source
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock() *Clock {
	return &Clock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

// Mail is a single delivery captured by Mailer
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer records sent mail instead of delivering it
type Mailer struct {
	mu   sync.Mutex
	Sent []Mail
	Err  error
}

func (m *Mailer) Send(_ context.Context, to, subject, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	m.Sent = append(m.Sent, Mail{To: to, Subject: subject, Body: body})
	return fmt.Sprintf("delivery-%d", len(m.Sent)), nil
}

func (m *Mailer) Last() (Mail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		return Mail{}, false
	}

	return m.Sent[len(m.Sent)-1], true
}

// TokenFromMail pulls the reset token out of a reset mail body
func TokenFromMail(t *testing.T, m Mail) string {
	t.Helper()

	_, rest, ok := strings.Cut(m.Body, "token=")
	require.True(t, ok, "no token in mail body")

	end := strings.IndexAny(rest, `"<& `)
	require.Greater(t, end, 0)

	return rest[:end]
}
