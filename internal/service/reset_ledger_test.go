package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/internal/testutil"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ledgerFixture struct {
	db     *gorm.DB
	ledger *ResetLedger
	mailer *testutil.Mailer
	clock  *testutil.Clock
	hasher security.Hasher
	user   model.User
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		db:     testutil.NewDB(t),
		mailer: &testutil.Mailer{},
		clock:  testutil.NewClock(),
		hasher: testutil.Hasher(),
	}

	hash, err := f.hasher.Hash("old-password")
	require.NoError(t, err)

	f.user = model.User{Name: "A", Email: "a@x.com", PasswordHash: hash}
	require.NoError(t, f.db.Create(&f.user).Error)

	f.ledger, err = NewResetLedger(ResetLedgerOpts{
		DB:       f.db,
		Hasher:   f.hasher,
		Mailer:   f.mailer,
		ResetURL: "http://localhost:8080/reset-password",
		Now:      f.clock.Now,
	})
	require.NoError(t, err)

	return f
}

func (f *ledgerFixture) request(t *testing.T) string {
	t.Helper()

	r, err := f.ledger.Request(context.Background(), f.user.Email)
	require.NoError(t, err)
	require.NotEmpty(t, r.DeliveryID)

	m, ok := f.mailer.Last()
	require.True(t, ok)

	return testutil.TokenFromMail(t, m)
}

func (f *ledgerFixture) passwordIs(t *testing.T, p string) bool {
	t.Helper()

	var u model.User
	require.NoError(t, f.db.First(&u, "id = ?", f.user.ID).Error)

	ok, err := f.hasher.Verify(p, u.PasswordHash)
	require.NoError(t, err)

	return ok
}

func TestRequestSendsResetLink(t *testing.T) {
	f := newLedgerFixture(t)

	token := f.request(t)

	m, _ := f.mailer.Last()
	assert.Equal(t, "a@x.com", m.To)
	assert.Equal(t, "Reset Your Password", m.Subject)
	assert.Contains(t, m.Body, "http://localhost:8080/reset-password?token="+token)
	assert.Len(t, token, security.ResetTokenSize*2)

	var tickets []model.PasswordReset
	require.NoError(t, f.db.Find(&tickets).Error)
	require.Len(t, tickets, 1)

	assert.Equal(t, f.user.ID, tickets[0].UserID)
	assert.Equal(t, security.HashResetToken(token), tickets[0].TokenHash)
	assert.True(t, tickets[0].ExpiresAt.Equal(f.clock.Now().Add(15*time.Minute)))
}

func TestRequestUnknownEmail(t *testing.T) {
	f := newLedgerFixture(t)

	r, err := f.ledger.Request(context.Background(), "nobody@x.com")
	require.NoError(t, err)

	assert.Empty(t, r.DeliveryID)
	assert.Empty(t, f.mailer.Sent)

	var n int64
	require.NoError(t, f.db.Model(&model.PasswordReset{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRequestNeedsEmail(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Request(context.Background(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRequestMailFailure(t *testing.T) {
	f := newLedgerFixture(t)
	f.mailer.Err = errors.New("smtp down")

	_, err := f.ledger.Request(context.Background(), f.user.Email)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.ErrorContains(t, err, "smtp down")

	// The ticket that never reached the user is gone
	var n int64
	require.NoError(t, f.db.Model(&model.PasswordReset{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestConsumeResetsPassword(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	require.NoError(t, f.ledger.Consume(context.Background(), token, "new-password", "new-password"))

	assert.True(t, f.passwordIs(t, "new-password"))
	assert.False(t, f.passwordIs(t, "old-password"))
}

func TestConsumeTwice(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	require.NoError(t, f.ledger.Consume(context.Background(), token, "first", "first"))

	err := f.ledger.Consume(context.Background(), token, "second", "second")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	assert.True(t, f.passwordIs(t, "first"))
}

func TestConsumeExpired(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	f.clock.Advance(16 * time.Minute)

	err := f.ledger.Consume(context.Background(), token, "new-password", "new-password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	assert.True(t, f.passwordIs(t, "old-password"))

	// Expired tickets stay until the cleanup job runs
	var n int64
	require.NoError(t, f.db.Model(&model.PasswordReset{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestConsumeJustBeforeExpiry(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	f.clock.Advance(14 * time.Minute)

	require.NoError(t, f.ledger.Consume(context.Background(), token, "new-password", "new-password"))
}

func TestConsumeUnknownToken(t *testing.T) {
	f := newLedgerFixture(t)
	f.request(t)

	err := f.ledger.Consume(context.Background(), "deadbeef", "new-password", "new-password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestConsumeValidation(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	tests := []struct {
		name, token, password, confirm string
	}{
		{"no token", "", "p", "p"},
		{"no password", token, "", ""},
		{"mismatch", token, "p1", "p2"},
		{"too long", token, strings.Repeat("x", 256), strings.Repeat("x", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.ledger.Consume(context.Background(), tt.token, tt.password, tt.confirm)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.NotErrorIs(t, err, ErrInvalidOrExpiredToken)
		})
	}

	// Validation failures don't burn the ticket
	require.NoError(t, f.ledger.Consume(context.Background(), token, "p", "p"))
}

func TestConsumeClearsOtherTickets(t *testing.T) {
	f := newLedgerFixture(t)
	first := f.request(t)
	second := f.request(t)

	require.NoError(t, f.ledger.Consume(context.Background(), second, "new-password", "new-password"))

	err := f.ledger.Consume(context.Background(), first, "other", "other")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestConsumeConcurrent(t *testing.T) {
	f := newLedgerFixture(t)
	token := f.request(t)

	const workers = 8

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		errs []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			err := f.ledger.Consume(context.Background(), token, "concurrent", "concurrent")

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				wins++
				return
			}
			errs = append(errs, err)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, wins)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	}
}

func TestPurgeExpiredTickets(t *testing.T) {
	f := newLedgerFixture(t)
	f.request(t)
	f.clock.Advance(10 * time.Minute)
	fresh := f.request(t)

	n, err := PurgeExpiredTickets(context.Background(), f.db, f.clock.Now().Add(6*time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.ledger.Consume(context.Background(), fresh, "new-password", "new-password"))
}

func TestTicketCleanupRejectsBadSchedule(t *testing.T) {
	_, err := TicketCleanup("every now and then", testutil.NewDB(t))
	assert.Error(t, err)

	c, err := TicketCleanup("@every 1h", testutil.NewDB(t))
	require.NoError(t, err)
	c.Stop()
}

func TestNewResetLedgerValidates(t *testing.T) {
	_, err := NewResetLedger(ResetLedgerOpts{})
	assert.Error(t, err)

	_, err = NewResetLedger(ResetLedgerOpts{
		DB:     testutil.NewDB(t),
		Hasher: testutil.Hasher(),
		Mailer: &testutil.Mailer{},
	})
	assert.Error(t, err)
}
