package service

import (
	"barkwise/pet-api/internal/mail"
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/pkg/apperr"
	"barkwise/pet-api/pkg/security"
	"barkwise/pet-api/validators"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultResetTTL = time.Minute * 15

var ErrInvalidOrExpiredToken = apperr.Validation("Token expired or invalid")

// ResetLedger issues and consumes password reset tickets
type ResetLedger struct {
	db       *gorm.DB
	hasher   security.Hasher
	mailer   mail.Dispatcher
	resetURL string
	ttl      time.Duration
	now      func() time.Time
}

type ResetLedgerOpts struct {
	DB     *gorm.DB
	Hasher security.Hasher
	Mailer mail.Dispatcher
	// Page the reset link points to, the token is appended as ?token=
	ResetURL string
	TTL      time.Duration
	Now      func() time.Time
}

func NewResetLedger(o ResetLedgerOpts) (*ResetLedger, error) {
	if o.DB == nil || o.Hasher == nil || o.Mailer == nil {
		return nil, errors.New("reset ledger needs a database, hasher and mailer")
	}

	if _, err := url.Parse(o.ResetURL); err != nil || o.ResetURL == "" {
		return nil, fmt.Errorf("invalid reset url %q", o.ResetURL)
	}

	if o.TTL <= 0 {
		o.TTL = DefaultResetTTL
	}

	if o.Now == nil {
		o.Now = time.Now
	}

	return &ResetLedger{
		db:       o.DB,
		hasher:   o.Hasher,
		mailer:   o.Mailer,
		resetURL: o.ResetURL,
		ttl:      o.TTL,
		now:      o.Now,
	}, nil
}

// Receipt describes what Request did. It's empty when the email doesn't
// belong to anyone, callers must not leak that to the client.
type Receipt struct {
	DeliveryID string
}

// Request creates a ticket for the account registered with email and mails
// the reset link to it. Unknown emails are not an error.
func (l *ResetLedger) Request(ctx context.Context, email string) (Receipt, error) {
	if email == "" {
		return Receipt{}, apperr.Validation("Email required")
	}

	var user model.User

	err := l.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Receipt{}, nil
		}

		return Receipt{}, apperr.Internal(fmt.Errorf("failed to look up user, %w", err))
	}

	raw, hash, err := security.NewResetToken()
	if err != nil {
		return Receipt{}, apperr.Internal(fmt.Errorf("failed to generate reset token, %w", err))
	}

	ticket := model.PasswordReset{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: l.now().Add(l.ttl),
	}

	if err := l.db.WithContext(ctx).Create(&ticket).Error; err != nil {
		return Receipt{}, apperr.Internal(fmt.Errorf("failed to store reset ticket, %w", err))
	}

	body, err := mail.ResetBody(user.Name, l.link(raw), l.ttl)
	if err != nil {
		return Receipt{}, apperr.Internal(fmt.Errorf("failed to render reset mail, %w", err))
	}

	id, err := l.mailer.Send(ctx, user.Email, mail.ResetSubject, body)
	if err != nil {
		// An unmailed ticket can't be used by its owner, drop it
		if derr := l.db.WithContext(ctx).Delete(&model.PasswordReset{}, "id = ?", ticket.ID).Error; derr != nil {
			zap.L().Error("Failed to drop unsent reset ticket", zap.Error(derr), zap.String("ticketID", ticket.ID.String()))
		}

		return Receipt{}, apperr.Internal(fmt.Errorf("failed to send reset mail, %w", err))
	}

	zap.L().Debug("Reset ticket issued", zap.String("userID", user.ID.String()), zap.String("delivery_id", id))

	return Receipt{DeliveryID: id}, nil
}

// Consume sets a new password for the owner of token and invalidates the
// ticket. A token can be consumed once, concurrent attempts with the same
// token have exactly one winner.
func (l *ResetLedger) Consume(ctx context.Context, token, newPassword, confirmPassword string) error {
	if token == "" {
		return apperr.Validation("Invalid data")
	}

	// Same rules as registration
	if err := validators.PasswordValidator(newPassword, confirmPassword); err != nil {
		return apperr.Validation("Invalid data")
	}

	hash := security.HashResetToken(token)

	var ticket model.PasswordReset

	err := l.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		First(&ticket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredToken
		}

		return apperr.Internal(fmt.Errorf("failed to look up reset ticket, %w", err))
	}

	now := l.now()
	if ticket.Expired(now) {
		return ErrInvalidOrExpiredToken
	}

	// Hash before opening the transaction to keep it short
	passwordHash, err := l.hasher.Hash(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("failed to hash password, %w", err))
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only one caller can delete the row, that caller owns the ticket
		r := tx.
			Where("id = ? AND expires_at > ?", ticket.ID, now).
			Delete(&model.PasswordReset{})
		if r.Error != nil {
			return apperr.Internal(fmt.Errorf("failed to consume reset ticket, %w", r.Error))
		}

		if r.RowsAffected != 1 {
			return ErrInvalidOrExpiredToken
		}

		r = tx.
			Model(&model.User{}).
			Where("id = ?", ticket.UserID).
			Update("password_hash", passwordHash)
		if r.Error != nil {
			return apperr.Internal(fmt.Errorf("failed to update password, %w", r.Error))
		}

		if r.RowsAffected != 1 {
			return ErrInvalidOrExpiredToken
		}

		// Other outstanding tickets were issued for the old password
		if err := tx.
			Where("user_id = ?", ticket.UserID).
			Delete(&model.PasswordReset{}).
			Error; err != nil {
			return apperr.Internal(fmt.Errorf("failed to clear reset tickets, %w", err))
		}

		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Debug("Password reset", zap.String("userID", ticket.UserID.String()))
	return nil
}

func (l *ResetLedger) link(token string) string {
	u, _ := url.Parse(l.resetURL)

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String()
}
