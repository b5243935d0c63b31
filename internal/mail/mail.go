// Package mail delivers outgoing email
package mail

import (
	"context"
	"errors"
	"fmt"

	"barkwise/pet-api/pkg/util"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Dispatcher sends a single HTML email and returns an ID for the delivery.
// Sends are attempted once.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPDispatcher sends mail through an SMTP relay
type SMTPDispatcher struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTP(cfg SMTPConfig) (*SMTPDispatcher, error) {
	if cfg.Host == "" {
		return nil, errors.New("no smtp host provided")
	}

	if cfg.From == "" {
		return nil, errors.New("no sender address provided")
	}

	return &SMTPDispatcher{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (s *SMTPDispatcher) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if to == s.cfg.From {
		return "", errors.New("invalid email address")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := util.RandStr(24)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, s.cfg.Host))
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send mail, %w", err)
	}

	return id, nil
}

// LogDispatcher doesn't send anything, it logs the message instead. Meant
// for local development.
type LogDispatcher struct{}

func (LogDispatcher) Send(_ context.Context, to, subject, htmlBody string) (string, error) {
	id := util.RandStr(24)

	zap.L().Info("Mail preview",
		zap.String("delivery_id", id),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", htmlBody),
	)

	return id, nil
}
