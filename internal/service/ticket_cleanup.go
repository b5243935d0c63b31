package service

import (
	"barkwise/pet-api/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PurgeExpiredTickets deletes password reset tickets that expired before now
func PurgeExpiredTickets(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	r := db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.PasswordReset{})
	if r.Error != nil {
		return 0, r.Error
	}

	return r.RowsAffected, nil
}

// TicketCleanup schedules PurgeExpiredTickets with a cron spec such as
// "@every 1h". The returned cron must be stopped on shutdown.
func TicketCleanup(spec string, db *gorm.DB) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		n, err := PurgeExpiredTickets(context.Background(), db, time.Now())
		if err != nil {
			zap.L().Error("Failed to clean up expired reset tickets", zap.Error(err))
			return
		}

		if n > 0 {
			zap.L().Debug("Cleaned up expired reset tickets", zap.Int64("count", n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q, %w", spec, err)
	}

	c.Start()
	zap.L().Debug("Ticket cleanup attached", zap.String("schedule", spec))

	return c, nil
}
