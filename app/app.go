// Package app wires the dependencies and HTTP endpoints together
package app

import (
	"barkwise/pet-api/db"
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/mail"
	"barkwise/pet-api/internal/service"
	"barkwise/pet-api/pkg/security"
	"context"
	"fmt"
	"time"

	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App is a fully wired server. Close must be called on shutdown.
type App struct {
	Deps   *internal.Deps
	Router *gin.Engine

	cleanup    *cron.Cron
	redis      *redis.Client
	stopRouter func()
}

// New builds the application from the loaded configuration
func New(ctx context.Context) (*App, error) {
	database, err := db.New(viper.GetString("database.driver"), viper.GetString("database.dsn"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	d := &internal.Deps{
		DB: database,
		Hasher: security.NewWithParams(
			viper.GetUint32("security.argon.memory"),
			viper.GetUint32("security.argon.iterations"),
			uint8(viper.GetUint("security.argon.parallelism")),
		),
		Now: time.Now,
	}

	a := &App{Deps: d}

	if err := a.setup(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) setup(ctx context.Context) error {
	d := a.Deps

	var err error

	d.Tokens, err = security.NewTokenIssuer(viper.GetString("jwt.secret"), viper.GetDuration("jwt.ttl"))
	if err != nil {
		return err
	}

	d.Mailer, err = newMailer()
	if err != nil {
		return err
	}

	d.Resets, err = service.NewResetLedger(service.ResetLedgerOpts{
		DB:       d.DB,
		Hasher:   d.Hasher,
		Mailer:   d.Mailer,
		ResetURL: viper.GetString("app.reset_url"),
		TTL:      viper.GetDuration("security.reset_ttl"),
		Now:      d.Now,
	})
	if err != nil {
		return err
	}

	opts := RouterOpts{
		CORSOrigins: viper.GetStringSlice("host.cors_origins"),
		RateLimit:   viper.GetInt("security.rate_limit"),
		CacheTTL:    viper.GetDuration("cache.ttl"),
	}

	if addr := viper.GetString("cache.redis_addr"); addr != "" && opts.CacheTTL > 0 {
		store, client, err := newRedisStore(ctx, addr, viper.GetString("cache.redis_password"))
		if err != nil {
			zap.L().Warn("Falling back to in-memory response cache", zap.Error(err))
		} else {
			a.redis = client
			opts.CacheStore = store
		}
	}

	a.Router, a.stopRouter = NewRouter(d, opts)

	a.cleanup, err = service.TicketCleanup(viper.GetString("security.reset_cleanup_schedule"), d.DB)
	return err
}

// newRedisStore connects to redis and returns a response cache store on top
// of it. The client is returned so it can be closed on shutdown.
func newRedisStore(ctx context.Context, addr, password string) (*persist.RedisStore, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s, %w", addr, err)
	}

	return persist.NewRedisStore(client), client, nil
}

func newMailer() (mail.Dispatcher, error) {
	switch viper.GetString("mail.driver") {
	case "smtp":
		return mail.NewSMTP(mail.SMTPConfig{
			Host:     viper.GetString("mail.host"),
			Port:     viper.GetInt("mail.port"),
			Username: viper.GetString("mail.username"),
			Password: viper.GetString("mail.password"),
			From:     viper.GetString("mail.from"),
		})
	case "log", "":
		return mail.LogDispatcher{}, nil
	default:
		return nil, fmt.Errorf("unsupported mail driver %q", viper.GetString("mail.driver"))
	}
}

// Close stops the background jobs and releases the database. It is safe to
// call on a partially built App.
func (a *App) Close() {
	if a.cleanup != nil {
		<-a.cleanup.Stop().Done()
	}

	if a.stopRouter != nil {
		a.stopRouter()
	}

	if a.redis != nil {
		a.redis.Close()
	}

	if sqlDB, err := a.Deps.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
