package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/elecmate/signup-recovery/internal/api"
	"github.com/elecmate/signup-recovery/internal/campaign"
	"github.com/elecmate/signup-recovery/internal/config"
	"github.com/elecmate/signup-recovery/internal/identity"
	"github.com/elecmate/signup-recovery/internal/mailer"
	"github.com/elecmate/signup-recovery/internal/pkg/distlock"
	"github.com/elecmate/signup-recovery/internal/pkg/logger"
	"github.com/elecmate/signup-recovery/internal/repository/postgres"
	"github.com/elecmate/signup-recovery/internal/template"
)

// lockTTL bounds how long a crashed sender can keep a recipient locked.
const lockTTL = 30 * time.Second

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if cfg.Log.RedactPII != nil {
		logger.SetRedactPII(*cfg.Log.RedactPII)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		log.Fatalf("database unreachable: %v", err)
	}
	cancel()

	// Redis is optional. Without it the send guard falls back to Postgres
	// advisory locks, which still covers a multi-instance deployment.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, falling back to advisory locks", "error", err)
			redisClient.Close()
			redisClient = nil
		}
		cancel()
	}

	identityClient := identity.NewClient(cfg.Identity)

	sender, err := buildSender(cfg.Mail)
	if err != nil {
		log.Fatalf("configure mail provider: %v", err)
	}

	renderer, err := template.New()
	if err != nil {
		log.Fatalf("parse email templates: %v", err)
	}

	profiles := postgres.NewProfileRepo(db)
	deliveryLog := postgres.NewDeliveryLogRepo(db)
	locks := func(key string) campaign.Lock {
		return distlock.NewLock(redisClient, db, key, lockTTL)
	}

	svc := campaign.New(profiles, deliveryLog, identityClient, sender, renderer,
		locks, cfg.Campaign, cfg.Mail)

	server := api.NewServer(cfg.Server, svc, identityClient, profiles)

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr, "mail_provider", cfg.Mail.Provider,
		"redis_locking", redisClient != nil)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
}

// buildSender picks the transactional mail adapter from configuration.
func buildSender(cfg config.MailConfig) (mailer.Sender, error) {
	switch cfg.Provider {
	case "", "resend":
		return mailer.NewResendSender(cfg.Resend), nil
	case "ses":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return mailer.NewSESSender(ctx, cfg.SES)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
