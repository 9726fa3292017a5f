// Command token issues an access token for a user, for local testing of
// multi-user deployments. It signs with the configured auth secret.
//
// Flags:
//
//	--user  user UUID (default: a new random UUID)
//	--tier  FREE or PREMIUM (default: FREE)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mazag-backend/internal/app"
	"github.com/heartmarshall/mazag-backend/internal/auth"
	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user UUID (default: random)")
	tierFlag := flag.String("tier", string(domain.TierFree), "subscription tier: FREE or PREMIUM")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Auth.Enabled() {
		logger.Error("auth.jwt_secret is not set, tokens would not be accepted")
		os.Exit(1)
	}

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			logger.Error("invalid --user", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	tier := domain.Tier(strings.ToUpper(strings.TrimSpace(*tierFlag)))
	if !tier.IsValid() {
		logger.Error("invalid --tier", slog.String("tier", *tierFlag))
		os.Exit(1)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(userID, tier)
	if err != nil {
		logger.Error("generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token issued",
		slog.String("user_id", userID.String()),
		slog.String("tier", tier.String()),
		slog.Duration("ttl", cfg.Auth.AccessTokenTTL),
	)
	fmt.Println(token)
}
