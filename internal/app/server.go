package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/mazag-backend/internal/adapter/fixtures"
	"github.com/heartmarshall/mazag-backend/internal/adapter/kvrepo"
	"github.com/heartmarshall/mazag-backend/internal/adapter/provider/canned"
	"github.com/heartmarshall/mazag-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/mazag-backend/internal/auth"
	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/service/booking"
	"github.com/heartmarshall/mazag-backend/internal/service/catalog"
	"github.com/heartmarshall/mazag-backend/internal/service/chat"
	"github.com/heartmarshall/mazag-backend/internal/service/onboarding"
	"github.com/heartmarshall/mazag-backend/internal/service/personalization"
	"github.com/heartmarshall/mazag-backend/internal/transport/middleware"
	"github.com/heartmarshall/mazag-backend/internal/transport/rest"
)

// rateLimiterCleanup is how often idle rate limit buckets are swept.
const rateLimiterCleanup = time.Minute

// replier is the chat reply provider.
type replier interface {
	Reply(ctx context.Context, text, personality string) (string, error)
}

// server holds the assembled HTTP handler and what must be released on shutdown.
type server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

func (s *server) close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// newServer builds services and the HTTP handler over an open store.
// The catalog is loaded before returning so that broken fixtures fail startup.
func newServer(ctx context.Context, cfg *config.Config, store kvStore, logger *slog.Logger) (*server, error) {
	// Step 1: catalog.
	catalogSvc := catalog.NewService(logger, fixtures.NewSource(cfg.Catalog, logger), catalog.CacheConfig{
		Size: cfg.Catalog.CacheSize,
		TTL:  cfg.Catalog.CacheTTL,
	})
	if err := catalogSvc.Warm(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	// Step 2: metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.MustNewMetrics(reg)

	// Step 3: services.
	onboardingSvc := onboarding.NewService(logger, kvrepo.NewProfileRepo(store))
	homeSvc := personalization.NewService(logger, onboardingSvc, catalogSvc)
	chatSvc := chat.NewService(logger, onboardingSvc, newReplier(cfg.Chat, logger), metrics)
	bookingSvc := booking.NewService(logger, catalogSvc, kvrepo.NewBookingRepo(store), kvrepo.NewReminderRepo(store))

	// Step 4: routes.
	srv := &server{}
	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(store, cfg.Store.Backend, BuildVersion()),
		Onboarding: rest.NewOnboardingHandler(onboardingSvc, logger),
		Home:       rest.NewHomeHandler(homeSvc, logger),
		Catalog:    rest.NewCatalogHandler(catalogSvc, logger),
		Chat:       rest.NewChatHandler(chatSvc, logger),
		Booking:    rest.NewBookingHandler(bookingSvc, logger),
		Metrics:    middleware.Handler(reg),
	}
	if cfg.Chat.RateLimitPerMinute > 0 {
		srv.limiter = middleware.NewRateLimiter(rateLimiterCleanup)
		handlers.ChatLimit = srv.limiter.Limit(cfg.Chat.RateLimitPerMinute)
	}
	mux := rest.NewRouter(handlers)

	// Step 5: middleware. Metrics wraps the mux directly so the matched
	// route pattern is visible to it.
	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Auth.Enabled() {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		chain = append(chain, middleware.Auth(jwt))
	} else {
		logger.Info("auth disabled, running in single-device mode")
	}
	chain = append(chain, metrics.Middleware())

	srv.handler = middleware.Chain(chain...)(mux)
	return srv, nil
}

func newReplier(cfg config.ChatConfig, logger *slog.Logger) replier {
	if cfg.Provider == config.ProviderAnthropic {
		logger.Info("chat replies from anthropic", slog.String("model", cfg.Model))
		return claude.NewReplier(cfg, logger)
	}
	logger.Info("chat replies from canned responses")
	return canned.NewReplier()
}
