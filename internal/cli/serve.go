package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/cache"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	"github.com/Math-l7/scheduling-modular-api/internal/config"
	dbpkg "github.com/Math-l7/scheduling-modular-api/internal/db"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/infra/lock"
	"github.com/Math-l7/scheduling-modular-api/internal/logging"
	"github.com/Math-l7/scheduling-modular-api/internal/middleware"
	"github.com/Math-l7/scheduling-modular-api/internal/routes"
	"github.com/Math-l7/scheduling-modular-api/internal/telemetry"
)

func ServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.ServerPort = port
			}
			return Serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides SERVER_PORT)")
	return cmd
}

// Serve runs the API until ctx is canceled or SIGINT/SIGTERM arrives.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.ServiceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// -------- tracing --------
	shutdownTracing, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		logger.Error("otel setup failed", "err", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// -------- storage --------
	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	rdb, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return err
	}

	var (
		locker  domain.StaffLocker = lock.NewLocal()
		limiter middleware.Limiter = middleware.NewLocalLimiter(cfg.RateLimitPerMinute)
	)
	if rdb != nil {
		defer rdb.Close()
		locker = lock.NewRedis(rdb, cfg.BookingLockTTL, logger)
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute)
		logger.Info("redis enabled", "addr", cfg.RedisAddr)
	} else {
		logger.Warn("redis not configured, using in-process staff lock and rate limiter")
	}

	// -------- audit --------
	stores := audit.Stores{audit.NewGormStore(db)}
	if cfg.KafkaEnabled() {
		ks := audit.NewKafkaStore(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		defer ks.Close()
		stores = append(stores, ks)
		logger.Info("audit events published to kafka", "topic", cfg.KafkaAuditTopic)
	}
	dispatcher := audit.NewDispatcher(stores, logger)
	defer dispatcher.Close()

	// -------- http --------
	if logging.ParseLevel(cfg.LogLevel) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:      db,
		Locker:  locker,
		Audit:   dispatcher,
		Limiter: limiter,
		Clock:   clock.NewSystem(cfg.Timezone),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, cfg.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
