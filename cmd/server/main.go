package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"messaging-api/internal/config"
	"messaging-api/internal/observability/logging"
	"messaging-api/internal/observability/metrics"
	impl "messaging-api/internal/service/impl"
	"messaging-api/internal/store"
	httpx "messaging-api/internal/transport/http"
	"messaging-api/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "messaging",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()

	metrics.MustRegister()

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	if err := st.AutoMigrate(context.Background()); err != nil {
		logger.Error("automigrate", "error", err)
		os.Exit(1)
	}

	pw := impl.NewPasswordServiceBcrypt()
	ts := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		TTL:        cfg.TokenTTL,
		SigningKey: []byte(cfg.SigningKey),
	})
	as := impl.NewAuthServiceImpl(st.Users(), pw, ts)
	us := impl.NewUserServiceImpl(st, pw)
	ms := impl.NewMessageServiceImpl(st)

	handler := httpx.NewRouter(cfg, as, us, ms, ts)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("messaging service listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
