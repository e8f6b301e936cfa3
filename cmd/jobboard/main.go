package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"jobboard/internal/blob"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/observability/logging"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/service"
	impl "jobboard/internal/service/impl"
	"jobboard/internal/store"
	httpx "jobboard/internal/transport/http"
	"jobboard/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // optional .env for local dev

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "jobboard",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)
	logger.Info("starting service")

	cfg := config.Load()
	metrics.MustRegister("jobboard")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := gdb.AutoMigrate(
		&domain.User{},
		&domain.PasswordCredential{},
		&domain.ActivationToken{},
		&domain.Session{},
		&domain.Company{},
		&domain.Listing{},
		&domain.Application{},
	); err != nil {
		logger.Error("automigrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	resumes, err := blob.NewResumeStore(cfg.ResumeDir)
	if err != nil {
		logger.Error("resume store", "error", err)
		os.Exit(1)
	}

	var mail service.EmailService
	if cfg.SMTP.Enabled() {
		mail = impl.NewSMTPEmailService(cfg.SMTP)
	} else {
		logger.Warn("SMTP not configured, logging outbound mail instead")
		mail = impl.NewLogEmailService()
	}

	pw := impl.NewPasswordServiceArgon2id()
	tokens := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		Audience:   cfg.Audience,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
		SigningKey: []byte(cfg.SigningKey),
	}, st)

	auth := impl.NewAuthServiceImpl(st, pw, tokens, mail, impl.AuthConfig{
		ActivationTTL:     cfg.ActivationTTL,
		ActivationBaseURL: cfg.ActivationBaseURL,
	})

	router := httpx.NewRouter(httpx.API{
		Auth:         auth,
		Tokens:       tokens,
		Listings:     impl.NewListingServiceImpl(st),
		Companies:    impl.NewCompanyServiceImpl(st),
		Applications: impl.NewApplicationServiceImpl(st, mail, resumes),
		CORSOrigins:  strings.Split(os.Getenv("CORS_ORIGINS"), ","),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("jobboard listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
