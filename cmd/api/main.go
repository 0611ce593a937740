package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/passform/passform-go/internal/config"
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/handler"
	"github.com/passform/passform-go/internal/middleware"
	"github.com/passform/passform-go/internal/repository"
	"github.com/passform/passform-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := crypto.NewGenerator(newSource(cfg))

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(gen))

	formService := service.NewFormService(gen, cfg.FormTTL)
	go formService.RunSweeper(ctx, time.Minute)
	formHandler := handler.NewFormHandler(formService)

	generateLimiter := middleware.NewIPRateLimiter(20, 40)
	authLimiter := middleware.NewIPRateLimiter(5, 10)
	go generateLimiter.RunCleanup(ctx)
	go authLimiter.RunCleanup(ctx)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(generateLimiter.Handler)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Route("/api/v1/forms", formHandler.Routes)
	})

	// Accounts and presets need the database; the form endpoints do not.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, account and preset routes disabled", "error", err)
	} else {
		defer db.Close()
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}

		tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
		authService := service.NewAuthService(
			repository.NewUserRepository(db),
			crypto.NewHasher(crypto.DefaultHashParams()),
			tokens,
		)
		authHandler := handler.NewAuthHandler(authService)
		presetHandler := handler.NewPresetHandler(
			service.NewPresetService(repository.NewPresetRepository(db), gen),
		)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Handler)
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/presets", presetHandler.HandleListPresets)
			r.Post("/api/v1/presets", presetHandler.HandleCreatePreset)
			r.Put("/api/v1/presets/{preset_id}", presetHandler.HandleUpdatePreset)
			r.Delete("/api/v1/presets/{preset_id}", presetHandler.HandleDeletePreset)
			r.Post("/api/v1/presets/{preset_id}/generate", presetHandler.HandleGenerateFromPreset)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newSource(cfg config.Config) crypto.Source {
	if cfg.RandomSeed != nil {
		slog.Warn("using seeded random source, passwords are reproducible", "seed", *cfg.RandomSeed)
		return crypto.NewSeededSource(*cfg.RandomSeed)
	}
	if cfg.RandomSource == config.RandomSourceMath {
		return crypto.NewSource()
	}
	return crypto.CryptoSource{}
}
