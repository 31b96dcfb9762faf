package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/projetoguri/sgpg/internal/database"
	"github.com/projetoguri/sgpg/internal/handler"
	"github.com/projetoguri/sgpg/internal/logger"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/router"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("backend", cfg.BackendURL).
		Str("session_driver", cfg.SessionDriver).
		Msg("Starting SGPG")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Backend REST Client ───────────────────────────────────────────
	api, err := client.New(cfg.BackendURL, cfg.BackendTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid backend configuration")
	}

	// ─── Session Storage ───────────────────────────────────────────────
	driver, rdb, err := newSessionDriver(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up session storage")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	flashCookies, err := session.NewCookieDriver(config.StorageKey.Flash, cfg.SessionSecret, 0, cfg.SecureCookies)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up notifications")
	}
	flasher := session.NewFlasher(flashCookies)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(api.Employees, session.NewStore(), cfg.SessionStaleAfter, log)
	services := &handler.Services{
		Students:         service.NewEntityService[model.Student, model.StudentDTO](api.Students, policy.Students, log),
		Employees:        service.NewEntityService[model.Employee, model.EmployeeDTO](api.Employees, policy.Employees, log),
		Roles:            service.NewEntityService[model.Role, model.RoleDTO](api.Roles, policy.Roles, log),
		Instruments:      service.NewEntityService[model.Instrument, model.InstrumentDTO](api.Instruments, policy.Instruments, log),
		InstrumentTypes:  service.NewEntityService[model.InstrumentType, model.InstrumentTypeDTO](api.InstrumentTypes, policy.Instruments, log),
		InstrumentBrands: service.NewEntityService[model.InstrumentBrand, model.InstrumentBrandDTO](api.InstrumentBrands, policy.Instruments, log),
		Classes:          service.NewClassService(api.Classes, api.Employees, log),
	}
	dashboardService := service.NewDashboardService(api)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:             handler.NewAuthHandler(authService, flasher, log),
		Dashboard:        handler.NewDashboardHandler(dashboardService, flasher, log),
		Students:         handler.NewStudentHandler(services, flasher, log),
		Employees:        handler.NewEmployeeHandler(services, flasher, log),
		Roles:            handler.NewRoleHandler(services, flasher, log),
		Instruments:      handler.NewInstrumentHandler(services, flasher, log),
		InstrumentTypes:  handler.NewInstrumentTypeHandler(services, flasher, log),
		InstrumentBrands: handler.NewInstrumentBrandHandler(services, flasher, log),
		Classes:          handler.NewClassHandler(services, flasher, log),
		Roster:           handler.NewRosterHandler(services.Classes, services.Students, flasher, log),
		System:           handler.NewSystemHandler(api, rdb, cfg.SessionDriver, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r, err := router.SetupRouter(authService, driver, flasher, handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// newSessionDriver builds the configured session storage. Only the redis
// driver returns a client.
func newSessionDriver(ctx context.Context, cfg *config.Config, log zerolog.Logger) (session.Driver, *redis.Client, error) {
	switch cfg.SessionDriver {
	case config.SessionDriverCookie:
		d, err := session.NewCookieDriver("sgpg_session", cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)
		return d, nil, err
	case config.SessionDriverToken:
		d, err := session.NewTokenDriver(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)
		return d, nil, err
	case config.SessionDriverRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisDriver(rdb, cfg.SessionTTL, cfg.SecureCookies, log), rdb, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.SessionDriver)
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
