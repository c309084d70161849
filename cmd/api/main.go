// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/cache"
	"github.com/dangerclosesec/sitebook/internal/config"
	"github.com/dangerclosesec/sitebook/internal/email"
	"github.com/dangerclosesec/sitebook/internal/handler"
	"github.com/dangerclosesec/sitebook/internal/middleware"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/dangerclosesec/sitebook/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// The read model behind rollups and analytics runs on its own pool.
	poolCtx, cancelPool := context.WithTimeout(context.Background(), 5*time.Second)
	pool, err := pgxpool.New(poolCtx, cfg.DSN())
	cancelPool()
	if err != nil {
		return fmt.Errorf("connecting read pool: %w", err)
	}
	defer pool.Close()

	// Repositories
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	factorRepo := repository.NewUserFactorRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	ledgerReader := repository.NewLedgerReader(pool)

	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	cacheService, err := setupCache(cfg)
	if err != nil {
		return fmt.Errorf("setting up cache: %w", err)
	}
	defer cacheService.Close()

	// Services
	sessions := service.NewSessionService(userRepo, profileRepo, orgRepo, cacheService)
	tenants := service.NewTenantService(tx, userRepo, factorRepo, orgRepo, profileRepo, passwordHasher, tokenManager, emailService, sessions, cfg)
	attendance := service.NewAttendanceService(attendanceRepo, siteRepo, profileRepo)
	tasks, err := service.NewTaskService(taskRepo, siteRepo, profileRepo, schedule.Grid{
		StartHour:    cfg.Schedule.StartHour,
		VisibleHours: cfg.Schedule.VisibleHours,
		RowHeight:    float64(cfg.Schedule.RowHeight),
		MinHeight:    float64(cfg.Schedule.MinHeight),
	})
	if err != nil {
		return fmt.Errorf("configuring calendar: %w", err)
	}

	routes := handler.Routes{
		Auth:      handler.NewAuthHandler(tenants),
		Session:   handler.NewSessionHandler(service.NewSubscriptionService(orgRepo, sessions)),
		Sites:     handler.NewSiteHandler(service.NewSiteService(siteRepo, ledgerReader), service.NewMaterialService(materialRepo, siteRepo)),
		Finance:   handler.NewFinanceHandler(service.NewTransactionService(transactionRepo, siteRepo)),
		Quotes:    handler.NewQuoteHandler(service.NewQuoteService(quoteRepo, siteRepo)),
		Tasks:     handler.NewTaskHandler(tasks),
		Team:      handler.NewTeamHandler(service.NewTeamService(profileRepo, sessions), attendance, service.NewPayrollService(tx, profileRepo, attendanceRepo, transactionRepo)),
		Worker:    handler.NewWorkerHandler(attendance),
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(ledgerReader, siteRepo, profileRepo, taskRepo)),
		Settings:  handler.NewSettingsHandler(service.NewSettingsService(orgRepo, profileRepo, factorRepo, passwordHasher, sessions)),
	}
	metrics := middleware.NewMetrics()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		routes.Mount(r, tokenManager, sessions)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.Database.LogLevel)),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// setupCache returns the session cache: redis when configured, otherwise an
// in-process TTL cache.
func setupCache(cfg *config.Config) (*service.CacheService, error) {
	if !cfg.Redis.Enabled {
		return service.NewCacheService(service.CacheConfig{
			TTL:         cfg.Session.TTL,
			CleanupFreq: cfg.Session.CleanupFreq,
		}), nil
	}

	client := cache.NewRedisClient(cache.RedisOptions{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	slog.Info("session cache on redis", "host", cfg.Redis.Host)

	return service.NewCacheServiceWith(cache.NewRedisCache(client, "sitebook:", cfg.Session.TTL)), nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
