package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/jobconfigs"
	"resume-scoring/internal/scoring"
	"resume-scoring/internal/services/health"
	"resume-scoring/internal/shared/config"
	"resume-scoring/internal/shared/events"
	"resume-scoring/internal/shared/server"
	"resume-scoring/internal/shared/storage/db"
	"resume-scoring/internal/shared/telemetry"
)

const connectTimeout = 10 * time.Second

// App holds shared dependencies and the HTTP router.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Events            events.Publisher
	JobConfigsRepo    jobconfigs.Repo
	JobConfigs        *jobconfigs.Service
	JobConfigsHandler *jobconfigs.Handler
	ScoringHandler    *scoring.Handler
	Health            *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	publisher, err := buildEvents(ctx, cfg)
	if err != nil {
		if sqlDB != nil {
			sqlDB.Close()
		}
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Events: publisher,
	}
	buildServices(app)
	app.Health = buildHealth(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Handlers: []server.RouteRegistrar{app.ScoringHandler, app.JobConfigsHandler},
		Health:   app.Health,
	})
	return app, nil
}

// Close releases the database and event connections.
func (a *App) Close() error {
	var errs []error
	if closer, ok := a.Events.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildHealth(app *App) *health.Service {
	svc := health.NewService()
	if app.DB != nil {
		svc.Register("database", app.DB.PingContext)
	}
	if pub, ok := app.Events.(*events.RedisPublisher); ok {
		svc.Register("redis", func(ctx context.Context) error {
			return pub.Client.Ping(ctx).Err()
		})
	}
	return svc
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_store", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_store", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildEvents(ctx context.Context, cfg config.Config) (events.Publisher, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return events.NopPublisher{}, nil
	}
	client, err := events.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.events_disabled", map[string]any{"error": err})
			return events.NopPublisher{}, nil
		}
		return nil, err
	}
	return &events.RedisPublisher{Client: client, Channel: cfg.EventChannel}, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.JobConfigsRepo = &jobconfigs.PGRepo{DB: app.DB}
	} else {
		app.JobConfigsRepo = jobconfigs.NewMemoryRepo()
	}

	svc := &jobconfigs.Service{
		Repo:   app.JobConfigsRepo,
		Events: app.Events,
	}
	if strings.TrimSpace(app.Config.SyncFunctionURL) != "" {
		svc.Invoker = jobconfigs.NewHTTPInvoker(app.Config.SyncFunctionURL, app.Config.SyncFunctionKey, app.Config.SyncTimeout)
	}
	if strings.TrimSpace(app.Config.PlatformAPIBaseURL) != "" {
		svc.Platform = jobconfigs.NewHTTPPlatformClient(app.Config.PlatformAPIBaseURL, app.Config.PlatformAPIToken)
	}

	app.JobConfigs = svc
	app.JobConfigsHandler = jobconfigs.NewHandler(svc)
	app.ScoringHandler = scoring.NewHandler(app.Config.MaxUploadBytes)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
