package helpers

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"github.com/agentdesk/agentdesk/assets"
	"github.com/agentdesk/agentdesk/engine/llm"
	"github.com/agentdesk/agentdesk/engine/metrics"
	"github.com/agentdesk/agentdesk/engine/subsidy"
	"github.com/agentdesk/agentdesk/engine/template"
	"github.com/agentdesk/agentdesk/pkg/config"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// App holds everything a command needs to serve requests.
type App struct {
	Config    *config.Config
	Loader    *template.Loader
	Templates *template.Registry
	Records   template.RecordSource
	Metrics   *metrics.Recorder
	Registry  *prometheus.Registry

	executor *llm.Executor
	redis    *redis.Client
}

// NewApp wires the template tree, record store, metrics, and model runtime
// described by cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.FromContext(ctx)
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	loader := template.NewLoader(TemplatesFs(cfg), ".")
	app := &App{
		Config:    cfg,
		Loader:    loader,
		Templates: template.NewRegistry(),
		Metrics:   rec,
		Registry:  reg,
		executor:  llm.NewExecutor(llm.ConfigFromApp(cfg, llm.WithMetrics(rec))),
	}
	switch cfg.Store.Driver {
	case "redis":
		app.redis = NewRedisClient(cfg)
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Store.RedisAddr, err)
		}
		app.Records = template.NewRedisSource(app.redis, cfg.Store.RedisPrefix)
		log.Debug("Using redis record store", "addr", cfg.Store.RedisAddr)
	default:
		app.Records = template.NewFixtureSource(loader)
	}
	return app, nil
}

// TemplatesFs returns the on-disk template tree when configured, else the embedded one.
func TemplatesFs(cfg *config.Config) afero.Fs {
	if cfg.Templates.Dir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.Templates.Dir))
	}
	return assets.Templates()
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Store.RedisAddr,
		Password: cfg.Store.RedisPass.Value(),
		DB:       cfg.Store.RedisDB,
	})
}

// Pipeline returns the routed pipeline of a named template.
func (a *App) Pipeline(name string) (*template.Pipeline, error) {
	tpl, err := a.Templates.Get(name)
	if err != nil {
		return nil, err
	}
	return template.NewPipeline(tpl, a.Config, a.executor, a.Loader,
		template.WithRecords(a.Records),
		template.WithMetrics(a.Metrics),
	), nil
}

func (a *App) Subsidy() *subsidy.Service {
	return subsidy.NewService(a.Config, a.executor, a.Loader, a.Metrics)
}

// Redis returns the client when the redis store is selected.
func (a *App) Redis() *redis.Client {
	return a.redis
}

func (a *App) Close() {
	if a.executor != nil {
		if err := a.executor.Close(); err != nil {
			logger.Warn("Failed to close model clients", "error", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}
}
