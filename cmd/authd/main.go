// Command authd runs the authentication service: an identity registry with
// pluggable credential providers, bearer-token issuance, and an HTTP API.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/authd/config"
	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/logger"
	"github.com/skillsenselab/authd/observability"
	"github.com/skillsenselab/authd/provider"
	"github.com/skillsenselab/authd/provider/password"
	"github.com/skillsenselab/authd/server"
	"github.com/skillsenselab/authd/server/endpoint"
	"github.com/skillsenselab/authd/token"
	"github.com/skillsenselab/authd/version"
)

const serviceName = "authd"

func main() {
	if err := run(); err != nil {
		logger.Global().Fatal("startup failed", logger.Fields("error", err.Error()))
	}
}

func run() error {
	var cfg config.Config
	if err := config.Load(serviceName, &cfg); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobal(log)
	log.Info("starting", logger.Fields(
		"version", version.Short(),
		"environment", cfg.Environment,
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := observability.InitTracer(ctx, cfg.Observability, cfg.Name, version.Version)
	if err != nil {
		return err
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}
	mp, err := observability.InitMeter(ctx, cfg.Observability, cfg.Name, version.Version)
	if err != nil {
		return err
	}
	var metrics *observability.Metrics
	if mp != nil {
		defer mp.Shutdown(context.Background())
		metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return err
		}
	}

	pw, err := password.New(cfg.Password)
	if err != nil {
		return err
	}
	registry := provider.NewRegistry()
	if err := registry.Register(password.Type, pw); err != nil {
		return err
	}

	store := identity.NewStore(registry, log)
	for _, seed := range cfg.Identity.Seeds {
		if _, f := store.Add(seed, identity.Options{ValidFunctions: cfg.Identity.Functions}); f != nil {
			return fmt.Errorf("seed identity %q: %w", seed.Name, f)
		}
	}
	if len(cfg.Identity.Seeds) > 0 {
		log.Info("seed identities registered", logger.Fields("count", store.Len()))
	}

	tokens, err := token.NewService(&cfg.Token)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterRoutes(cfg.Name, endpoint.Deps{
		Store:          store,
		Tokens:         tokens,
		ValidFunctions: cfg.Identity.Functions,
		Metrics:        metrics,
		Log:            log,
	})

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("ready", logger.Fields(
		"addr", srv.Addr(),
		"base_path", cfg.Server.BasePath,
	))

	<-ctx.Done()
	log.Info("shutdown signal received")
	return srv.Stop(context.Background())
}
