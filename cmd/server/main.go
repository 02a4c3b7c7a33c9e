package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/collabverse/collabverse/internal/config"
	"github.com/collabverse/collabverse/internal/feature"
	"github.com/collabverse/collabverse/internal/handlers"
	"github.com/collabverse/collabverse/internal/logger"
	"github.com/collabverse/collabverse/internal/repository"
	"github.com/collabverse/collabverse/internal/server"
	"github.com/collabverse/collabverse/internal/session"
	"github.com/collabverse/collabverse/internal/sessiontransport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	logOpt := logger.WithDevelopment(cfg.AppName)
	if cfg.IsProduction() {
		logOpt = logger.WithProduction(cfg.AppName)
	}
	log := logger.New(logOpt)

	flags := feature.New()
	policy := session.NewPolicy(cfg.Policy, flags)

	codec := session.NewCodec(session.WithMaxAge(cfg.SessionCookie.MaxAge))
	sessions := session.NewCodecStore(codec)

	// Secure cookies are not negotiable in production.
	if cfg.IsProduction() {
		cfg.SessionCookie.Secure = true
	}
	transport := sessiontransport.NewFromConfig(cfg.SessionCookie)

	router := handlers.NewRouter(handlers.Deps{
		Log:       log,
		Flags:     flags,
		Policy:    policy,
		Sessions:  sessions,
		Transport: transport,
		Repo:      repository.SeedDemo(),
	})

	srv, err := server.NewFromConfig(cfg.Server)
	if err != nil {
		log.Error("invalid server configuration", logger.Error(err))
		os.Exit(1)
	}

	log.Info("starting server",
		logger.Component("server"),
		"addr", cfg.Server.Addr,
		"env", cfg.Environment,
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, router))

	if err := eg.Wait(); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
