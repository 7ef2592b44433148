package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/adapter"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/config"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/crypto"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/session"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/store"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/tui"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("remote-access-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	credStore, err := store.NewSQLiteStore(cfg.Storage.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential cache")
	}
	defer func() {
		if err := credStore.Close(); err != nil {
			log.Warn().Err(err).Msg("close credential cache")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.NewSession(session.NewLocalBus(), log)
	defer sess.Close()

	api, err := adapter.NewRESTAdapter(
		adapter.Config{BaseURL: cfg.API.Address, Timeout: cfg.API.RequestTimeout},
		log,
		sess.InRecovery,
		func() {
			if err := credStore.Clear(ctx); err != nil {
				log.Warn().Err(err).Msg("credential cache clear failed")
			}
			sess.Expire()
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	keychain := crypto.NewKeychain()
	authSvc := service.NewAuthService(api, keychain, credStore, sess, log)
	tokenSvc := service.NewTokenService(api, keychain, sess, log)

	background := workers.NewWorkers(
		workers.NewSessionRefresher(api, sess, credStore, log, cfg.Session.RefreshInterval),
	)
	background.Run(ctx)

	// A still-valid server session plus the cached secret key lets the
	// client come back logged in without a password prompt.
	resumed := false
	if err := authSvc.Resume(ctx); err != nil {
		log.Debug().Err(err).Msg("no resumable session")
	} else {
		resumed = true
	}

	err = tui.New(authSvc, tokenSvc).Run(ctx, resumed)
	stop()
	background.Wait()

	if err != nil && !errors.Is(err, tui.ErrUserQuit) && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
