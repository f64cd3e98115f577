// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/app"
	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/crypto"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/metrics"
	"github.com/MKhiriev/go-account-gate/internal/server"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/MKhiriev/go-account-gate/internal/store"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-account-gate")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher, err := crypto.NewPasswordHasher(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}
	tokens := crypto.NewJWTAdapter(cfg.Auth.TokenIssuer, cfg.Auth.TokenDuration, cfg.Auth.TokenSignKey)

	storages := store.NewStorages(db, utils.NewUUIDGenerator(), log)
	services := service.NewServices(storages, hasher, tokens)
	m := metrics.NewMetrics()

	handler := app.NewHTTPHandler(app.Dependencies{
		Services:     services,
		Storages:     storages,
		EmailChecker: adapter.NewEmailValidatorAdapter(),
		Recorder:     m,
		Logger:       log,
	}, m.Handler(), cfg.Server)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
