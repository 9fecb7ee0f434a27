//go:build wireinject
// +build wireinject

package main

import (
	"quotes_backend/internal/app"
	"quotes_backend/internal/config"
	"quotes_backend/internal/firebase"
	"quotes_backend/internal/platform/database"
	"quotes_backend/internal/platform/logger"
	"quotes_backend/internal/profile"
	"quotes_backend/internal/quote"
	"quotes_backend/internal/shared"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,

		// Firebase token verifier
		firebase.NewFirebaseService,
		wire.Bind(new(shared.TokenVerifier), new(*firebase.FirebaseService)),

		// Quote module
		quote.NewGORMRepository,
		quote.NewService,
		quote.NewHandler,

		// Profile module
		profile.NewGORMRepository,
		profile.NewService,
		profile.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
