//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	adapterrepo "github.com/eslsoft/atelier/internal/adapter/repository"
	"github.com/eslsoft/atelier/internal/adapter/rest"
	"github.com/eslsoft/atelier/internal/infrastructure/catalog"
	"github.com/eslsoft/atelier/internal/infrastructure/config"
	"github.com/eslsoft/atelier/internal/infrastructure/server"
	"github.com/eslsoft/atelier/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var storageSet = wire.NewSet(
	provideStore,
	catalog.Load,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewProgressRepository,
	adapterrepo.NewFavoriteRepository,
	adapterrepo.NewHistoryRepository,
	adapterrepo.NewSubmissionRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewContentUsecase,
	usecase.NewProgressUsecase,
	usecase.NewFavoriteUsecase,
	usecase.NewHistoryUsecase,
	usecase.NewAssignmentUsecase,
)

var handlerSet = wire.NewSet(
	provideUploadPolicy,
	rest.NewContentHandler,
	rest.NewAssignmentHandler,
	rest.NewUserHandler,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		storageSet,
		repositorySet,
		usecaseSet,
		handlerSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
