package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/atelier/internal/adapter/rest"
	"github.com/eslsoft/atelier/internal/infrastructure/config"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/infrastructure/server"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
}

func provideStore(cfg *config.Config) (*filestore.Store, error) {
	return filestore.New(cfg.Storage.Dir)
}

func provideUploadPolicy(cfg *config.Config) rest.UploadPolicy {
	return rest.UploadPolicy{
		Dir:         cfg.UploadDir(),
		MaxFiles:    cfg.Upload.MaxFiles,
		MaxFileSize: cfg.MaxFileSizeBytes(),
	}
}
