package service

import (
	"context"

	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildDate, buildCommit string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: models.AppBuildInfo{
			Version: cfg.Version,
			Date:    buildDate,
			Commit:  buildCommit,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppBuildInfo(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
