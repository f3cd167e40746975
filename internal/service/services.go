package service

import (
	"github.com/MKhiriev/go-vault-gate/internal/adapter"
	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/resolver"
	"github.com/MKhiriev/go-vault-gate/internal/store"
)

type Services struct {
	WorkflowService  WorkflowService
	ReferenceService ReferenceService
	AppInfoService   AppInfoService
}

func NewServices(
	storages *store.Storages,
	vaultAdapter adapter.VaultAdapter,
	platformAdapter adapter.PlatformAdapter,
	cfg config.StructuredConfig,
	buildDate, buildCommit string,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildDate, buildCommit, logger)
	if err != nil {
		return nil, err
	}

	resolverCache := resolver.New(vaultAdapter, logger)

	workflowService := NewWorkflowService(storages.StoredRequestStorage, vaultAdapter, platformAdapter, resolverCache, cfg.App, logger)

	return &Services{
		WorkflowService:  workflowService,
		ReferenceService: NewReferenceService(resolverCache, workflowService.(PendingAddressSource), cfg.App.HomeCountry, logger),
		AppInfoService:   appInfoService,
	}, nil
}
