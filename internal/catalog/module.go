// Package catalog provides the materials catalog bounded context module.
package catalog

import (
	"fmt"

	"tapquote_backend/internal/catalog/handler"
	"tapquote_backend/internal/catalog/repository"
	"tapquote_backend/internal/catalog/service"
	apphttp "tapquote_backend/internal/http"
	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
	"tapquote_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule loads the catalog (CATALOG_FILE when set, the seed list otherwise)
// and wires the service and handler.
func NewModule(cfg config.CatalogConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	var repo repository.Repository = repository.NewSeed()
	if path := cfg.GetCatalogFile(); path != "" {
		fileRepo, err := repository.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		repo = fileRepo
		log.Info("catalog loaded from file", "path", path, "materials", len(fileRepo.List()))
	}

	svc := service.New(repo)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes under /api/v1 and at the legacy root paths.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
	m.handler.RegisterRoutes(ctx.Engine)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
