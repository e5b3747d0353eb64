package services

import (
	"context"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"studycards/internal/datastore"
	"studycards/internal/models"
	"studycards/internal/pkg/caching"
	"studycards/internal/pkg/loot"
)

type ServiceCatalog struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceCatalog(container *do.Injector) (*ServiceCatalog, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceCatalog{container, postgresDB, readonlyPostgresDB, cache, readonlyCache}, nil
}

func (service *ServiceCatalog) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	callback := func() (*models.Catalog, error) {
		return datastore.GetCatalog(ctx, service.readonlyPostgresDB)
	}

	catalog, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyCatalog(), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return nil, err
	}

	if len(catalog.Models) == 0 {
		return nil, loot.ErrEmptyCatalog
	}
	return catalog, nil
}

// SeedCatalog upserts categories then models, so model rows never land before
// the category slug they reference.
func (service *ServiceCatalog) SeedCatalog(ctx context.Context, catalog *models.Catalog) error {
	for _, category := range catalog.Categories {
		if err := datastore.UpsertItemCategory(ctx, service.postgresDB, category); err != nil {
			return err
		}
	}

	for _, model := range catalog.Models {
		if err := datastore.UpsertItemModel(ctx, service.postgresDB, model); err != nil {
			return err
		}
	}

	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyCatalog())
	return nil
}
