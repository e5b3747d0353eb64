package datastore

import (
	"context"

	"studycards/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableItemCategory(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.ItemCategory)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ItemCategory)(nil)).Index("index_item_category_category_id").IfNotExists().Column("category_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreateTableItemModel(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.ItemModel)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ItemModel)(nil)).Index("index_item_model_model_id").IfNotExists().Column("model_id").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ItemModel)(nil)).Index("index_item_model_rarity").IfNotExists().Column("rarity").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func GetCatalog(ctx context.Context, db *bun.DB) (*models.Catalog, error) {
	var categories []*models.ItemCategory
	err := db.NewSelect().Model(&categories).Order("category_id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	var itemModels []*models.ItemModel
	err = db.NewSelect().Model(&itemModels).Order("model_id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Catalog{Categories: categories, Models: itemModels}, nil
}

func FindItemModelByModelID(ctx context.Context, db *bun.DB, modelID string) (*models.ItemModel, error) {
	var model models.ItemModel
	err := db.NewSelect().Model(&model).Where("model_id = ?", modelID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func UpsertItemCategory(ctx context.Context, db *bun.DB, category *models.ItemCategory) error {
	_, err := db.NewInsert().Model(category).
		On("CONFLICT (category_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("rarity_pools = EXCLUDED.rarity_pools").
		Set("default_weight_range = EXCLUDED.default_weight_range").
		Set("default_price_range = EXCLUDED.default_price_range").
		Set("default_aesthetic_range = EXCLUDED.default_aesthetic_range").
		Exec(ctx)
	return err
}

// UpsertItemModel deliberately leaves minted_count alone on conflict, catalog
// reseeds must not reset serial numbering.
func UpsertItemModel(ctx context.Context, db *bun.DB, model *models.ItemModel) error {
	_, err := db.NewInsert().Model(model).
		On("CONFLICT (model_id) DO UPDATE").
		Set("category_id = EXCLUDED.category_id").
		Set("name = EXCLUDED.name").
		Set("rarity = EXCLUDED.rarity").
		Set("color_options = EXCLUDED.color_options").
		Set("weight_range = EXCLUDED.weight_range").
		Set("price_range = EXCLUDED.price_range").
		Set("aesthetic_range = EXCLUDED.aesthetic_range").
		Set("is_limited = EXCLUDED.is_limited").
		Set("max_serial = EXCLUDED.max_serial").
		Exec(ctx)
	return err
}

// MintSerial advances the limited-edition counter with a single conditional
// update, so two claims racing for the last serial can't both win. Returns the
// assigned serial, or sql.ErrNoRows when the edition is already exhausted.
func MintSerial(ctx context.Context, db *bun.DB, modelID string) (int, error) {
	var minted int
	_, err := db.NewUpdate().Model((*models.ItemModel)(nil)).
		Set("minted_count = minted_count + 1").
		Where("model_id = ?", modelID).
		Where("is_limited = ?", true).
		Where("minted_count < max_serial").
		Returning("minted_count").
		Exec(ctx, &minted)
	if err != nil {
		return 0, err
	}

	return minted, nil
}
