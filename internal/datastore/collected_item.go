package datastore

import (
	"context"

	"studycards/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableCollectedItem(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.CollectedItem)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.CollectedItem)(nil)).Index("index_collected_item_owner_id").IfNotExists().Column("owner_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// ClaimCollectedItem burns one drop credit and persists the item as one
// transaction: both happen or neither does. sql.ErrNoRows means the owner had
// no credit left (or doesn't exist).
func ClaimCollectedItem(ctx context.Context, db *bun.DB, item *models.CollectedItem) (int, error) {
	var remaining int
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().Model((*models.StudyUser)(nil)).
			Set("unclaimed_drops = unclaimed_drops - 1").
			Where("id = ?", item.OwnerID).
			Where("unclaimed_drops >= 1").
			Returning("unclaimed_drops").
			Exec(ctx, &remaining)
		if err != nil {
			return err
		}

		_, err = tx.NewInsert().Model(item).Exec(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

func GetCollectedItemsByOwner(ctx context.Context, db *bun.DB, ownerID int64) ([]*models.CollectedItem, error) {
	var items []*models.CollectedItem
	err := db.NewSelect().Model(&items).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return items, nil
}
