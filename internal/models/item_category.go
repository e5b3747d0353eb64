package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StatRange is a [min, max] pair stored as a jsonb array. Model overrides may
// be absent or malformed, Valid tells the two cases apart.
type StatRange []float64

func (r StatRange) Valid() bool {
	return len(r) == 2 && r[0] <= r[1]
}

func (r StatRange) Min() float64 { return r[0] }
func (r StatRange) Max() float64 { return r[1] }

// ItemCategory is a base item type like "pencil". Its rarity pools list the
// model ids belonging to each tier; keeping pool entries consistent with the
// models' own rarity field is the catalog editor's job, not the generator's.
type ItemCategory struct {
	bun.BaseModel         `bun:"table:item_category"`
	ID                    int64               `bun:"id,pk,autoincrement" json:"id"`
	CategoryID            string              `bun:"category_id,unique" json:"category_id"`
	Name                  string              `bun:"name" json:"name"`
	RarityPools           map[string][]string `bun:"rarity_pools,type:jsonb" json:"rarity_pools"`
	DefaultWeightRange    StatRange           `bun:"default_weight_range,type:jsonb" json:"default_weight_range"`
	DefaultPriceRange     StatRange           `bun:"default_price_range,type:jsonb" json:"default_price_range"`
	DefaultAestheticRange StatRange           `bun:"default_aesthetic_range,type:jsonb" json:"default_aesthetic_range"`
	CreatedAt             time.Time           `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt             time.Time           `bun:"updated_at" json:"updated_at"`
}

// Catalog is the full generation input: every category plus every model,
// fetched together so one request works off one consistent snapshot.
type Catalog struct {
	Categories []*ItemCategory `json:"categories"`
	Models     []*ItemModel    `json:"models"`
}

func (c *Catalog) CategoryByID(categoryID string) *ItemCategory {
	for _, category := range c.Categories {
		if category.CategoryID == categoryID {
			return category
		}
	}
	return nil
}

func (c *Catalog) ModelsByRarity(rarity string) []*ItemModel {
	var out []*ItemModel
	for _, model := range c.Models {
		if model.Rarity == rarity {
			out = append(out, model)
		}
	}
	return out
}
