package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ItemModel is a concrete collectible like "BIC Pencil". Override ranges are
// optional; a missing or malformed range falls back to the owning category's
// default per field. MintedCount is only ever advanced by the claim path.
type ItemModel struct {
	bun.BaseModel  `bun:"table:item_model"`
	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	ModelID        string    `bun:"model_id,unique" json:"model_id"`
	CategoryID     string    `bun:"category_id" json:"category_id"`
	Name           string    `bun:"name" json:"name"`
	Rarity         string    `bun:"rarity" json:"rarity"`
	ColorOptions   []string  `bun:"color_options,type:jsonb" json:"color_options"`
	WeightRange    StatRange `bun:"weight_range,type:jsonb" json:"weight_range"`
	PriceRange     StatRange `bun:"price_range,type:jsonb" json:"price_range"`
	AestheticRange StatRange `bun:"aesthetic_range,type:jsonb" json:"aesthetic_range"`
	IsLimited      bool      `bun:"is_limited" json:"is_limited"`
	MaxSerial      int       `bun:"max_serial" json:"max_serial"`
	MintedCount    int       `bun:"minted_count" json:"minted_count"`
	CreatedAt      time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at" json:"updated_at"`
}
