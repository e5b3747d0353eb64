package models

import (
	"time"

	"github.com/uptrace/bun"
)

// SerialSoldOut marks a limited-edition claim that arrived after the last
// serial was minted. The claim still succeeds, the card just carries no number.
const SerialSoldOut = "SOLD OUT"

// CollectedItem is the persisted snapshot of a claimed card. The stats are
// frozen at claim time; later catalog edits don't touch existing items.
type CollectedItem struct {
	bun.BaseModel  `bun:"table:collected_item"`
	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	OwnerID        int64     `bun:"owner_id" json:"owner_id"`
	ModelID        string    `bun:"model_id" json:"model_id"`
	Rarity         string    `bun:"rarity" json:"rarity"`
	Version        string    `bun:"version" json:"version"`
	Condition      string    `bun:"condition" json:"condition"`
	AestheticScore int       `bun:"aesthetic_score" json:"aesthetic_score"`
	Weight         float64   `bun:"weight" json:"weight"`
	Price          float64   `bun:"price" json:"price"`
	Color          *string   `bun:"color" json:"color"`
	CollectorValue int       `bun:"collector_value" json:"collector_value"`
	SerialNumber   *string   `bun:"serial_number" json:"serial_number"`
	CreatedAt      time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}
