package models

// GeneratedCard is an ephemeral drop proposal. It lives in redis until the
// user claims it or the proposal expires; it is never persisted as-is.
type GeneratedCard struct {
	ID             string  `json:"id"`
	ModelID        string  `json:"model_id"`
	ModelName      string  `json:"model_name"`
	CategoryID     string  `json:"category_id"`
	Rarity         string  `json:"rarity"`
	Version        string  `json:"version"`
	Condition      string  `json:"condition"`
	AestheticScore int     `json:"aesthetic_score"`
	Weight         float64 `json:"weight"`
	Price          float64 `json:"price"`
	Color          *string `json:"color"`
	CollectorValue int     `json:"collector_value"`
}

type ClaimResult struct {
	UnclaimedDrops int            `json:"unclaimed_drops"`
	Item           *CollectedItem `json:"item"`
}
