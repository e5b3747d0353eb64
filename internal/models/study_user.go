package models

import (
	"time"

	"github.com/uptrace/bun"
)

type StudyUser struct {
	bun.BaseModel      `bun:"table:study_user"`
	ID                 int64            `bun:"id,pk,autoincrement" json:"id"`
	Username           string           `bun:"username,unique" json:"username"`
	Email              string           `bun:"email" json:"email"`
	AccumulatedSeconds int64            `bun:"accumulated_seconds" json:"accumulated_seconds"`
	UnclaimedDrops     int              `bun:"unclaimed_drops" json:"unclaimed_drops"`
	StudyLogs          map[string]int64 `bun:"study_logs,type:jsonb" json:"study_logs"`
	StudyStreak        int              `bun:"study_streak" json:"study_streak"`
	LastStudyDay       string           `bun:"last_study_day" json:"last_study_day"` // YYYY-MM-DD
	Settings           *Settings        `bun:"settings,type:jsonb" json:"settings"`
	CreatedAt          time.Time        `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time        `bun:"updated_at" json:"updated_at"`
}

type Settings struct {
	DarkMode bool `json:"dark_mode"`
}

// Progress is the drop-credit slice of a StudyUser, returned on its own
// so progress reads don't leak the whole user record.
type Progress struct {
	AccumulatedSeconds int64 `json:"accumulated_seconds"`
	UnclaimedDrops     int   `json:"unclaimed_drops"`
}

// StudyReport is the outcome of one reported study session.
type StudyReport struct {
	AccumulatedSeconds int64 `json:"accumulated_seconds"`
	UnclaimedDrops     int   `json:"unclaimed_drops"`
	DropsAwarded       int   `json:"drops_awarded"`
	StudyStreak        int   `json:"study_streak"`
}
