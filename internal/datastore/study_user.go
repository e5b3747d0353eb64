package datastore

import (
	"context"
	"strings"
	"time"

	"studycards/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableStudyUser(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.StudyUser)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.StudyUser)(nil)).Index("index_study_user_username").IfNotExists().Column("username").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.StudyUser)(nil)).Index("index_study_user_last_study_day").IfNotExists().Column("last_study_day").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func FindStudyUserByID(ctx context.Context, db *bun.DB, userID int64) (*models.StudyUser, error) {
	var user models.StudyUser
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindStudyUserByUsername(ctx context.Context, db *bun.DB, username string) (*models.StudyUser, error) {
	var user models.StudyUser
	err := db.NewSelect().Model(&user).Where("username = ?", strings.ToLower(username)).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateStudyUser(ctx context.Context, db *bun.DB, user *models.StudyUser) (*models.StudyUser, error) {
	_, err := db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateStudyProgress writes back the fields ReportStudyTime recomputed. The
// drop credit is incremented as an expression so two racing reports can't lose
// a drop, and skipped entirely when the report earned none.
func UpdateStudyProgress(ctx context.Context, db *bun.DB, user *models.StudyUser, dropsAwarded int) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user.UpdatedAt = time.Now()
		if _, err := tx.NewUpdate().Model(user).
			Column("accumulated_seconds", "study_logs", "study_streak", "last_study_day", "updated_at").
			WherePK().Exec(ctx); err != nil {
			return err
		}

		if dropsAwarded > 0 {
			if _, err := tx.NewUpdate().Model((*models.StudyUser)(nil)).
				Set("unclaimed_drops = unclaimed_drops + ?", dropsAwarded).
				Where("id = ?", user.ID).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}

func UpdateStudyUserSettings(ctx context.Context, db *bun.DB, userID int64, settings *models.Settings) error {
	_, err := db.NewUpdate().Model((*models.StudyUser)(nil)).
		Set("settings = ?", settings).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

// ResetExpiredStreaks zeroes the streak of everyone whose last study day is
// before yesterday. Run by the nightly cron sweep.
func ResetExpiredStreaks(ctx context.Context, db *bun.DB, yesterday string) (int64, error) {
	res, err := db.NewUpdate().Model((*models.StudyUser)(nil)).
		Set("study_streak = 0").
		Set("updated_at = ?", time.Now()).
		Where("study_streak > 0").
		Where("last_study_day < ?", yesterday).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
