package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"

	"studycards/internal/datastore"
	"studycards/internal/services"
)

// fallback when the schedule config row is missing; shortly after midnight UTC
const defaultStreakSweepSchedule = "5 0 * * *"

type StreakJob struct {
	Db *bun.DB
}

func NewStreakJob(db *bun.DB) *StreakJob {
	return &StreakJob{Db: db}
}

func (j *StreakJob) Start(cronRunner *cron.Cron) {
	schedule := defaultStreakSweepSchedule
	timeline, err := datastore.GetConfigByKey(context.Background(), j.Db, services.CONFIG_CRONJOB_TIME_STREAK_SWEEP)
	if err == nil && timeline != nil && timeline.Value != "" {
		schedule = timeline.Value
	}

	_, err = cronRunner.AddFunc(schedule, j.runScheduledTask)
	log.Println("Streak sweep cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", schedule, err)
}

func (j *StreakJob) runScheduledTask() {
	ctx := context.Background()
	log.Println("Start sweeping expired streaks ...")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	affected, err := datastore.ResetExpiredStreaks(ctx, j.Db, yesterday)
	if err != nil {
		log.Println(err)
		return
	}
	log.Println("Expired streaks reset:", affected)
}
