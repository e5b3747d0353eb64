package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoDropsAvailable = errors.New("no drops available")
var ErrNotFound = errors.New("not found")
var ErrUserClaimLock = errors.New("user claim locked")

const (
	CONFIG_SERVER_MODE                   = "SERVER_MODE"
	CONFIG_STUDY_REPORT_LIMIT_PER_MINUTE = "STUDY_REPORT_LIMIT_PER_MINUTE"
	CONFIG_CRONJOB_TIME_STREAK_SWEEP     = "CRONJOB_TIME_STREAK_SWEEP"

	SERVER_MODE_DEVELOPMENT = "development"
	SERVER_MODE_PRODUCTION  = "production"

	STUDY_REPORT_DEFAULT_LIMIT_PER_MINUTE = 12

	CACHE_TTL_15_SECONDS = 15 * time.Second
	CACHE_TTL_1_MIN      = 1 * time.Minute
	CACHE_TTL_5_MINS     = 5 * time.Minute
	CACHE_TTL_1_HOUR     = 1 * time.Hour
)

func LockKeyUserClaim(userID int64) string {
	return fmt.Sprintf("lock:user-claim:%d", userID)
}

// db
func DBKeyStudyUser(userID int64) string {
	return fmt.Sprintf("study_user:%d", userID)
}

func DBKeyStudyUserByUsername(username string) string {
	return fmt.Sprintf("study_user:by_username:%s", strings.ToLower(username))
}

func DBKeyCatalog() string {
	return "catalog:full"
}

func DBKeyConfig(key string) string {
	return fmt.Sprintf("config:%s", strings.ToLower(key))
}

func DBKeyInventory(userID int64) string {
	return fmt.Sprintf("inventory:%d", userID)
}

func LimitKeyStudyReport(userID int64) string {
	return fmt.Sprintf("limit:study-report:%d", userID)
}
