package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"studycards/internal/datastore"
	"studycards/internal/interfaces"
	"studycards/internal/models"
	"studycards/internal/pkg/loot"
)

const studyDayLayout = "2006-01-02"

type ServiceStudy struct {
	container  *do.Injector
	postgresDB *bun.DB
	limiter    interfaces.Limiter

	serviceUser   *ServiceUser
	serviceConfig *ServiceConfig

	// now is swappable so streak transitions can be tested at fixed dates.
	now func() time.Time
}

func NewServiceStudy(container *do.Injector) (*ServiceStudy, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	limiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	serviceUser, err := do.Invoke[*ServiceUser](container)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceStudy{container, postgresDB, limiter, serviceUser, serviceConfig, time.Now}, nil
}

// ReportStudyTime folds one finished study session into the user's progress:
// seconds accumulate toward drop credits, the per-subject log grows, and the
// daily streak advances at most once per day.
func (service *ServiceStudy) ReportStudyTime(ctx context.Context, userID int64, subject string, seconds int64) (*models.StudyReport, error) {
	if seconds < 0 {
		return nil, loot.ErrInvalidInput
	}

	subject = strings.TrimSpace(strings.ToLower(subject))
	if subject == "" {
		subject = "general"
	}

	limit, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_STUDY_REPORT_LIMIT_PER_MINUTE, STUDY_REPORT_DEFAULT_LIMIT_PER_MINUTE)
	if err := service.limiter.Allow(ctx, LimitKeyStudyReport(userID), redis_rate.PerMinute(limit)); err != nil {
		return nil, err
	}

	user, err := service.serviceUser.GetStudyUserFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	remainder, dropsAwarded, err := loot.Accumulate(user.AccumulatedSeconds, seconds)
	if err != nil {
		return nil, err
	}

	user.AccumulatedSeconds = remainder
	if user.StudyLogs == nil {
		user.StudyLogs = map[string]int64{}
	}
	user.StudyLogs[subject] += seconds

	today := service.now().UTC().Format(studyDayLayout)
	user.StudyStreak = nextStreak(user.StudyStreak, user.LastStudyDay, today)
	user.LastStudyDay = today

	if err := datastore.UpdateStudyProgress(ctx, service.postgresDB, user, dropsAwarded); err != nil {
		return nil, err
	}

	service.serviceUser.InvalidateUser(ctx, userID)

	return &models.StudyReport{
		AccumulatedSeconds: user.AccumulatedSeconds,
		UnclaimedDrops:     user.UnclaimedDrops + dropsAwarded,
		DropsAwarded:       dropsAwarded,
		StudyStreak:        user.StudyStreak,
	}, nil
}

func (service *ServiceStudy) GetStudyLogs(ctx context.Context, userID int64) (map[string]int64, error) {
	user, err := service.serviceUser.GetStudyUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.StudyLogs == nil {
		return map[string]int64{}, nil
	}
	return user.StudyLogs, nil
}

func (service *ServiceStudy) GetStreak(ctx context.Context, userID int64) (int, error) {
	user, err := service.serviceUser.GetStudyUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	// A streak whose last study day is older than yesterday has already
	// lapsed, even if the nightly sweep hasn't zeroed the row yet.
	yesterday := service.now().UTC().AddDate(0, 0, -1).Format(studyDayLayout)
	if user.LastStudyDay < yesterday {
		return 0, nil
	}
	return user.StudyStreak, nil
}

func nextStreak(current int, lastStudyDay, today string) int {
	switch lastStudyDay {
	case today:
		if current < 1 {
			return 1
		}
		return current
	case yesterdayOf(today):
		return current + 1
	default:
		return 1
	}
}

func yesterdayOf(day string) string {
	t, err := time.Parse(studyDayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(studyDayLayout)
}
