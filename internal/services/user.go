package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"studycards/internal/datastore"
	"studycards/internal/models"
	"studycards/internal/pkg/caching"
)

type ServiceUser struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{container, postgresDB, readonlyPostgresDB, cache, readonlyCache}, nil
}

func (service *ServiceUser) FindOrCreateUser(ctx context.Context, username string, email string) (*models.StudyUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, errors.New("username is empty")
	}

	user, err := datastore.FindStudyUserByUsername(ctx, service.postgresDB, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user = &models.StudyUser{
		Username:     username,
		Email:        strings.TrimSpace(email),
		StudyLogs:    map[string]int64{},
		Settings:     &models.Settings{},
		LastStudyDay: "",
	}

	return datastore.CreateStudyUser(ctx, service.postgresDB, user)
}

func (service *ServiceUser) GetStudyUser(ctx context.Context, userID int64) (*models.StudyUser, error) {
	callback := func() (*models.StudyUser, error) {
		user, err := datastore.FindStudyUserByID(ctx, service.readonlyPostgresDB, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return user, err
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyStudyUser(userID), CACHE_TTL_15_SECONDS, callback)
}

// GetStudyUserFresh bypasses the cache; progress mutations must start from the
// row as it is, not as it was cached.
func (service *ServiceUser) GetStudyUserFresh(ctx context.Context, userID int64) (*models.StudyUser, error) {
	user, err := datastore.FindStudyUserByID(ctx, service.postgresDB, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return user, err
}

func (service *ServiceUser) GetProgress(ctx context.Context, userID int64) (*models.Progress, error) {
	user, err := service.GetStudyUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Progress{
		AccumulatedSeconds: user.AccumulatedSeconds,
		UnclaimedDrops:     user.UnclaimedDrops,
	}, nil
}

func (service *ServiceUser) GetSettings(ctx context.Context, userID int64) (*models.Settings, error) {
	user, err := service.GetStudyUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Settings == nil {
		return &models.Settings{}, nil
	}
	return user.Settings, nil
}

func (service *ServiceUser) UpdateSettings(ctx context.Context, userID int64, settings *models.Settings) (*models.Settings, error) {
	if settings == nil {
		return nil, errors.New("settings is nil")
	}

	if _, err := service.GetStudyUserFresh(ctx, userID); err != nil {
		return nil, err
	}

	if err := datastore.UpdateStudyUserSettings(ctx, service.postgresDB, userID, settings); err != nil {
		return nil, err
	}

	service.InvalidateUser(ctx, userID)
	return settings, nil
}

func (service *ServiceUser) InvalidateUser(ctx context.Context, userID int64) {
	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyStudyUser(userID))
}
