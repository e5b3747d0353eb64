package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"studycards/internal/datastore"
	"studycards/internal/datastore/redis_store"
	"studycards/internal/models"
	"studycards/internal/pkg/caching"
	"studycards/internal/pkg/loot"
)

type ServiceDrops struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	rs                 *redsync.Redsync
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache

	serviceUser    *ServiceUser
	serviceCatalog *ServiceCatalog

	generator *loot.Generator
	seed      func() int64
}

func NewServiceDrops(container *do.Injector) (*ServiceDrops, error) {
	redisDB, err := do.InvokeNamed[redis.UniversalClient](container, "redis-db")
	if err != nil {
		return nil, err
	}

	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

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

	serviceUser, err := do.Invoke[*ServiceUser](container)
	if err != nil {
		return nil, err
	}

	serviceCatalog, err := do.Invoke[*ServiceCatalog](container)
	if err != nil {
		return nil, err
	}

	generator, err := loot.NewGenerator(loot.DefaultConfig())
	if err != nil {
		return nil, err
	}

	seed := func() int64 { return time.Now().UnixNano() }

	return &ServiceDrops{container, redisDB, rs, postgresDB, readonlyPostgresDB, cache, readonlyCache, serviceUser, serviceCatalog, generator, seed}, nil
}

// GenerateDropChoices spends nothing: it samples a fresh set of candidate
// cards for a user holding at least one drop credit and parks them in redis.
// The credit is only consumed when one of them is claimed.
func (service *ServiceDrops) GenerateDropChoices(ctx context.Context, userID int64) ([]models.GeneratedCard, error) {
	user, err := service.serviceUser.GetStudyUserFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ensureClaimable(user); err != nil {
		return nil, err
	}

	catalog, err := service.serviceCatalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(service.seed()))
	cards, err := service.generator.DropChoices(rng, catalog)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		cards[i].ID = uuid.NewString()
	}

	if err := redis_store.SaveDropProposals(ctx, service.redisDB, userID, cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// ClaimDrop converts one proposed card into a permanent collected item and
// spends one drop credit. The per-user mutex serializes concurrent claims, and
// the credit is verified inside the lock before any serial is minted: a
// zero-credit user must not be able to burn limited-edition serials by
// claiming stale proposals.
func (service *ServiceDrops) ClaimDrop(ctx context.Context, userID int64, cardID string) (*models.ClaimResult, error) {
	if _, err := uuid.Parse(cardID); err != nil {
		return nil, loot.ErrInvalidInput
	}

	mutex := service.rs.NewMutex(LockKeyUserClaim(userID))
	if err := mutex.Lock(); err != nil {
		return nil, ErrUserClaimLock
	}
	// nolint:errcheck
	defer mutex.Unlock()

	user, err := service.serviceUser.GetStudyUserFresh(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := ensureClaimable(user); err != nil {
		return nil, err
	}

	card, err := redis_store.GetDropProposal(ctx, service.redisDB, userID, cardID)
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	serial, err := service.mintSerial(ctx, card.ModelID)
	if err != nil {
		return nil, err
	}

	item := collectedItemFromCard(userID, card, serial)
	remaining, err := datastore.ClaimCollectedItem(ctx, service.postgresDB, item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDropsAvailable
	}
	if err != nil {
		return nil, err
	}

	//nolint:errcheck
	redis_store.DeleteDropProposal(ctx, service.redisDB, userID, cardID)
	service.serviceUser.InvalidateUser(ctx, userID)
	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyInventory(userID))

	return &models.ClaimResult{UnclaimedDrops: remaining, Item: item}, nil
}

// ensureClaimable gates the claim path: only runs once the per-user mutex is
// held, so a passing check can't be invalidated by a concurrent claim.
func ensureClaimable(user *models.StudyUser) error {
	if user.UnclaimedDrops < 1 {
		return ErrNoDropsAvailable
	}
	return nil
}

// mintSerial reserves the next serial for a limited edition. Editions that ran
// out still claim fine; the serial just records the sell-out. The increment is
// not rolled back if the claim fails afterward, so serials may have gaps but
// never duplicates.
func (service *ServiceDrops) mintSerial(ctx context.Context, modelID string) (*string, error) {
	model, err := datastore.FindItemModelByModelID(ctx, service.postgresDB, modelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !model.IsLimited {
		return nil, nil
	}

	minted, err := datastore.MintSerial(ctx, service.postgresDB, modelID)
	return serialForMint(minted, err, model.MaxSerial)
}

// serialForMint maps the mint outcome onto the persisted serial: a numbered
// one while the edition lasts, the sold-out sentinel once it's exhausted.
func serialForMint(minted int, mintErr error, maxSerial int) (*string, error) {
	if errors.Is(mintErr, sql.ErrNoRows) {
		soldOut := models.SerialSoldOut
		return &soldOut, nil
	}
	if mintErr != nil {
		return nil, mintErr
	}

	serial := formatSerial(minted, maxSerial)
	return &serial, nil
}

func formatSerial(minted, maxSerial int) string {
	return fmt.Sprintf("%d/%d", minted, maxSerial)
}

// collectedItemFromCard freezes a proposal's rolled stats into the persisted
// snapshot; nothing here may recompute or re-roll.
func collectedItemFromCard(userID int64, card *models.GeneratedCard, serial *string) *models.CollectedItem {
	return &models.CollectedItem{
		OwnerID:        userID,
		ModelID:        card.ModelID,
		Rarity:         card.Rarity,
		Version:        card.Version,
		Condition:      card.Condition,
		AestheticScore: card.AestheticScore,
		Weight:         card.Weight,
		Price:          card.Price,
		Color:          card.Color,
		CollectorValue: card.CollectorValue,
		SerialNumber:   serial,
	}
}

func (service *ServiceDrops) GetInventory(ctx context.Context, userID int64) ([]*models.CollectedItem, error) {
	if _, err := service.serviceUser.GetStudyUser(ctx, userID); err != nil {
		return nil, err
	}

	callback := func() ([]*models.CollectedItem, error) {
		return datastore.GetCollectedItemsByOwner(ctx, service.readonlyPostgresDB, userID)
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyInventory(userID), CACHE_TTL_15_SECONDS, callback)
}
