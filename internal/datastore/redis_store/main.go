package redis_store

import (
	"fmt"
	"time"

	"context"

	"studycards/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Drop proposals are ephemeral: they only need to survive between the
// generate call and the user's pick.
const DROP_PROPOSAL_TTL = time.Hour

func dbKeyDropProposal(userID int64, cardID string) string {
	return fmt.Sprintf("drop:proposal:%d:%s", userID, cardID)
}

func SaveDropProposals(ctx context.Context, cmd redis.Cmdable, userID int64, cards []models.GeneratedCard) error {
	for _, card := range cards {
		b, err := msgpack.Marshal(card)
		if err != nil {
			return err
		}

		err = cmd.Set(ctx, dbKeyDropProposal(userID, card.ID), b, DROP_PROPOSAL_TTL).Err()
		if err != nil {
			return err
		}
	}

	return nil
}

func GetDropProposal(ctx context.Context, cmd redis.Cmdable, userID int64, cardID string) (*models.GeneratedCard, error) {
	var v *models.GeneratedCard
	b, err := cmd.Get(ctx, dbKeyDropProposal(userID, cardID)).Bytes()
	if err != nil {
		return nil, err
	}

	err = msgpack.Unmarshal(b, &v)
	return v, err
}

// DeleteDropProposal consumes a claimed proposal; the two unclaimed siblings
// just age out through the TTL.
func DeleteDropProposal(ctx context.Context, cmd redis.Cmdable, userID int64, cardID string) error {
	return cmd.Del(ctx, dbKeyDropProposal(userID, cardID)).Err()
}
