package repository

import (
	"context"
	"fmt"

	"taskreef/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// RedeemReward runs one redemption in a single transaction. The user row
// is locked first, so concurrent redemptions for the same user serialize
// and the second always observes the first's inventory write. The
// redemption marker is keyed by task id: a task can be redeemed exactly
// once.
//
// apply receives the locked user state, mutates its inventory and returns
// the redemption row to record. Any error from apply rolls everything
// back.
func (r *Repository) RedeemReward(
	ctx context.Context,
	telegramID int64,
	taskID uuid.UUID,
	apply func(u *model.User) (*model.Redemption, error),
) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		user, err := r.getUserForUpdate(ctx, tx, telegramID)
		if err != nil {
			return err
		}

		task, err := r.getTaskForUser(ctx, tx, taskID, telegramID)
		if err != nil {
			return err
		}
		if task.Status != model.TaskStatusDone {
			return ErrTaskNotDone
		}

		redeemed, err := r.isRedeemed(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}

		redemption, err := apply(user)
		if err != nil {
			return err
		}

		insertQuery, insertArgs, err := squirrel.
			Insert("reward_redemptions").
			SetMap(map[string]interface{}{
				"task_id":          redemption.TaskID,
				"user_telegram_id": redemption.UserTelegramID,
				"chest_tier":       string(redemption.ChestTier),
				"rarity":           string(redemption.Rarity),
				"item_id":          redemption.ItemID,
				"redeemed_at":      redemption.RedeemedAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build redemption insert query: %w", err)
		}

		_, err = tx.ExecContext(ctx, insertQuery, insertArgs...)
		if err != nil {
			return fmt.Errorf("failed to insert redemption: %w", err)
		}

		updateQuery, updateArgs, err := squirrel.
			Update("users").
			Set("inventory", pq.Array(user.Inventory)).
			Where(squirrel.Eq{"telegram_id": telegramID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}

		return nil
	})
}

func (r *Repository) isRedeemed(ctx context.Context, tx *sqlx.Tx, taskID uuid.UUID) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("reward_redemptions").
		Where(squirrel.Eq{"task_id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	err = tx.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
