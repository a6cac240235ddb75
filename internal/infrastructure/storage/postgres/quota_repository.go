package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"lyristudy/internal/domain/quota"
)

type QuotaRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewQuotaRepository(pool *pgxpool.Pool, log *slog.Logger) *QuotaRepository {
	return &QuotaRepository{
		pool: pool,
		log:  log.With("component", "quota_repository"),
	}
}

// Consume spends one analysis slot in a single atomic UPDATE. The statement
// resets the counter when the stored reset date differs from the given day,
// and refuses the row entirely when the counter for that day is already at
// the limit, so concurrent requests serialize on the row instead of racing
// a stale in-memory count.
func (r *QuotaRepository) Consume(ctx context.Context, userID, limit int, day time.Time) error {
	const query = `
		UPDATE users
		SET daily_count = CASE
				WHEN last_reset IS DISTINCT FROM $2::date THEN 1
				ELSE daily_count + 1
			END,
			last_reset = $2::date
		WHERE id = $1
		  AND (last_reset IS DISTINCT FROM $2::date OR daily_count < $3)`

	result, err := r.pool.Exec(ctx, query, userID, day, limit)
	if err != nil {
		r.log.Error("failed to consume quota", "user_id", userID, "error", err)
		return fmt.Errorf("consume quota: %w", err)
	}

	if result.RowsAffected() == 0 {
		return quota.ErrQuotaExceeded
	}

	return nil
}
