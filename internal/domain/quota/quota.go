package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

var ErrQuotaExceeded = errors.New("daily analysis quota exceeded")

// Repository persists the per-user daily counter. Consume must perform the
// reset-check, limit-check and increment as one atomic statement so that
// concurrent requests cannot race past the last remaining slot; it returns
// ErrQuotaExceeded when the counter for the given day is already at limit.
type Repository interface {
	Consume(ctx context.Context, userID, limit int, day time.Time) error
}

type Servicer interface {
	Consume(ctx context.Context, userID int) error
}

type Service struct {
	repo  Repository
	limit int
	now   func() time.Time
	log   *slog.Logger
}

func NewService(repo Repository, limit int, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		limit: limit,
		now:   time.Now,
		log:   log.With("component", "quota_service"),
	}
}

// Consume takes one slot from the user's budget for the current UTC date.
// The slot is spent on attempt, not on success: callers commit it before
// issuing the AI request, and a failed request is not refunded.
func (s *Service) Consume(ctx context.Context, userID int) error {
	day := s.now().UTC().Truncate(24 * time.Hour)

	err := s.repo.Consume(ctx, userID, s.limit, day)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			s.log.Info("quota exceeded", "user_id", userID, "limit", s.limit)
			return ErrQuotaExceeded
		}
		s.log.Error("failed to consume quota", "user_id", userID, "error", err)
		return fmt.Errorf("consume quota: %w", err)
	}

	return nil
}
