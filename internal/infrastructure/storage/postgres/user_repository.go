package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"lyristudy/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (user.User, error) {
	u := user.User{Username: username, PasswordHash: passwordHash}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash)
         VALUES ($1, $2)
         RETURNING id, created_at`,
		username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrAlreadyExists
		}
		r.log.Error("failed to create user", "username", username, "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User

	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, daily_count, last_reset, created_at
         FROM users
         WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DailyCount, &u.LastReset, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to find user", "username", username, "error", err)
		return user.User{}, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}
