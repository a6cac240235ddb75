package user

import "time"

type User struct {
	ID           int
	Username     string
	PasswordHash string
	// Daily AI-analysis budget state, reset on UTC date change.
	DailyCount int
	LastReset  *time.Time
	CreatedAt  time.Time
}
