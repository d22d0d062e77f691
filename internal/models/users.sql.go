package models

import (
	"context"
	"time"
)

const getUser = `-- name: GetUser :one
SELECT id, online, updated_at FROM users
WHERE id = ?
`

func (q *Queries) GetUser(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUser, id)
	var i User
	err := row.Scan(&i.ID, &i.Online, &i.UpdatedAt)
	return i, err
}

const upsertUserOnline = `-- name: UpsertUserOnline :exec
INSERT INTO users (id, online, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	online = excluded.online,
	updated_at = excluded.updated_at
`

type UpsertUserOnlineParams struct {
	ID        string
	Online    int64
	UpdatedAt time.Time
}

func (q *Queries) UpsertUserOnline(ctx context.Context, arg UpsertUserOnlineParams) error {
	_, err := q.db.ExecContext(ctx, upsertUserOnline, arg.ID, arg.Online, arg.UpdatedAt)
	return err
}

const resetAllPresence = `-- name: ResetAllPresence :execrows
UPDATE users SET online = 0, updated_at = ?
WHERE online = 1
`

func (q *Queries) ResetAllPresence(ctx context.Context, updatedAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, resetAllPresence, updatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
