package models

import (
	"context"
	"time"
)

const createBlockedUser = `-- name: CreateBlockedUser :exec
INSERT INTO blocked_users (blocker_id, blocked_id, created_at)
VALUES (?, ?, ?)
ON CONFLICT(blocker_id, blocked_id) DO NOTHING
`

type CreateBlockedUserParams struct {
	BlockerID string
	BlockedID string
	CreatedAt time.Time
}

func (q *Queries) CreateBlockedUser(ctx context.Context, arg CreateBlockedUserParams) error {
	_, err := q.db.ExecContext(ctx, createBlockedUser, arg.BlockerID, arg.BlockedID, arg.CreatedAt)
	return err
}

const getBlockedUser = `-- name: GetBlockedUser :one
SELECT blocker_id, blocked_id, created_at FROM blocked_users
WHERE blocker_id = ? AND blocked_id = ?
`

type GetBlockedUserParams struct {
	BlockerID string
	BlockedID string
}

func (q *Queries) GetBlockedUser(ctx context.Context, arg GetBlockedUserParams) (BlockedUser, error) {
	row := q.db.QueryRowContext(ctx, getBlockedUser, arg.BlockerID, arg.BlockedID)
	var i BlockedUser
	err := row.Scan(&i.BlockerID, &i.BlockedID, &i.CreatedAt)
	return i, err
}

const deleteBlockedUser = `-- name: DeleteBlockedUser :execrows
DELETE FROM blocked_users
WHERE blocker_id = ? AND blocked_id = ?
`

type DeleteBlockedUserParams struct {
	BlockerID string
	BlockedID string
}

func (q *Queries) DeleteBlockedUser(ctx context.Context, arg DeleteBlockedUserParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBlockedUser, arg.BlockerID, arg.BlockedID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listBlockedUsers = `-- name: ListBlockedUsers :many
SELECT blocker_id, blocked_id, created_at FROM blocked_users
WHERE blocker_id = ?
ORDER BY created_at DESC
`

func (q *Queries) ListBlockedUsers(ctx context.Context, blockerID string) ([]BlockedUser, error) {
	rows, err := q.db.QueryContext(ctx, listBlockedUsers, blockerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlockedUser
	for rows.Next() {
		var i BlockedUser
		if err := rows.Scan(&i.BlockerID, &i.BlockedID, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
