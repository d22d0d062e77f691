package models

import (
	"context"
	"database/sql"
	"time"
)

const createMessage = `-- name: CreateMessage :exec
INSERT INTO messages (id, sender_id, receiver_id, content, image_url, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateMessageParams struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	ImageUrl   sql.NullString
	CreatedAt  time.Time
}

// CreateMessage inserts a message and returns the stored row. A new message
// is never read, so ReadAt is always null.
func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	_, err := q.db.ExecContext(ctx, createMessage,
		arg.ID,
		arg.SenderID,
		arg.ReceiverID,
		arg.Content,
		arg.ImageUrl,
		arg.CreatedAt,
	)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:         arg.ID,
		SenderID:   arg.SenderID,
		ReceiverID: arg.ReceiverID,
		Content:    arg.Content,
		ImageUrl:   arg.ImageUrl,
		CreatedAt:  arg.CreatedAt,
	}, nil
}

const getMessageByID = `-- name: GetMessageByID :one
SELECT id, sender_id, receiver_id, content, image_url, created_at, read_at FROM messages
WHERE id = ?
`

func (q *Queries) GetMessageByID(ctx context.Context, id string) (Message, error) {
	row := q.db.QueryRowContext(ctx, getMessageByID, id)
	var i Message
	err := row.Scan(
		&i.ID,
		&i.SenderID,
		&i.ReceiverID,
		&i.Content,
		&i.ImageUrl,
		&i.CreatedAt,
		&i.ReadAt,
	)
	return i, err
}

const markMessagesRead = `-- name: MarkMessagesRead :execrows
UPDATE messages SET read_at = ?
WHERE sender_id = ? AND receiver_id = ? AND read_at IS NULL
`

type MarkMessagesReadParams struct {
	ReadAt     time.Time
	SenderID   string
	ReceiverID string
}

func (q *Queries) MarkMessagesRead(ctx context.Context, arg MarkMessagesReadParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, markMessagesRead, arg.ReadAt, arg.SenderID, arg.ReceiverID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listConversationMessages = `-- name: ListConversationMessages :many
SELECT id, sender_id, receiver_id, content, image_url, created_at, read_at FROM messages
WHERE (sender_id = ?1 AND receiver_id = ?2) OR (sender_id = ?2 AND receiver_id = ?1)
ORDER BY created_at DESC, id DESC
LIMIT ?3
`

type ListConversationMessagesParams struct {
	UserID        string
	CounterpartID string
	Limit         int64
}

// ListConversationMessages returns the newest Limit messages between two
// users, oldest first.
func (q *Queries) ListConversationMessages(ctx context.Context, arg ListConversationMessagesParams) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx, listConversationMessages, arg.UserID, arg.CounterpartID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Message
	for rows.Next() {
		var i Message
		if err := rows.Scan(
			&i.ID,
			&i.SenderID,
			&i.ReceiverID,
			&i.Content,
			&i.ImageUrl,
			&i.CreatedAt,
			&i.ReadAt,
		); err != nil {
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
	for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
		items[l], items[r] = items[r], items[l]
	}
	return items, nil
}

const deleteMessage = `-- name: DeleteMessage :execrows
DELETE FROM messages
WHERE id = ? AND sender_id = ?
`

type DeleteMessageParams struct {
	ID       string
	SenderID string
}

func (q *Queries) DeleteMessage(ctx context.Context, arg DeleteMessageParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMessage, arg.ID, arg.SenderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteConversation = `-- name: DeleteConversation :execrows
DELETE FROM messages
WHERE (sender_id = ?1 AND receiver_id = ?2) OR (sender_id = ?2 AND receiver_id = ?1)
`

type DeleteConversationParams struct {
	UserID        string
	CounterpartID string
}

func (q *Queries) DeleteConversation(ctx context.Context, arg DeleteConversationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteConversation, arg.UserID, arg.CounterpartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
