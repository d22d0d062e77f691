package models

import (
	"database/sql"
	"time"
)

type BlockedUser struct {
	BlockerID string
	BlockedID string
	CreatedAt time.Time
}

type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	ImageUrl   sql.NullString
	CreatedAt  time.Time
	ReadAt     sql.NullTime
}

type User struct {
	ID        string
	Online    int64
	UpdatedAt time.Time
}
