package models

import (
	"context"
	"fmt"
	"strings"
)

// UsersOnlineByIDs returns a map of userID -> online for the provided ids.
//
// Ids without a users row are reported offline.
func (q *Queries) UsersOnlineByIDs(ctx context.Context, userIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(userIDs))
	if q == nil || len(userIDs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
			out[id] = false
		}
	}
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	query := fmt.Sprintf(`SELECT id, online FROM users WHERE id IN (%s)`, placeholders)
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var onlineInt int64
		if err := rows.Scan(&id, &onlineInt); err != nil {
			return nil, err
		}
		out[id] = onlineInt != 0
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
