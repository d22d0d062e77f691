package handlers

import (
	"context"
)

// Disconnect applies the presence side effects of a user found with no
// sessions. The user goes offline only when last reports that it was
// announced online before.
func Disconnect(ctx context.Context, deps Deps, auth AuthContext, last bool) EventResult {
	if !last || auth.UserID() == "" {
		return NewEventResult(nil, nil)
	}
	return presenceChanged(ctx, deps, auth.UserID(), false)
}
