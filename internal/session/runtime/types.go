package runtime

import "context"

// Task is a unit of work executed on a lane.
//
// The context is detached from any socket callback; it is cancelled only when
// the manager shuts down.
type Task func(ctx context.Context)

// DefaultQueueSize bounds each lane when the caller does not configure one.
const DefaultQueueSize = 256

// UserLane returns the lane key that serializes presence writes for a user.
func UserLane(userID string) string {
	return "user:" + userID
}

// SocketLane returns the lane key that serializes events for one connection.
func SocketLane(socketID string) string {
	return "socket:" + socketID
}
