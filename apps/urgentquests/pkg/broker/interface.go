package broker

import "context"

const (
	AddedQueue   = "urgentquests.added"
	RemovedQueue = "urgentquests.removed"
	// UpcomingQueue receives one message per event about to start.
	UpcomingQueue = "urgentquests.upcoming"
)

type Client interface {
	Publish(ctx context.Context, queue string, messages ...any) error
}
