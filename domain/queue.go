// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

//go:generate mockgen -destination=mocks/queue.go -package=mocks . JobQueue,DocumentStore

// QueueItemId identifies a message within one mailbox session.
type QueueItemId uint32

type QueueItem struct {
	Id      QueueItemId
	RawMail []byte
}

// QueueDialer connects and authenticates a JobQueue.
type QueueDialer func(ctx context.Context) (JobQueue, error)

// JobQueue is a mailbox treated as a FIFO of work items. Deletions only become
// permanent once Compact is called.
type JobQueue interface {
	Enumerate(ctx context.Context) ([]*QueueItem, error)
	MarkDeleted(ctx context.Context, id QueueItemId) error
	// CompactReady returns a non-nil reason if compacting would remove items
	// outside of ids.
	CompactReady(ctx context.Context, ids []QueueItemId) (error, error)
	Compact(ctx context.Context) error

	Close() error
}
