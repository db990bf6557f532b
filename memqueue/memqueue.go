// SPDX-License-Identifier: GPL-3.0-or-later
package memqueue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/CrawX/imap-readinglist/domain"
)

var ItemsWithForeignDeletedFlag = errors.New("queue has other items with delete flag set")

// Queue keeps its items in memory. It behaves like a mailbox on a server
// without UIDPLUS: flags are visible to every session and Compact removes
// everything flagged.
type Queue struct {
	mu      sync.Mutex
	items   map[domain.QueueItemId][]byte
	flagged map[domain.QueueItemId]bool
	nextId  domain.QueueItemId
	closed  int
}

func NewQueue(rawMails ...[]byte) *Queue {
	q := &Queue{
		items:   map[domain.QueueItemId][]byte{},
		flagged: map[domain.QueueItemId]bool{},
		nextId:  1,
	}
	for _, raw := range rawMails {
		q.Add(raw)
	}
	return q
}

// Dialer hands out the same queue on every dial.
func (q *Queue) Dialer() domain.QueueDialer {
	return func(ctx context.Context) (domain.JobQueue, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return q, nil
	}
}

func (q *Queue) Add(rawMail []byte) domain.QueueItemId {
	q.mu.Lock()
	defer q.mu.Unlock()

	id := q.nextId
	q.nextId++
	q.items[id] = append([]byte(nil), rawMail...)
	return id
}

// Flag sets the delete flag on an item as another client would.
func (q *Queue) Flag(id domain.QueueItemId) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.items[id]; ok {
		q.flagged[id] = true
	}
}

func (q *Queue) Enumerate(ctx context.Context) ([]*domain.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not enumerate queue: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	items := make([]*domain.QueueItem, 0, len(q.items))
	for _, id := range q.sortedIds() {
		items = append(items, &domain.QueueItem{
			Id:      id,
			RawMail: append([]byte(nil), q.items[id]...),
		})
	}
	return items, nil
}

func (q *Queue) MarkDeleted(ctx context.Context, id domain.QueueItemId) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not mark %d as deleted: %w", id, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.items[id]; !ok {
		return &domain.ProtocolError{Op: "store", Err: fmt.Errorf("no item with id %d", id)}
	}
	q.flagged[id] = true
	return nil
}

func (q *Queue) CompactReady(ctx context.Context, ids []domain.QueueItemId) (error, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not check for compaction readiness: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	own := map[domain.QueueItemId]bool{}
	for _, id := range ids {
		own[id] = true
	}
	for id := range q.flagged {
		if !own[id] {
			return ItemsWithForeignDeletedFlag, nil
		}
	}
	return nil, nil
}

func (q *Queue) Compact(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not compact queue: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for id := range q.flagged {
		delete(q.items, id)
	}
	q.flagged = map[domain.QueueItemId]bool{}
	return nil
}

func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed++
	return nil
}

// Remaining returns the ids still in the queue in arrival order.
func (q *Queue) Remaining() []domain.QueueItemId {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.sortedIds()
}

// Closed tells how often the queue was closed.
func (q *Queue) Closed() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.closed
}

func (q *Queue) sortedIds() []domain.QueueItemId {
	ids := make([]domain.QueueItemId, 0, len(q.items))
	for id := range q.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
