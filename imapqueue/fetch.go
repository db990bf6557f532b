// SPDX-License-Identifier: GPL-3.0-or-later
package imapqueue

import (
	"fmt"
	"io"

	"github.com/CrawX/imap-readinglist/domain"

	"github.com/emersion/go-imap"
)

// collectItems drains messages and pairs every UID with its full body. Any
// message missing one of them fails the whole fetch, the channel is still
// drained so the fetch command can finish.
func collectItems(messages <-chan *imap.Message, section *imap.BodySectionName) ([]*domain.QueueItem, error) {
	var firstErr error
	items := []*domain.QueueItem{}
	seen := map[uint32]bool{}

	for msg := range messages {
		if firstErr != nil {
			continue
		}

		if msg.Uid == 0 {
			firstErr = &domain.ProtocolError{Op: "fetch", Err: fmt.Errorf("message %d has no uid", msg.SeqNum)}
			continue
		}

		if seen[msg.Uid] {
			firstErr = &domain.ProtocolError{Op: "fetch", Err: fmt.Errorf("uid %d returned twice", msg.Uid)}
			continue
		}

		r := msg.GetBody(section)
		if r == nil {
			firstErr = &domain.ProtocolError{Op: "fetch", Err: fmt.Errorf("message with uid %d has no body", msg.Uid)}
			continue
		}

		announced := r.Len()
		rawMail, err := io.ReadAll(r)
		if err != nil {
			firstErr = &domain.ProtocolError{Op: "fetch", Err: fmt.Errorf("could not read body of uid %d: %w", msg.Uid, err)}
			continue
		}

		if len(rawMail) != announced {
			firstErr = &domain.ProtocolError{Op: "fetch", Err: fmt.Errorf("uid %d body is %d bytes, announced %d", msg.Uid, len(rawMail), announced)}
			continue
		}

		seen[msg.Uid] = true
		items = append(items, &domain.QueueItem{
			Id:      domain.QueueItemId(msg.Uid),
			RawMail: rawMail,
		})
	}

	return items, firstErr
}
