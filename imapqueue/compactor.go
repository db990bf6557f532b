// SPDX-License-Identifier: GPL-3.0-or-later
package imapqueue

//go:generate mockgen -destination=compactor_mocks_test.go -package=imapqueue -source compactor.go
import (
	"errors"
	"fmt"

	"github.com/CrawX/imap-readinglist/domain"

	"github.com/emersion/go-imap"
)

type compactor interface {
	compact(uids []uint32) error
	compactReady(uids []uint32) (error, error)
}

type uidExpunger interface {
	UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error
}

type uidPlusCompactor struct {
	imapConn uidExpunger
}

func (u *uidPlusCompactor) compact(uids []uint32) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- u.imapConn.UidExpunge(seqset, out)
	}()

	expunged := []uint32{}
	for seqNum := range out {
		expunged = append(expunged, seqNum)
	}

	err := <-done
	if err != nil {
		return classify("uid expunge", err)
	}

	if len(expunged) != len(uids) {
		return &domain.ProtocolError{
			Op:  "uid expunge",
			Err: fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), len(expunged)),
		}
	}

	return nil
}

func (u *uidPlusCompactor) compactReady(uids []uint32) (error, error) {
	// UID EXPUNGE only removes the given uids and is therefore always ready
	return nil, nil
}

type expungerAndSearcher interface {
	Expunge(ch chan uint32) error
	UidSearch(criteria *imap.SearchCriteria) (uids []uint32, err error)
}

type compatibilityCompactor struct {
	imapConn expungerAndSearcher
}

func (c *compatibilityCompactor) compact(uids []uint32) error {
	notReadyReason, err := c.compactReady(uids)
	if err != nil {
		return classify("search", err)
	}

	if notReadyReason != nil {
		return fmt.Errorf("mailbox is not ready for compaction: %w", notReadyReason)
	}

	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- c.imapConn.Expunge(out)
	}()

	expunged := []uint32{}
	for seqNum := range out {
		expunged = append(expunged, seqNum)
	}

	err = <-done
	if err != nil {
		return classify("expunge", err)
	}

	if len(expunged) != len(uids) {
		return &domain.ProtocolError{
			Op:  "expunge",
			Err: fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), len(expunged)),
		}
	}

	return nil
}

var ItemsWithForeignDeletedFlag = errors.New("mailbox has other items with delete flag set")

func (c *compatibilityCompactor) compactReady(uids []uint32) (error, error) {
	// Plain EXPUNGE removes everything flagged as deleted, so the mailbox is
	// only ready when nothing besides uids carries the flag.
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	flagged, err := c.imapConn.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for deleted in mailbox: %w", err)
	}

	own := map[uint32]bool{}
	for _, uid := range uids {
		own[uid] = true
	}

	for _, uid := range flagged {
		if !own[uid] {
			return ItemsWithForeignDeletedFlag, nil
		}
	}

	return nil, nil
}
