// SPDX-License-Identifier: GPL-3.0-or-later
package imapqueue

import (
	"errors"
	"testing"

	"github.com/CrawX/imap-readinglist/domain"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestUidPlusCompactor_CompactReady(t *testing.T) {
	compactor := uidPlusCompactor{nil}

	notReadyReason, err := compactor.compactReady(u32a(1, 2))
	assert.NoError(t, notReadyReason)
	assert.NoError(t, err)
}

func TestUidPlusCompactor_Compact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockuidExpunger(ctrl)
	compactor := uidPlusCompactor{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32a(1, 2, 3)...)
	conn.EXPECT().
		UidExpunge(gomock.Eq(seqset), gomock.Any()).
		DoAndReturn(func(seqSet *imap.SeqSet, ch chan uint32) error {
			ch <- u32(1)
			ch <- u32(1)
			ch <- u32(1)
			close(ch)
			return nil
		})

	err := compactor.compact(u32a(1, 2, 3))
	assert.NoError(t, err)
}

func TestUidPlusCompactor_CompactCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockuidExpunger(ctrl)
	compactor := uidPlusCompactor{conn}

	conn.EXPECT().
		UidExpunge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(seqSet *imap.SeqSet, ch chan uint32) error {
			ch <- u32(1)
			close(ch)
			return nil
		})

	err := compactor.compact(u32a(1, 2))
	var protoErr *domain.ProtocolError
	assert.True(t, errors.As(err, &protoErr))
	assert.EqualError(t, err, "protocol error during uid expunge: unexpected number of expunges, expected 2 got 1")
}

func TestCompatibilityCompactor_CompactReadyOk(t *testing.T) {
	tests := []struct {
		name    string
		flagged []uint32
	}{
		{"none", u32a()},
		{"own", u32a(2, 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conn := NewMockexpungerAndSearcher(ctrl)
			compactor := compatibilityCompactor{conn}

			criteria := imap.NewSearchCriteria()
			criteria.WithFlags = []string{imap.DeletedFlag}

			conn.EXPECT().
				UidSearch(gomock.Eq(criteria)).
				Return(tc.flagged, nil)

			notReadyReason, err := compactor.compactReady(u32a(1, 2, 3))
			assert.NoError(t, notReadyReason)
			assert.NoError(t, err)
		})
	}
}

func TestCompatibilityCompactor_CompactReadyNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockexpungerAndSearcher(ctrl)
	compactor := compatibilityCompactor{conn}

	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}

	conn.EXPECT().
		UidSearch(gomock.Eq(criteria)).
		Return(u32a(1, 7), nil)

	notReadyReason, err := compactor.compactReady(u32a(1, 2))
	assert.EqualError(t, notReadyReason, "mailbox has other items with delete flag set")
	assert.NoError(t, err)
}

func TestCompatibilityCompactor_Compact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockexpungerAndSearcher(ctrl)
	compactor := compatibilityCompactor{conn}

	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}

	conn.EXPECT().
		UidSearch(gomock.Eq(criteria)).
		Return(u32a(1, 2, 3), nil)

	conn.EXPECT().
		Expunge(gomock.Any()).
		DoAndReturn(func(ch chan uint32) error {
			ch <- u32(1)
			ch <- u32(1)
			ch <- u32(1)
			close(ch)
			return nil
		})

	err := compactor.compact(u32a(1, 2, 3))
	assert.NoError(t, err)
}

func TestCompatibilityCompactor_CompactButNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockexpungerAndSearcher(ctrl)
	compactor := compatibilityCompactor{conn}

	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}

	conn.EXPECT().
		UidSearch(gomock.Eq(criteria)).
		Return(u32a(1, 9), nil)

	err := compactor.compact(u32a(1, 2, 3))
	assert.EqualError(t, err, "mailbox is not ready for compaction: mailbox has other items with delete flag set")
}

func TestCompatibilityCompactor_CompactExpungeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockexpungerAndSearcher(ctrl)
	compactor := compatibilityCompactor{conn}

	conn.EXPECT().
		UidSearch(gomock.Any()).
		Return(u32a(4), nil)

	conn.EXPECT().
		Expunge(gomock.Any()).
		DoAndReturn(func(ch chan uint32) error {
			close(ch)
			return errors.New("EXPUNGE failed: mailbox is read-only")
		})

	err := compactor.compact(u32a(4))
	var protoErr *domain.ProtocolError
	assert.True(t, errors.As(err, &protoErr))
	assert.Equal(t, "expunge", protoErr.Op)
}
