// SPDX-License-Identifier: GPL-3.0-or-later
package imapqueue

//go:generate mockgen -destination=imap_mocks_test.go -package=imapqueue -source imap.go
import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"

	"github.com/emersion/go-imap"
	compress "github.com/emersion/go-imap-compress"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Host               string
	User               string
	Password           string
	Mailbox            string
	Compress           bool
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// imapClient is the part of *client.Client the queue talks to.
type imapClient interface {
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	Fetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	UidStore(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
	Logout() error
}

// ImapQueue is a single authenticated IMAP session on the queue mailbox.
type ImapQueue struct {
	connection imapClient
	compactor  compactor

	server, mailbox string
	marked          []uint32

	l *logrus.Logger
}

func Dialer(opts Options) domain.QueueDialer {
	return func(ctx context.Context) (domain.JobQueue, error) {
		return Dial(ctx, opts)
	}
}

func Dial(ctx context.Context, opts Options) (*ImapQueue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	serverName := opts.Host
	if host, _, err := net.SplitHostPort(opts.Host); err == nil {
		serverName = host
	}

	imapConn, err := client.DialWithDialerTLS(
		&net.Dialer{Timeout: opts.Timeout},
		opts.Host,
		&tls.Config{
			ServerName:         serverName,
			InsecureSkipVerify: opts.InsecureSkipVerify,
		},
	)
	if err != nil {
		return nil, &domain.ConnectionError{Op: "dial", Err: err}
	}
	imapConn.Timeout = opts.Timeout

	l := log.Logger(log.LOG_IMAP)
	baseLogger := l.WithFields(logrus.Fields{"server": opts.Host})

	if len(opts.User) > 0 {
		baseLogger.Debug("Authenticating")
		err = imapConn.Login(opts.User, opts.Password)
		if err != nil {
			_ = imapConn.Logout()
			if domain.IsTransientNetworkError(err) {
				return nil, &domain.ConnectionError{Op: "login", Err: err}
			}
			return nil, &domain.AuthError{User: opts.User, Err: err}
		}
	}

	if opts.Compress {
		compressClient := compress.NewClient(imapConn)
		compressSupported, err := compressClient.SupportCompress(compress.Deflate)
		if err != nil {
			_ = imapConn.Logout()
			return nil, classify("capability", err)
		}

		if compressSupported {
			err = compressClient.Compress(compress.Deflate)
			if err != nil {
				_ = imapConn.Logout()
				return nil, classify("compress", err)
			}
			baseLogger.Debug("COMPRESS=DEFLATE enabled")
		} else {
			baseLogger.Info("COMPRESS=DEFLATE not supported on server, continuing uncompressed")
		}
	}

	uidPlusClient := uidplus.NewClient(imapConn)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		_ = imapConn.Logout()
		return nil, classify("capability", err)
	}

	queue := &ImapQueue{
		connection: imapConn,
		server:     opts.Host,
		mailbox:    opts.Mailbox,
		l:          l,
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID EXPUNGE for compaction")
		queue.compactor = &uidPlusCompactor{
			imapConn: uidPlusClient,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to EXPUNGE")
		queue.compactor = &compatibilityCompactor{
			imapConn: imapConn,
		}
	}

	baseLogger.Info("Connected")
	return queue, nil
}

func (iq *ImapQueue) Enumerate(ctx context.Context) ([]*domain.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not enumerate %s: %w", iq.mailbox, err)
	}

	iq.l.WithField("mailbox", iq.mailbox).Debug("Selecting mailbox")
	status, err := iq.connection.Select(iq.mailbox, false)
	if err != nil {
		return nil, classify("select", err)
	}

	if status == nil || status.Messages == 0 {
		iq.l.WithField("mailbox", iq.mailbox).Info("Mailbox is empty")
		return []*domain.QueueItem{}, nil
	}

	seqset := &imap.SeqSet{}
	seqset.AddRange(1, 0)

	section := &imap.BodySectionName{
		Peek: true,
	}
	items := []imap.FetchItem{imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- iq.connection.Fetch(seqset, items, messages)
	}()

	queueItems, collectErr := collectItems(messages, section)

	err = <-done
	if err != nil {
		return nil, classify("fetch", err)
	}
	if collectErr != nil {
		return nil, collectErr
	}

	iq.l.WithFields(logrus.Fields{"mailbox": iq.mailbox, "messages": len(queueItems)}).Debug("Fetched messages")
	return queueItems, nil
}

func (iq *ImapQueue) MarkDeleted(ctx context.Context, id domain.QueueItemId) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not mark %d as deleted: %w", id, err)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uint32(id))
	err := iq.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return classify("store", err)
	}

	iq.marked = append(iq.marked, uint32(id))
	iq.l.WithField("uid", id).Debug("Flagged as deleted")
	return nil
}

func (iq *ImapQueue) CompactReady(ctx context.Context, ids []domain.QueueItemId) (error, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not check for compaction readiness: %w", err)
	}

	uids := make([]uint32, len(ids))
	for i, id := range ids {
		uids[i] = uint32(id)
	}

	notReadyReason, err := iq.compactor.compactReady(uids)
	if err != nil {
		return nil, classify("search", err)
	}
	return notReadyReason, nil
}

func (iq *ImapQueue) Compact(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not compact %s: %w", iq.mailbox, err)
	}

	if len(iq.marked) == 0 {
		iq.l.WithField("mailbox", iq.mailbox).Debug("Nothing flagged, skipping expunge")
		return nil
	}

	err := iq.compactor.compact(iq.marked)
	if err != nil {
		return err
	}

	iq.l.WithFields(logrus.Fields{"mailbox": iq.mailbox, "expunged": len(iq.marked)}).Info("Compacted mailbox")
	iq.marked = nil
	return nil
}

func (iq *ImapQueue) Close() error {
	err := iq.connection.Logout()
	if err != nil && !errors.Is(err, client.ErrAlreadyLoggedOut) {
		return classify("logout", err)
	}

	iq.l.WithField("server", iq.server).Debug("Logged out")
	return nil
}

// classify sorts a client error into the domain error taxonomy. Tagged NO/BAD
// responses are protocol errors, everything on the wire level is a connection error.
func classify(op string, err error) error {
	if domain.IsTransientNetworkError(err) {
		return &domain.ConnectionError{Op: op, Err: err}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") || strings.Contains(msg, "connection closed") {
		return &domain.ConnectionError{Op: op, Err: err}
	}

	return &domain.ProtocolError{Op: op, Err: err}
}
