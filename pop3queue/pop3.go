// SPDX-License-Identifier: GPL-3.0-or-later
package pop3queue

//go:generate mockgen -destination=pop3_mocks_test.go -package=pop3queue -source pop3.go
import (
	"bytes"
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"

	"github.com/knadh/go-pop3"
	"github.com/sirupsen/logrus"
)

const DEFAULT_PORT = 995

type Options struct {
	Host               string
	User               string
	Password           string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// pop3Conn is the part of *pop3.Conn the queue talks to.
type pop3Conn interface {
	List(msgID int) ([]pop3.MessageID, error)
	RetrRaw(msgID int) (*bytes.Buffer, error)
	Dele(msgID ...int) error
	Rset() error
	Quit() error
}

// Pop3Queue is a single POP3 transaction. Deletions only take effect when the
// session ends with QUIT, so Compact ends the session and Close without a prior
// Compact resets all marks first.
type Pop3Queue struct {
	connection pop3Conn
	server     string
	closed     bool

	l *logrus.Logger
}

func Dialer(opts Options) domain.QueueDialer {
	return func(ctx context.Context) (domain.JobQueue, error) {
		return Dial(ctx, opts)
	}
}

func Dial(ctx context.Context, opts Options) (*Pop3Queue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not dial to pop3: %w", err)
	}

	host, port, err := splitHostPort(opts.Host)
	if err != nil {
		return nil, fmt.Errorf("could not parse pop3 server address: %w", err)
	}

	popClient := pop3.New(pop3.Opt{
		Host:          host,
		Port:          port,
		DialTimeout:   opts.Timeout,
		TLSEnabled:    true,
		TLSSkipVerify: opts.InsecureSkipVerify,
	})

	conn, err := popClient.NewConn()
	if err != nil {
		return nil, &domain.ConnectionError{Op: "dial", Err: err}
	}

	l := log.Logger(log.LOG_POP3)
	baseLogger := l.WithFields(logrus.Fields{"server": opts.Host})

	baseLogger.Debug("Authenticating")
	err = conn.Auth(opts.User, opts.Password)
	if err != nil {
		_ = conn.Quit()
		if domain.IsTransientNetworkError(err) {
			return nil, &domain.ConnectionError{Op: "login", Err: err}
		}
		return nil, &domain.AuthError{User: opts.User, Err: err}
	}

	baseLogger.Info("Connected")
	return &Pop3Queue{
		connection: conn,
		server:     opts.Host,
		l:          l,
	}, nil
}

func splitHostPort(address string) (string, int, error) {
	host, portString, err := net.SplitHostPort(address)
	if err != nil {
		// no port given
		return address, DEFAULT_PORT, nil
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portString, err)
	}
	return host, port, nil
}

func (pq *Pop3Queue) Enumerate(ctx context.Context) ([]*domain.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not enumerate maildrop: %w", err)
	}

	messages, err := pq.connection.List(0)
	if err != nil {
		return nil, classify("list", err)
	}

	items := make([]*domain.QueueItem, 0, len(messages))
	for _, msg := range messages {
		if msg.ID <= 0 {
			return nil, &domain.ProtocolError{Op: "list", Err: fmt.Errorf("invalid message number %d", msg.ID)}
		}

		raw, err := pq.connection.RetrRaw(msg.ID)
		if err != nil {
			return nil, classify("retr", err)
		}
		if raw == nil {
			return nil, &domain.ProtocolError{Op: "retr", Err: fmt.Errorf("message %d has no body", msg.ID)}
		}

		items = append(items, &domain.QueueItem{
			Id:      domain.QueueItemId(msg.ID),
			RawMail: raw.Bytes(),
		})
	}

	pq.l.WithField("messages", len(items)).Debug("Fetched messages")
	return items, nil
}

func (pq *Pop3Queue) MarkDeleted(ctx context.Context, id domain.QueueItemId) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not mark %d as deleted: %w", id, err)
	}

	err := pq.connection.Dele(int(id))
	if err != nil {
		return classify("dele", err)
	}

	pq.l.WithField("msg", id).Debug("Marked as deleted")
	return nil
}

// CompactReady is always ready, DELE marks are private to this session.
func (pq *Pop3Queue) CompactReady(ctx context.Context, ids []domain.QueueItemId) (error, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not check for compaction readiness: %w", err)
	}
	return nil, nil
}

func (pq *Pop3Queue) Compact(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not compact maildrop: %w", err)
	}
	if pq.closed {
		return nil
	}

	err := pq.connection.Quit()
	pq.closed = true
	if err != nil {
		return classify("quit", err)
	}

	pq.l.WithField("server", pq.server).Info("Compacted maildrop")
	return nil
}

func (pq *Pop3Queue) Close() error {
	if pq.closed {
		return nil
	}
	pq.closed = true

	err := pq.connection.Rset()
	if err != nil {
		_ = pq.connection.Quit()
		return classify("rset", err)
	}

	err = pq.connection.Quit()
	if err != nil {
		return classify("quit", err)
	}

	pq.l.WithField("server", pq.server).Debug("Logged out")
	return nil
}

// classify maps -ERR replies to protocol errors, everything else is the connection.
func classify(op string, err error) error {
	if domain.IsTransientNetworkError(err) {
		return &domain.ConnectionError{Op: op, Err: err}
	}
	return &domain.ProtocolError{Op: op, Err: err}
}
