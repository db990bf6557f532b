// SPDX-License-Identifier: GPL-3.0-or-later
package readinglist

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/imap-readinglist/docstore"
	"github.com/CrawX/imap-readinglist/document"
	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"
	"github.com/CrawX/imap-readinglist/mail"
	"github.com/CrawX/imap-readinglist/transform"

	"github.com/sirupsen/logrus"
)

type EntryTransformer interface {
	Transform(msg *domain.DecodedMessage) (string, transform.SkipReason)
}

type ReadingList struct {
	dial        domain.QueueDialer
	store       domain.DocumentStore
	transformer EntryTransformer

	configuration *configuration

	l *logrus.Logger
}

func NewReadingList(dial domain.QueueDialer, store domain.DocumentStore, transformer EntryTransformer, configFunc ...ConfigFunc) (*ReadingList, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &ReadingList{
		dial:          dial,
		store:         store,
		transformer:   transformer,
		configuration: config,
		l:             log.Logger(log.LOG_READINGLIST),
	}, nil
}

// Run drains the queue into the document once. Queue items are flagged and
// compacted only after the document containing their entries was written.
func (rl *ReadingList) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		State:   Idle,
		Skipped: map[domain.QueueItemId]transform.SkipReason{},
	}

	errs := rl.run(ctx, result)
	if len(errs) > 0 {
		result.fail()
	}

	if result.documentSaved() {
		remaining := []error{}
		for _, err := range errs {
			if domain.IsTransientNetworkError(err) {
				rl.l.WithError(err).Warn("Ignoring network error, document was already saved")
				result.Suppressed = append(result.Suppressed, err)
				continue
			}
			remaining = append(remaining, err)
		}
		errs = remaining
	}

	rl.l.WithFields(logrus.Fields{
		"state":    result.State,
		"entries":  len(result.Entries),
		"consumed": len(result.Consumed),
		"skipped":  len(result.Skipped),
		"duration": time.Since(start),
	}).Info("Run finished")

	switch len(errs) {
	case 0:
		return result, nil
	case 1:
		return result, errs[0]
	default:
		return result, Errors(errs)
	}
}

func (rl *ReadingList) run(ctx context.Context, result *Result) []error {
	if err := ctx.Err(); err != nil {
		return []error{fmt.Errorf("run cancelled: %w", err)}
	}

	queue, err := rl.dial(ctx)
	if err != nil {
		return []error{fmt.Errorf("could not connect to queue: %w", err)}
	}
	result.advance(Connected)

	errs := rl.process(ctx, queue, result)

	err = queue.Close()
	if err != nil {
		errs = append(errs, fmt.Errorf("could not close queue: %w", err))
	}
	return errs
}

func (rl *ReadingList) process(ctx context.Context, queue domain.JobQueue, result *Result) []error {
	cfg := rl.configuration

	items, err := queue.Enumerate(ctx)
	if err != nil {
		return []error{fmt.Errorf("could not enumerate queue: %w", err)}
	}
	result.Enumerated = len(items)
	result.advance(Enumerated)

	if len(items) == 0 {
		rl.l.Info("Queue is empty")
		result.advance(Done)
		return nil
	}

	for _, item := range items {
		rl.l.WithField("id", item.Id).Debugf("Raw message:\n%s", mail.Archive(item.RawMail))
	}

	entries, consumed := []string{}, []domain.QueueItemId{}
	for _, decoded := range mail.DecodeAll(items, cfg.DecodeConcurrency) {
		subject := ""
		if decoded.Message.Subject != nil {
			subject = *decoded.Message.Subject
		}

		entry, reason := rl.transformer.Transform(decoded.Message)
		if reason != transform.NotSkipped {
			rl.l.WithFields(logrus.Fields{"id": decoded.Id, "subject": mail.ShortSubject(subject), "reason": reason}).Info("Skipping message")
			result.Skipped[decoded.Id] = reason
			continue
		}

		rl.l.WithFields(logrus.Fields{"id": decoded.Id, "entry": entry}).Debug("Transformed message")
		entries = append(entries, entry)
		consumed = append(consumed, decoded.Id)
	}
	result.Entries = entries
	result.advance(Transformed)

	if len(entries) == 0 {
		rl.l.WithField("skipped", len(result.Skipped)).Info("No message produced an entry")
		result.advance(Done)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return []error{fmt.Errorf("run cancelled before merge: %w", err)}
	}

	existing, err := rl.store.Read(ctx, cfg.Document)
	if err != nil {
		return []error{fmt.Errorf("could not read document %s: %w", cfg.Document, err)}
	}

	merged := document.Merge(existing, entries)
	result.advance(Merged)
	rl.l.WithFields(logrus.Fields{
		"document": cfg.Document,
		"before":   len(document.Entries(existing)),
		"after":    len(document.Entries(merged)),
	}).Debug("Merged entries")

	if cfg.DryRun {
		diff, err := docstore.Diff(cfg.Document, existing, merged)
		if err != nil {
			return []error{err}
		}
		rl.l.WithField("document", cfg.Document).Infof("Not saving due to dry-run, changes:\n%s", diff)
		result.advance(Done)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return []error{fmt.Errorf("run cancelled before write: %w", err)}
	}

	writeResult, err := rl.store.Write(ctx, cfg.Document, merged, cfg.ShowDiff)
	if err != nil {
		return []error{fmt.Errorf("could not write document %s: %w", cfg.Document, err)}
	}
	result.Write = writeResult
	result.advance(Persisted)
	rl.l.WithFields(logrus.Fields{"document": cfg.Document, "result": writeResult, "entries": len(entries)}).Info("Persisted document")

	if err := ctx.Err(); err != nil {
		return []error{fmt.Errorf("run cancelled before compaction: %w", err)}
	}

	notReadyReason, err := queue.CompactReady(ctx, consumed)
	if err != nil {
		return []error{fmt.Errorf("could not check for compaction readiness: %w", err)}
	}
	if notReadyReason != nil {
		rl.l.WithError(notReadyReason).Warn("Queue is not ready for compaction, leaving messages in place")
		result.advance(Done)
		return nil
	}

	for _, id := range consumed {
		err := queue.MarkDeleted(ctx, id)
		if err != nil {
			return []error{fmt.Errorf("could not mark %d as deleted: %w", id, err)}
		}
		result.Consumed = append(result.Consumed, id)
	}

	err = queue.Compact(ctx)
	if err != nil {
		return []error{fmt.Errorf("could not compact queue: %w", err)}
	}
	result.Compacted = true
	result.advance(Compacted)

	result.advance(Done)
	return nil
}
