// SPDX-License-Identifier: GPL-3.0-or-later
package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_revisions",
			Up: []string{
				`CREATE TABLE revisions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					identifier TEXT NOT NULL,
					text TEXT NOT NULL,
					created INTEGER NOT NULL
				)`,
				`CREATE INDEX revisions_identifier ON revisions (identifier, id)`,
			},
			Down: []string{
				`DROP INDEX revisions_identifier`,
				`DROP TABLE revisions`,
			},
		},
	},
}

// SQLStore keeps every saved version of a document as a revision row, the
// newest revision is the current text.
type SQLStore struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewSQLStore(datasource string) (*SQLStore, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_DOCSTORE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &SQLStore{
		db: db,
		l:  l,
	}, nil
}

func (s *SQLStore) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	s.l.Info("Disconnected")
	return nil
}

func (s *SQLStore) Read(ctx context.Context, identifier string) (string, error) {
	text, err := latestText(ctx, s.db, identifier)
	if err != nil {
		return "", err
	}
	return text, nil
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func latestText(ctx context.Context, db getter, identifier string) (string, error) {
	var text string
	err := db.GetContext(
		ctx,
		&text,
		`SELECT text FROM revisions WHERE identifier = ? ORDER BY id DESC LIMIT 1`,
		identifier,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not query db: %w", err)
	}
	return text, nil
}

func (s *SQLStore) Write(ctx context.Context, identifier, text string, showDiff bool) (domain.WriteResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %w", err)
	}

	previous, err := latestText(ctx, tx, identifier)
	if err != nil {
		return 0, txEnd(tx, err)
	}

	if previous == text {
		s.l.WithField("document", identifier).Info("Document unchanged")
		return domain.NoChange, txEnd(tx, nil)
	}

	if showDiff {
		logDiff(s.l, identifier, previous, text)
	}

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO revisions(identifier, text, created) VALUES(?, ?, ?)",
		identifier, text, time.Now().Unix(),
	)
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not save revision: %w", err))
	}

	err = txEnd(tx, nil)
	if err != nil {
		return 0, err
	}

	s.l.WithFields(logrus.Fields{"document": identifier, "bytes": len(text)}).Info("Saved revision")
	return domain.Saved, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
