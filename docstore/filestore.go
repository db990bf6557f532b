// SPDX-License-Identifier: GPL-3.0-or-later
package docstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"

	"github.com/creachadair/atomicfile"
	"github.com/sirupsen/logrus"
)

const FILE_EXTENSION = ".wiki"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore keeps every document as a file in one directory. Writes go to a
// temporary file that is renamed over the old one.
type FileStore struct {
	dir string
	l   *logrus.Logger
}

func NewFileStore(dir string) (*FileStore, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("could not create document directory: %w", err)
	}

	l := log.Logger(log.LOG_DOCSTORE)
	l.WithField("dir", dir).Debug("Using file store")

	return &FileStore{
		dir: dir,
		l:   l,
	}, nil
}

func (s *FileStore) Path(identifier string) string {
	return filepath.Join(s.dir, unsafeFileChars.ReplaceAllString(identifier, "_")+FILE_EXTENSION)
}

func (s *FileStore) Read(ctx context.Context, identifier string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("could not read %s: %w", identifier, err)
	}

	text, err := os.ReadFile(s.Path(identifier))
	if errors.Is(err, os.ErrNotExist) {
		s.l.WithField("document", identifier).Debug("Document does not exist yet")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", identifier, err)
	}

	return string(text), nil
}

func (s *FileStore) Write(ctx context.Context, identifier, text string, showDiff bool) (domain.WriteResult, error) {
	previous, err := s.Read(ctx, identifier)
	if err != nil {
		return 0, err
	}

	if previous == text {
		s.l.WithField("document", identifier).Info("Document unchanged")
		return domain.NoChange, nil
	}

	if showDiff {
		logDiff(s.l, identifier, previous, text)
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("could not write %s: %w", identifier, err)
	}

	err = atomicfile.WriteData(s.Path(identifier), []byte(text), fileMode)
	if err != nil {
		return 0, fmt.Errorf("could not write %s: %w", identifier, err)
	}

	s.l.WithFields(logrus.Fields{"document": identifier, "bytes": len(text)}).Info("Saved document")
	return domain.Saved, nil
}

const fileMode fs.FileMode = 0644

func logDiff(l *logrus.Logger, identifier, previous, next string) {
	diff, err := Diff(identifier, previous, next)
	if err != nil {
		l.WithError(err).Warn("Could not render diff")
		return
	}
	l.WithField("document", identifier).Infof("Changes:\n%s", diff)
}
