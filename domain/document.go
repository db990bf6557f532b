// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

type WriteResult int

const (
	Saved    = WriteResult(1)
	NoChange = WriteResult(2)
)

func (w WriteResult) String() string {
	switch w {
	case Saved:
		return "saved"
	case NoChange:
		return "no change"
	}
	return "unknown"
}

type DocumentStore interface {
	// Read returns the current text, or an empty string for a document that
	// does not exist yet.
	Read(ctx context.Context, identifier string) (string, error)
	Write(ctx context.Context, identifier, text string, showDiff bool) (WriteResult, error)
}
