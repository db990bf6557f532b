// SPDX-License-Identifier: GPL-3.0-or-later
package readinglist

import (
	"strings"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/transform"
)

type State int

const (
	Idle State = iota
	Connected
	Enumerated
	Transformed
	Merged
	Persisted
	Compacted
	Done
	Failed
)

var stateNames = []string{"idle", "connected", "enumerated", "transformed", "merged", "persisted", "compacted", "done", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Result describes what a run did, also when it failed.
type Result struct {
	State State
	// FailedIn is the last state reached before a failure.
	FailedIn State

	Enumerated int
	Entries    []string
	Consumed   []domain.QueueItemId
	Skipped    map[domain.QueueItemId]transform.SkipReason

	Write     domain.WriteResult
	Compacted bool

	// Suppressed holds transient network errors that were dropped because
	// the document had already been saved.
	Suppressed []error
}

func (r *Result) advance(to State) {
	r.State = to
}

func (r *Result) fail() {
	if r.State != Failed {
		r.FailedIn = r.State
		r.State = Failed
	}
}

func (r *Result) documentSaved() bool {
	return r.Write == domain.Saved || r.Write == domain.NoChange
}

// Errors is returned when a run ended with more than one error. Unwrap yields
// the error that aborted the run.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}
