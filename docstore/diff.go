// SPDX-License-Identifier: GPL-3.0-or-later
package docstore

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between two revisions of a document.
func Diff(identifier, previous, next string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(previous),
		B:        difflib.SplitLines(next),
		FromFile: identifier,
		ToFile:   identifier + " (new)",
		Context:  1,
	})
	if err != nil {
		return "", fmt.Errorf("could not diff %s: %w", identifier, err)
	}
	return diff, nil
}
