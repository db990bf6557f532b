// SPDX-License-Identifier: GPL-3.0-or-later
package readinglist

import "fmt"

const DEFAULT_DOCUMENT = "Reading list"

type ConfigFunc func(c *configuration) error

// DryRun merges and logs the resulting diff but never writes the document or
// touches the queue.
func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func ShowDiff() ConfigFunc {
	return func(c *configuration) error {
		c.ShowDiff = true

		return nil
	}
}

func Document(identifier string) ConfigFunc {
	return func(c *configuration) error {
		if len(identifier) == 0 {
			return fmt.Errorf("Document cannot be empty")
		}

		c.Document = identifier
		return nil
	}
}

func DecodeConcurrency(concurrency int) ConfigFunc {
	return func(c *configuration) error {
		if concurrency < 1 {
			return fmt.Errorf("DecodeConcurrency must be at least 1, got %d", concurrency)
		}

		c.DecodeConcurrency = concurrency
		return nil
	}
}

type configuration struct {
	DryRun   bool
	ShowDiff bool

	Document          string
	DecodeConcurrency int
}

func defaultConfiguration() *configuration {
	return &configuration{
		Document:          DEFAULT_DOCUMENT,
		DecodeConcurrency: 4,
	}
}
