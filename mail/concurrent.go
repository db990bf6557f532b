// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import "github.com/CrawX/imap-readinglist/domain"

type decodeFunc func(rawMail []byte) *domain.DecodedMessage

// DecodeAll decodes items with at most concurrency decoders running at once.
// The result keeps the order of items.
func DecodeAll(items []*domain.QueueItem, concurrency int) []*domain.DecodedItem {
	return decodeAll(items, concurrency, Decode)
}

func decodeAll(items []*domain.QueueItem, concurrency int, decode decodeFunc) []*domain.DecodedItem {
	if concurrency < 1 {
		concurrency = 1
	}

	semaphore := make(chan bool, concurrency)
	results := make([]*domain.DecodedItem, len(items))
	for i := 0; i < len(items); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = &domain.DecodedItem{
				Id:      items[index].Id,
				Message: decode(items[index].RawMail),
			}
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	return results
}
