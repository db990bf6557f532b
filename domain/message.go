// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// DecodedMessage holds the fields of a queue item that matter for building an
// entry. Nil pointers are absent headers or bodies.
type DecodedMessage struct {
	Recipients []string
	Subject    *string
	Date       *string
	BodyText   *string
}

// DecodedItem pairs a decoded message with the queue item it was read from.
type DecodedItem struct {
	Id      QueueItemId
	Message *DecodedMessage
}
