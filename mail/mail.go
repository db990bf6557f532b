// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"encoding/ascii85"
	"io"
	"mime"
	stdmail "net/mail"
	"strings"
	"unicode/utf8"

	"github.com/CrawX/imap-readinglist/domain"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

var recipientHeaders = []string{"To", "Cc", "Bcc"}

// Decode extracts recipients, subject, date and the first plain text part of a
// raw message. It never fails, anything that cannot be decoded is left absent.
func Decode(rawMail []byte) *domain.DecodedMessage {
	mr, err := mail.CreateReader(bytes.NewReader(rawMail))
	if mr == nil || (err != nil && !message.IsUnknownCharset(err)) {
		return decodeFallback(rawMail)
	}
	defer mr.Close()

	decoded := &domain.DecodedMessage{}
	for _, key := range recipientHeaders {
		if v := strings.TrimSpace(mr.Header.Get(key)); len(v) > 0 {
			decoded.Recipients = append(decoded.Recipients, v)
		}
	}

	if mr.Header.Has("Subject") {
		subject, err := mr.Header.Subject()
		if err != nil {
			subject = mr.Header.Get("Subject")
		}
		decoded.Subject = optional(unfold(subject))
	}

	if mr.Header.Has("Date") {
		decoded.Date = optional(unfold(mr.Header.Get("Date")))
	}

	decoded.BodyText = plainTextBody(rawMail)
	return decoded
}

// plainTextBody returns the first inline text/plain part of rawMail. Parts in
// a charset go-message does not know are returned undecoded.
func plainTextBody(rawMail []byte) *string {
	e, err := message.Read(bytes.NewReader(rawMail))
	if e == nil || (err != nil && !message.IsUnknownCharset(err)) {
		return nil
	}
	return findPlainText(e)
}

func findPlainText(e *message.Entity) *string {
	if mr := e.MultipartReader(); mr != nil {
		for {
			p, err := mr.NextPart()
			if p == nil || (err != nil && !message.IsUnknownCharset(err)) {
				// io.EOF or a broken part, both end the search
				return nil
			}
			if body := findPlainText(p); body != nil {
				return body
			}
		}
	}

	if disposition, _, err := e.Header.ContentDisposition(); err == nil && disposition == "attachment" {
		return nil
	}
	if !isPlainText(e.Header.Get("Content-Type")) {
		return nil
	}

	body, err := io.ReadAll(e.Body)
	if err != nil && len(body) == 0 {
		return nil
	}
	return optional(strings.TrimSpace(string(body)))
}

func decodeFallback(rawMail []byte) *domain.DecodedMessage {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return &domain.DecodedMessage{}
	}

	decoded := &domain.DecodedMessage{}
	for _, key := range recipientHeaders {
		if v := strings.TrimSpace(msg.Header.Get(key)); len(v) > 0 {
			decoded.Recipients = append(decoded.Recipients, v)
		}
	}

	if _, ok := msg.Header["Subject"]; ok {
		dec := &mime.WordDecoder{
			CharsetReader: charset.Reader,
		}
		subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
		if err != nil {
			subject = msg.Header.Get("Subject")
		}
		decoded.Subject = optional(unfold(subject))
	}

	if _, ok := msg.Header["Date"]; ok {
		decoded.Date = optional(unfold(msg.Header.Get("Date")))
	}

	if isPlainText(msg.Header.Get("Content-Type")) && isIdentityEncoding(msg.Header.Get("Content-Transfer-Encoding")) {
		body, err := io.ReadAll(msg.Body)
		if err == nil || len(body) > 0 {
			decoded.BodyText = optional(strings.TrimSpace(string(body)))
		}
	}

	return decoded
}

func isPlainText(contentType string) bool {
	if len(strings.TrimSpace(contentType)) == 0 {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "text/plain")
	}

	return mediaType == "text/plain"
}

func isIdentityEncoding(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "7bit", "8bit", "binary":
		return true
	}
	return false
}

// unfold removes header line folding and surrounding whitespace.
func unfold(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "")
	value = strings.ReplaceAll(value, "\n", "")
	return strings.TrimSpace(value)
}

func optional(s string) *string {
	return &s
}

// Archive renders a raw message as ascii85 wrapped to 72 columns so that it
// can be recovered from the run log.
func Archive(rawMail []byte) string {
	encoded := make([]byte, ascii85.MaxEncodedLen(len(rawMail)))
	n := ascii85.Encode(encoded, rawMail)
	encoded = encoded[:n]

	lines := []string{}
	for len(encoded) > 72 {
		lines = append(lines, string(encoded[:72]))
		encoded = encoded[72:]
	}
	lines = append(lines, string(encoded))

	return strings.Join(lines, "\n")
}

// ShortSubject cuts subject to 30 characters for log fields.
func ShortSubject(subject string) string {
	if utf8.RuneCountInString(subject) <= 30 {
		return subject
	}
	return string([]rune(subject)[:30]) + "..."
}
