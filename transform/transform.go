// SPDX-License-Identifier: GPL-3.0-or-later
package transform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/log"

	"github.com/sirupsen/logrus"
)

type SkipReason string

const (
	NotSkipped      = SkipReason("")
	SkipRecipients  = SkipReason("message has other recipients")
	SkipNoBody      = SkipReason("message has no plain text body")
	SkipNoLeadToken = SkipReason("body has no lead token")
	SkipNotHttp     = SkipReason("subject given but lead token is not an http(s) link")
)

// Candidate is the body of a message split into its lead token and the rest.
type Candidate struct {
	LeadToken string
	Remainder *string
}

type Transformer struct {
	rules []*Rule
	l     *logrus.Logger
}

func NewTransformer(rules []*Rule) *Transformer {
	return &Transformer{
		rules: rules,
		l:     log.Logger(log.LOG_TRANSFORM),
	}
}

// Transform builds the reading list entry for msg. A non-empty SkipReason means
// no entry was produced.
func (t *Transformer) Transform(msg *domain.DecodedMessage) (string, SkipReason) {
	if len(msg.Recipients) > 0 {
		return "", SkipRecipients
	}

	if msg.BodyText == nil || len(strings.TrimSpace(*msg.BodyText)) == 0 {
		return "", SkipNoBody
	}

	candidate := Split(*msg.BodyText)
	token := candidate.LeadToken
	if len(token) == 0 {
		return "", SkipNoLeadToken
	}

	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		token = token[1 : len(token)-1]
		if len(token) == 0 {
			return "", SkipNoLeadToken
		}
	}

	subject := ""
	if msg.Subject != nil {
		subject = singleLine(strings.TrimSpace(*msg.Subject))
	}

	if len(subject) > 0 && !isHttp(token) {
		return "", SkipNotHttp
	}

	for i, rule := range t.rules {
		rewritten := rule.Apply(token)
		if rewritten != token {
			t.l.WithFields(logrus.Fields{"rule": i, "before": token, "after": rewritten}).Debug("Rewrote lead token")
		}
		token = rewritten
	}

	var entry string
	if strings.HasPrefix(token, WikipediaPrefix) {
		title := strings.TrimPrefix(token, WikipediaPrefix)
		entry = "[[" + singleLine(strings.ReplaceAll(unquote(title), "_", " ")) + "]]"
		if len(subject) > 0 {
			entry = entry + " ''<q>" + subject + "</q>''"
		}
	} else if len(subject) > 0 {
		entry = token + " " + subject
		if !strings.ContainsAny(entry, "[]") {
			entry = "[" + entry + "]"
		}
	} else {
		entry = token
	}

	if msg.Date != nil {
		entry = "{{at|" + singleLine(*msg.Date) + "}} " + entry
	}

	if candidate.Remainder != nil {
		entry = entry + " " + *candidate.Remainder
	}

	return entry, NotSkipped
}

var newlineRun = regexp.MustCompile(`\s*[\r\n]\s*`)

// Split separates the trimmed body at its first run of whitespace. Line breaks
// in the remainder are folded into single spaces.
func Split(body string) Candidate {
	body = strings.TrimSpace(body)

	i := strings.IndexFunc(body, unicode.IsSpace)
	if i < 0 {
		return Candidate{LeadToken: body}
	}

	remainder := singleLine(strings.TrimLeftFunc(body[i:], unicode.IsSpace))
	return Candidate{
		LeadToken: body[:i],
		Remainder: &remainder,
	}
}

// singleLine folds line breaks into single spaces and replaces any other
// control character with a space.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, newlineRun.ReplaceAllString(s, " "))
}

func isHttp(token string) bool {
	scheme := strings.ToLower(strings.SplitN(token, ":", 2)[0])
	return scheme == "http" || scheme == "https"
}

// unquote percent-decodes s, leaving malformed escapes untouched and replacing
// invalid UTF-8 with U+FFFD.
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}

	if utf8.Valid(buf) {
		return string(buf)
	}
	return strings.ToValidUTF8(string(buf), "�")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}
