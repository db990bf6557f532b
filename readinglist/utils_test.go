// SPDX-License-Identifier: GPL-3.0-or-later
package readinglist

import (
	"bytes"

	"github.com/CrawX/imap-readinglist/log"

	"github.com/sirupsen/logrus"
)

func nullLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = &bytes.Buffer{}
	return l
}

func rawMail(headers, body string) []byte {
	return []byte(headers + "\r\n" + body + "\r\n")
}

func init() {
	log.InitLogging("error")
}
