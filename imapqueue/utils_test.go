// SPDX-License-Identifier: GPL-3.0-or-later
package imapqueue

import (
	"bytes"

	"github.com/CrawX/imap-readinglist/log"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"
)

func u32(val int) uint32 {
	return uint32(val)
}

func u32a(val ...int) []uint32 {
	a := []uint32{}
	for _, v := range val {
		a = append(a, u32(v))
	}

	return a
}

func message(seqNum, uid uint32, body string) *imap.Message {
	return &imap.Message{
		SeqNum: seqNum,
		Uid:    uid,
		Body: map[*imap.BodySectionName]imap.Literal{
			{}: bytes.NewBufferString(body),
		},
	}
}

func nullLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = &bytes.Buffer{}
	return l
}

func init() {
	log.InitLogging("error")
}
