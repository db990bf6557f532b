// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	LOG_MAIN        = "MA"
	LOG_READINGLIST = "RL"
	LOG_TRANSFORM   = "TR"
	LOG_DOCSTORE    = "DS"
	LOG_IMAP        = "IM"
	LOG_POP3        = "P3"
)

var components = []string{
	LOG_MAIN,
	LOG_READINGLIST,
	LOG_TRANSFORM,
	LOG_DOCSTORE,
	LOG_IMAP,
	LOG_POP3,
}

var (
	mu      sync.RWMutex
	loggers map[string]*logrus.Logger
	output  io.Writer = os.Stderr
)

// PrefixFormatter puts the component prefix in front of every text line.
type PrefixFormatter struct {
	logrus.TextFormatter
	prefix []byte
}

func NewPrefixFormatter(prefix string) *PrefixFormatter {
	return &PrefixFormatter{
		TextFormatter: logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   runtime.GOOS == "windows",
		},
		prefix: []byte(fmt.Sprintf("%s:\t", prefix)),
	}
}

func (f *PrefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.TextFormatter.Format(entry)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, f.prefix...), text...), nil
}

// getLevel parses loglevel, unknown names fall back to info.
func getLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(loglevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// InitLogging replaces all component loggers with fresh ones at loglevel.
func InitLogging(loglevel string) {
	mu.Lock()
	defer mu.Unlock()

	level := getLevel(loglevel)
	loggers = make(map[string]*logrus.Logger, len(components))
	for _, prefix := range components {
		l := logrus.New()
		l.SetOutput(output)
		l.SetFormatter(NewPrefixFormatter(prefix))
		l.SetLevel(level)
		loggers[prefix] = l
	}
}

func SetLogLevel(loglevel string) {
	mu.RLock()
	defer mu.RUnlock()

	level := getLevel(loglevel)
	for _, l := range loggers {
		l.SetLevel(level)
	}
}

// SetOutput redirects every component logger, including ones created by a
// later InitLogging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}

func Logger(component string) *logrus.Logger {
	mu.RLock()
	initialized := loggers != nil
	mu.RUnlock()
	if !initialized {
		InitLogging("info")
	}

	mu.RLock()
	defer mu.RUnlock()
	l, ok := loggers[component]
	if !ok {
		panic("Logger " + component + " unknown")
	}

	return l
}
