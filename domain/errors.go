// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
)

// ConnectionError is a network or TLS level failure talking to the mail store.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthError is returned when the mail store rejects the credentials.
type AuthError struct {
	User string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("could not authenticate as %s: %v", e.User, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProtocolError is a rejected or unparseable server response. The session
// must not be used after one.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error during %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

var benignSessionMessages = []string{
	"deleted under",
	"please relogin",
}

// IsBenignSessionError reports whether err comes from the mail store session
// and carries one of the server messages that end a session because its state
// went away, such as the mailbox being deleted under the client. Errors from
// anything but the session never count.
func IsBenignSessionError(err error) bool {
	session := sessionError(err)
	if session == nil {
		return false
	}

	msg := strings.ToLower(session.Error())
	for _, needle := range benignSessionMessages {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

func sessionError(err error) error {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return connErr
	}
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return protoErr
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsTransientNetworkError reports whether err looks like a dropped or timed out
// connection rather than a rejected request.
func IsTransientNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
