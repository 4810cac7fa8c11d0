// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the token the terminal client currently holds.
type Session struct {
	// Username is the login name the session was opened with.
	Username string `json:"username"`

	// Token is the compact JWT sent as a bearer credential.
	Token string `json:"token"`

	// ExpiresAt is the expiry reported by the server, or decoded from the token.
	ExpiresAt time.Time `json:"expires_at"`
}

// TimeLeft returns the remaining lifetime of the session at now.
// The result is negative once the session expired.
func (s Session) TimeLeft(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// IsExpired reports whether the session has no lifetime left at now.
func (s Session) IsExpired(now time.Time) bool {
	return s.TimeLeft(now) <= 0
}

// SessionAction is what the session keeper decides to do on a tick.
type SessionAction int

const (
	// SessionKeep means the token has enough lifetime left.
	SessionKeep SessionAction = iota
	// SessionRefresh means the token is about to expire and must be renewed.
	SessionRefresh
	// SessionDiscard means the token already expired and must be dropped.
	SessionDiscard
)

// NextSessionAction decides how to treat a session with timeLeft remaining.
// Renewal happens strictly inside (0, threshold).
func NextSessionAction(timeLeft, threshold time.Duration) SessionAction {
	switch {
	case timeLeft <= 0:
		return SessionDiscard
	case timeLeft < threshold:
		return SessionRefresh
	default:
		return SessionKeep
	}
}

func (a SessionAction) String() string {
	switch a {
	case SessionRefresh:
		return "refresh"
	case SessionDiscard:
		return "discard"
	default:
		return "keep"
	}
}
