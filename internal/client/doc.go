// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client of the purchase API.
//
// It exposes the API as a cobra command tree. The session obtained by
// "login" is kept in a local SQLite file between invocations, and "watch"
// keeps it alive by renewing the token shortly before it expires.
package client
