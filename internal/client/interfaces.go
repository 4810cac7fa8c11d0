// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable command line front end of the purchase API.
type Client interface {
	// Run executes the command named by os.Args and returns its error.
	Run() error
	// Execute runs one command line, args excluding the program name.
	Execute(ctx context.Context, args []string) error
}
