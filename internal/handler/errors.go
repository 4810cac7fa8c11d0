// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means neither SERVER_ADDRESS nor
// SERVER_GRPC_ADDRESS is configured.
var errNoHandlersAreCreated = errors.New("no handlers are created: configure an HTTP or gRPC address")
