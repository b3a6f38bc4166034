// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for talking to a running gateway.
//
// The primary abstraction is [HealthProbe], used by the healthcheck command
// to decide whether a gateway instance is serving. Error values defined in
// errors.go let callers use [errors.Is] to tell a refused or failing gateway
// ([ErrUnhealthy]) from one answering with something unexpected
// ([ErrUnexpectedBody]).
package adapter

import "context"

// HealthProbe checks the root endpoint of a gateway.
type HealthProbe interface {
	// Check returns nil when GET / answers 200 with {"Hello": "World"}.
	Check(ctx context.Context) error
}
