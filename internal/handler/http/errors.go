// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Configuration errors returned while composing the router. All of them are
// startup-time errors; callers can match against them with [errors.Is].
var (
	// ErrDuplicatePrefix is returned when a prefix is mounted twice.
	ErrDuplicatePrefix = errors.New("route group prefix already mounted")

	// ErrOverlappingPrefix is returned when a prefix shares its first path
	// segment with a prefix mounted earlier (e.g. "/auth" and "/auth/v2").
	ErrOverlappingPrefix = errors.New("route group prefix overlaps a mounted prefix")

	// ErrMalformedPrefix is returned for prefixes that are empty, equal to
	// "/", lack a leading slash, contain empty segments, whitespace or chi
	// pattern characters.
	ErrMalformedPrefix = errors.New("malformed route group prefix")

	// ErrNilRouteGroup is returned when MountRouteGroup receives no group.
	ErrNilRouteGroup = errors.New("nil route group")

	// ErrInvalidCORSPolicy is returned for a policy browsers would reject,
	// such as a wildcard origin combined with credentials.
	ErrInvalidCORSPolicy = errors.New("invalid cors policy")

	// ErrHealthAlreadyRegistered is returned when the root endpoint is
	// registered twice.
	ErrHealthAlreadyRegistered = errors.New("health endpoint already registered")

	// ErrComposerReady is returned by configuration calls made after Init.
	ErrComposerReady = errors.New("router already initialized")
)
