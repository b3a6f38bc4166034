// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upstream

import "errors"

// ErrInvalidUpstream is returned by ParseTarget for anything other than an
// absolute http(s) URL with a host.
var ErrInvalidUpstream = errors.New("invalid upstream url")
