// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to collaborators of the secrets vault over the
// network.
//
// [HTTPMembershipAdapter] resolves workspace roles from the platform's
// membership service and satisfies the access engine's membership lookup.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401 and 403).
package adapter
