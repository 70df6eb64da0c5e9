// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// errors.go: sentinel errors for builder constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology is returned by Named for an unsupported topology name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
