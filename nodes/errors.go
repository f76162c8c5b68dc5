// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// errors.go - sentinel errors for the node surface.

package nodes

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNode indicates a name that resolves to no registered node.
	ErrUnknownNode = errors.New("nodes: unknown node")

	// ErrDuplicateNode indicates two specs whose names normalize alike.
	ErrDuplicateNode = errors.New("nodes: duplicate node name")

	// ErrNotRunnable indicates a node that cannot run in the requested mode
	// (e.g. RunCurve on a guider node).
	ErrNotRunnable = errors.New("nodes: node not runnable in this mode")

	// ErrInvalidParams indicates parameter values rejected by the node schema.
	ErrInvalidParams = errors.New("nodes: invalid parameters")

	// ErrMissingInput indicates an unconnected required SIGMAS input.
	ErrMissingInput = errors.New("nodes: missing input")

	// ErrInvalidPreset indicates a preset document that cannot be decoded.
	ErrInvalidPreset = errors.New("nodes: invalid preset")
)

// nodesErrorf prefixes err with the operation name.
func nodesErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
