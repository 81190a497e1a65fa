// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilInput is returned when a nil matrix or tensor is passed to an adapter.
	ErrNilInput = errors.New("converters: nil input")

	// ErrRank is returned when a tensor is not rank 2.
	ErrRank = errors.New("converters: tensor must be rank 2")

	// ErrDtype is returned for tensors whose element type is not Float64 or Float32.
	ErrDtype = errors.New("converters: unsupported tensor dtype")
)
