// SPDX-License-Identifier: MIT

package family

import "errors"

var (
	// ErrConfiguration marks malformed construction or call arguments:
	// nil or directed graph (spanning family), empty or unknown S/T nodes,
	// overlapping S and T, rho length mismatch, NaN weights, negative weights
	// for the path family, a nil family or an unknown method. It fails fast
	// and is not worth retrying with the same arguments.
	//
	// The lower-level sentinel stays in the chain, so
	// errors.Is(err, dijkstra.ErrNegativeWeight) also holds where relevant.
	ErrConfiguration = errors.New("family: configuration error")

	// ErrNoPath means no path connects S to T under the current weights,
	// either because the graph is structurally disconnected or because +Inf
	// weights close every connection. The caller decides whether to retry
	// with different weights.
	ErrNoPath = errors.New("family: no connecting path")
)
