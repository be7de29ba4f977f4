// SPDX-License-Identifier: MIT

package family

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modulus/dijkstra"
	"github.com/katalvlaran/modulus/topology"
)

// Family is an extremal-structure oracle bound to a fixed edge enumeration.
// Direction returns the 0/1 indicator of the structure that is optimal
// under rho; it must be safe for concurrent use.
type Family interface {
	NumEdges() int
	Direction(rho []float64, tol float64) ([]float64, error)
}

var (
	_ Family = (*ShortestConnectingPath)(nil)
	_ Family = (*MinimumSpanningTree)(nil)
)

// errNilFamily is returned by Evaluate on a nil receiver.
var errNilFamily = fmt.Errorf("%w: family is nil", ErrConfiguration)

// checkRho validates rho against an enumeration of m real edges.
// With nonNegative set, negative entries are rejected as well.
func checkRho(rho []float64, m int, nonNegative bool) error {
	if len(rho) != m {
		return fmt.Errorf("%w: %w: got %d, want %d", ErrConfiguration, topology.ErrWeightsLength, len(rho), m)
	}
	for i, x := range rho {
		if math.IsNaN(x) {
			return fmt.Errorf("%w: %w: rho[%d]", ErrConfiguration, topology.ErrBadWeight, i)
		}
		if nonNegative && x < 0 {
			return fmt.Errorf("%w: %w: rho[%d]=%v", ErrConfiguration, dijkstra.ErrNegativeWeight, i, x)
		}
	}

	return nil
}

// IndicatorWeight returns the rho-length of the structure marked by
// indicator, i.e. the dot product over the common prefix. Zero entries are
// skipped, so an unused +Inf edge does not poison the sum.
func IndicatorWeight(indicator, rho []float64) float64 {
	n := min(len(indicator), len(rho))
	var sum float64
	for i := 0; i < n; i++ {
		if indicator[i] != 0 {
			sum += indicator[i] * rho[i]
		}
	}

	return sum
}

// edgeRefs maps edge indices to their descriptors.
func edgeRefs(t *topology.Topology, idx []int) []topology.EdgeRef {
	out := make([]topology.EdgeRef, len(idx))
	for i, e := range idx {
		out[i] = t.Edge(e)
	}

	return out
}

// dedupe drops repeated IDs, keeping first occurrences in order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
