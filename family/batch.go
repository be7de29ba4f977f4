// SPDX-License-Identifier: MIT

package family

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll computes f.Direction for every weight vector in rhos using at
// most workers goroutines (workers <= 0 means runtime.GOMAXPROCS(0)).
// out[i] is the indicator for rhos[i].
//
// The first failure cancels the remaining work and is returned, annotated
// with its index. Cancelling ctx stops evaluations that have not started.
func EvaluateAll(ctx context.Context, f Family, rhos [][]float64, tol float64, workers int) ([][]float64, error) {
	if f == nil {
		return nil, errNilFamily
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([][]float64, len(rhos))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range rhos {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ind, err := f.Direction(rhos[i], tol)
			if err != nil {
				return fmt.Errorf("rho[%d]: %w", i, err)
			}
			out[i] = ind

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
