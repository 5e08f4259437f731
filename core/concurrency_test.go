// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls keep the
// no-multi-edge policy: exactly one insertion of each pair wins.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	const fan = 100
	var rejected atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	// Every worker tries to add the same star 0→1..fan.
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for v := 1; v <= fan; v++ {
				if _, err := g.AddEdge(0, v, 0); err != nil {
					if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
						t.Errorf("unexpected error: %v", err)
					}
					rejected.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, fan, g.EdgeCount())
	require.Equal(t, int64((workers-1)*fan), rejected.Load())
	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, fan, deg)
}
