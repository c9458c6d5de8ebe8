package cloner_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-cloner/cloner"
)

// Concurrent copies share only the process-wide metadata cache; the
// identity map and depth budget stay local to each invocation.
func TestDeepCopy_Concurrent(t *testing.T) {
	orig := sampleAccount()
	orig.Work = orig.Home

	var wg sync.WaitGroup
	copies := make([]*account, 16)
	errs := make([]error, 16)

	for i := range copies {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			copies[i], errs[i] = cloner.DeepCopy(orig)
		}()
	}
	wg.Wait()

	for i, cp := range copies {
		require.NoError(t, errs[i])
		require.NotNil(t, cp)
		require.NotSame(t, orig, cp)
		require.Same(t, cp.Home, cp.Work)
		assert.Equal(t, orig.Email, cp.Email)

		// distinct invocations never share identity maps or copies
		for j := 0; j < i; j++ {
			require.NotSame(t, copies[j], cp)
			require.NotSame(t, copies[j].Home, cp.Home)
		}
	}
}
