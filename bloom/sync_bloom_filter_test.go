package bloom

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncBloomFilterConcurrentInsert(t *testing.T) {
	s := NewSyncBloomFilter(newTestFilter(t, 1000, 0.01))

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("w%d-%d", worker, i)
				s.Insert(key)
				s.Lookup(key)
			}
		}(worker)
	}
	wg.Wait()

	for worker := 0; worker < 8; worker++ {
		for i := 0; i < 100; i++ {
			require.True(t, s.Lookup(fmt.Sprintf("w%d-%d", worker, i)))
		}
	}
	require.NotZero(t, s.BitsSet())
}
