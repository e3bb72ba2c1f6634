package algos

import (
	"bytes"
	"math/rand"
	"testing"

	"go-algos/bloom"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext(out *bytes.Buffer) Context {
	return Context{
		Out:    out,
		Logger: zerolog.Nop(),
		Bloom:  bloom.DefaultDemoConfig(),
		Items:  10,
		Max:    100,
		Rand:   rand.New(rand.NewSource(3)),
	}
}

func TestDefaultNamesAreOrdered(t *testing.T) {
	require.Equal(t, []string{"bloom_filter", "bubblesort", "quicksort"}, Default().Names())
}

func TestRunBloomFilter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Default().Run("bloom_filter", testContext(&out)))
	require.Contains(t, out.String(), "lookup: 1? true")
	require.Contains(t, out.String(), "lookup: 2? true")
}

func TestRunSort(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Default().Run("bubblesort", testContext(&out)))
	require.Contains(t, out.String(), "The slice is sorted!")
}

func TestRunUnknown(t *testing.T) {
	var out bytes.Buffer
	err := Default().Run("mergesort", testContext(&out))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Contains(t, err.Error(), "bloom_filter, bubblesort, quicksort")
}

func TestRegisterReplaces(t *testing.T) {
	registry := NewRegistry()
	calls := 0
	registry.Register("x", func(Context) error { calls = 1; return nil })
	registry.Register("x", func(Context) error { calls = 2; return nil })

	require.NoError(t, registry.Run("x", Context{}))
	require.Equal(t, 2, calls)
	require.Equal(t, []string{"x"}, registry.Names())
}
