package sorting

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSorters(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	inputs := [][]int32{
		{},
		{1},
		{2, 1},
		{3, 3, 3},
		{5, 4, 3, 2, 1},
		RandomSlice(500, 100, rnd),
	}
	for name, sort := range map[string]func([]int32){"bubblesort": BubbleSort, "quicksort": QuickSort} {
		for _, input := range inputs {
			items := slices.Clone(input)
			want := slices.Clone(input)
			slices.Sort(want)

			sort(items)
			require.Equal(t, want, items, name)
			require.True(t, IsSorted(items))
		}
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "[]", Format(nil, 10))
	require.Equal(t, "[1 2]", Format([]int32{1, 2, 3}, 2))
	require.Equal(t, "[1 2 3]", Format([]int32{1, 2, 3}, 10))
	require.Equal(t, "[]", Format([]int32{1, 2}, -1))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run("quicksort", 20, 50, rand.New(rand.NewSource(7)), &out))
	require.Contains(t, out.String(), "The slice is sorted!")

	err := Run("heapsort", 20, 50, rand.New(rand.NewSource(7)), &out)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	require.Error(t, Run("bubblesort", 20, 0, rand.New(rand.NewSource(7)), &out))
}
