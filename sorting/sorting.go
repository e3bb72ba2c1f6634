package sorting

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

const printLimit = 60

func BubbleSort(items []int32) {
	for n := len(items); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if items[i-1] > items[i] {
				items[i-1], items[i] = items[i], items[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func QuickSort(items []int32) {
	if len(items) < 2 {
		return
	}
	pivot := partition(items)
	QuickSort(items[:pivot])
	QuickSort(items[pivot+1:])
}

// Lomuto partition around the last element.
func partition(items []int32) int {
	hi := len(items) - 1
	pivot := items[hi]
	i := 0
	for j := 0; j < hi; j++ {
		if items[j] <= pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}

// RandomSlice returns n values in [0, max).
func RandomSlice(n, max int32, rnd *rand.Rand) []int32 {
	items := make([]int32, n)
	for i := range items {
		items[i] = rnd.Int31n(max)
	}
	return items
}

func IsSorted(items []int32) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			return false
		}
	}
	return true
}

// Format prints at most limit items as "[a b c]".
func Format(items []int32, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if limit > len(items) {
		limit = len(items)
	}
	parts := make([]string, 0, limit)
	for _, item := range items[:limit] {
		parts = append(parts, strconv.FormatInt(int64(item), 10))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sorter(name string) (func([]int32), error) {
	switch name {
	case "bubblesort":
		return BubbleSort, nil
	case "quicksort":
		return QuickSort, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
}

// Run sorts a random slice with the named algorithm and reports the result to w.
func Run(name string, n, max int32, rnd *rand.Rand, w io.Writer) error {
	sort, err := sorter(name)
	if err != nil {
		return err
	}
	if n < 0 || max <= 0 {
		return errors.Errorf("sorting: invalid items %d or max %d", n, max)
	}

	items := RandomSlice(n, max, rnd)
	fmt.Fprintln(w, Format(items, printLimit))
	sort(items)
	fmt.Fprintln(w, Format(items, printLimit))
	if IsSorted(items) {
		fmt.Fprintln(w, "The slice is sorted!")
	} else {
		fmt.Fprintln(w, "The slice is NOT sorted!")
	}
	return nil
}
