package bloom

import (
	"math/bits"

	"go-algos/bitarray"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spaolacci/murmur3"
)

// BloomFilter answers "possibly present" or "definitely absent".
// It is not safe for concurrent Insert; see SyncBloomFilter.
type BloomFilter struct {
	bitVectorSize         uint64 // m
	numberOfHashFunctions uint32 // k
	bitArray              *bitarray.BitArray
	logger                zerolog.Logger
}

type Option func(*BloomFilter)

// WithLogger sets where probe failures are reported.
func WithLogger(logger zerolog.Logger) Option {
	return func(filter *BloomFilter) {
		filter.logger = logger
	}
}

// NewBloomFilter sizes a filter for expectedElements keys at falsePositiveRate.
func NewBloomFilter(expectedElements uint32, falsePositiveRate float64, opts ...Option) (*BloomFilter, error) {
	if expectedElements == 0 {
		return nil, ErrInvalidExpectedItems
	}
	if !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return nil, errors.Wrapf(ErrInvalidFalsePositiveRate, "got %v", falsePositiveRate)
	}

	bitVectorSize := optimalBitVectorSize(expectedElements, falsePositiveRate)
	if bitVectorSize > maxBitVectorSize {
		return nil, errors.Wrapf(ErrFilterTooLarge, "m=%d exceeds %d", bitVectorSize, uint64(maxBitVectorSize))
	}
	numberOfHashFunctions := optimalNumberOfHashFunctions(bitVectorSize, expectedElements)

	filter := newBloomFilter(bitVectorSize, numberOfHashFunctions, bitarray.New(uint(bitVectorSize)))
	for _, opt := range opts {
		opt(filter)
	}

	if numberOfHashFunctions == 0 {
		filter.logger.Warn().
			Uint32("expected_items", expectedElements).
			Float64("false_positive_rate", falsePositiveRate).
			Uint64("m", bitVectorSize).
			Msg("bloom filter has zero hash functions, every lookup will report present")
	}
	return filter, nil
}

func newBloomFilter(bitVectorSize uint64, numberOfHashFunctions uint32, bitArray *bitarray.BitArray) *BloomFilter {
	return &BloomFilter{
		bitVectorSize:         bitVectorSize,
		numberOfHashFunctions: numberOfHashFunctions,
		bitArray:              bitArray,
		logger:                log.Logger,
	}
}

func (filter *BloomFilter) M() uint64 {
	return filter.bitVectorSize
}

func (filter *BloomFilter) K() uint32 {
	return filter.numberOfHashFunctions
}

// BitsSet is the number of bits currently set. It never decreases.
func (filter *BloomFilter) BitsSet() uint {
	return filter.bitArray.Count()
}

func (filter *BloomFilter) String() string {
	return filter.bitArray.String()
}

// EstimatedFalsePositiveRate after inserting the given number of distinct keys.
func (filter *BloomFilter) EstimatedFalsePositiveRate(inserted uint32) float64 {
	return estimatedFalsePositiveRate(filter.bitVectorSize, filter.numberOfHashFunctions, inserted)
}

// probeIndex reduces the 128-bit murmur3 hash of key, seeded with probe, modulo m.
func (filter *BloomFilter) probeIndex(key []byte, probe uint32) uint64 {
	low, high := murmur3.Sum128WithSeed(key, probe)
	return bits.Rem64(high, low, filter.bitVectorSize)
}

// Insert sets the k probed bits of key. A failed probe is logged and skipped.
func (filter *BloomFilter) Insert(key string) {
	keyBytes := []byte(key)
	for probe := uint32(0); probe < filter.numberOfHashFunctions; probe++ {
		index := filter.probeIndex(keyBytes, probe)
		if err := filter.bitArray.Set(uint(index), true); err != nil {
			filter.logger.Error().
				Err(err).
				Str("key", key).
				Uint32("probe", probe).
				Uint64("index", index).
				Msg("failed to insert key")
		}
	}
}

// Lookup reports whether key may have been inserted. A false result is exact.
func (filter *BloomFilter) Lookup(key string) bool {
	keyBytes := []byte(key)
	for probe := uint32(0); probe < filter.numberOfHashFunctions; probe++ {
		index := filter.probeIndex(keyBytes, probe)
		bit, err := filter.bitArray.Get(uint(index))
		if err != nil {
			filter.logger.Warn().
				Err(err).
				Str("key", key).
				Uint32("probe", probe).
				Uint64("index", index).
				Msg("probe out of range, treating bit as unset")
			return false
		}
		if !bit {
			return false
		}
	}
	return true
}
