package bloom

// BloomFilterBuilder collects keys and builds the filter in one pass.
// The built filter can then be shared read-only between goroutines.
type BloomFilterBuilder struct {
	keys              []string
	expectedElements  uint32
	falsePositiveRate float64
	opts              []Option
}

func NewBloomFilterBuilder(expectedElements uint32, falsePositiveRate float64, opts ...Option) *BloomFilterBuilder {
	return &BloomFilterBuilder{
		keys:              make([]string, 0, expectedElements),
		expectedElements:  expectedElements,
		falsePositiveRate: falsePositiveRate,
		opts:              opts,
	}
}

func (b *BloomFilterBuilder) Add(key string) {
	b.keys = append(b.keys, key)
}

func (b *BloomFilterBuilder) Build() (*BloomFilter, error) {
	bf, err := NewBloomFilter(b.expectedElements, b.falsePositiveRate, b.opts...)
	if err != nil {
		return nil, err
	}
	for _, key := range b.keys {
		bf.Insert(key)
	}
	return bf, nil
}
