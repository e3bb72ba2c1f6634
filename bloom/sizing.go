package bloom

import "math"

// maxBitVectorSize caps m at 8 GiB of bits, and at what uint can index.
const maxBitVectorSize = min(uint64(math.MaxUint), 1<<36)

// optimalBitVectorSize returns the bit-array size for n items at rate p.
//
//	m = ceil(-n * ln(p) / (ln(2)^2))
func optimalBitVectorSize(expectedElements uint32, falsePositiveRate float64) uint64 {
	numerator := -float64(expectedElements) * math.Log(falsePositiveRate)
	denominator := math.Pow(math.Log(2), 2)
	return uint64(math.Ceil(numerator / denominator))
}

// optimalNumberOfHashFunctions returns the probe count for m bits and n items.
//
//	k = floor((m/n) * ln(2))
//
// The result is truncated, not rounded, and may be zero for very small m/n.
// A zero-probe filter is returned as is and answers true to every lookup.
func optimalNumberOfHashFunctions(bitVectorSize uint64, expectedElements uint32) uint32 {
	hashFuncs := (float64(bitVectorSize) / float64(expectedElements)) * math.Log(2)
	return uint32(math.Floor(hashFuncs))
}

// estimatedFalsePositiveRate is (1 - e^(-k*n/m))^k.
func estimatedFalsePositiveRate(bitVectorSize uint64, numberOfHashFunctions uint32, inserted uint32) float64 {
	if bitVectorSize == 0 {
		return 1
	}
	k := float64(numberOfHashFunctions)
	exponent := -k * float64(inserted) / float64(bitVectorSize)
	return math.Pow(1-math.Exp(exponent), k)
}
