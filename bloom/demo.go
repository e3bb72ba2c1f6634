package bloom

import (
	"fmt"
	"io"
)

// DemoConfig drives RunDemo. It is used as given, start from DefaultDemoConfig.
type DemoConfig struct {
	ExpectedItems     uint32
	FalsePositiveRate float64
	InsertKeys        []string
	LookupKeys        []string
	ShowBits          bool
}

func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		ExpectedItems:     10,
		FalsePositiveRate: 0.01,
		InsertKeys:        []string{"1", "2", "42"},
		LookupKeys:        []string{"1", "2", "3"},
	}
}

// RunDemo inserts the configured keys and prints one lookup line per lookup key.
func RunDemo(w io.Writer, cfg DemoConfig, opts ...Option) error {
	bf, err := NewBloomFilter(cfg.ExpectedItems, cfg.FalsePositiveRate, opts...)
	if err != nil {
		return err
	}
	for _, key := range cfg.InsertKeys {
		bf.Insert(key)
	}
	for _, key := range cfg.LookupKeys {
		if _, err := fmt.Fprintf(w, "lookup: %s? %t\n", key, bf.Lookup(key)); err != nil {
			return err
		}
	}

	if !cfg.ShowBits {
		return nil
	}
	if _, err := fmt.Fprintf(w, "m=%d k=%d set=%d\n", bf.M(), bf.K(), bf.BitsSet()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "bits: %s\n", bf); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "estimated false positive rate: %.6f\n", bf.EstimatedFalsePositiveRate(uint32(len(cfg.InsertKeys))))
	return err
}
