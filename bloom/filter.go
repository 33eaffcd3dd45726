// Package bloom deduplicates batch lookups using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/text/unicode/norm"
)

// DefaultFalsePositiveRate is the rate used by callers that do not tune it.
const DefaultFalsePositiveRate = 0.001

// Filter remembers which (word, language) lookups were already scheduled.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected lookups
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Key returns the filter key of a lookup. Words are compared after NFC
// normalization and surrounding whitespace is ignored.
func Key(word, language string) string {
	return norm.NFC.String(strings.TrimSpace(word)) + "\x00" + strings.TrimSpace(language)
}

// Add records a lookup.
func (f *Filter) Add(word, language string) {
	f.f.AddString(Key(word, language))
}

// Test returns true if the lookup might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(word, language string) bool {
	return f.f.TestString(Key(word, language))
}

// TestAndAdd records a lookup and reports whether it might have been
// recorded before.
func (f *Filter) TestAndAdd(word, language string) bool {
	return f.f.TestAndAddString(Key(word, language))
}

// EstimatedCount returns the approximate number of recorded lookups.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
