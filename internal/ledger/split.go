package ledger

import (
	"fmt"
	"math/rand/v2"
)

// Splitter divides cent amounts into equal buckets. Buckets that receive
// the leftover cents are picked at random on every call so that no account
// is favoured across repeated purchases.
type Splitter struct {
	perm func(n int) []int
}

// NewSplitter returns a Splitter drawing bucket order from perm, which must
// return a permutation of [0, n).
func NewSplitter(perm func(n int) []int) *Splitter {
	if perm == nil {
		perm = rand.Perm
	}
	return &Splitter{perm: perm}
}

// DefaultSplitter uses the process-wide random source.
func DefaultSplitter() *Splitter {
	return NewSplitter(rand.Perm)
}

// Split returns n shares that differ by at most one cent and sum to
// totalCents.
func (s *Splitter) Split(totalCents int64, n int) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("split: bucket count must be at least 1, got %d", n)
	}
	if totalCents < 0 {
		return nil, fmt.Errorf("split: total must not be negative, got %d", totalCents)
	}

	base := totalCents / int64(n)
	remainder := int(totalCents % int64(n))

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
	}
	if remainder == 0 {
		return shares, nil
	}

	order := s.perm(n)
	for _, bucket := range order[:remainder] {
		shares[bucket]++
	}
	return shares, nil
}
