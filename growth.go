package splitvec

import "math/bits"

// GrowthPolicy decides the capacity of each fragment SplitVec allocates.
// NextCapacity must be deterministic and must return a positive integer;
// a policy that returns <= 0 has violated its contract and SplitVec raises
// a PolicyError.
type GrowthPolicy interface {
	// NextCapacity returns the capacity of the next fragment to allocate,
	// given the capacities of the fragments already in the container, in
	// fragment order. An empty slice means no fragment has been allocated
	// yet; NextCapacity(nil) is the capacity of the first fragment.
	NextCapacity(capacities []int) int
}

// translator is the optional refinement a GrowthPolicy may implement to
// support O(1) index-to-(fragment, offset) translation. Policies that admit
// heterogeneous fragment capacities after an append-by-transfer (Recursive,
// and any custom policy that does not implement this interface) fall back
// to the walking translator in translator.go.
type translator interface {
	// Translate maps a logical index to (fragment, offset) in O(1).
	// prefixSums, when non-nil, holds the cumulative capacity before each
	// fragment; built-in policies compute the answer from index alone and
	// ignore it.
	Translate(index int, prefixSums []int) (fragment, offset int)
}

// Doubling allocates fragments of capacity 4, 8, 16, 32, ... (2^(n+2) for
// the n-th fragment, 0-indexed) and translates indices in O(1).
type Doubling struct{}

// NextCapacity implements GrowthPolicy.
func (Doubling) NextCapacity(capacities []int) int {
	return 1 << (uint(len(capacities)) + 2)
}

// Translate implements translator. For logical index i, let m = i+4; the
// fragment holding i is floor(log2(m))-2 and the offset within it is
// m - 2^(fragment+2).
func (Doubling) Translate(i int, _ []int) (fragment, offset int) {
	m := uint(i) + 4
	fragment = bits.Len(m) - 3
	offset = i - (1<<(uint(fragment)+2) - 4)
	return fragment, offset
}

// Linear allocates every fragment with the same capacity, 2^Exponent,
// fixed at construction, and translates indices in O(1) via bit shifts.
type Linear struct {
	Exponent uint
}

// NewLinear returns a Linear policy whose fragments each hold 2^exponent
// elements.
func NewLinear(exponent uint) Linear {
	return Linear{Exponent: exponent}
}

// NextCapacity implements GrowthPolicy.
func (l Linear) NextCapacity(_ []int) int {
	return 1 << l.Exponent
}

// Translate implements translator.
func (l Linear) Translate(i int, _ []int) (fragment, offset int) {
	mask := (1 << l.Exponent) - 1
	return i >> l.Exponent, i & mask
}

// Recursive follows the same capacity progression as Doubling (4, 8, 16,
// ...) for policy-driven growth, but deliberately does not implement
// translator: SplitVec.Append, when built with Recursive, transfers a
// donor's fragments verbatim instead of pushing element-by-element, which
// can graft fragments whose capacities do not follow the progression. The
// walking translator in translator.go handles the resulting heterogeneous
// capacity sequence.
type Recursive struct{}

// NextCapacity implements GrowthPolicy.
func (Recursive) NextCapacity(capacities []int) int {
	return 1 << (uint(len(capacities)) + 2)
}
