package splitvec

import "sort"

// locate maps a logical index to (fragment, offset). If the active policy
// exposes the constant-time translator capability it is used directly;
// otherwise the walking translator below computes the answer from the
// prefix sums of fragment capacities. A policy only ever produces a
// heterogeneous (non-progression) capacity sequence via append-by-transfer,
// and append-by-transfer is only available to policies that do not
// implement translator (see growth.go), so the fast path is always safe
// when it applies.
func (sv *SplitVec[T]) locate(i int) (fragment, offset int) {
	if t, ok := sv.policy.(translator); ok {
		return t.Translate(i, nil)
	}
	return sv.walkingLocate(i)
}

// walkingLocate binary-searches the prefix sums of fragment capacities for
// the fragment containing logical index i. O(k) in the number of
// fragments.
func (sv *SplitVec[T]) walkingLocate(i int) (fragment, offset int) {
	sums := sv.capacityPrefixSums()
	f := sort.Search(len(sv.fragments), func(k int) bool {
		return sums[k+1] > i
	})
	return f, i - sums[f]
}

// capacityPrefixSums returns P where P[f] is the total capacity of
// fragments before fragment f; P has len(fragments)+1 entries.
func (sv *SplitVec[T]) capacityPrefixSums() []int {
	sums := make([]int, len(sv.fragments)+1)
	for idx, frag := range sv.fragments {
		sums[idx+1] = sums[idx] + frag.Capacity()
	}
	return sums
}
