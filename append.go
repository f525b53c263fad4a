package splitvec

// Append adds other's elements to the end of sv.
//
// When sv's growth policy does not implement the constant-time translator
// capability (Recursive, or a custom policy that opts out the same way),
// this is append-by-transfer: if sv's last fragment has free slots, they are
// first filled by copying elements off the front of other (those elements
// do not keep their address); other's remaining fragments are then spliced
// onto sv's fragment list verbatim, so every element in them keeps its
// address. other is left empty. See appendByTransfer.
//
// When sv's growth policy does implement the translator capability
// (Doubling, Linear), splicing foreign fragments in would break the O(1)
// translation formula, so elements are pushed one at a time instead; other
// is left unmodified (its elements were copied, not moved). This path is
// O(other.Len()).
func (sv *SplitVec[T]) Append(other *SplitVec[T]) error {
	if other == nil || other.length == 0 {
		return nil
	}

	if _, constantTime := sv.policy.(translator); !constantTime {
		return sv.appendByTransfer(other)
	}

	for _, frag := range other.fragments {
		for _, v := range frag.AsSlice() {
			if err := sv.Push(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendByTransfer splices other's remaining fragments onto sv verbatim, the
// O(len(other.fragments)) path available to policies without the
// constant-time translator capability.
//
// Invariant S1 requires every non-terminal fragment to be full. sv's current
// last fragment may have spare room (nothing forces a Push-built container to
// end on a full fragment), and splicing other's fragments directly after a
// partial one would leave a non-terminal partial fragment, silently breaking
// the walking translator's capacity-prefix-sum formula for every index past
// it. So sv's last fragment is first topped up by copying (not transferring)
// elements one at a time off the front of other — the only elements in this
// operation that do not keep their original address — until it is full or
// other is exhausted; only then are other's remaining whole fragments
// grafted on without copying.
func (sv *SplitVec[T]) appendByTransfer(other *SplitVec[T]) error {
	last := sv.fragments[len(sv.fragments)-1]
	for last.Len() < last.Capacity() && other.length > 0 {
		v, _ := other.Remove(0)
		_ = last.Push(v) // room guaranteed by the loop condition
		sv.length++
	}
	if other.length == 0 {
		return nil
	}

	sv.fragments = append(sv.fragments, other.fragments...)
	sv.length += other.length
	// other.capacity also counts other's reserved fragments, which are not
	// transferred; count only the fragments actually spliced in.
	for _, frag := range other.fragments {
		sv.capacity += frag.Capacity()
	}
	other.resetEmpty()
	return nil
}

// resetEmpty reinitializes sv to a freshly constructed, empty state under
// its current policy. Used after an append-by-transfer hands all of sv's
// fragments to another container; any fragments still pending from a
// Reserve call are discarded along with them, since they described spare
// capacity for a fragment list sv no longer owns.
func (sv *SplitVec[T]) resetEmpty() {
	capacity := sv.policy.NextCapacity(nil)
	if capacity <= 0 {
		panic(newPolicyError("NextCapacity", "must return a positive capacity, got %d", capacity))
	}
	frag := newFragment[T](capacity)
	sv.fragments = []*Fragment[T]{frag}
	sv.length = 0
	sv.capacity = frag.Capacity()
	sv.reserved = nil
}
