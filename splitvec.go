// Package splitvec implements a dynamic-capacity sequence container whose
// elements never change address once inserted. It grows by allocating
// additional fixed-capacity fragments rather than by reallocating and
// copying existing storage, which makes it suitable as the backing store
// for self-referential collections (trees, intrusive linked structures) and
// for readers that hold direct element addresses across mutations that
// neither remove nor shift the element they point to.
package splitvec

// SplitVec is an ordered sequence of fragments plus the growth policy that
// decides each new fragment's capacity. Mutating methods require exclusive
// access; read-only methods admit shared access (the container holds no
// internal locks — see the package-level concurrency note in the project
// README/spec for the single-writer contract).
type SplitVec[T any] struct {
	fragments []*Fragment[T]
	policy    GrowthPolicy
	length    int
	capacity  int

	// reserved holds fragments allocated by Reserve but not yet attached to
	// fragments. Invariant S1 requires every non-terminal fragment to be
	// full; a fragment ahead of a still-partial last fragment would violate
	// that the moment it existed, regardless of whether anything had been
	// written to it. Keeping pre-allocated fragments off the fragments list
	// until they are actually needed (consumed in FIFO order by Push/
	// Insert's cascade) preserves S1 while still avoiding an allocation on
	// the next Push after Reserve.
	reserved []*Fragment[T]
}

// New returns a SplitVec growing under the Doubling policy, equivalent to
// WithDoublingGrowth.
func New[T any]() *SplitVec[T] {
	return WithGrowth[T](Doubling{})
}

// WithDoublingGrowth returns a SplitVec whose first fragment has capacity 4
// and whose fragments double in capacity thereafter (4, 8, 16, ...).
func WithDoublingGrowth[T any]() *SplitVec[T] {
	return WithGrowth[T](Doubling{})
}

// WithLinearGrowth returns a SplitVec whose fragments each have capacity
// 2^exponent.
func WithLinearGrowth[T any](exponent uint) *SplitVec[T] {
	return WithGrowth[T](NewLinear(exponent))
}

// WithGrowth returns a SplitVec using the given growth policy, with a first
// fragment sized by policy.NextCapacity(nil).
func WithGrowth[T any](policy GrowthPolicy) *SplitVec[T] {
	capacity := policy.NextCapacity(nil)
	if capacity <= 0 {
		panic(newPolicyError("NextCapacity", "must return a positive capacity, got %d", capacity))
	}
	frag := newFragment[T](capacity)
	return &SplitVec[T]{
		fragments: []*Fragment[T]{frag},
		policy:    policy,
		capacity:  capacity,
	}
}

// FromContiguous adopts buf as the sole, already-full fragment of a new
// SplitVec, growing under the Recursive policy thereafter. buf is taken by
// reference: buf's backing array is the container's first fragment, so
// mutating elements through the container mutates buf for as long as that
// fragment remains in the container (Clear keeps it, and later pushes
// write into it).
//
// Recursive, not Doubling, is deliberate: Doubling's O(1) translator formula
// (growth.go's Translate) assumes the first fragment has capacity exactly 4
// and every fragment after it doubles from there. buf's length is arbitrary,
// so an adopted fragment of any other size would make that formula
// translate indices to the wrong (or a nonexistent) fragment — the same
// "heterogeneous capacity sequence" problem append-by-transfer produces,
// which is exactly why Recursive opts out of the translator capability and
// falls back to the walking translator. When buf is empty there is nothing
// arbitrary to adopt, so the standard Doubling-growth constructor applies.
func FromContiguous[T any](buf []T) *SplitVec[T] {
	if len(buf) == 0 {
		return WithDoublingGrowth[T]()
	}
	frag := &Fragment[T]{data: buf, length: len(buf)}
	return &SplitVec[T]{
		fragments: []*Fragment[T]{frag},
		policy:    Recursive{},
		length:    len(buf),
		capacity:  len(buf),
	}
}

// Len returns the number of elements currently stored.
func (sv *SplitVec[T]) Len() int {
	return sv.length
}

// Capacity returns the total number of slots across all fragments.
func (sv *SplitVec[T]) Capacity() int {
	return sv.capacity
}

// IsEmpty reports whether the container holds no elements.
func (sv *SplitVec[T]) IsEmpty() bool {
	return sv.length == 0
}

// capacities returns the capacity of each fragment already committed to the
// container's growth progression, in order — fragments and reserved (but
// not yet attached) alike — which is the input GrowthPolicy.NextCapacity
// expects. Including reserved fragments keeps the progression consistent
// across repeated Reserve calls: otherwise a policy like Doubling would
// recompute the same capacity twice for a fragment that is allocated but
// still pending.
func (sv *SplitVec[T]) capacities() []int {
	caps := make([]int, 0, len(sv.fragments)+len(sv.reserved))
	for _, f := range sv.fragments {
		caps = append(caps, f.Capacity())
	}
	for _, f := range sv.reserved {
		caps = append(caps, f.Capacity())
	}
	return caps
}

// allocateNext asks the growth policy for the next fragment's capacity and
// allocates it. It panics with a *PolicyError if the policy violates its
// contract, and may panic from the runtime allocator on actual allocation
// failure — callers recover the latter into ErrAllocationFailure via
// recoverAlloc.
func (sv *SplitVec[T]) allocateNext() *Fragment[T] {
	c := sv.policy.NextCapacity(sv.capacities())
	if c <= 0 {
		panic(newPolicyError("NextCapacity", "must return a positive capacity, got %d", c))
	}
	return newFragment[T](c)
}

// acquireFragment returns the next fragment to attach to the container,
// preferring a fragment already allocated by Reserve (consumed in FIFO
// order) over allocating a fresh one. The returned fragment is not yet
// appended to sv.fragments; the caller does that immediately before writing
// into it, which is what keeps a Reserve-created fragment invisible to index
// translation — and so harmless to invariant S1 — until it is genuinely the
// fragment being filled.
func (sv *SplitVec[T]) acquireFragment() *Fragment[T] {
	if len(sv.reserved) > 0 {
		frag := sv.reserved[0]
		sv.reserved = sv.reserved[1:]
		return frag
	}
	frag := sv.allocateNext()
	sv.capacity += frag.Capacity()
	return frag
}

// dropIfEmptyTrailing removes the last fragment if it has become empty and
// is not the only fragment remaining (SplitVec always keeps at least one).
func (sv *SplitVec[T]) dropIfEmptyTrailing() {
	last := sv.fragments[len(sv.fragments)-1]
	if last.Len() == 0 && len(sv.fragments) > 1 {
		sv.capacity -= last.Capacity()
		sv.fragments = sv.fragments[:len(sv.fragments)-1]
	}
}

// Push appends v. If the last fragment is full, a new fragment is allocated
// per the growth policy before v is written; existing fragments, and every
// address already handed out, are untouched.
func (sv *SplitVec[T]) Push(v T) (err error) {
	last := sv.fragments[len(sv.fragments)-1]
	if last.Push(v) == nil {
		sv.length++
		return nil
	}

	defer recoverAlloc(&err)
	frag := sv.acquireFragment()
	sv.fragments = append(sv.fragments, frag)
	_ = frag.Push(v) // a freshly attached fragment always has room
	sv.length++
	return nil
}

// Pop removes and returns the last element. Reports false on an empty
// container.
func (sv *SplitVec[T]) Pop() (T, bool) {
	var zero T
	if sv.length == 0 {
		return zero, false
	}
	last := sv.fragments[len(sv.fragments)-1]
	v, _ := last.Pop()
	sv.length--
	sv.dropIfEmptyTrailing()
	return v, true
}

// Insert places v at logical index i, shifting everything from i onward one
// slot later. Insertion within a fragment that still has room is a local
// shift; inserting into a full fragment displaces that fragment's last
// element into the head of the next fragment, cascading until a fragment
// with room is found or a new trailing fragment is allocated. Elements
// ahead of i are never touched: only the shifted suffix moves, each element
// by exactly one slot within its (possibly new) fragment.
//
// If allocation fails partway through a cascade, the fragments already
// shifted remain shifted (basic guarantee): the container stays valid but
// the insert is not atomic in that case.
func (sv *SplitVec[T]) Insert(i int, v T) (err error) {
	if i < 0 || i > sv.length {
		return ErrOutOfBounds
	}
	if i == sv.length {
		return sv.Push(v)
	}

	defer recoverAlloc(&err)

	f, o := sv.locate(i)
	frag := sv.fragments[f]
	if frag.Len() < frag.Capacity() {
		frag.insertWithinCapacity(o, v)
		sv.length++
		return nil
	}

	carry := frag.insertDisplacing(o, v)
	hasCarry := true
	for hasCarry {
		f++
		if f == len(sv.fragments) {
			next := sv.acquireFragment()
			sv.fragments = append(sv.fragments, next)
		}
		carry, hasCarry = sv.fragments[f].pushFront(carry)
	}
	sv.length++
	return nil
}

// Remove removes and returns the element at logical index i, shifting
// everything after it one slot earlier and carrying each fragment's first
// element into the previous fragment's newly vacant last slot.
func (sv *SplitVec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= sv.length {
		return zero, ErrOutOfBounds
	}

	f, o := sv.locate(i)
	v := sv.fragments[f].removeAt(o)
	for j := f + 1; j < len(sv.fragments); j++ {
		first := sv.fragments[j].removeAt(0)
		_ = sv.fragments[j-1].Push(first) // exactly one free slot, by S1
	}
	sv.length--
	sv.dropIfEmptyTrailing()
	return v, nil
}

// SwapRemove removes the element at logical index i by overwriting its slot
// with the container's current last element, then popping the last slot.
// O(1) regardless of i, at the cost of reordering: the element that was
// last is now at i.
func (sv *SplitVec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= sv.length {
		return zero, ErrOutOfBounds
	}

	f, o := sv.locate(i)
	removed := sv.fragments[f].at(o)

	lastFragIdx := len(sv.fragments) - 1
	lastFrag := sv.fragments[lastFragIdx]
	lastVal, _ := lastFrag.Pop()
	if !(f == lastFragIdx && o == lastFrag.Len()) {
		sv.fragments[f].set(o, lastVal)
	}

	sv.length--
	sv.dropIfEmptyTrailing()
	return removed, nil
}

// Truncate shortens the container to at most l elements, dropping trailing
// fragments back-to-front as they empty out. Truncating to a length the
// container already has, or beyond, is a no-op.
func (sv *SplitVec[T]) Truncate(l int) {
	if l < 0 {
		l = 0
	}
	for sv.length > l {
		last := sv.fragments[len(sv.fragments)-1]
		drop := sv.length - l
		if drop > last.Len() {
			drop = last.Len()
		}
		last.truncate(last.Len() - drop)
		sv.length -= drop
		sv.dropIfEmptyTrailing()
	}
}

// Clear empties the container, retaining only the first fragment (with its
// original capacity preserved) reset to length 0. Any fragments still
// pending from a Reserve call are dropped along with the rest: Capacity()
// afterward reflects only the retained fragment, so keeping them around
// would make acquireFragment hand one back later without re-adding its
// capacity, silently undercounting it.
func (sv *SplitVec[T]) Clear() {
	first := sv.fragments[0]
	first.truncate(0)
	sv.fragments = sv.fragments[:1]
	sv.capacity = first.Capacity()
	sv.length = 0
	sv.reserved = nil
}

// Reserve allocates additional fragments, as the growth policy sizes them,
// until spare capacity (Capacity()-Len()) is at least extra.
//
// The allocated fragments are held pending rather than attached to the
// fragment list immediately: the container's current last fragment may not
// yet be full (nothing requires a Push-built container to end on a full
// fragment), and appending a fresh, empty fragment after a partial one would
// make that partial fragment non-terminal while still short of capacity,
// violating invariant S1 (every non-terminal fragment full) and corrupting
// index translation for every index beyond it. Pending fragments are
// consumed, in the order they were allocated, by Push and Insert's cascade
// once the fragment ahead of them is actually full.
func (sv *SplitVec[T]) Reserve(extra int) (err error) {
	if extra <= 0 {
		return nil
	}
	defer recoverAlloc(&err)
	for sv.capacity-sv.length < extra {
		frag := sv.allocateNext()
		sv.capacity += frag.Capacity()
		sv.reserved = append(sv.reserved, frag)
	}
	return nil
}

// ExtendFromSlice pushes every element of items in order. If an allocation
// fails partway through, the elements pushed so far remain (basic
// guarantee).
func (sv *SplitVec[T]) ExtendFromSlice(items []T) error {
	for _, v := range items {
		if err := sv.Push(v); err != nil {
			return err
		}
	}
	return nil
}
