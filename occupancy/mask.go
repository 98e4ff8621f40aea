// Package occupancy provides the dense occupied-mask every solver uses for
// collision checks during search.
//
// Inner-loop collision checks run in tight recursion, so Mask is a plain
// byte-per-cell slice indexed by cell id rather than a hash set: a set
// allocates and hashes on every membership check, which dominates runtime
// once placement search gets deep. It's also not a packed bitset — packing
// would add shift/mask arithmetic to the hottest loop in the module for no
// measured benefit at puzzle-board sizes.
package occupancy

// Mask is a dense occupied-mask: Mask[i] != 0 iff cell i is occupied.
type Mask []byte

// New returns a zeroed Mask for a board of the given size.
func New(size int) Mask {
	return make(Mask, size)
}

// Get reports whether cell id is occupied.
func (m Mask) Get(id int) bool {
	return m[id] != 0
}

// Set marks cell id occupied.
func (m Mask) Set(id int) {
	m[id] = 1
}

// Clear marks cell id free.
func (m Mask) Clear(id int) {
	m[id] = 0
}

// SetAll marks every cell in ids occupied.
func (m Mask) SetAll(ids []int) {
	for _, id := range ids {
		m[id] = 1
	}
}

// Collides reports whether any cell in ids is already occupied.
func (m Mask) Collides(ids []int) bool {
	for _, id := range ids {
		if m[id] != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m, used whenever a solver needs to
// try a tentative placement without disturbing the mask a caller may still
// need to roll back to.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	copy(out, m)
	return out
}
