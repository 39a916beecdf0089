package table

import "sync/atomic"

// fetchOr atomically ORs bit into a and returns the pre-image value,
// the same contract as C11's atomic_fetch_or. sync/atomic has no
// built-in bitwise fetch-or for Uint64, so it is built from a
// compare-and-swap retry loop — the idiomatic Go equivalent, and the
// same technique the table's CAS-based entry installs already use.
func fetchOr(a *atomic.Uint64, bit uint64) uint64 {
	for {
		old := a.Load()
		if a.CompareAndSwap(old, old|bit) {
			return old
		}
	}
}

// fetchAndClear atomically clears bit in a under release-equivalent
// ordering (CompareAndSwap on this architecture is a full barrier,
// which is at least as strong as the release this operation needs).
//
// This clears the bit — it must NOT be confused with the OR-based
// release some ports of this table use, which merely re-sets the bit
// and would prevent the slot from ever being reused.
func fetchAndClear(a *atomic.Uint64, bit uint64) {
	for {
		old := a.Load()
		if a.CompareAndSwap(old, old&^bit) {
			return
		}
	}
}

// claimSlot scans the pool chunks in order and attempts to claim the
// first clear bit within [0, N). Returns NullSlot only when no free
// slot exists in that range.
//
// Ordering rationale: the acquire side of the fetch-or pairs with the
// release in releaseSlot, giving the new owner a happens-before edge
// to the prior owner's final writes into the payload arenas, so the
// new owner's own writes are never reordered before it actually holds
// the slot.
func (t *Table) claimSlot() uint32 {
	n := t.cfg.N
	for c := range t.pool {
		chunk := t.pool[c].Load()
		if chunk == ^uint64(0) {
			continue
		}
		for b := 0; b < 64; b++ {
			pos := uint32(c)*64 + uint32(b)
			if pos >= n {
				return NullSlot
			}
			bit := uint64(1) << uint(b)
			if chunk&bit != 0 {
				continue
			}
			if old := fetchOr(&t.pool[c], bit); old&bit == 0 {
				return pos
			}
		}
	}
	return NullSlot
}

// releaseSlot atomically clears slot's bit in the pool, publishing all
// of this goroutine's prior writes (most importantly the CAS that
// displaced the slot) to whichever goroutine next claims it.
func (t *Table) releaseSlot(slot uint32) {
	if slot == NullSlot {
		return
	}
	c := slot / 64
	bit := uint64(1) << uint(slot%64)
	fetchAndClear(&t.pool[c], bit)
}
