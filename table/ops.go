package table

import "bytes"

// Insert copies key and val into the table and makes the key
// findable with that value. Returns false only when the table has no
// free slot (pool exhausted) or when N probe steps complete without
// finding an installable position; both are reported identically,
// since the caller cannot distinguish them anyway.
func (t *Table) Insert(key, val []byte) bool {
	cfg := t.cfg
	slot := t.claimSlot()
	if slot == NullSlot {
		return false
	}

	copy(t.keyAt(slot), key[:cfg.K])
	copy(t.valAt(slot), val[:cfg.V])

	idx := cfg.hashFunc()(key[:cfg.K]) % cfg.N
	for i := uint32(0); i < cfg.N; i++ {
		entry := &t.entries[idx]
		old := entry.Load()

		for {
			oldSlot, oldVersion := decodeEntry(old)
			canInstall := oldVersion == 0 || oldSlot == NullSlot || bytes.Equal(key[:cfg.K], t.keyAt(oldSlot))

			if canInstall {
				newWord := encodeEntry(slot, oldVersion+1)
				if entry.CompareAndSwap(old, newWord) {
					if oldVersion > 0 {
						t.releaseSlot(oldSlot)
					}
					return true
				}
				old = entry.Load()
				continue
			}

			reloaded := entry.Load()
			if reloaded == old {
				break // stable collision: advance to next probe index
			}
			old = reloaded
		}

		idx = (idx + 1) % cfg.N
	}

	t.releaseSlot(slot)
	return false
}

// Find looks up key. If found and out is non-nil, the value is copied
// into out (which must be at least cfg.V bytes). Returns false only
// when the key is absent.
func (t *Table) Find(key []byte, out []byte) bool {
	cfg := t.cfg
	idx := cfg.hashFunc()(key[:cfg.K]) % cfg.N

	for i := uint32(0); i < cfg.N; i++ {
		entry := &t.entries[idx]
		e0 := entry.Load()

		for {
			slot, version := decodeEntry(e0)
			if version == 0 {
				return false // empty terminus: key cannot lie beyond this point
			}
			if slot == NullSlot {
				break // tombstone: advance to next probe index
			}

			if bytes.Equal(key[:cfg.K], t.keyAt(slot)) {
				if out != nil {
					copy(out[:cfg.V], t.valAt(slot))
				}
				e1 := entry.Load()
				if e1 == e0 {
					return true
				}
				e0 = e1
				continue
			}

			e1 := entry.Load()
			if e1 == e0 {
				break // stable collision: advance to next probe index
			}
			e0 = e1
		}

		idx = (idx + 1) % cfg.N
	}
	return false
}

// Erase removes key from the table. Returns false only when the key
// is absent.
func (t *Table) Erase(key []byte) bool {
	cfg := t.cfg
	idx := cfg.hashFunc()(key[:cfg.K]) % cfg.N

	for i := uint32(0); i < cfg.N; i++ {
		entry := &t.entries[idx]
		old := entry.Load()

		for {
			oldSlot, oldVersion := decodeEntry(old)
			if oldVersion == 0 {
				return false
			}
			if oldSlot == NullSlot {
				break // already a tombstone: advance to next probe index
			}

			if bytes.Equal(key[:cfg.K], t.keyAt(oldSlot)) {
				newWord := encodeEntry(NullSlot, oldVersion+1)
				if entry.CompareAndSwap(old, newWord) {
					t.releaseSlot(oldSlot)
					return true
				}
				old = entry.Load()
				continue
			}

			reloaded := entry.Load()
			if reloaded == old {
				break // stable collision: advance to next probe index
			}
			old = reloaded
		}

		idx = (idx + 1) % cfg.N
	}
	return false
}
