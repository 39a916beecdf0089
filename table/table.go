package table

import (
	"sync/atomic"
	"unsafe"

	"github.com/templexxx/cpu"
)

// Table is a fixed-capacity, lock-free associative container. It owns
// the contents of a caller-supplied buffer (but not the buffer's
// allocation); the buffer must outlive the Table and must not be
// touched by the caller while the Table is in use.
//
// Zero value is not usable; construct with New.
type Table struct {
	cfg Config

	entries []atomic.Uint64
	// Cache-line padding between the entries and pool slice headers
	// inside the Table struct, so the two headers do not share a cache
	// line. It adds no gap inside the caller's buffer: there the regions
	// are laid out exactly as CalcMemSize describes.
	_pad0 [cpu.X86FalseSharingRange]byte

	pool []atomic.Uint64
	_pad1 [cpu.X86FalseSharingRange]byte

	keys []byte
	vals []byte

	buf []byte // keeps the caller's buffer reachable; never read after New
}

// New validates cfg and carves buf into the table's four regions
// (entries, keys, vals, pool — in that order, per CalcMemSize), then
// zeroes the entries and pool regions. Payload arenas need not be
// zeroed. After New returns successfully the table is immediately
// usable concurrently.
//
// New validates its inputs and returns a descriptive error rather than
// relying on caller discipline: N, K and V must all be non-zero, buf
// must be at least CalcMemSize(cfg) bytes, and buf must be 8-byte
// aligned. New itself is not safe to call concurrently with other uses
// of buf.
func New(cfg Config, buf []byte) (*Table, error) {
	if cfg.N == 0 {
		return nil, newErrInvalidCapacity(cfg.N)
	}
	if cfg.K == 0 {
		return nil, newErrInvalidKeySize(cfg.K)
	}
	if cfg.V == 0 {
		return nil, newErrInvalidValueSize(cfg.V)
	}

	need := CalcMemSize(cfg)
	if uint64(len(buf)) < need {
		return nil, newErrBufferTooSmall(need, uint64(len(buf)))
	}
	base := uintptr(unsafe.Pointer(&buf[0]))
	if base%8 != 0 {
		return nil, newErrBufferMisaligned(base)
	}

	keysLen := roundup(uint64(cfg.N)*uint64(cfg.K), 8)
	valsLen := roundup(uint64(cfg.N)*uint64(cfg.V), 8)
	numChunks := numPoolChunks(cfg.N)

	entriesLen := 8 * uint64(cfg.N)
	keysOff := entriesLen
	valsOff := keysOff + keysLen
	poolOff := valsOff + valsLen

	t := &Table{
		cfg: cfg,
		buf: buf,
	}
	t.entries = unsafe.Slice((*atomic.Uint64)(unsafe.Pointer(&buf[0])), cfg.N)
	t.keys = buf[keysOff : keysOff+keysLen : keysOff+keysLen]
	t.vals = buf[valsOff : valsOff+valsLen : valsOff+valsLen]
	if numChunks > 0 {
		t.pool = unsafe.Slice((*atomic.Uint64)(unsafe.Pointer(&buf[poolOff])), numChunks)
	}

	for i := range t.entries {
		t.entries[i].Store(0)
	}
	for i := range t.pool {
		t.pool[i].Store(0)
	}

	return t, nil
}

func (t *Table) keyAt(slot uint32) []byte {
	k := uint64(t.cfg.K)
	off := uint64(slot) * k
	return t.keys[off : off+k]
}

func (t *Table) valAt(slot uint32) []byte {
	v := uint64(t.cfg.V)
	off := uint64(slot) * v
	return t.vals[off : off+v]
}
