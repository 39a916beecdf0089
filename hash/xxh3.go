package hash

import "github.com/zeebo/xxh3"

// XXH3 folds xxh3's 64-bit digest of key down to 32 bits by XOR-ing
// the halves together. Like XXHash64, it's a drop-in alternative to
// Jenkins for callers who have already standardized on xxh3 elsewhere
// in their process.
func XXH3(key []byte) uint32 {
	sum := xxh3.Hash(key)
	return uint32(sum) ^ uint32(sum>>32)
}
