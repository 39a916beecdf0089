package hash

import "github.com/cespare/xxhash/v2"

// XXHash64 folds xxhash's 64-bit digest of key down to 32 bits by
// XOR-ing the halves together. xxhash is well distributed on small
// fixed-width inputs and fast enough to use on every Insert/Find/Erase.
func XXHash64(key []byte) uint32 {
	sum := xxhash.Sum64(key)
	return uint32(sum) ^ uint32(sum>>32)
}
