// Package hash implements the table's pluggable key-hashing contract:
// a function mapping fixed-size key bytes to a uint32 probe seed. Any
// stable, well-distributed hash is permitted — the table has no
// persistence, so the hash may even change between sessions.
package hash

// Func maps key bytes to a probe seed. The table computes the probe
// start as Func(key) mod N.
type Func func(key []byte) uint32
