package hash

import "hash/fnv"

// FNV buckets s into [0, max) using a 32-bit FNV-1 hash. Writers and
// readers must agree on this function for the slice partitioning to hold.
func FNV(s string, max uint32) uint32 {
	hash := fnv.New32()
	_, _ = hash.Write([]byte(s))
	return hash.Sum32() % max
}
