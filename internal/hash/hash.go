package hash

import (
	"github.com/cespare/xxhash/v2"
)

// SingleHashAlgorithm - The internally used slot selection algorithm is implemented using xxhash.Sum64String to
// create a hash value over the key and then applying slot = hash % tableSize to get the slot number.
// The table size is used as is, no rounding to the nearest exponent of 2, since the slot array in the
// hash map is of exactly the requested capacity.
type SingleHashAlgorithm struct {
	tableSize int64
}

// NewSingleHashAlgorithm - Returns a pointer to a new SingleHashAlgorithm instance
func NewSingleHashAlgorithm(tableSize int64) *SingleHashAlgorithm {
	return &SingleHashAlgorithm{tableSize: tableSize}
}

// SetTableSize - Sets the table size for the hash algorithm
func (S *SingleHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc - Given key it generates a slot index between 0 and table size - 1
func (S *SingleHashAlgorithm) HashFunc(key string) int64 {
	h := xxhash.Sum64String(key)
	return int64(h % uint64(S.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *SingleHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
