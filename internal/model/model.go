package model

import "github.com/gostonefire/memhashmap/hashfunc"

// Slot - Represents one position in the slot array.
// A slot with Occupied set and Active cleared is a tombstone, it once held a live record that was
// later deleted, and it must not terminate a probe sequence for a different key.
type Slot struct {
	Key      string
	Value    int64
	Occupied bool
	Active   bool
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	Capacity          int64
	InternalAlgorithm bool
}

// TableConf - Is a struct to be passed in the call to NewOATable and contains configuration that
// affects table processing.
//   - Capacity is the fixed number of slots in the table
//   - HashAlgorithm is the hash function to use
type TableConf struct {
	Capacity      int64
	HashAlgorithm hashfunc.HashAlgorithm
}
