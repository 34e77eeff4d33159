package hashfunc

// HashAlgorithm - Interface that permits an implementation using the MemHashMap to supply a custom
// hash algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when creating a new hash map. Hence, if a custom hash algorithm is supplied
	// and the instance is already holding a table size, it will be overwritten by the capacity
	// given when creating the hash map.
	//   - tableSize is the number of slots the hash map will address
	SetTableSize(tableSize int64)

	// HashFunc - Given key it generates a slot index between 0 and table size - 1.
	// The function must be deterministic for equal keys over the lifetime of the table.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function returns the actual table size the HashFunc distributes
	// over and not just whatever was given in a call to SetTableSize, should the implementation
	// apply any rounding of its own.
	GetTableSize() int64
}
