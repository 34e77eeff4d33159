package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
)

// MemHashMapInfo - Information structure containing some information about the hash map created
//   - Capacity is the fixed number of slots in the hash map, it cannot grow after creation
//   - InternalAlgorithm is true if the hash map was created with the internal hash algorithm
type MemHashMapInfo struct {
	Capacity          int64
	InternalAlgorithm bool
}

// MemHashMapStat - Statistics on the overall slot utilization
//   - Records is the number of active records stored
//   - Tombstones is the number of slots that held a record that was later removed
//   - FreeSlots is the number of slots that have never held a record
//   - SlotDistribution is the number of active records stored in each slot (0 or 1)
type MemHashMapStat struct {
	Records          int64
	Tombstones       int64
	FreeSlots        int64
	SlotDistribution []int64
}

// MemHashMap - The main implementation struct.
// It holds a fixed size slot array in memory and resolves collisions with linear probing.
// The hash map is not safe for concurrent use, it assumes exactly one logical thread of control.
type MemHashMap struct {
	table *openaddressing.OATable
}

// NewMemHashMap - Returns a new in-memory hash map with a fixed number of slots.
// The capacity is set once and the map will refuse further inserts of new keys when all slots
// are occupied, there is no resizing or rehashing.
//   - capacity is the fixed number of slots, it must be a positive number
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal default
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - memHashMapInfo is a MemHashMapInfo struct containing some data regarding the hash map created
//   - err is a normal Go error which should be nil if everything went ok
func NewMemHashMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (
	memHashMap *MemHashMap,
	memHashMapInfo MemHashMapInfo,
	err error,
) {

	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	table := openaddressing.NewOATable(model.TableConf{
		Capacity:      capacity,
		HashAlgorithm: hashAlgorithm,
	})

	memHashMap = &MemHashMap{table: table}

	sp := table.GetStorageParameters()

	memHashMapInfo = MemHashMapInfo{
		Capacity:          sp.Capacity,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}
