package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/model"
)

// Insert - Updates an existing record with a new value or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the value to be stored along with its key
//
// It returns:
//   - err is of type crt.TableFull if a new key is inserted when every slot in the map is occupied, otherwise nil
func (M *MemHashMap) Insert(key string, value int64) (err error) {
	err = M.table.Set(key, value)

	return
}

// Retrieve - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NotFound is also returned.
//   - err is of type crt.NotFound if the key holds no active record
func (M *MemHashMap) Retrieve(key string) (value int64, err error) {
	value, err = M.table.Get(key)

	return
}

// Remove - Removes the record corresponding to key from the hash map.
// An absent key is an expected outcome rather than an error, hence the boolean return as
// opposed to Retrieve which returns a crt.NotFound error.
//   - key is the identifier of a record
//
// It returns:
//   - removed is true if an active record was found and removed, false if the key held no active record
func (M *MemHashMap) Remove(key string) (removed bool) {
	removed = M.table.Delete(key)

	return
}

// Size - Returns the number of currently active records in the hash map
func (M *MemHashMap) Size() int64 {
	return M.table.Size()
}

// Capacity - Returns the fixed number of slots in the hash map
func (M *MemHashMap) Capacity() int64 {
	return M.table.Capacity()
}

// Stat - Walks through the entire slot array and produces a MemHashMapStat struct with information.
// Removed records leave tombstones behind that are never reclaimed, so the sum of Records and
// Tombstones can only grow over the lifetime of the map.
//   - includeDistribution set to true will include a slice of length Capacity with number of active records per slot, false will set MemHashMapStat.SlotDistribution to nil.
func (M *MemHashMap) Stat(includeDistribution bool) (memHashMapStat *MemHashMapStat, err error) {
	var slot model.Slot
	var mhs MemHashMapStat

	capacity := M.table.Capacity()

	if includeDistribution {
		mhs.SlotDistribution = make([]int64, capacity)
	}

	// Iterate over every available slot
	for i := int64(0); i < capacity; i++ {
		slot, err = M.table.GetSlot(i)
		if err != nil {
			return
		}

		switch {
		case slot.Occupied && slot.Active:
			mhs.Records++
			if includeDistribution {
				mhs.SlotDistribution[i]++
			}
		case slot.Occupied:
			mhs.Tombstones++
		default:
			mhs.FreeSlots++
		}
	}

	memHashMapStat = &mhs

	return
}
