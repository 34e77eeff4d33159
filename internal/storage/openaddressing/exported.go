package openaddressing

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
)

// OATable - Represents an implementation of in-memory storage for the Open Addressing Collision
// Resolution Technique using linear probing. It uses one slot array where each slot represents a
// record. In case of a collision, it probes through the table one slot at a time, looking for an
// empty slot, and assigns the free slot to the value. Once all free slots are occupied the table
// will accept no more records.
type OATable struct {
	slots             []model.Slot
	capacity          int64
	size              int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation and processing
func NewOATable(tableConf model.TableConf) (oaTable *OATable) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewSingleHashAlgorithm(tableConf.Capacity)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.Capacity)
	}

	// The hash algorithm has the final say on table size, should it apply any rounding of its own
	capacity := tableConf.HashAlgorithm.GetTableSize()

	oaTable = &OATable{
		slots:             make([]model.Slot, capacity),
		capacity:          capacity,
		size:              0,
		hashAlgorithm:     tableConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (T *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Capacity:          T.capacity,
		InternalAlgorithm: T.internalAlgorithm,
	}

	return
}

// Get - Gets the value of the active record that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NotFound is also returned.
//   - err is either of type crt.NotFound or a standard error, if something went wrong
func (T *OATable) Get(key string) (value int64, err error) {
	index, err := T.probingForGet(key)
	if err != nil {
		return
	}

	value = T.slots[index].Value

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
//
// It returns:
//   - err is either of type crt.TableFull or a standard error, if something went wrong
func (T *OATable) Set(key string, value int64) (err error) {
	index, err := T.probingForSet(key)
	if err != nil {
		return
	}

	slot := &T.slots[index]
	wasActive := slot.Active

	slot.Key = key
	slot.Value = value
	slot.Occupied = true
	slot.Active = true

	if !wasActive {
		T.size++
	}

	return
}

// Delete - Deletes a record by clearing its Active flag, leaving the slot occupied as a tombstone
// so probe sequences through it remain intact.
//
// It returns:
//   - removed is true if an active record was found and tombstoned, false if the key held no active record
func (T *OATable) Delete(key string) (removed bool) {
	index, err := T.probingForGet(key)
	if err != nil {
		return false
	}

	T.slots[index].Active = false
	T.size--
	removed = true

	return
}

// GetSlot - Returns a copy of the slot with the given slot number
//   - slotNo has to be within range 0 -> capacity - 1
func (T *OATable) GetSlot(slotNo int64) (slot model.Slot, err error) {
	if slotNo < 0 || slotNo >= T.capacity {
		err = fmt.Errorf("slot number %d is outside permitted range", slotNo)
		return
	}

	slot = T.slots[slotNo]

	return
}

// Size - Returns the number of currently active records in the table
func (T *OATable) Size() int64 {
	return T.size
}

// Capacity - Returns the fixed number of slots in the table
func (T *OATable) Capacity() int64 {
	return T.capacity
}
