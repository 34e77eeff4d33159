package openaddressing

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
)

// probeStart - Returns the starting slot index for a key and checks that the hash algorithm
// behaves within the permitted range
func (T *OATable) probeStart(key string) (index int64, err error) {
	index = T.hashAlgorithm.HashFunc(key)
	if index < 0 || index >= T.capacity {
		err = fmt.Errorf("received slot number from hash algorithm is outside permitted range")
	}

	return
}

// probingForGet - Is the probing algorithm for finding the slot holding an active record for a key.
// The probe continues through every occupied slot, tombstones included, since the target key may
// lie further along the original insertion chain. It stops on an unoccupied slot or when it has
// cycled through the entire table.
//
// It returns:
//   - index is the slot number holding an active record with matching key
//   - err is either of type crt.NotFound or a standard error, if something went wrong
func (T *OATable) probingForGet(key string) (index int64, err error) {
	index, err = T.probeStart(key)
	if err != nil {
		return
	}

	start := index
	for T.slots[index].Occupied {
		if T.slots[index].Key == key && T.slots[index].Active {
			return
		}

		index++
		if index == T.capacity {
			index = 0
		}
		if index == start {
			break
		}
	}

	err = crt.NotFound{}

	return
}

// probingForSet - Is the probing algorithm for finding the slot to write a record to.
// The probe stops at the first slot that is either unoccupied or holds the probed key itself.
// Tombstones with a different key do not stop the probe and are not preferred over later
// unoccupied slots, they are passed exactly as live slots with a different key are.
//
// It returns:
//   - index is the slot number to write the record to
//   - err is either of type crt.TableFull or a standard error, if something went wrong
func (T *OATable) probingForSet(key string) (index int64, err error) {
	index, err = T.probeStart(key)
	if err != nil {
		return
	}

	start := index
	for T.slots[index].Occupied && T.slots[index].Key != key {
		index++
		if index == T.capacity {
			index = 0
		}
		if index == start {
			err = crt.TableFull{}
			return
		}
	}

	return
}
