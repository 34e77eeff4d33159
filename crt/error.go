package crt

// NotFound - Custom error to inform that no active record was found for a key
type NotFound struct {
	msg string
}

// Error - Used to notify that no active record was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "hash table is full"
	}
	return E.msg
}
