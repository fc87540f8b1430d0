package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Catalog to supply a custom bucket
// selection algorithm suited for its particular distribution of course numbers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is created. Hence, if a custom hash algorithm is supplied that implements this
	// interface and the instance already has a table size, it will be overwritten by the number of buckets
	// requested for the table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given in
	// a call to SetTableSize. Some algorithms round up to nearest 2 to the power of x, and if such operations are
	// built in the implementation of this interface it must be covered in the GetTableSize.
	GetTableSize() int64
}
