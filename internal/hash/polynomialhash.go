package hash

import (
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/utils"
)

// PolynomialHashAlgorithm - The internally used bucket selection algorithm. Each byte of the key is multiplied by
// 31 raised to its position, reduced modulo the table size and accumulated, and the sum is finally reduced modulo the
// table size again. All arithmetic is done modulo the table size, so the result is the same regardless of key length.
// The table size is used as given, there is no rounding.
type PolynomialHashAlgorithm struct {
	tableSize int64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc1(key []byte) int64 {
	m := uint64(P.tableSize)
	if m == 0 {
		return 0
	}

	var sum uint64
	for i, c := range key {
		sum = (sum + uint64(c)*utils.PowMod(conf.HashBase, uint64(i), m)%m) % m
	}

	return int64(sum % m)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}
