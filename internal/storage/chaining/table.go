package chaining

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/internal/hash"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/overflow"
	"math"
)

// MaxTableSize - Largest number of buckets a table can be created with
const MaxTableSize int64 = math.MaxUint32

// Table - Represents an in-memory implementation of the Separate Chaining Collision Resolution Technique.
// It uses a fixed array of directly addressable slots where each slot holds a head course and an
// overflow chain of courses that hashed to the same slot, in insertion order.
type Table struct {
	slots                 []model.Slot
	numberOfBucketsNeeded int64
	hashAlgorithm         hashAlgorithm
	internalAlgorithm     bool
	records               int64
}

// hashAlgorithm - The subset of hashfunc.HashAlgorithm the table needs after creation
type hashAlgorithm interface {
	HashFunc1(key []byte) int64
	GetTableSize() int64
}

// NewTable - Returns a pointer to a new instance of a Separate Chaining table.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(tableConf model.TableConf) (table *Table, err error) {
	if tableConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if tableConf.NumberOfBucketsNeeded > MaxTableSize {
		err = fmt.Errorf("number of buckets can not exceed %d", MaxTableSize)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var ha hashAlgorithm
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		ha = hash.NewPolynomialHashAlgorithm(tableConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBucketsNeeded)
		ha = tableConf.HashAlgorithm
	}

	numberOfBuckets := ha.GetTableSize()
	if numberOfBuckets <= 0 || numberOfBuckets > MaxTableSize {
		err = fmt.Errorf("hash algorithm reports an invalid table size of %d", numberOfBuckets)
		return
	}

	table = &Table{
		slots:                 make([]model.Slot, numberOfBuckets),
		numberOfBucketsNeeded: tableConf.NumberOfBucketsNeeded,
		hashAlgorithm:         ha,
		internalAlgorithm:     internalAlg,
	}

	return
}

// GetTableParameters - Returns a struct with table parameters
func (T *Table) GetTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		NumberOfBucketsNeeded:    T.numberOfBucketsNeeded,
		NumberOfBucketsAvailable: int64(len(T.slots)),
		InternalAlgorithm:        T.internalAlgorithm,
	}

	return
}

// Len - Returns the number of courses stored in the table, duplicates included
func (T *Table) Len() int64 {
	return T.records
}

// GetBucketNo - Returns which bucket number that the given course number results in
//   - number is the course number
func (T *Table) GetBucketNo(number string) (bucketNo int64, err error) {
	bucketNo = T.hashAlgorithm.HashFunc1([]byte(number))
	if bucketNo < 0 || bucketNo >= int64(len(T.slots)) {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns a copy of the slot head given the bucket number, together with an iterator over its overflow chain.
// The iterator reads the live chain, so it should be drained before the table is modified.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - slot is a model.Slot with State, Key and Head set, Chain is left empty
//   - overflowIterator is an overflow.Records struct that can be used to get any overflow records belonging to the slot.
//   - err is standard error
func (T *Table) GetBucket(bucketNo int64) (slot model.Slot, overflowIterator *overflow.Records, err error) {
	if bucketNo < 0 || bucketNo >= int64(len(T.slots)) {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	s := &T.slots[bucketNo]
	slot = model.Slot{State: s.State, Key: s.Key}
	if s.State == model.SlotOccupied {
		slot.Head = s.Head.Clone()
	}
	overflowIterator = overflow.NewRecords(s.Chain)

	return
}

// Insert - Adds a course to the table. An empty slot gets the course as head, otherwise the course is appended to
// the end of the slot's overflow chain. No duplicate check is done, inserting the same course number twice gives
// two entries.
//   - course is the course to insert, it must have a non-empty Number
//
// It returns:
//   - err is a standard error, if something went wrong
func (T *Table) Insert(course model.Course) (err error) {
	if course.Number == "" {
		err = fmt.Errorf("course number can not be empty")
		return
	}

	bucketNo, err := T.GetBucketNo(course.Number)
	if err != nil {
		return
	}

	s := &T.slots[bucketNo]
	if s.State == model.SlotEmpty {
		s.State = model.SlotOccupied
		s.Key = bucketNo
		s.Head = course.Clone()
	} else {
		s.Chain = append(s.Chain, course.Clone())
	}
	T.records++

	return
}

// Remove - Removes the first course with matching number from the table. If the slot head matches, the first
// course in the overflow chain is promoted to head, or the slot is emptied if there is no chain. Otherwise the first
// matching course in the chain is unlinked. Removing a number that isn't in the table is a no-op.
//   - number is the course number to remove
//
// It returns:
//   - removed is true if a course was removed
//   - err is a standard error, if something went wrong
func (T *Table) Remove(number string) (removed bool, err error) {
	bucketNo, err := T.GetBucketNo(number)
	if err != nil {
		return
	}

	s := &T.slots[bucketNo]
	if s.State == model.SlotEmpty {
		return
	}

	if s.Head.Number == number {
		if len(s.Chain) > 0 {
			s.Head = s.Chain[0]
			s.Chain = unlink(s.Chain, 0)
		} else {
			*s = model.Slot{}
		}
		T.records--
		removed = true
		return
	}

	for i := range s.Chain {
		if s.Chain[i].Number == number {
			s.Chain = unlink(s.Chain, i)
			T.records--
			removed = true
			return
		}
	}

	return
}

// Search - Gets the first course that corresponds to the given number.
//   - number is the course number to look for
//
// It returns:
//   - course is a copy of the matching course if found
//   - found is false if there is no course with that number
//   - err is a standard error, if something went wrong
func (T *Table) Search(number string) (course model.Course, found bool, err error) {
	bucketNo, err := T.GetBucketNo(number)
	if err != nil {
		return
	}

	s := &T.slots[bucketNo]
	if s.State == model.SlotEmpty {
		return
	}

	if s.Head.Number == number {
		course = s.Head.Clone()
		found = true
		return
	}

	for _, c := range s.Chain {
		if c.Number == number {
			course = c.Clone()
			found = true
			return
		}
	}

	return
}

// Export - Returns copies of all courses in the table. Slots are visited in bucket order and for each occupied slot
// the head is followed by its overflow chain, so the result is neither in insertion nor in alphabetical order.
func (T *Table) Export() (courses []model.Course) {
	courses = make([]model.Course, 0, T.records)
	for i := range T.slots {
		s := &T.slots[i]
		if s.State == model.SlotEmpty {
			continue
		}

		courses = append(courses, s.Head.Clone())
		for _, c := range s.Chain {
			courses = append(courses, c.Clone())
		}
	}

	return
}

// unlink - Removes the course at index i from chain, clearing the vacated tail position so nothing keeps
// a reference to the removed course.
func unlink(chain []model.Course, i int) []model.Course {
	copy(chain[i:], chain[i+1:])
	chain[len(chain)-1] = model.Course{}
	chain = chain[:len(chain)-1]
	if len(chain) == 0 {
		return nil
	}

	return chain
}
