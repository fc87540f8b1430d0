package model

import "github.com/gostonefire/coursecatalog/hashfunc"

// SlotEmpty - State indicating a slot that holds no course
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a head course and possibly an overflow chain
const SlotOccupied uint8 = 1

// Course - Represents one course record
//   - Number is the unique identifier of the course, e.g. CSCI100
//   - Title is the human readable course title
//   - Prerequisites are course numbers that must be taken before this course, in file order
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// Clone - Returns a copy of the course that shares no memory with the original
func (C Course) Clone() Course {
	c := Course{Number: C.Number, Title: C.Title}
	if C.Prerequisites != nil {
		c.Prerequisites = make([]string, len(C.Prerequisites))
		copy(c.Prerequisites, C.Prerequisites)
	}
	return c
}

// Slot - Represents one addressable position in the hash table.
// A slot is either empty or holds a head course followed by zero or more overflow courses in insertion order.
// Key is the bucket index every course in the slot hashes to.
type Slot struct {
	State uint8
	Key   int64
	Head  Course
	Chain []Course
}

// TableParameters - Represents parameters specific for a hash table instance
type TableParameters struct {
	NumberOfBucketsNeeded    int64
	NumberOfBucketsAvailable int64
	InternalAlgorithm        bool
}

// TableConf - Is a struct to be passed in the call to NewTable and contains configuration that affects
// table creation.
//   - NumberOfBucketsNeeded is the number of buckets to create
//   - HashAlgorithm is the hash function to use, nil gives the internal polynomial hash
type TableConf struct {
	NumberOfBucketsNeeded int64
	HashAlgorithm         hashfunc.HashAlgorithm
}
