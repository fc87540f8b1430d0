// Package coursecatalog keeps a course catalog in a fixed size chained hash table, loaded from a comma delimited
// course file after the file has been validated for malformed rows and dangling prerequisites.
package coursecatalog

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/hashfunc"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/overflow"
	"github.com/gostonefire/coursecatalog/internal/storage/chaining"
	"github.com/gostonefire/coursecatalog/internal/validate"
	"log/slog"
)

// Course - One course record, see model.Course
type Course = model.Course

// DefaultTableSize - Number of buckets used when no better size is known
const DefaultTableSize = conf.DefaultTableSize

// Storage - Interface for any course table implementation
type Storage interface {
	Insert(course model.Course) (err error)
	Remove(number string) (removed bool, err error)
	Search(number string) (course model.Course, found bool, err error)
	Export() (courses []model.Course)
	GetBucket(bucketNo int64) (slot model.Slot, overflowIterator *overflow.Records, err error)
	GetTableParameters() (params model.TableParameters)
	Len() int64
}

// CatalogInfo - Information structure containing some information about the catalog created
//   - RequestedBuckets is the number of buckets asked for when creating the catalog
//   - NumberOfBuckets is the number of buckets actually available, a custom hash algorithm may round the request up
//   - InternalAlgorithm is true if the internal polynomial hash is used
type CatalogInfo struct {
	RequestedBuckets  int64
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// CatalogStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of courses stored
//   - HeadRecords is the number of courses stored as slot heads
//   - OverflowRecords is the number of courses that have ended up in overflow chains
//   - UsedBuckets is the number of buckets holding at least one course
//   - LongestChain is the largest number of courses found in a single bucket
//   - BucketDistribution is the number of courses stored in each available bucket
type CatalogStat struct {
	Records            int64
	HeadRecords        int64
	OverflowRecords    int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Catalog - The main implementation struct
type Catalog struct {
	storage Storage
}

// NewCatalog - Returns a new empty catalog with a fixed number of buckets.
//   - capacity is the number of buckets, preferably the row count returned by Validate
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - catalog is a pointer to a Catalog struct
//   - info is a CatalogInfo struct containing some data regarding the catalog created.
//   - err is a normal go Error which should be nil if everything went ok
func NewCatalog(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (catalog *Catalog, info CatalogInfo, err error) {
	table, err := chaining.NewTable(model.TableConf{
		NumberOfBucketsNeeded: capacity,
		HashAlgorithm:         hashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating course table: %w", err)
		return
	}

	catalog = &Catalog{storage: table}
	info = catalog.Info()

	return
}

// Validate - Validates the course file at path, see validate.ValidateFile.
// It returns the number of rows in the file, or an error of type errs.MalformedRow, errs.DanglingPrerequisite or
// errs.FileUnreadable.
func Validate(path string) (rows int, err error) {
	return validate.ValidateFile(path)
}

// Open - Validates the course file at path, creates a catalog and loads the file into it.
//   - path is the course file
//   - tableSize is the number of buckets, zero or less means the validated row count
//   - hashAlgorithm is an optional custom hash algorithm
//
// It returns:
//   - catalog is a pointer to a loaded Catalog struct, nil on failure
//   - info is a CatalogInfo struct
//   - err is a validation error or a standard error
func Open(path string, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (catalog *Catalog, info CatalogInfo, err error) {
	rows, err := Validate(path)
	if err != nil {
		return
	}

	catalog, info, err = NewCatalog(TableSizeFor(rows, tableSize), hashAlgorithm)
	if err != nil {
		return
	}

	if _, err = catalog.Load(path); err != nil {
		catalog = nil
		return
	}

	return
}

// TableSizeFor - Returns the number of buckets to use given a validated row count and an optionally requested size.
// A requested size above zero wins, then the row count, and as a last resort DefaultTableSize.
func TableSizeFor(rows int, requested int64) int64 {
	if requested > 0 {
		return requested
	}
	if rows > 0 {
		return int64(rows)
	}

	return DefaultTableSize
}

// Info - Returns a CatalogInfo struct describing the catalog
func (C *Catalog) Info() (info CatalogInfo) {
	tp := C.storage.GetTableParameters()
	info = CatalogInfo{
		RequestedBuckets:  tp.NumberOfBucketsNeeded,
		NumberOfBuckets:   tp.NumberOfBucketsAvailable,
		InternalAlgorithm: tp.InternalAlgorithm,
	}

	return
}

// Len - Returns the number of courses in the catalog
func (C *Catalog) Len() int64 {
	return C.storage.Len()
}

// logger - Returns the logger used by the catalog
func (C *Catalog) logger() *slog.Logger {
	return slog.Default().With("component", "catalog")
}
