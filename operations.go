package coursecatalog

import (
	"bytes"
	"fmt"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/overflow"
	"github.com/gostonefire/coursecatalog/internal/parser"
	"github.com/gostonefire/coursecatalog/internal/sorter"
	"github.com/gostonefire/coursecatalog/internal/source"
	"github.com/gostonefire/coursecatalog/internal/validate"
	"io"
)

// Load - Validates the course file at path and inserts every course in it. Courses are appended to what is already
// in the catalog, so loading the same file twice gives every course twice. Nothing is inserted if validation fails.
//   - path is the course file
//
// It returns:
//   - loaded is the number of courses inserted
//   - err is of type errs.FileUnreadable, errs.MalformedRow, errs.DanglingPrerequisite or a standard error
func (C *Catalog) Load(path string) (loaded int, err error) {
	file, err := source.OpenFile(path)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()

	loaded, err = C.LoadFromReader(file)
	if err != nil {
		return
	}

	C.logger().Info("loaded courses", "path", path, "loaded", loaded, "total", C.Len())

	return
}

// LoadFromReader - Same as Load but reads the course rows from r.
func (C *Catalog) LoadFromReader(r io.Reader) (loaded int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("error while reading courses: %w", err)
		return
	}

	if _, err = validate.Validate(bytes.NewReader(data)); err != nil {
		return
	}

	err = source.ReadRows(bytes.NewReader(data), func(lineNo int, row string) error {
		if err := C.storage.Insert(parser.ParseCourse(row)); err != nil {
			return fmt.Errorf("error while inserting course from line %d: %w", lineNo, err)
		}
		loaded++
		return nil
	})

	return
}

// Insert - Adds a course to the catalog. A course with a number already in the catalog is added as a second entry,
// Find returns the one inserted first.
//   - course is the course to add, it must have a non-empty number
func (C *Catalog) Insert(course Course) (err error) {
	err = C.storage.Insert(course)
	if err != nil {
		err = fmt.Errorf("error while inserting course: %w", err)
	}

	return
}

// Remove - Removes the course with the given number. If the number has been inserted more than once only the first
// entry is removed. Removing a number that is not in the catalog is a no-op.
//   - number is the course number
//
// It returns:
//   - removed is true if a course was removed
func (C *Catalog) Remove(number string) (removed bool) {
	removed, err := C.storage.Remove(number)
	if err != nil {
		C.logger().Error("remove failed", "number", number, "error", err)
		return
	}
	if removed {
		C.logger().Debug("removed course", "number", number)
	}

	return
}

// Find - Returns the course with the given number.
//   - number is the course number
//
// It returns:
//   - course is the matching course
//   - found is false if there is no such course, course is then the zero value
func (C *Catalog) Find(number string) (course Course, found bool) {
	course, found, err := C.storage.Search(number)
	if err != nil {
		C.logger().Error("search failed", "number", number, "error", err)
		course, found = Course{}, false
	}

	return
}

// ListSorted - Returns all courses in ascending course number order.
func (C *Catalog) ListSorted() (courses []Course) {
	courses = C.storage.Export()
	sorter.Quicksort(courses)

	return
}

// Stat - Walks through the entire set of buckets and produces a CatalogStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of courses per bucket, false will set CatalogStat.BucketDistribution to nil.
func (C *Catalog) Stat(includeDistribution bool) (catalogStat *CatalogStat, err error) {
	var slot model.Slot
	var iter *overflow.Records
	var cs CatalogStat

	numberOfBuckets := C.storage.GetTableParameters().NumberOfBucketsAvailable
	if includeDistribution {
		cs.BucketDistribution = make([]int64, numberOfBuckets)
	}

	for i := int64(0); i < numberOfBuckets; i++ {
		slot, iter, err = C.storage.GetBucket(i)
		if err != nil {
			return
		}
		if slot.State == model.SlotEmpty {
			continue
		}

		inBucket := int64(1)
		cs.HeadRecords++
		for iter.HasNext() {
			if _, err = iter.Next(); err != nil {
				return
			}
			inBucket++
			cs.OverflowRecords++
		}

		cs.Records += inBucket
		cs.UsedBuckets++
		if inBucket > cs.LongestChain {
			cs.LongestChain = inBucket
		}
		if includeDistribution {
			cs.BucketDistribution[i] = inBucket
		}
	}

	catalogStat = &cs
	return
}
