// Package validate checks a course file before anything is loaded from it.
package validate

import (
	"github.com/gostonefire/coursecatalog/errs"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/parser"
	"github.com/gostonefire/coursecatalog/internal/source"
	"io"
	"log/slog"
	"sort"
)

// Validate - Makes a read-only pass over the rows in r, counting rows and collecting every course number and every
// prerequisite number.
//
// It returns:
//   - rows is the number of rows, use it to size the course table
//   - err is of type errs.MalformedRow if a row lacks a number or title, errs.DanglingPrerequisite if a
//     prerequisite is not a course number anywhere in the file, or a standard error if reading failed
func Validate(r io.Reader) (rows int, err error) {
	courses := make(map[string]int)
	prerequisites := make(map[string]struct{})

	err = source.ReadRows(r, func(lineNo int, row string) error {
		fields := parser.Tokenize(row, conf.FieldDelimiter)
		if len(fields) < conf.MinFields {
			return errs.MalformedRow{Line: lineNo, Fields: len(fields)}
		}

		courses[fields[conf.NumberField]]++
		for _, p := range fields[conf.MinFields:] {
			prerequisites[p] = struct{}{}
		}
		rows++

		return nil
	})
	if err != nil {
		rows = 0
		return
	}

	if dangling := danglingPrerequisites(courses, prerequisites); len(dangling) > 0 {
		rows = 0
		err = errs.DanglingPrerequisite{Number: dangling[0]}
		return
	}

	for number, count := range courses {
		if count > 1 {
			slog.Warn("course number appears more than once", "number", number, "count", count)
		}
	}

	return
}

// ValidateFile - Opens the file at path and validates it, see Validate.
// An error of type errs.FileUnreadable is returned if the file can not be opened.
func ValidateFile(path string) (rows int, err error) {
	file, err := source.OpenFile(path)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()

	rows, err = Validate(file)
	if err == nil {
		slog.Debug("validated course file", "path", path, "rows", rows)
	}

	return
}

// danglingPrerequisites - Returns the prerequisite numbers that are not course numbers, sorted
func danglingPrerequisites(courses map[string]int, prerequisites map[string]struct{}) (dangling []string) {
	for p := range prerequisites {
		if _, ok := courses[p]; !ok {
			dangling = append(dangling, p)
		}
	}
	sort.Strings(dangling)

	return
}
