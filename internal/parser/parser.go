// Package parser turns rows of a course file into course records.
package parser

import (
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/model"
	"strings"
)

// Tokenize - Splits a row into its non-empty fields. Two consecutive delimiters give no field at all, and the last
// field is kept even without a trailing delimiter. A trailing carriage return is dropped so files with CRLF line
// endings read the same as files with LF.
//   - row is one row of a course file without its row delimiter
//   - delimiter is the field delimiter
func Tokenize(row string, delimiter byte) (fields []string) {
	row = strings.TrimSuffix(row, "\r")

	start := 0
	for start <= len(row) {
		end := strings.IndexByte(row[start:], delimiter)
		if end < 0 {
			end = len(row)
		} else {
			end += start
		}

		if end > start {
			fields = append(fields, row[start:end])
		}
		start = end + 1
	}

	return
}

// ParseCourse - Returns the course held by a row. Fields are positional, the first is the course number, the second
// the title and the rest are prerequisites. A row with too few fields gives a course with empty number and/or title,
// it is up to the validator to reject such rows before they are loaded.
//   - row is one row of a course file without its row delimiter
func ParseCourse(row string) (course model.Course) {
	for i, field := range Tokenize(row, conf.FieldDelimiter) {
		switch i {
		case conf.NumberField:
			course.Number = field
		case conf.TitleField:
			course.Title = field
		default:
			course.Prerequisites = append(course.Prerequisites, field)
		}
	}

	return
}
