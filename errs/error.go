package errs

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// MalformedRow - Custom error to inform that a row in a course file has less than the minimum number of fields.
//   - Line is the 1-based line number of the offending row
//   - Fields is the number of non-empty fields found on that row
type MalformedRow struct {
	Line   int
	Fields int
}

// Error - Used to notify that a row is malformed
func (M MalformedRow) Error() string {
	return fmt.Sprintf("malformed row on line %d: there must be at minimum a course number and title, but only %d values were found", M.Line, M.Fields)
}

// DanglingPrerequisite - Custom error to inform that a prerequisite refers to a course number that is not in the file
type DanglingPrerequisite struct {
	Number string
}

// Error - Used to notify that a prerequisite has no matching course
func (D DanglingPrerequisite) Error() string {
	return fmt.Sprintf("no entry found for listed prerequisite: %s", D.Number)
}

// FileUnreadable - Custom error to inform that a course file could not be opened or read
type FileUnreadable struct {
	Path string
	Err  error
}

// Error - Used to notify that a file could not be read
func (F FileUnreadable) Error() string {
	if F.Err == nil {
		return fmt.Sprintf("failed to open file: %s", F.Path)
	}
	return fmt.Sprintf("failed to open file: %s: %s", F.Path, F.Err)
}

// Unwrap - Returns the underlying error
func (F FileUnreadable) Unwrap() error {
	return F.Err
}
