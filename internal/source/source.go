// Package source supplies the rows of a course file in file order.
package source

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/coursecatalog/errs"
	"io"
	"os"
)

// maxRowLength - Longest row the scanner accepts
const maxRowLength = 1024 * 1024

// RowFunc - Called once per row with its 1-based line number. Returning an error stops the iteration.
type RowFunc func(lineNo int, row string) error

// OpenFile - Opens a course file for reading.
// It returns an error of type errs.FileUnreadable if the file can not be opened or is a directory.
func OpenFile(path string) (file *os.File, err error) {
	file, err = os.Open(path)
	if err != nil {
		err = errs.FileUnreadable{Path: path, Err: err}
		return
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		file = nil
		err = errs.FileUnreadable{Path: path, Err: err}
		return
	}
	if stat.IsDir() {
		_ = file.Close()
		file = nil
		err = errs.FileUnreadable{Path: path, Err: fmt.Errorf("is a directory")}
		return
	}

	return
}

// ReadRows - Calls fn for every row in r. A final row delimiter does not give an extra empty row.
func ReadRows(r io.Reader, fn RowFunc) (err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err = fn(lineNo, scanner.Text()); err != nil {
			return
		}
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading rows: %w", err)
	}

	return
}

// ReadFileRows - Opens the file at path and calls fn for every row in it.
func ReadFileRows(path string, fn RowFunc) (err error) {
	file, err := OpenFile(path)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()

	err = ReadRows(file, fn)

	return
}
