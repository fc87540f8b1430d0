// Package menu dispatches menu selections against a course catalog.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gostonefire/coursecatalog"
	"github.com/gostonefire/coursecatalog/internal/display"
)

// Choice is a menu selection
type Choice int

// Menu selections
const (
	ChoiceLoad Choice = 1
	ChoiceList Choice = 2
	ChoiceFind Choice = 3
	ChoiceStat Choice = 4
	ChoiceExit Choice = 9
)

// Text is the menu shown by the line driven loop
const Text = "Menu:\n\t1. Load Courses\n\t2. Print Courses in Order\n\t3. Find and Print Course\n\t4. Show Table Statistics\n\t9. Exit\nSelection: "

// UnknownOption is printed for selections that are not on the menu
const UnknownOption = "Menu option unknown. Please select a valid option (1, 2, 3, 4, 9)."

// Lookup is what the menu needs from a catalog
type Lookup interface {
	Load(path string) (loaded int, err error)
	ListSorted() (courses []coursecatalog.Course)
	Find(number string) (course coursecatalog.Course, found bool)
	Stat(includeDistribution bool) (catalogStat *coursecatalog.CatalogStat, err error)
	Info() (info coursecatalog.CatalogInfo)
}

// Request is one menu selection with its arguments
//   - Choice is the selection
//   - Path is the course file used by ChoiceLoad
//   - Number is the course number used by ChoiceFind
type Request struct {
	Choice Choice
	Path   string
	Number string
}

// Dispatch executes one request against c and writes the result to w.
// It returns quit set to true for ChoiceExit. Load failures are returned as err after nothing has been loaded,
// the caller decides whether to report and continue.
func Dispatch(c Lookup, req Request, r *display.Renderer, w io.Writer) (quit bool, err error) {
	switch req.Choice {
	case ChoiceLoad:
		var loaded int
		loaded, err = c.Load(req.Path)
		if err != nil {
			err = fmt.Errorf("could not load %s: %w", req.Path, err)
			return
		}
		_, err = fmt.Fprintln(w, r.Notice(fmt.Sprintf("Loaded %d courses from %s", loaded, req.Path)))

	case ChoiceList:
		_, err = fmt.Fprintln(w, r.CourseList(c.ListSorted()))

	case ChoiceFind:
		number := strings.TrimSpace(req.Number)
		course, found := c.Find(number)
		if !found {
			_, err = fmt.Fprintln(w, r.NotFound(number))
			return
		}
		_, err = fmt.Fprintln(w, r.Course(course))

	case ChoiceStat:
		var stat *coursecatalog.CatalogStat
		stat, err = c.Stat(false)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, r.Stat(c.Info(), stat))

	case ChoiceExit:
		quit = true

	default:
		_, err = fmt.Fprintln(w, UnknownOption)
	}

	return
}

// ParseChoice converts a typed selection into a Choice. Anything that is not a number gives zero, which Dispatch
// reports as an unknown option.
func ParseChoice(s string) Choice {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return Choice(n)
}

// Run is the line driven menu loop. It reads selections from in until ChoiceExit or end of input, writing menus and
// results to out. Errors from a selection are reported on out and the loop continues.
func Run(c Lookup, path string, r *display.Renderer, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if _, err := fmt.Fprint(out, Text); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		req := Request{Choice: ParseChoice(scanner.Text()), Path: path}
		if req.Choice == ChoiceFind {
			if _, err := fmt.Fprint(out, "Course number: "); err != nil {
				return err
			}
			if !scanner.Scan() {
				return scanner.Err()
			}
			req.Number = scanner.Text()
		}

		quit, err := Dispatch(c, req, r, out)
		if err != nil {
			if _, werr := fmt.Fprintln(out, r.Error(err)); werr != nil {
				return werr
			}
		}
		if quit {
			return nil
		}
	}
}
