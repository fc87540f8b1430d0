package overflow

import (
	"github.com/gostonefire/coursecatalog/errs"
	"github.com/gostonefire/coursecatalog/internal/model"
)

// Records - Is used to iterate over the overflow chain of a slot one by one.
type Records struct {
	chain []model.Course
	pos   int
}

// NewRecords - Returns a pointer to a new Records struct
func NewRecords(chain []model.Course) *Records {

	return &Records{
		chain: chain,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.pos < len(O.chain)
}

// Next - Returns record.
// It returns:
//   - record is the next overflow record, a copy of what is stored in the chain.
//   - err is nil or, if there are no more records when calling this function, an error of type errs.NoRecordFound.
func (O *Records) Next() (record model.Course, err error) {
	if O.pos >= len(O.chain) {
		err = errs.NoRecordFound{}
		return
	}

	record = O.chain[O.pos].Clone()
	O.pos++

	return
}
