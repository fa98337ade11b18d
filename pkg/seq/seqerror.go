// An error implementation that saves the line number and the
// line we were trying to read.

package seq

import (
	"errors"
	"strconv"
)

const maxMsgLen = 70

var (
	// ErrMalformed is wrapped by every complaint about the layout of
	// the input.
	ErrMalformed = errors.New("malformed fasta")
	// ErrRead is wrapped when the underlying reader fails.
	ErrRead = errors.New("reading sequences")
)

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

func newReadError(n int, line []byte, desc string) *readError {
	return &readError{n: n, inline: trimStr(string(line), maxMsgLen), desc: desc}
}

// Error puts the line number, the description and the start of the
// offending line into one string.
func (e *readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "line " + strconv.Itoa(e.n) + ": "
	}
	errmsg += ErrMalformed.Error() + ": " + e.desc
	if e.inline != "" {
		errmsg += "\nLine starting with\n" + e.inline
	}
	return errmsg
}

func (e *readError) Unwrap() error { return ErrMalformed }

// Line returns the number of the line that caused the error.
func (e *readError) Line() int { return e.n }
