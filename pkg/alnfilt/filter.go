package alnfilt

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/andrew-torda/alnfilt/pkg/composition"
	"github.com/andrew-torda/alnfilt/pkg/seq"
)

// Filter decides, one sequence at a time, what is kept.
// Report and Tally are optional.
type Filter struct {
	Alphabet  *composition.Alphabet
	Threshold float64
	CheckLen  bool      // complain if lengths differ from the first sequence
	Report    io.Writer // one line per sequence, kept or not
	Tally     *composition.Tally
}

const reportHead = "# id\tlength\tallowed\tgaps\tundetermined\tfraction\tstatus\n"

// Run reads every sequence from rdr and writes the ones that pass to w.
// It stops at the first error. It does not flush w.
func (f *Filter) Run(rdr *seq.Reader, w *seq.Writer) error {
	if f.Report != nil {
		if _, err := io.WriteString(f.Report, reportHead); err != nil {
			return fmt.Errorf("%w: report: %w", ErrOutput, err)
		}
	}
	firstLen := -1
	for {
		s, err := rdr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if errors.Is(err, seq.ErrRead) {
				return fmt.Errorf("%w: %w", ErrInputUnreadable, err)
			}
			return err
		}
		if f.CheckLen {
			if firstLen < 0 {
				firstLen = s.Len()
			} else if s.Len() != firstLen {
				const msg = "%w: line %d: sequence %q has length %d, but the first has %d"
				return fmt.Errorf(msg, seq.ErrMalformed, rdr.NLine(), s.ID(), s.Len(), firstLen)
			}
		}
		c := composition.Compose(s.GetSeq(), f.Alphabet)
		keep := c.Passes(f.Threshold)
		if f.Tally != nil {
			f.Tally.Add(c, keep)
		}
		if f.Report != nil {
			if err := writeReport(f.Report, s.ID(), c, keep); err != nil {
				return err
			}
		}
		if keep {
			if err := w.Write(s); err != nil {
				return fmt.Errorf("%w: %w", ErrOutput, err)
			}
		}
	}
}

func writeReport(w io.Writer, id string, c composition.Composition, keep bool) error {
	status := "dropped"
	if keep {
		status = "kept"
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.4f\t%s\n",
		id, c.Length, c.Allowed, c.Gaps, c.Undetermined, c.Fraction(), status)
	if err != nil {
		return fmt.Errorf("%w: report: %w", ErrOutput, err)
	}
	return nil
}

// isBrokenPipe reports whether an error is a broken pipe / closed pipe.
// This is what we see when the reader of our output quits early. On
// stdout the error only arrives if SIGPIPE is ignored, as cmd/alnfilt
// does. Otherwise the runtime kills the process first.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
