// 25 May 2025
// alnfilt reads a multiple sequence alignment and throws away
// sequences which are mostly gaps or undetermined symbols. A sequence
// is kept if the number of unambiguous residues is more than some
// fraction of its length.

package alnfilt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/andrew-torda/alnfilt/pkg/composition"
	"github.com/andrew-torda/alnfilt/pkg/seq"
	. "github.com/andrew-torda/alnfilt/pkg/seq/common"
	"github.com/andrew-torda/alnfilt/pkg/zwrap"
)

const (
	DefaultThreshold = 0.3
	DefaultAlphabet  = "amino-acid"
	stdStream        = zwrap.StdStream // as a file name, stdin or stderr
)

var (
	ErrMissingArgument = errors.New("no input file given")
	ErrBadArgument     = errors.New("bad argument")
	ErrInputNotFound   = errors.New("input not found")
	ErrInputUnreadable = errors.New("input unreadable")
	ErrOutput          = errors.New("writing output")
)

// CmdArgs is everything from the command line.
type CmdArgs struct {
	InSeqFname  string  // "-" for stdin
	OutSeqFname string  // stdout if empty
	ReportFname string  // no report if empty, "-" for stderr
	Threshold   float64 // keep if allowed > length * Threshold
	Alphabet    string  // amino-acid or nucleotide
	CheckLen    bool    // all sequences must be the same length
	Verbose     bool    // print a tally to stderr at the end
}

// check looks at arguments before anything is opened.
func (args *CmdArgs) check() error {
	if args.InSeqFname == "" {
		return ErrMissingArgument
	}
	t := args.Threshold
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("%w: threshold %v is not between 0 and 1", ErrBadArgument, t)
	}
	return nil
}

// ExitCode turns an error from Mymain into an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrMissingArgument), errors.Is(err, ErrBadArgument):
		return ExitUsageError
	}
	return ExitFailure
}

// openInput returns something to read sequences from. Files are mapped
// if possible. Gzipped input is noticed and decompressed.
func openInput(fname string) (io.ReadCloser, error) {
	fp, err := zwrap.Open(fname)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	return fp, nil
}

// create opens an output file. Errors are ErrOutput.
func create(fname string) (io.WriteCloser, error) {
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return fp, nil
}

// Mymain is the top level main, after parsing the command line.
// Input and output are closed and flushed, whatever happens.
func Mymain(args *CmdArgs) (err error) {
	if err := args.check(); err != nil {
		return err
	}
	aName := args.Alphabet
	if aName == "" {
		aName = DefaultAlphabet
	}
	alph, err := composition.ByName(aName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadArgument, err)
	}

	fpIn, err := openInput(args.InSeqFname)
	if err != nil {
		return err
	}
	defer fpIn.Close()

	var fpOut io.WriteCloser = NopWriteCloser{Writer: os.Stdout}
	if args.OutSeqFname != "" {
		if fpOut, err = create(args.OutSeqFname); err != nil {
			return err
		}
	}
	defer func() {
		if e := fpOut.Close(); e != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, e)
		}
	}()

	f := Filter{
		Alphabet:  alph,
		Threshold: args.Threshold,
		CheckLen:  args.CheckLen,
		Tally:     composition.NewTally(),
	}
	if args.ReportFname != "" {
		var fpRpt io.WriteCloser = NopWriteCloser{Writer: os.Stderr}
		if args.ReportFname != stdStream {
			if fpRpt, err = create(args.ReportFname); err != nil {
				return err
			}
		}
		rptBuf := bufio.NewWriter(fpRpt)
		defer func() {
			e := errors.Join(rptBuf.Flush(), fpRpt.Close())
			if e != nil && err == nil {
				err = fmt.Errorf("%w: report: %w", ErrOutput, e)
			}
		}()
		f.Report = rptBuf
	}

	w := seq.NewWriter(fpOut)
	err = f.Run(seq.NewReader(fpIn), w)
	if e := w.Flush(); e != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrOutput, e)
	}
	if args.Verbose {
		fmt.Fprintf(os.Stderr, "%s threshold %g: kept %d of %d sequences\n",
			alph.Name(), args.Threshold, f.Tally.Kept(), f.Tally.Kept()+f.Tally.Dropped())
		f.Tally.Write(os.Stderr)
	}
	if isBrokenPipe(err) { // Somebody like head(1) stopped reading.
		return nil
	}
	return err
}
