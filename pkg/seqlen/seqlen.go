// 15 May 2025
// We are given a multiple sequence alignment.
// For each sequence, write a line for a spreadsheet with the
// identifier, the length, the length without gaps and how many
// residues are in the alphabet. Nothing is filtered.

package seqlen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/alnfilt/pkg/composition"
	"github.com/andrew-torda/alnfilt/pkg/seq"
	"github.com/andrew-torda/alnfilt/pkg/zwrap"
)

// CmdArgs comes from the command line
type CmdArgs struct {
	InSeqFname  string // "" or "-" for stdin
	OutCntFname string // "" or "-" for stdout
	Alphabet    string
	IgnrSeqLen  bool // do not complain if lengths differ
}

// Write reads sequences from rdr and writes one line per sequence to w.
func Write(rdr io.Reader, w io.Writer, alph *composition.Alphabet, ignrSeqLen bool) error {
	r := seq.NewReader(rdr)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "id\tlength\tungapped\tallowed")
	firstLen := -1
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			bw.Flush()
			return err
		}
		if firstLen < 0 {
			firstLen = s.Len()
		}
		if !ignrSeqLen && s.Len() != firstLen {
			bw.Flush()
			const msg = "%w: sequence %q length %d, first sequence length %d"
			return fmt.Errorf(msg, seq.ErrMalformed, s.ID(), s.Len(), firstLen)
		}
		c := composition.Compose(s.GetSeq(), alph)
		fmt.Fprintf(bw, "%s\t%d\t%d\t%d\n", s.ID(), c.Length, c.Length-c.Gaps, c.Allowed)
	}
	return bw.Flush()
}

// Mymain opens the files and calls Write.
func Mymain(args CmdArgs) (err error) {
	alph, err := composition.ByName(args.Alphabet)
	if err != nil {
		return err
	}
	fname := args.InSeqFname
	if fname == "" {
		fname = zwrap.StdStream
	}
	in, err := zwrap.Open(fname) // mapped, and decompressed if need be
	if err != nil {
		return err
	}
	defer in.Close()
	var out io.Writer = os.Stdout
	if args.OutCntFname != "" && args.OutCntFname != "-" {
		fp, err := os.Create(args.OutCntFname)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, fp.Close()) }()
		out = fp
	}
	return Write(in, out, alph, args.IgnrSeqLen)
}
