// 31 July 2020

// Package randseq writes random protein alignments. Each sequence gets
// its own fraction of gaps, so some will be nearly complete and some
// nearly empty. This is what we want for testing a filter.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	. "github.com/andrew-torda/alnfilt/pkg/seq/common"
)

const letters = "ACDEFGHIKLMNPQRSTVWY"

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Wrap  int       // residues per line, 0 for everything on one line
	NoGap bool      // Do not add gaps
	Junk  bool      // Some of the gaps become X or ?
	MkErr bool      // Add an error, by making the last sequence shorter
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, args *RandSeqArgs, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	gapFrac := 0.
	if !args.NoGap {
		gapFrac = rnd.Float64()
	}
	for i := range ret {
		if rnd.Float64() >= gapFrac {
			ret[i] = letters[rnd.Intn(len(letters))]
			continue
		}
		ret[i] = GapChar
		if args.Junk {
			switch rnd.Intn(4) {
			case 0:
				ret[i] = UnknownChar
			case 1:
				ret[i] = QuestionChar
			}
		}
	}
	return ret
}

// writeseq takes a byte slice which is our sequence. It adds a comment
// and writes it. n is the number of the sequence, so the output has
// comment lines ">s01 something", ">s02 something"...
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // drain the channel
		}
		if _, err := fmt.Fprintf(args.Wrtr, ">s%0*d %s\n", width, i, args.Cmmt); err != nil {
			*errp = err
			continue
		}
		for args.Wrap > 0 && len(s) > args.Wrap {
			args.Wrtr.Write(s[:args.Wrap])
			args.Wrtr.Write([]byte{'\n'})
			s = s[args.Wrap:]
		}
		args.Wrtr.Write(s)
		if _, err := args.Wrtr.Write([]byte{'\n'}); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	if args.Nseq < 0 || args.Len < 0 {
		return fmt.Errorf("randseq: %d sequences of length %d", args.Nseq, args.Len)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		n := args.Len
		if args.MkErr && i == args.Nseq-1 && n > 0 {
			n--
		}
		sChan <- getseq(n, args, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
