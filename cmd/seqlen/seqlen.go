// 25 may 2025
// seqlen visits a fasta file and writes the length of each sequence
// with and without gaps.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/alnfilt/pkg/seq/common"
	"github.com/andrew-torda/alnfilt/pkg/seqlen"
)

func main() {
	uStr := "usage: seqlen [options] [input [output]]"
	var cmdArgs seqlen.CmdArgs
	flag.BoolVar(&cmdArgs.IgnrSeqLen, "i", false, "ignore sequence lengths not being consistent")
	flag.StringVar(&cmdArgs.Alphabet, "alphabet", "amino-acid", "amino-acid or nucleotide")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, uStr)
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Expected at most two arguments. Got", flag.NArg())
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Arg(0)
	cmdArgs.OutCntFname = flag.Arg(1)
	if err := seqlen.Mymain(cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
