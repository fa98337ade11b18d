// 25 May 2025
// Filter a multiple sequence alignment, dropping sequences that are
// mostly gaps.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"

	"github.com/andrew-torda/alnfilt/pkg/alnfilt"
	"github.com/andrew-torda/alnfilt/pkg/composition"
	. "github.com/andrew-torda/alnfilt/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] infile")
	fmt.Fprintln(os.Stderr, `Kept sequences go to standard output. An infile of "-" means standard input.`)
	flag.PrintDefaults()
}

func main() {
	var cmdArgs alnfilt.CmdArgs
	const tUse = "keep sequences with more than this fraction of unambiguous residues"
	flag.Float64Var(&cmdArgs.Threshold, "t", alnfilt.DefaultThreshold, tUse)
	flag.Float64Var(&cmdArgs.Threshold, "threshold", alnfilt.DefaultThreshold, tUse)
	flag.StringVar(&cmdArgs.Alphabet, "alphabet", alnfilt.DefaultAlphabet,
		"residues to count, one of "+strings.Join(composition.Names(), ", "))
	flag.StringVar(&cmdArgs.OutSeqFname, "o", "", "write kept sequences to this file")
	flag.StringVar(&cmdArgs.ReportFname, "r", "", `write a line for every sequence to this file, "-" for stderr`)
	flag.BoolVar(&cmdArgs.CheckLen, "a", false, "stop if sequences are not all the same length")
	flag.BoolVar(&cmdArgs.Verbose, "v", false, "print a summary on stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Expected one argument. Got", flag.NArg())
		usage()
		os.Exit(ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Arg(0)
	// Without this, a closed stdout kills us before Mymain sees EPIPE.
	signal.Ignore(syscall.SIGPIPE)
	if err := alnfilt.Mymain(&cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, path.Base(os.Args[0])+":", err)
		if alnfilt.ExitCode(err) == ExitUsageError {
			usage()
		}
		os.Exit(alnfilt.ExitCode(err))
	}
	os.Exit(ExitSuccess)
}
