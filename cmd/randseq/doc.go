// 31 July 2020

/*
Randseq writes a random protein alignment in fasta format. Every
sequence has the same length and its own, random, fraction of gaps,
so the output is good for trying out alnfilt.

Usage:

	randseq [flags] outfile nseq length

An outfile of "-" means standard output.

The flags are:

	-c comment
		Text after the name of each sequence
	-e
		Make the last sequence one residue short, so the alignment is broken
	-g
		No gaps at all
	-j
		Some of the gaps are written as X or ?
	-r seed
		Random number seed
	-w width
		Residues per line. 0 puts each sequence on one line.
*/
package main
