// 25 May 2025

/*
Alnfilt removes sequences from a multiple sequence alignment if they
have too few real residues. Gaps, X, ? and anything else outside the
alphabet count against a sequence. A sequence is kept if

	number of residues in the alphabet > length * threshold

so with the default threshold of 0.3, a sequence of length 10 needs at
least 4 residues. Sequences with no residues at all are always dropped.

Kept sequences are written in the order they were read, one line with
">" and the sequence name, then the whole sequence on one line. Nothing
else from the comment line is kept.

Usage:

	alnfilt [flags] infile

An infile of "-" means standard input. Gzipped input is recognised and
decompressed.

The flags are:

	-t, -threshold fraction
		Minimum fraction of residues, default 0.3. Must be from 0 to 1.
	-alphabet name
		amino-acid (ARNDCEQGHILKMFPSTWYV, the default) or nucleotide (ACGT).
		Upper case only.
	-o outfile
		Write to a file instead of standard output
	-r reportfile
		Write a tab separated line for every sequence, kept or dropped,
		with its length and counts. "-" sends it to standard error.
	-a
		Check the input really is an alignment and stop if a sequence
		has a different length to the first one
	-v
		Print how many sequences were kept and dropped

Exit status is 0 on success, even if nothing was kept, 1 if the input
could not be read or is not fasta, 2 for a usage error.
*/
package main
