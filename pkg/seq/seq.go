// 20 Dec 2017

// Package seq provides sequences, which usually begin their lives in
// fasta format. It can read them, one at a time, and write them.
package seq

import (
	"fmt"
	"strings"
)

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// Seq is one record. It is not changed after the reader hands it out.
type Seq struct {
	cmmt string
	seq  []byte
}

// New makes a sequence from a comment (without the leading ">") and
// the residues.
func New(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

// Len is the number of symbols, gaps included.
func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if there is no sequence, even if there is a comment.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// ID returns the identifier for a sequence.
// Of course it does not really know that. It just returns the first
// word in the comment which is likely to be the identifier. Given
//     > sp|P69905|HBA_HUMAN Hemoglobin
// it returns "sp|P69905|HBA_HUMAN". An empty comment gives an empty ID.
func (s Seq) ID() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// String returns a sequence, with its ID at the start as
// a single string, the way Writer would put it out.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.ID(), s.seq)
}
