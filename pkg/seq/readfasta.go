// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i < 16 { // bufio will not go smaller than this
		panic("setFastaRdSize given buffer length less than 16")
	}
	rdsize = i
}

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// appendNoWhite appends src to dst, leaving out white space.
func appendNoWhite(dst, src []byte) []byte {
	for _, c := range src {
		if !asciiSpace[c] {
			dst = append(dst, c)
		}
	}
	return dst
}

func isBlank(line []byte) bool {
	for _, c := range line {
		if !asciiSpace[c] {
			return false
		}
	}
	return true
}

// Reader hands out sequences from a fasta stream, one at a time.
// It holds at most one sequence in memory.
// There are two states. We are either waiting for the first header or
// collecting sequence lines after a header. Any line starting with
// ">" starts a new sequence and finishes the previous one.
type Reader struct {
	rdr   *bufio.Reader
	state stateFn
	line  []byte // current line, without the line ending
	nLine int
	cmmt  string // comment of the sequence being built
	seq   []byte // partial sequence
	rec   Seq    // completed sequence, valid if ready
	ready bool
	eof   bool
	err   error
}

type stateFn func(*Reader) stateFn

// NewReader starts reading fasta from rdr. It does not close rdr.
func NewReader(rdr io.Reader) *Reader {
	return &Reader{rdr: bufio.NewReaderSize(rdr, rdsize), state: gheader}
}

// getLine reads the next line into r.line. It returns false at the end
// of input or if there was an error, which is left in r.err.
func (r *Reader) getLine() bool {
	if r.eof {
		return false
	}
	line, err := r.rdr.ReadBytes('\n')
	if err != nil {
		if err != io.EOF {
			r.err = fmt.Errorf("%w: after line %d: %w", ErrRead, r.nLine, err)
			return false
		}
		r.eof = true
		if len(line) == 0 {
			return false
		}
	}
	r.nLine++
	r.line = bytes.TrimRight(line, "\r\n")
	return true
}

// startSeq takes the comment from the header line in r.line.
func (r *Reader) startSeq() {
	r.cmmt = string(bytes.TrimRight(r.line[1:], " \t"))
	r.seq = nil
}

// emit finishes the sequence being built.
func (r *Reader) emit() {
	r.rec = Seq{cmmt: r.cmmt, seq: r.seq}
	r.ready = true
	r.cmmt = ""
	r.seq = nil
}

// gheader waits for the first header. Blank lines are fine, but
// anything else before the first ">" is an error.
func gheader(r *Reader) stateFn {
	if !r.getLine() {
		return nil
	}
	switch {
	case len(r.line) > 0 && r.line[0] == cmmtChar:
		r.startSeq()
		return gseq
	case isBlank(r.line):
		return gheader
	}
	r.err = newReadError(r.nLine, r.line, "sequence data before first header")
	return nil
}

// gseq collects sequence lines until the next header or the end.
func gseq(r *Reader) stateFn {
	if !r.getLine() {
		if r.err == nil {
			r.emit()
		}
		return nil
	}
	if len(r.line) > 0 && r.line[0] == cmmtChar {
		r.emit()
		r.startSeq()
		return gseq
	}
	r.seq = appendNoWhite(r.seq, r.line)
	return gseq
}

// Next returns the next sequence. At the end of input, it returns
// io.EOF. Any other error is final and will be returned on every
// following call.
func (r *Reader) Next() (Seq, error) {
	r.ready = false
	for !r.ready {
		if r.state == nil {
			if r.err != nil {
				return Seq{}, r.err
			}
			return Seq{}, io.EOF
		}
		r.state = r.state(r)
	}
	return r.rec, nil
}

// NLine is the number of lines read so far.
func (r *Reader) NLine() int { return r.nLine }

// ReadAll reads all the sequences from rdr. It is a convenience for
// small files and tests. Filters should use Next.
func ReadAll(rdr io.Reader) ([]Seq, error) {
	var seqs []Seq
	r := NewReader(rdr)
	for {
		s, err := r.Next()
		if err == io.EOF {
			return seqs, nil
		}
		if err != nil {
			return seqs, err
		}
		seqs = append(seqs, s)
	}
}
