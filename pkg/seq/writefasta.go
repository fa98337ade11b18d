// 29 Apr 2020

package seq

import (
	"bufio"
	"io"
)

// Writer puts out sequences in fasta format, a header line with
// ">" and the ID then the whole sequence on one line.
// Once a write fails, the error sticks and nothing more is written.
type Writer struct {
	w   *bufio.Writer
	n   int
	err error
}

// NewWriter wraps w. Call Flush before w is closed.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one sequence.
func (w *Writer) Write(s Seq) error {
	if w.err != nil {
		return w.err
	}
	w.w.WriteByte(cmmtChar)
	w.w.WriteString(s.ID())
	w.w.WriteByte('\n')
	w.w.Write(s.GetSeq())
	if w.err = w.w.WriteByte('\n'); w.err == nil {
		w.n++
	}
	return w.err
}

// Flush pushes out anything still buffered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// NWritten is the number of sequences written.
func (w *Writer) NWritten() int { return w.n }

// WriteAll writes a slice of sequences and flushes.
func WriteAll(wrtr io.Writer, seqs []Seq) error {
	w := NewWriter(wrtr)
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}
