package composition

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

// Rows and columns of a tally.
const (
	RowKept = iota
	RowDropped
	nRow
)

const (
	ColRecords = iota
	ColResidues
	ColAllowed
	ColGaps
	ColUndet
	nCol
)

var colNames = [nCol]string{"records", "residues", "allowed", "gaps", "undetermined"}
var rowNames = [nRow]string{"kept", "dropped"}

// Tally sums up compositions over a run, split into kept and
// dropped sequences. Counts are kept as integers since residue sums
// on a big alignment go past what a float32 holds exactly.
type Tally struct {
	counts [nRow][nCol]int64
}

func NewTally() *Tally { return &Tally{} }

// Add puts one sequence into the kept or dropped row.
func (t *Tally) Add(c Composition, kept bool) {
	row := &t.counts[RowDropped]
	if kept {
		row = &t.counts[RowKept]
	}
	row[ColRecords]++
	row[ColResidues] += int64(c.Length)
	row[ColAllowed] += int64(c.Allowed)
	row[ColGaps] += int64(c.Gaps)
	row[ColUndet] += int64(c.Undetermined)
}

// Get returns one entry, like Get(RowKept, ColRecords).
func (t *Tally) Get(row, col int) int64 { return t.counts[row][col] }

func (t *Tally) Kept() int64    { return t.Get(RowKept, ColRecords) }
func (t *Tally) Dropped() int64 { return t.Get(RowDropped, ColRecords) }

// Fractions returns the tally scaled for reading. The records column
// is the fraction of all records in that row. The other columns are
// fractions of the residues in that row. Empty rows are zero.
func (t *Tally) Fractions() *matrix.FMatrix2d {
	f := matrix.NewFMatrix2d(nRow, nCol)
	nRec := t.Kept() + t.Dropped()
	for i, row := range t.counts {
		if nRec > 0 {
			f.Mat[i][ColRecords] = float32(float64(row[ColRecords]) / float64(nRec))
		}
		if row[ColResidues] == 0 {
			continue
		}
		for j := ColResidues; j < nCol; j++ {
			f.Mat[i][j] = float32(float64(row[j]) / float64(row[ColResidues]))
		}
	}
	return f
}

// Write puts out a small table of counts, then the same table as
// fractions. It is meant for people, not programs.
func (t *Tally) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-10s", ""); err != nil {
		return err
	}
	for _, s := range colNames {
		fmt.Fprintf(w, " %12s", s)
	}
	fmt.Fprintln(w)
	for i, row := range t.counts {
		fmt.Fprintf(w, "%-10s", rowNames[i])
		for _, v := range row {
			fmt.Fprintf(w, " %12d", v)
		}
		fmt.Fprintln(w)
	}
	for i, row := range t.Fractions().Mat {
		fmt.Fprintf(w, "%-10s", rowNames[i]+" %")
		for _, v := range row {
			fmt.Fprintf(w, " %12.2f", 100*v)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
