package composition_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/andrew-torda/alnfilt/pkg/composition"
)

func TestCount(t *testing.T) {
	tests := []struct {
		s     string
		alph  *Alphabet
		count int
	}{
		{"ARNDCEQGHILKMFPSTWYV", AminoAcid, 20},
		{"arndceqghilkmfpstwyv", AminoAcid, 0},
		{"BJOUXZ-?*.", AminoAcid, 0},
		{"A-R-N", AminoAcid, 3},
		{"ACGTN-acgt", Nucleotide, 4},
		{"ACGU", Nucleotide, 3},
		{"", AminoAcid, 0},
		{"\x80A\xc1\xffR", AminoAcid, 2}, // every byte value is a valid index
	}
	for _, tt := range tests {
		if got := tt.alph.Count([]byte(tt.s)); got != tt.count {
			t.Errorf("%s count of %q got %d want %d", tt.alph.Name(), tt.s, got, tt.count)
		}
	}
}

func TestKeep(t *testing.T) {
	const thresh = 0.3
	tests := []struct {
		name string
		s    string
		keep bool
	}{
		{"all amino acids", "ARNDCEQGHILKMFPSTWY", true},
		{"5 of 20", "AAAAA" + strings.Repeat("-", 15), false},
		{"empty", "", false},
		{"exactly on threshold", "AAA-------", false},
		{"one above", "AAAA------", true},
		{"undetermined do not count", "AAAXXXX???", false},
		{"lower case does not count", "aaaaaaaaaA", false},
	}
	for _, tt := range tests {
		if got := Keep([]byte(tt.s), AminoAcid, thresh); got != tt.keep {
			t.Errorf("%s: got %v want %v", tt.name, got, tt.keep)
		}
		c := Compose([]byte(tt.s), AminoAcid)
		if c.Passes(thresh) != tt.keep {
			t.Errorf("%s: Compose and Keep disagree", tt.name)
		}
	}
}

// TestThresholdEnds checks the two ends of the range. Zero keeps
// anything with one allowed symbol. One keeps nothing.
func TestThresholdEnds(t *testing.T) {
	if !Keep([]byte("---A"), AminoAcid, 0) {
		t.Error("threshold 0 should keep a sequence with one residue")
	}
	if Keep([]byte("----"), AminoAcid, 0) {
		t.Error("threshold 0 should not keep a sequence of gaps")
	}
	if Keep([]byte("AAAA"), AminoAcid, 1) {
		t.Error("threshold 1 can never be passed")
	}
}

func TestCompose(t *testing.T) {
	c := Compose([]byte("AC-GT-XN?a"), Nucleotide)
	want := Composition{Length: 10, Allowed: 4, Gaps: 2, Undetermined: 2}
	if c != want {
		t.Fatalf("got %+v want %+v", c, want)
	}
	if f := c.Fraction(); f != 0.4 {
		t.Error("fraction got", f)
	}
	if f := (Composition{}).Fraction(); f != 0 {
		t.Error("empty fraction got", f)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		a, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if a.Name() != name {
			t.Error("asked for", name, "got", a.Name())
		}
	}
	if a, _ := ByName("amino-acid"); len(a.Symbols()) != 20 {
		t.Error("amino acid alphabet has", len(a.Symbols()), "symbols")
	}
	if _, err := ByName("rna"); err == nil {
		t.Error("unknown alphabet not caught")
	}
}

func TestTally(t *testing.T) {
	tly := NewTally()
	seqs := []string{"ARND", "----", "A-X-", ""}
	for _, s := range seqs {
		c := Compose([]byte(s), AminoAcid)
		tly.Add(c, c.Passes(0.3))
	}
	if tly.Kept() != 1 || tly.Dropped() != 3 {
		t.Fatal("kept", tly.Kept(), "dropped", tly.Dropped())
	}
	checks := []struct {
		row, col int
		want     int64
	}{
		{RowKept, ColResidues, 4},
		{RowKept, ColAllowed, 4},
		{RowDropped, ColResidues, 8},
		{RowDropped, ColAllowed, 1},
		{RowDropped, ColGaps, 6},
		{RowDropped, ColUndet, 1},
	}
	for _, c := range checks {
		if got := tly.Get(c.row, c.col); got != c.want {
			t.Errorf("row %d col %d got %d want %d", c.row, c.col, got, c.want)
		}
	}
	var buf bytes.Buffer
	if err := tly.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 5 {
		t.Errorf("tally table has %d lines:\n%s", len(lines), buf.String())
	}
}

// TestTallyBig adds enough residues that a float32 sum would be off.
func TestTallyBig(t *testing.T) {
	const n, seqLen = 400000, 97
	tly := NewTally()
	for i := 0; i < n; i++ {
		tly.Add(Composition{Length: seqLen, Allowed: seqLen - 3, Gaps: 2, Undetermined: 1}, true)
	}
	checks := []struct {
		col  int
		want int64
	}{
		{ColRecords, n},
		{ColResidues, n * seqLen},
		{ColAllowed, n * (seqLen - 3)},
		{ColGaps, 2 * n},
		{ColUndet, n},
	}
	for _, c := range checks {
		if got := tly.Get(RowKept, c.col); got != c.want {
			t.Errorf("col %d got %d want %d", c.col, got, c.want)
		}
	}
	f := tly.Fractions()
	if got := f.Mat[RowKept][ColRecords]; got != 1 {
		t.Error("fraction of records kept got", got)
	}
	gaps, length := 2., float64(seqLen)
	if got, want := f.Mat[RowKept][ColGaps], float32(gaps/length); got != want {
		t.Error("gap fraction got", got, "want", want)
	}
	if got := f.Mat[RowDropped][ColAllowed]; got != 0 {
		t.Error("empty row fraction got", got)
	}
}

func BenchmarkCount(b *testing.B) {
	s := bytes.Repeat([]byte("ARND-CEQ-X"), 10000)
	for i := 0; i < b.N; i++ {
		AminoAcid.Count(s)
	}
}
