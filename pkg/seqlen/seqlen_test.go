package seqlen_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/alnfilt/pkg/composition"
	"github.com/andrew-torda/alnfilt/pkg/seq"
	"github.com/andrew-torda/alnfilt/pkg/seq/common"
	"github.com/andrew-torda/alnfilt/pkg/seqlen"
)

const aln = `>s1 first
AR-DX
>s2
-----
`

func ExampleMymain() {
	fname, err := common.WrtTemp(aln)
	if err != nil {
		panic(err)
	}
	defer os.Remove(fname)
	if err := seqlen.Mymain(seqlen.CmdArgs{InSeqFname: fname, Alphabet: "amino-acid"}); err != nil {
		panic(err)
	}
	// Output:
	// id	length	ungapped	allowed
	// s1	5	4	3
	// s2	5	0	0
}

func TestLengths(t *testing.T) {
	in := aln + ">s3\nAR\n"
	var sb strings.Builder
	err := seqlen.Write(strings.NewReader(in), &sb, composition.AminoAcid, false)
	if !errors.Is(err, seq.ErrMalformed) {
		t.Fatal("different length not caught", err)
	}
	if n := strings.Count(sb.String(), "\n"); n != 3 {
		t.Error("lines before the error got", n, "want 3")
	}
	sb.Reset()
	if err := seqlen.Write(strings.NewReader(in), &sb, composition.AminoAcid, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(sb.String(), "s3\t2\t2\t2\n") {
		t.Errorf("got %q", sb.String())
	}
}

// TestGzip checks that compressed input gives the same table.
func TestGzip(t *testing.T) {
	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	zw.Write([]byte(aln))
	zw.Close()
	zname, err := common.WrtTempBytes(zbuf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(zname)
	outName := filepath.Join(t.TempDir(), "lengths.tsv")
	args := seqlen.CmdArgs{InSeqFname: zname, OutCntFname: outName, Alphabet: "amino-acid"}
	if err := seqlen.Mymain(args); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	const want = "id\tlength\tungapped\tallowed\ns1\t5\t4\t3\ns2\t5\t0\t0\n"
	if string(got) != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNotThere(t *testing.T) {
	args := seqlen.CmdArgs{InSeqFname: filepath.Join(t.TempDir(), "nope.fa"), Alphabet: "amino-acid"}
	if err := seqlen.Mymain(args); !errors.Is(err, os.ErrNotExist) {
		t.Error("missing file got", err)
	}
}
