package mmfile_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/alnfilt/pkg/mmfile"
	"github.com/andrew-torda/alnfilt/pkg/seq/common"
)

func TestMapped(t *testing.T) {
	const s = ">s1\nARND\n>s2\n----\n"
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	f, err := mmfile.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Mapped() {
		t.Log("file was not mapped, testing the fallback")
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != s {
		t.Errorf("got %q want %q", got, s)
	}
	if _, err := f.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	b := make([]byte, 4)
	if _, err := io.ReadFull(f, b); err != nil || string(b) != "ARND" {
		t.Errorf("after seek got %q, %v", b, err)
	}
	if err := f.Close(); err != nil {
		t.Error("close", err)
	}
}

func TestEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	f, err := mmfile.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if f.Mapped() {
		t.Error("empty file should not be mapped")
	}
	if n, err := f.Read(make([]byte, 10)); n != 0 || err != io.EOF {
		t.Error("empty file read got", n, err)
	}
}

func TestNotThere(t *testing.T) {
	_, err := mmfile.Open("/this/path/does/not/exist.fa")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wanted not exist, got", err)
	}
}

func TestDirectory(t *testing.T) {
	_, err := mmfile.Open(os.TempDir())
	if err == nil || !strings.Contains(err.Error(), "directory") {
		t.Error("directory not caught", err)
	}
}

func BenchmarkRead(b *testing.B) {
	fname, err := common.WrtTemp(strings.Repeat(">s\n"+strings.Repeat("A", 1000)+"\n", 1000))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { os.Remove(fname) })
	buf := make([]byte, 64*1024)
	for i := 0; i < b.N; i++ {
		f, err := mmfile.Open(fname)
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := f.Read(buf); err != nil {
				break
			}
		}
		f.Close()
	}
}
