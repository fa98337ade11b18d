// 3 Aug 2020

// Package mmfile opens a sequence file by mapping it into memory.
// Reading is then just copying out of the mapping. Files which
// cannot be mapped, such as empty files, pipes and devices, are
// read in the usual way.
package mmfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is an io.ReadSeekCloser over a mapped or ordinary file.
type File struct {
	fp  *os.File
	mm  mmap.MMap
	rdr *bytes.Reader // reads from mm, nil if not mapped
}

// Open opens fname read only. Errors from os.Open are returned as they
// are, so callers can test them with errors.Is(err, fs.ErrNotExist).
func Open(fname string) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	f := &File{fp: fp}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, fmt.Errorf("%s is a directory", fname)
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return f, nil
	}
	if f.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		f.mm = nil // fall back to reading
		return f, nil
	}
	f.rdr = bytes.NewReader(f.mm)
	return f, nil
}

// Mapped says whether we are reading from memory.
func (f *File) Mapped() bool { return f.rdr != nil }

func (f *File) Read(p []byte) (int, error) {
	if f.rdr != nil {
		return f.rdr.Read(p)
	}
	return f.fp.Read(p)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.rdr != nil {
		return f.rdr.Seek(offset, whence)
	}
	return f.fp.Seek(offset, whence)
}

// Close unmaps, if necessary, and closes the file.
func (f *File) Close() error {
	var errUnmap error
	if f.mm != nil {
		errUnmap = f.mm.Unmap()
		f.mm = nil
		f.rdr = nil
	}
	if err := f.fp.Close(); err != nil {
		return err
	}
	return errUnmap
}

var _ io.ReadSeekCloser = (*File)(nil)
