// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Alignments often arrive gzipped. We look at the first two bytes
// instead of trusting a ".gz" suffix, so it also works on stdin.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/alnfilt/pkg/mmfile"
)

// StdStream as a file name means stdin.
const StdStream = "-"

var gzipMagic = [2]byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // fp, perhaps with a buffer in front
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or stdin.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	var s string
	if e := fc.zrdr.Close(); e != nil { // Close decompressor
		s = e.Error()
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.rdr.Read(p)
}

// Compressed says whether we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it in a
// decompressor. It fails if the stream is not gzipped. Even if there
// is an error, the returned FpGzip can be closed.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	fpz.rdr = fp
	if fpz.zrdr, err = gzip.NewReader(fp); err != nil {
		fpz.zrdr = nil
	}
	return &fpz, err
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary. It only peeks, so it does
// not need to seek and is happy with a pipe.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	fpz := &FpGzip{fp: fp, rdr: br}
	magic, err := br.Peek(len(gzipMagic))
	if err != nil || magic[0] != gzipMagic[0] || magic[1] != gzipMagic[1] {
		return fpz, nil // Too short or not compressed. Read as it is.
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return fpz, err
	}
	fpz.zrdr = zrdr
	return fpz, nil
}

// Open opens a file by name, mapping it if possible, and decompresses
// it if it is gzipped. StdStream gives stdin, which is not closed.
// Errors from opening the file are returned as they are, so the caller
// can check for fs.ErrNotExist.
func Open(fname string) (*FpGzip, error) {
	var fp io.ReadCloser = io.NopCloser(os.Stdin)
	if fname != StdStream {
		f, err := mmfile.Open(fname)
		if err != nil {
			return nil, err
		}
		fp = f
	}
	fpz, err := WrapMaybe(fp)
	if err != nil {
		fpz.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fpz, nil
}
