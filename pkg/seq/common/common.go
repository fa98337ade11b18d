// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// Undetermined symbols. They are neither residues nor gaps.
const (
	UnknownChar  byte = 'X'
	QuestionChar byte = '?'
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for data that is not text, like
// compressed files.
func WrtTempBytes(b []byte) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := f_tmp.Write(b); err != nil {
		os.Remove(f_tmp.Name())
		return "", fmt.Errorf("writing to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// NopWriteCloser lets stdout be handed around as an io.WriteCloser
// without anyone closing it by mistake.
type NopWriteCloser struct{ io.Writer }

func (NopWriteCloser) Close() error { return nil }
