// 6 Apr 2020
// composition counts what a sequence is made of and decides if there
// is enough real sequence in it to be worth keeping.

package composition

import (
	"fmt"
	"strings"

	. "github.com/andrew-torda/alnfilt/pkg/seq/common"
)

// Alphabet is the set of unambiguous symbols. Anything else, gaps,
// X, lower case letters, is not counted.
type Alphabet struct {
	name   string
	syms   string
	member [256]bool
}

func newAlphabet(name, syms string) *Alphabet {
	a := &Alphabet{name: name, syms: syms}
	for i := 0; i < len(syms); i++ {
		a.member[syms[i]] = true
	}
	return a
}

var (
	AminoAcid  = newAlphabet("amino-acid", "ARNDCEQGHILKMFPSTWYV")
	Nucleotide = newAlphabet("nucleotide", "ACGT")
)

var alphabets = []*Alphabet{AminoAcid, Nucleotide}

// ByName returns one of the known alphabets.
func ByName(name string) (*Alphabet, error) {
	for _, a := range alphabets {
		if a.name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unknown alphabet %q, want one of %s", name, strings.Join(Names(), ", "))
}

// Names lists the alphabets ByName knows about.
func Names() []string {
	var s []string
	for _, a := range alphabets {
		s = append(s, a.name)
	}
	return s
}

func (a *Alphabet) Name() string        { return a.name }
func (a *Alphabet) Symbols() string     { return a.syms }
func (a *Alphabet) Contains(c byte) bool { return a.member[c] }

// Count returns the number of symbols in s that are in the alphabet.
func (a *Alphabet) Count(s []byte) int {
	n := 0
	for _, c := range s {
		if a.member[c] {
			n++
		}
	}
	return n
}

// Composition is what we found in one sequence. Gaps and Undetermined
// are only for reporting. The decision uses Allowed and Length.
type Composition struct {
	Length       int // all symbols, gaps included
	Allowed      int // symbols in the alphabet
	Gaps         int
	Undetermined int // X and ?
}

// Compose counts everything in one pass.
func Compose(s []byte, a *Alphabet) Composition {
	c := Composition{Length: len(s)}
	for _, b := range s {
		switch {
		case a.member[b]:
			c.Allowed++
		case b == GapChar:
			c.Gaps++
		case b == UnknownChar || b == QuestionChar:
			c.Undetermined++
		}
	}
	return c
}

// Fraction is Allowed / Length, or zero for an empty sequence.
func (c Composition) Fraction() float64 {
	if c.Length == 0 {
		return 0
	}
	return float64(c.Allowed) / float64(c.Length)
}

// Passes says whether there are strictly more allowed symbols than
// threshold times the length. A sequence sitting exactly on the
// threshold fails, as does an empty sequence.
func (c Composition) Passes(threshold float64) bool {
	return passes(c.Allowed, c.Length, threshold)
}

func passes(count, length int, threshold float64) bool {
	return float64(count) > float64(length)*threshold
}

// Keep is the whole test for one sequence.
func Keep(s []byte, a *Alphabet, threshold float64) bool {
	return passes(a.Count(s), len(s), threshold)
}
