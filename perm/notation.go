package perm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// groupSep splits "...)(..." cycle boundaries, tolerating whitespace
	// and commas between groups.
	groupSep = regexp.MustCompile(`\)[\s,]*\(`)

	// tokenSep splits the integers inside one cycle: whitespace and/or a
	// single comma with optional surrounding whitespace.
	tokenSep = regexp.MustCompile(`\s*,\s*|\s+`)
)

// String renders p in cycle notation: every cycle from Cycles as
// parenthesized, space-separated integers, concatenated without
// separators. The identity renders as the literal "1". Parse reverses
// this exactly.
func (p Permutation) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "1"
	}

	var b strings.Builder
	for _, cyc := range cycles {
		b.WriteByte('(')
		for i, v := range cyc {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}

	return b.String()
}

// GoString renders p as the constructor call that rebuilds it, for %#v.
func (p Permutation) GoString() string {
	if len(p.image) == 0 {
		return "perm.Identity()"
	}

	words := make([]string, len(p.image))
	for i, v := range p.image {
		words[i] = strconv.Itoa(v)
	}

	return "perm.New(" + strings.Join(words, ", ") + ")"
}

// Parse reads cycle notation. It accepts more than String emits:
// surrounding whitespace, commas between integers, commas between cycles,
// empty or single-element cycles, and non-disjoint cycles, which are
// composed as in FromCycles. The literal "1" is the identity.
//
// Returns ErrBadNotation for malformed text (unbalanced parentheses,
// non-integer tokens, stray separators), or the Cycle validation errors
// when the syntax is fine but a value is not.
func Parse(s string) (Permutation, error) {
	s = strings.TrimSpace(s)
	if s == "1" {
		return Permutation{}, nil
	}
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Permutation{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	var cycles [][]int
	for _, group := range groupSep.Split(s[1:len(s)-1], -1) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		var cyc []int
		for _, token := range tokenSep.Split(group, -1) {
			v, err := strconv.Atoi(token)
			if err != nil {
				return Permutation{}, fmt.Errorf("%w: bad token %q in %q", ErrBadNotation, token, s)
			}
			cyc = append(cyc, v)
		}
		cycles = append(cycles, cyc)
	}

	return FromCycles(cycles...)
}
