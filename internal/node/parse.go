package node

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
)

// Identifier shape: Prefix followed by a Width-digit zero-padded number up to Max.
const (
	Prefix = "node"
	Width  = 3
	Max    = 999
)

// ErrExhausted is returned when a number does not fit the three-digit suffix.
var ErrExhausted = errors.New("identifier space exhausted")

// nodeNumRe matches anywhere in the input, not only on word boundaries.
// Any Unicode decimal digit counts, e.g. "node١٢٣" is 123.
var nodeNumRe = regexp.MustCompile(`node(\p{Nd}{3})`)

// ExtractNums returns the suffix of every node### occurrence in s, in scan order.
// Duplicates are kept.
func ExtractNums(s string) []int {
	var nums []int
	for _, m := range nodeNumRe.FindAllStringSubmatch(s, -1) {
		n := 0
		for _, r := range m[1] {
			n = n*10 + digitValue(r)
		}
		nums = append(nums, n)
	}
	return nums
}

// digitValue returns the value of a Unicode decimal digit. Decimal digits are
// encoded in contiguous runs of complete 0-9 sets, so the offset from the
// start of the run gives the value.
func digitValue(r rune) int {
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return int(r-start) % 10
}

// Format renders n as a node identifier, e.g. 7 -> "node007".
func Format(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("invalid identifier number %d", n)
	}
	if n > Max {
		return "", fmt.Errorf("node%d: %w", n, ErrExhausted)
	}
	return fmt.Sprintf("%s%0*d", Prefix, Width, n), nil
}
