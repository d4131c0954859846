package cycle

import (
	"fmt"

	"github.com/sestinj/nodeid/internal/node"
)

// Allocation is the outcome of a single allocation pass.
type Allocation struct {
	ID   string `json:"id"`
	Num  int    `json:"number"`
	Used []int  `json:"used"`
}

// Deps bundles the dependencies for the allocation logic.
type Deps struct {
	Verbose bool
	Logf    func(format string, args ...interface{}) // writes to stderr
}

// Allocate computes the next free node### identifier for the names found in input.
// The chosen slot is not reserved: the caller must record it before the next call.
func Allocate(d *Deps, input string) (*Allocation, error) {
	used := NewUsedSet(node.ExtractNums(input))
	if d.Verbose {
		d.Logf("found %d used identifiers (ceiling %d)", len(used), used.Ceiling())
	}

	next := used.Next()
	id, err := node.Format(next)
	if err != nil {
		return nil, fmt.Errorf("allocating %s identifier: %w", node.Prefix, err)
	}
	if d.Verbose {
		d.Logf("next free slot: %d", next)
	}

	return &Allocation{ID: id, Num: next, Used: used.Sorted()}, nil
}
