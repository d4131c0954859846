package cycle

import "sort"

// UsedSet holds the numeric suffixes already claimed in the input.
type UsedSet map[int]struct{}

// NewUsedSet builds a set from nums, collapsing duplicates.
func NewUsedSet(nums []int) UsedSet {
	s := make(UsedSet, len(nums))
	for _, n := range nums {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether n is already claimed.
func (s UsedSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// Ceiling returns the largest claimed number, or 0 for an empty set.
func (s UsedSet) Ceiling() int {
	ceiling := 0
	for n := range s {
		if n > ceiling {
			ceiling = n
		}
	}
	return ceiling
}

// Sorted returns the members in ascending order.
func (s UsedSet) Sorted() []int {
	nums := make([]int, 0, len(s))
	for n := range s {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Next returns the first unclaimed number in 1..Ceiling()+1.
// Gap-filling: if 1,2,5 are taken, returns 3.
func (s UsedSet) Next() int {
	ceiling := s.Ceiling()
	for i := 1; i <= ceiling; i++ {
		if !s.Has(i) {
			return i
		}
	}
	return ceiling + 1
}
