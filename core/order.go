package core

import (
	"sort"
	"strconv"
)

// NaturalLess orders strings the way the converters and Hierholzer expect:
// integer-looking strings first, by numeric value, then everything else
// lexically. "2" < "10" < "A" < "B".
func NaturalLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b // "01" vs "1"
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

// SortNatural sorts s in place using NaturalLess (stable).
func SortNatural(s []string) {
	sort.SliceStable(s, func(i, j int) bool { return NaturalLess(s[i], s[j]) })
}
