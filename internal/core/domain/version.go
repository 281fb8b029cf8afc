package domain

import (
	"strconv"
	"strings"
)

// Build names produced by the publishing pipeline look like "static-3.42".
// Ordering compares major then minor numerically, so "static-3.9" sorts
// below "static-3.10".

func parseBuildName(s string) (major, minor int, ok bool) {
	rest, found := strings.CutPrefix(s, "static-")
	if !found {
		return 0, 0, false
	}
	majorStr, minorStr, found := strings.Cut(rest, ".")
	if !found {
		return 0, 0, false
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(minorStr)
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

// CompareBuildNames orders two build names. Strings that are not build names
// compare lexically and always sort below a well-formed build name, so a
// frozen snapshot entry can never displace a real pin with garbage.
func CompareBuildNames(a, b string) int {
	aMajor, aMinor, aOK := parseBuildName(a)
	bMajor, bMinor, bOK := parseBuildName(b)

	switch {
	case aOK && bOK:
		if aMajor != bMajor {
			return compareInts(aMajor, bMajor)
		}
		return compareInts(aMinor, bMinor)
	case aOK:
		return 1
	case bOK:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// MaxBuildName returns the greater of two build names, ignoring empties.
func MaxBuildName(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if CompareBuildNames(a, b) >= 0 {
		return a
	}
	return b
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
