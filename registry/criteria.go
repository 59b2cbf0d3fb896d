package registry

import (
	"fmt"
	"strings"
)

// Criteria is a case-insensitive name-fragment filter deciding which
// algorithms become active. Fragments are held upper-case.
type Criteria struct {
	includes []string
	excludes []string
}

func NewCriteria(includes, excludes []string) Criteria {
	return Criteria{
		includes: upperAll(includes),
		excludes: upperAll(excludes),
	}
}

// Accepts reports whether an algorithm name passes the filter:
// included when no include fragment is set or one occurs in the name,
// and no exclude fragment occurs in the name. The answer depends only
// on the criteria and the name.
func (c Criteria) Accepts(algo string) bool {
	mustBeUpper(algo)

	included := len(c.includes) == 0 || anyFragmentIn(algo, c.includes)
	excluded := len(c.excludes) > 0 && anyFragmentIn(algo, c.excludes)

	return included && !excluded
}

func anyFragmentIn(algo string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(algo, fragment) {
			return true
		}
	}
	return false
}

func upperAll(fragments []string) []string {
	uppered := make([]string, len(fragments))
	for i, fragment := range fragments {
		uppered[i] = strings.ToUpper(fragment)
	}
	return uppered
}

func mustBeUpper(algo string) {
	if algo != strings.ToUpper(algo) {
		panic(fmt.Sprintf("Algorithm name '%s' must be upper-case", algo))
	}
}
