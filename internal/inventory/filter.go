package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldKey lowers case and strips combining marks so "Diésel" and "DIESEL"
// compare equal.
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// MatchesName reports whether query occurs in name, ignoring case and accents.
// An empty or blank query matches everything.
func MatchesName(name, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(foldKey(name), foldKey(q))
}

// FilterFactors returns the factors whose Name contains query. An empty
// query returns all of them; no match returns an empty, non-nil slice.
func FilterFactors(all []EmissionFactor, query string) []EmissionFactor {
	out := make([]EmissionFactor, 0, len(all))
	for _, f := range all {
		if MatchesName(f.Name, query) {
			out = append(out, f)
		}
	}
	return out
}
