package phoneutil

import (
	"strings"

	"phonelib/pkg/phonenumber"
)

// MatchType grades numeric equivalence between two numbers, independent
// of provenance fields.
type MatchType int

// Match grades, weakest to strongest.
const (
	NoMatch MatchType = iota
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

var matchTypeNames = [...]string{
	NoMatch:       "NO_MATCH",
	ShortNSNMatch: "SHORT_NSN_MATCH",
	NSNMatch:      "NSN_MATCH",
	ExactMatch:    "EXACT_MATCH",
}

// String returns the canonical name of the match grade.
func (m MatchType) String() string {
	if int(m) >= 0 && int(m) < len(matchTypeNames) {
		return matchTypeNames[m]
	}
	return "NO_MATCH"
}

// IsNumberMatch compares two numbers on their numeric content only:
// country code, national number, leading zeros and extension. RawInput,
// CountryCodeSource and carrier codes never influence the grade — this
// is the equivalence predicate the structural equality of PhoneNumber
// deliberately does not provide.
//
// ExactMatch: same code, number and extension. NSNMatch: same national
// number but one side is missing its country code. ShortNSNMatch: one
// national number is a proper suffix of the other (a number dialled
// without its area code), extensions not conflicting.
func IsNumberMatch(a, b phonenumber.PhoneNumber) MatchType {
	if a.Extension != "" && b.Extension != "" && a.Extension != b.Extension {
		return NoMatch
	}
	sameNSN := a.NationalSignificantNumber() == b.NationalSignificantNumber()

	if a.CountryCode != 0 && b.CountryCode != 0 {
		if a.CountryCode != b.CountryCode {
			return NoMatch
		}
		if sameNSN {
			return ExactMatch
		}
		if isNSNSuffix(a, b) {
			return ShortNSNMatch
		}
		return NoMatch
	}

	// One or both sides lack a country code; compare national numbers.
	if sameNSN {
		return NSNMatch
	}
	if isNSNSuffix(a, b) {
		return ShortNSNMatch
	}
	return NoMatch
}

func isNSNSuffix(a, b phonenumber.PhoneNumber) bool {
	x := a.NationalSignificantNumber()
	y := b.NationalSignificantNumber()
	return strings.HasSuffix(x, y) || strings.HasSuffix(y, x)
}
