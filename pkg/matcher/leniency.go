package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"phonelib/pkg/metadata"
	"phonelib/pkg/phonenumber"
	"phonelib/pkg/phoneutil"
)

// Leniency is the vetting policy a candidate must pass before the
// matcher yields it. Levels are strictly ordered: everything a stricter
// level accepts, the looser levels accept too.
type Leniency int

const (
	// Possible accepts candidates that parse and are possible numbers,
	// valid or not.
	Possible Leniency = iota

	// Valid accepts only candidates that parse to valid numbers.
	Valid

	// StrictGrouping additionally requires the candidate's digit blocks
	// to be consistent with the number's canonical formatting; the
	// country code or national prefix may be glued to the first block.
	StrictGrouping

	// ExactGrouping requires the digit blocks to reproduce the canonical
	// formatting exactly.
	ExactGrouping
)

var leniencyNames = [...]string{
	Possible:       "POSSIBLE",
	Valid:          "VALID",
	StrictGrouping: "STRICT_GROUPING",
	ExactGrouping:  "EXACT_GROUPING",
}

// String returns the canonical name of the leniency level.
func (l Leniency) String() string {
	if int(l) >= 0 && int(l) < len(leniencyNames) {
		return leniencyNames[l]
	}
	return "POSSIBLE"
}

var digitRun = regexp.MustCompile(`\p{Nd}+`)

func (l Leniency) verify(u *phoneutil.Util, num phonenumber.PhoneNumber, candidate string) bool {
	switch l {
	case Possible:
		return u.IsPossibleNumber(num)
	case Valid:
		return u.IsValidNumber(num) && nationalPrefixPresentIfRequired(u, num, candidate)
	case StrictGrouping, ExactGrouping:
		if !u.IsValidNumber(num) || !nationalPrefixPresentIfRequired(u, num, candidate) {
			return false
		}
		return groupingConsistent(u, num, candidate, l == ExactGrouping)
	}
	return false
}

// nationalPrefixPresentIfRequired rejects candidates written in national
// notation that omit a national prefix the plan's display rule makes
// mandatory. Candidates carrying their own country code are exempt:
// international notation never includes the national prefix.
func nationalPrefixPresentIfRequired(u *phoneutil.Util, num phonenumber.PhoneNumber, candidate string) bool {
	if num.CountryCodeSource != phonenumber.CountryCodeFromDefaultRegion {
		return true
	}
	rm := u.Store().MetadataForCountryCode(num.CountryCode)
	if rm == nil || rm.NationalPrefix() == "" {
		return true
	}
	nsn := num.NationalSignificantNumber()
	var rule *metadata.CompiledFormat
	for _, f := range rm.Formats() {
		if f.AppliesTo(nsn) {
			rule = f
			break
		}
	}
	if rule == nil || !rule.RequiresNationalPrefix() {
		return true
	}
	digits := strings.Join(digitRun.FindAllString(candidate, -1), "")
	_, _, stripped := rm.StripNationalPrefix(digits)
	return stripped
}

// groupingConsistent compares the candidate's digit blocks with the
// blocks of the number's canonical international formatting. A candidate
// written with no separators inside the national number is always
// accepted: absence of grouping claims nothing about grouping.
func groupingConsistent(u *phoneutil.Util, num phonenumber.PhoneNumber, candidate string, exact bool) bool {
	nsn := num.NationalSignificantNumber()
	cand := digitRun.FindAllString(candidate, -1)
	for _, block := range cand {
		if strings.Contains(block, nsn) {
			return true
		}
	}

	expected := expectedGroups(u, num)
	if len(expected) == 0 {
		return true
	}

	// The candidate may carry extra leading blocks: the country code,
	// an international dialling prefix, or a national prefix.
	for len(cand) > len(expected) {
		cand = cand[1:]
	}
	if len(cand) != len(expected) {
		return false
	}
	for i := len(expected) - 1; i >= 1; i-- {
		if cand[i] != expected[i] {
			return false
		}
	}
	if exact {
		return cand[0] == expected[0]
	}
	// Strict: the first block may have the national prefix or country
	// code glued onto it.
	return strings.HasSuffix(cand[0], expected[0])
}

// expectedGroups renders the number in international format and returns
// its digit blocks, without the leading country code block.
func expectedGroups(u *phoneutil.Util, num phonenumber.PhoneNumber) []string {
	formatted := u.Format(num, phoneutil.International)
	groups := digitRun.FindAllString(formatted, -1)
	if len(groups) > 0 && groups[0] == strconv.Itoa(num.CountryCode) {
		groups = groups[1:]
	}
	return groups
}
