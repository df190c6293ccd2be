package phoneutil

import (
	"phonelib/pkg/metadata"
	"phonelib/pkg/phonenumber"
)

// classificationOrder is the fixed priority in which typed descriptions
// are consulted. The first full match wins, so the order is load-bearing:
// premium-rate before toll-free, special services before the broad
// fixed-line/mobile patterns.
var classificationOrder = []phonenumber.NumberType{
	phonenumber.PremiumRate,
	phonenumber.TollFree,
	phonenumber.SharedCost,
	phonenumber.VOIP,
	phonenumber.PersonalNumber,
	phonenumber.Pager,
	phonenumber.UAN,
	phonenumber.Voicemail,
}

// shortClassificationOrder is consulted only for digits the general
// pattern does not claim. Emergency first: the generic short-code
// pattern usually covers the emergency numbers too.
var shortClassificationOrder = []phonenumber.NumberType{
	phonenumber.Emergency,
	phonenumber.SMSService,
	phonenumber.CarrierSpecific,
	phonenumber.ShortCode,
}

// ValidationResult is the outcome of a possibility check.
type ValidationResult int

// Possibility outcomes.
const (
	IsPossible ValidationResult = iota
	InvalidCountryCode
	TooShort
	TooLong
)

var validationResultNames = [...]string{
	IsPossible:         "IS_POSSIBLE",
	InvalidCountryCode: "INVALID_COUNTRY_CODE",
	TooShort:           "TOO_SHORT",
	TooLong:            "TOO_LONG",
}

// String returns the canonical name of the result.
func (r ValidationResult) String() string {
	if int(r) >= 0 && int(r) < len(validationResultNames) {
		return validationResultNames[r]
	}
	return "UNKNOWN"
}

// GetNumberType classifies a parsed number against its region's typed
// patterns. Digits the general pattern does not claim fall through to
// the short-number descriptions, so "911" classifies as Emergency even
// though it is not a valid subscriber number. Unknown is returned when
// no pattern claims the digits; it never fails.
func (u *Util) GetNumberType(num phonenumber.PhoneNumber) phonenumber.NumberType {
	rm := u.metadataForNumber(num)
	if rm == nil {
		return phonenumber.Unknown
	}
	nsn := num.NationalSignificantNumber()
	if t := numberTypeHelper(nsn, rm); t != phonenumber.Unknown {
		return t
	}
	return shortNumberTypeHelper(nsn, rm)
}

// IsValidNumber reports whether the number matches a real allocated
// pattern of its numbering plan. Short codes are dialling-context
// numbers, not allocated subscriber numbers, so they classify (see
// GetNumberType) without ever being valid.
func (u *Util) IsValidNumber(num phonenumber.PhoneNumber) bool {
	rm := u.metadataForNumber(num)
	if rm == nil {
		return false
	}
	return numberTypeHelper(num.NationalSignificantNumber(), rm) != phonenumber.Unknown
}

// CanBeInternationallyDialled reports whether the number is reachable
// from outside its region. Plans mark ranges such as domestic-only
// toll-free numbers as not internationally diallable; numbers of
// unknown plans are assumed diallable.
func (u *Util) CanBeInternationallyDialled(num phonenumber.PhoneNumber) bool {
	rm := u.metadataForNumber(num)
	if rm == nil {
		return true
	}
	return !rm.NoInternationalDialling().MatchesNational(num.NationalSignificantNumber())
}

// IsValidNumberForRegion reports validity confined to one region; a
// number whose country code belongs to a different region is invalid
// there regardless of its digits.
func (u *Util) IsValidNumberForRegion(num phonenumber.PhoneNumber, region string) bool {
	rm := u.store.Region(region)
	if rm == nil || rm.CountryCode() != num.CountryCode {
		return false
	}
	return numberTypeHelper(num.NationalSignificantNumber(), rm) != phonenumber.Unknown
}

// RegionCodeForNumber resolves the region a parsed number belongs to.
// When several regions share the country calling code, the first one (in
// decreasing priority order) whose plan claims the number wins; ties are
// not disambiguated further.
func (u *Util) RegionCodeForNumber(num phonenumber.PhoneNumber) string {
	list := u.store.RegionsForCountryCode(num.CountryCode)
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0].ID()
	}
	nsn := num.NationalSignificantNumber()
	for _, rm := range list {
		if numberTypeHelper(nsn, rm) != phonenumber.Unknown {
			return rm.ID()
		}
	}
	return ""
}

// IsPossibleNumber is the loose structural check: plausible length and
// shape, without requiring an allocated pattern.
func (u *Util) IsPossibleNumber(num phonenumber.PhoneNumber) bool {
	return u.IsPossibleNumberWithReason(num) == IsPossible
}

// IsPossibleNumberWithReason explains why a number is or is not
// possible. The global length bounds are enforced before any region
// pattern so the check degrades gracefully on sparse metadata.
func (u *Util) IsPossibleNumberWithReason(num phonenumber.PhoneNumber) ValidationResult {
	if !u.store.HasCountryCode(num.CountryCode) {
		return InvalidCountryCode
	}
	nsn := num.NationalSignificantNumber()
	if len(nsn) < minLengthNSN {
		return TooShort
	}
	if len(nsn) > maxLengthNSN {
		return TooLong
	}
	rm := u.metadataForNumber(num)
	if rm == nil {
		rm = u.store.MetadataForCountryCode(num.CountryCode)
	}
	general := rm.General()
	if general.MatchesPossible(nsn) {
		return IsPossible
	}
	// Distinguish too-long from too-short: a number whose proper prefix
	// is possible has excess digits.
	for l := len(nsn) - 1; l >= minLengthNSN; l-- {
		if general.MatchesPossible(nsn[:l]) {
			return TooLong
		}
	}
	return TooShort
}

// ExampleNumber returns a parsed example fixed-line number for a region.
func (u *Util) ExampleNumber(region string) (phonenumber.PhoneNumber, bool) {
	return u.ExampleNumberForType(region, phonenumber.FixedLine)
}

// ExampleNumberForType returns a parsed example number of the given
// type, when the region's plan declares one.
func (u *Util) ExampleNumberForType(region string, t phonenumber.NumberType) (phonenumber.PhoneNumber, bool) {
	rm := u.store.Region(region)
	if rm == nil {
		return phonenumber.PhoneNumber{}, false
	}
	example := rm.Desc(t).ExampleNumber()
	if example == "" {
		return phonenumber.PhoneNumber{}, false
	}
	num, err := u.Parse(example, region)
	if err != nil {
		return phonenumber.PhoneNumber{}, false
	}
	return num, true
}

// metadataForNumber picks the region metadata a number classifies
// against: the single region for the code, or the sharing region whose
// plan claims the number.
func (u *Util) metadataForNumber(num phonenumber.PhoneNumber) *metadata.RegionMetadata {
	list := u.store.RegionsForCountryCode(num.CountryCode)
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}
	nsn := num.NationalSignificantNumber()
	for _, rm := range list {
		if numberTypeHelper(nsn, rm) != phonenumber.Unknown {
			return rm
		}
	}
	// No plan claims it; the main country still supplies formatting and
	// possibility patterns.
	return list[0]
}

// numberTypeHelper runs the anchored full-string matches in priority
// order against one region's plan.
func numberTypeHelper(nsn string, rm *metadata.RegionMetadata) phonenumber.NumberType {
	if !rm.General().MatchesNational(nsn) {
		return phonenumber.Unknown
	}
	for _, t := range classificationOrder {
		if rm.Desc(t).MatchesNational(nsn) {
			return t
		}
	}
	fixed := rm.Desc(phonenumber.FixedLine).MatchesNational(nsn)
	if fixed && rm.SameMobileAndFixedLinePattern() {
		return phonenumber.FixedLineOrMobile
	}
	mobile := rm.Desc(phonenumber.Mobile).MatchesNational(nsn)
	switch {
	case fixed && mobile:
		return phonenumber.FixedLineOrMobile
	case fixed:
		return phonenumber.FixedLine
	case mobile:
		return phonenumber.Mobile
	}
	return phonenumber.Unknown
}

// shortNumberTypeHelper classifies digits outside the general pattern
// against the plan's short-number descriptions.
func shortNumberTypeHelper(nsn string, rm *metadata.RegionMetadata) phonenumber.NumberType {
	for _, t := range shortClassificationOrder {
		if rm.Desc(t).MatchesNational(nsn) {
			return t
		}
	}
	return phonenumber.Unknown
}
