// Package phonenumber defines the value types shared by the parsing,
// classification, formatting and matching layers: the structured
// PhoneNumber representation, its provenance and type enums, and the
// sentinel parse errors.
//
// PhoneNumber is a plain comparable struct. Equality via == is structural
// over every field, including provenance fields such as RawInput and
// PreferredDomesticCarrierCode; two numbers with the same digits but
// different provenance are distinct values. Numeric equivalence is a
// separate predicate (phoneutil.IsNumberMatch).
package phonenumber

import "strconv"

// CountryCodeSource records how the country calling code of a parsed
// number was determined.
type CountryCodeSource int

// Country code provenance values, in increasing order of inference.
const (
	CountryCodeUnspecified CountryCodeSource = iota
	CountryCodeFromNumberWithPlusSign
	CountryCodeFromNumberWithIDD
	CountryCodeFromNumberWithoutPlusSign
	CountryCodeFromDefaultRegion
)

var countryCodeSourceNames = [...]string{
	CountryCodeUnspecified:               "UNSPECIFIED",
	CountryCodeFromNumberWithPlusSign:    "FROM_NUMBER_WITH_PLUS_SIGN",
	CountryCodeFromNumberWithIDD:         "FROM_NUMBER_WITH_IDD",
	CountryCodeFromNumberWithoutPlusSign: "FROM_NUMBER_WITHOUT_PLUS_SIGN",
	CountryCodeFromDefaultRegion:         "FROM_DEFAULT_COUNTRY",
}

// String returns the wire-compatible name of the source.
func (s CountryCodeSource) String() string {
	if int(s) >= 0 && int(s) < len(countryCodeSourceNames) {
		return countryCodeSourceNames[s]
	}
	return "CountryCodeSource(" + strconv.Itoa(int(s)) + ")"
}

// PhoneNumber is the canonical parsed representation of a telephone
// number: a country calling code plus the national number as an unsigned
// integer, with leading zeros carried out-of-band because they are not
// part of the numeric value.
//
// Invariant: NumberOfLeadingZeros is only stored when greater than one;
// LeadingZeros resolves the default (one zero whenever ItalianLeadingZero
// is set). Parsers must preserve this so that struct equality holds
// between independently parsed copies of the same input.
type PhoneNumber struct {
	// CountryCode is the 1-3 digit country calling code (e.g. 1, 64, 39).
	CountryCode int

	// NationalNumber is the national significant number without any
	// leading zeros.
	NationalNumber uint64

	// Extension holds the post-dial extension digits, if any.
	Extension string

	// ItalianLeadingZero is set when the national number carries a
	// semantically significant leading zero (e.g. Italian fixed lines).
	ItalianLeadingZero bool

	// NumberOfLeadingZeros is the explicit zero count when more than one
	// leading zero is significant. Zero means "use the default".
	NumberOfLeadingZeros int

	// RawInput is the exact text this number was parsed from. Only set
	// by ParseAndKeepRawInput and by the text matcher.
	RawInput string

	// CountryCodeSource records how CountryCode was derived. Only set
	// when raw input is kept.
	CountryCodeSource CountryCodeSource

	// PreferredDomesticCarrierCode is the carrier selection code the
	// input was dialled with, when one was present.
	PreferredDomesticCarrierCode string
}

// LeadingZeros returns the effective number of significant leading zeros.
func (n PhoneNumber) LeadingZeros() int {
	if n.NumberOfLeadingZeros > 1 {
		return n.NumberOfLeadingZeros
	}
	if n.ItalianLeadingZero {
		return 1
	}
	return 0
}

// NationalSignificantNumber renders the national number as a digit
// string, reinstating significant leading zeros.
func (n PhoneNumber) NationalSignificantNumber() string {
	nsn := strconv.FormatUint(n.NationalNumber, 10)
	for i := n.LeadingZeros(); i > 0; i-- {
		nsn = "0" + nsn
	}
	return nsn
}

// String returns a compact debug form, e.g. +64/33316005.
func (n PhoneNumber) String() string {
	return "+" + strconv.Itoa(n.CountryCode) + "/" + n.NationalSignificantNumber()
}
