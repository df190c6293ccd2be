// Package metadata holds the declarative per-region numbering-plan
// records that drive parsing, validation, classification and formatting,
// and compiles them into an immutable in-memory Store.
//
// Records are plain data produced by an offline compiler from the
// upstream numbering-plan definitions; this package never reads files or
// the network. A Store is built once and is safe for unsynchronized
// concurrent reads afterwards.
package metadata

// NonGeoRegionID is the synthetic region identifier used for country
// calling codes that do not belong to any geographic region, such as
// universal toll-free 800.
const NonGeoRegionID = "001"

// PhoneNumberDesc describes one number type within a numbering plan: a
// full-match pattern for valid numbers, a looser pattern for possible
// numbers, and an optional example.
type PhoneNumberDesc struct {
	// NationalNumberPattern matches the national significant numbers
	// that are valid for this type. Empty means the type is unused.
	NationalNumberPattern string

	// PossibleNumberPattern is a looser length/shape pattern. Empty
	// falls back to NationalNumberPattern.
	PossibleNumberPattern string

	// ExampleNumber is a known-valid national significant number of
	// this type.
	ExampleNumber string
}

// NumberFormat is one display rule: a pattern splitting the national
// significant number into capture groups and a template recombining
// them. Rules are tried in order; LeadingDigits narrows applicability.
type NumberFormat struct {
	// Pattern captures the digit groups, e.g. `(\d{3})(\d{3})(\d{4})`.
	Pattern string

	// Format is the display template over those groups, e.g. `($1) $2-$3`.
	Format string

	// LeadingDigits are prefix patterns; the last one is authoritative.
	// A rule with none applies whenever Pattern matches.
	LeadingDigits []string

	// NationalPrefixFormattingRule renders the national prefix into the
	// first group. It may reference $NP (the region's national prefix)
	// and $FG (the first captured group); both are resolved when the
	// Store is built.
	NationalPrefixFormattingRule string

	// NationalPrefixOptionalWhenFormatting permits omitting the rule.
	NationalPrefixOptionalWhenFormatting bool

	// DomesticCarrierCodeFormattingRule renders a carrier selection
	// code; it may reference $NP, $CC (the carrier code) and $FG.
	DomesticCarrierCodeFormattingRule string
}

// Region is the raw numbering-plan record for one region code, or for a
// non-geographic country calling code under NonGeoRegionID.
type Region struct {
	// ID is the CLDR two-letter region code, e.g. "US", "NZ".
	ID string

	// CountryCode is the country calling code shared by this region.
	CountryCode int

	// InternationalPrefix is a pattern matching the prefixes used to
	// dial out of this region, e.g. `011` or `00`.
	InternationalPrefix string

	// PreferredInternationalPrefix is the display form when the
	// InternationalPrefix pattern admits several.
	PreferredInternationalPrefix string

	// NationalPrefix is the digit(s) prepended for domestic dialling.
	NationalPrefix string

	// PreferredExtnPrefix is the display prefix for extensions.
	PreferredExtnPrefix string

	// NationalPrefixForParsing matches national prefixes (and carrier
	// selection codes) to strip while parsing. Defaults to
	// NationalPrefix when empty.
	NationalPrefixForParsing string

	// NationalPrefixTransformRule rewrites the stripped digits using $1
	// style backreferences into NationalPrefixForParsing's groups, for
	// plans where prefix removal also rewrites following digits.
	NationalPrefixTransformRule string

	// MainCountryForCode breaks ties when several regions share a
	// country calling code.
	MainCountryForCode bool

	// LeadingZeroPossible marks plans where a leading zero on the
	// national number is significant.
	LeadingZeroPossible bool

	// MobileNumberPortableRegion is a static portability flag.
	MobileNumberPortableRegion bool

	// SameMobileAndFixedLinePattern declares FixedLine and Mobile
	// pattern-identical so the checks may be merged.
	SameMobileAndFixedLinePattern bool

	// GeneralDesc is the union of every valid national number, used for
	// quick rejection and region disambiguation.
	GeneralDesc PhoneNumberDesc

	// Typed descriptions. An empty NationalNumberPattern disables a type.
	FixedLine      PhoneNumberDesc
	Mobile         PhoneNumberDesc
	TollFree       PhoneNumberDesc
	PremiumRate    PhoneNumberDesc
	SharedCost     PhoneNumberDesc
	PersonalNumber PhoneNumberDesc
	VOIP           PhoneNumberDesc
	Pager          PhoneNumberDesc
	UAN            PhoneNumberDesc
	Voicemail      PhoneNumberDesc

	// Short-number descriptions. These cover dialling-context codes
	// (emergency services, five-digit SMS codes) that live outside
	// GeneralDesc; they classify but never validate.
	ShortCode       PhoneNumberDesc
	Emergency       PhoneNumberDesc
	SMSServices     PhoneNumberDesc
	CarrierSpecific PhoneNumberDesc

	// NoInternationalDialling describes ranges, typically domestic
	// toll-free, that cannot be reached from outside the region.
	NoInternationalDialling PhoneNumberDesc

	// NumberFormats are the ordered national display rules.
	NumberFormats []NumberFormat

	// IntlNumberFormats override NumberFormats for international
	// display when present. The literal format "NA" marks a rule whose
	// numbers have no international form.
	IntlNumberFormats []NumberFormat
}
