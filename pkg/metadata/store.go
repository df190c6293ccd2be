package metadata

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"phonelib/pkg/phonenumber"
)

// groupRef matches a $n capture-group token in templates and rules.
var groupRef = regexp.MustCompile(`\$(\d)`)

// firstGroup matches the first $n token of a format template, the slot
// the national-prefix and carrier formatting rules are folded into.
var firstGroup = regexp.MustCompile(`(\$\d)`)

// CompiledDesc is a PhoneNumberDesc with its patterns compiled for
// anchored full-string matching.
type CompiledDesc struct {
	national *regexp.Regexp
	possible *regexp.Regexp
	example  string
}

// Defined reports whether the plan uses this number type at all.
func (d *CompiledDesc) Defined() bool { return d != nil && d.national != nil }

// MatchesNational reports a full match of the national significant
// number against the valid-number pattern.
func (d *CompiledDesc) MatchesNational(nsn string) bool {
	return d.Defined() && d.national.MatchString(nsn)
}

// MatchesPossible reports a full match against the looser possible
// pattern (falling back to the valid pattern when none is declared).
func (d *CompiledDesc) MatchesPossible(nsn string) bool {
	if d == nil {
		return false
	}
	if d.possible != nil {
		return d.possible.MatchString(nsn)
	}
	return d.MatchesNational(nsn)
}

// ExampleNumber returns the example national significant number, if any.
func (d *CompiledDesc) ExampleNumber() string {
	if d == nil {
		return ""
	}
	return d.example
}

// CompiledFormat is a NumberFormat with its pattern compiled and the
// $NP/$FG/$CC formatting-rule tokens already resolved into Go template
// syntax. Formatting applies templates only; no token interpretation
// happens at format time.
type CompiledFormat struct {
	pattern        *regexp.Regexp
	leading        []*regexp.Regexp
	format         string
	nationalFormat string
	carrierFormat  string
	prefixOptional bool
	na             bool
}

// NA reports the "no international form" sentinel.
func (f *CompiledFormat) NA() bool { return f.na }

// RequiresNationalPrefix reports whether numbers this rule formats must
// be written with the national prefix: the rule declares a prefix slot
// and does not mark it optional.
func (f *CompiledFormat) RequiresNationalPrefix() bool {
	return f.nationalFormat != "" && !f.prefixOptional
}

// AppliesTo reports whether this rule formats the given national
// significant number: the last leading-digits pattern (when present)
// must match a prefix of it and the main pattern must match all of it.
func (f *CompiledFormat) AppliesTo(nsn string) bool {
	if len(f.leading) > 0 {
		loc := f.leading[len(f.leading)-1].FindStringIndex(nsn)
		if loc == nil || loc[0] != 0 {
			return false
		}
	}
	return f.pattern.MatchString(nsn)
}

// Apply renders the plain template.
func (f *CompiledFormat) Apply(nsn string) string {
	return f.pattern.ReplaceAllString(nsn, f.format)
}

// ApplyNational renders the template with the national prefix folded in,
// when the rule declares one.
func (f *CompiledFormat) ApplyNational(nsn string) string {
	if f.nationalFormat == "" {
		return f.Apply(nsn)
	}
	return f.pattern.ReplaceAllString(nsn, f.nationalFormat)
}

// ApplyWithCarrier renders the carrier-code template with the given
// carrier selection code. Falls back to ApplyNational when the rule has
// no carrier slot.
func (f *CompiledFormat) ApplyWithCarrier(nsn, carrierCode string) string {
	if f.carrierFormat == "" || carrierCode == "" {
		return f.ApplyNational(nsn)
	}
	tmpl := strings.ReplaceAll(f.carrierFormat, "$CC", carrierCode)
	return f.pattern.ReplaceAllString(nsn, tmpl)
}

// RegionMetadata is the compiled, immutable form of one Region record.
type RegionMetadata struct {
	id                       string
	countryCode              int
	internationalPrefix      *regexp.Regexp
	preferredIntlPrefix      string
	nationalPrefix           string
	preferredExtnPrefix      string
	nationalPrefixForParsing *regexp.Regexp
	nationalPrefixTransform  string
	mainCountryForCode       bool
	leadingZeroPossible      bool
	mobilePortable           bool
	sameMobileAndFixedLine   bool

	general     CompiledDesc
	noIntlDial  CompiledDesc
	descs       [phonenumber.Unknown]CompiledDesc
	formats     []*CompiledFormat
	intlFormats []*CompiledFormat
}

// ID returns the region code, e.g. "US".
func (r *RegionMetadata) ID() string { return r.id }

// CountryCode returns the country calling code.
func (r *RegionMetadata) CountryCode() int { return r.countryCode }

// NationalPrefix returns the display national prefix, e.g. "0".
func (r *RegionMetadata) NationalPrefix() string { return r.nationalPrefix }

// PreferredExtnPrefix returns the display prefix for extensions.
func (r *RegionMetadata) PreferredExtnPrefix() string { return r.preferredExtnPrefix }

// PreferredInternationalPrefix returns the display form of the region's
// international dialling prefix, empty when the plan declares none.
func (r *RegionMetadata) PreferredInternationalPrefix() string { return r.preferredIntlPrefix }

// MainCountryForCode reports the tie-break flag for shared calling codes.
func (r *RegionMetadata) MainCountryForCode() bool { return r.mainCountryForCode }

// LeadingZeroPossible reports whether national numbers may carry a
// significant leading zero.
func (r *RegionMetadata) LeadingZeroPossible() bool { return r.leadingZeroPossible }

// MobileNumberPortable reports the static portability flag.
func (r *RegionMetadata) MobileNumberPortable() bool { return r.mobilePortable }

// SameMobileAndFixedLinePattern reports merged fixed/mobile matching.
func (r *RegionMetadata) SameMobileAndFixedLinePattern() bool { return r.sameMobileAndFixedLine }

// General returns the union description of all valid national numbers.
func (r *RegionMetadata) General() *CompiledDesc { return &r.general }

// Desc returns the description for one number type, or nil for types a
// plan does not declare (and for the synthetic FixedLineOrMobile and
// Unknown values, which have no pattern of their own).
func (r *RegionMetadata) Desc(t phonenumber.NumberType) *CompiledDesc {
	if t < 0 || t >= phonenumber.Unknown || t == phonenumber.FixedLineOrMobile {
		return nil
	}
	d := &r.descs[t]
	if !d.Defined() {
		return nil
	}
	return d
}

// NoInternationalDialling returns the description of numbers that cannot
// be dialled from abroad.
func (r *RegionMetadata) NoInternationalDialling() *CompiledDesc { return &r.noIntlDial }

// Formats returns the ordered national display rules.
func (r *RegionMetadata) Formats() []*CompiledFormat { return r.formats }

// IntlFormats returns the international display rules, which fall back
// to Formats when the plan declares none.
func (r *RegionMetadata) IntlFormats() []*CompiledFormat {
	if len(r.intlFormats) == 0 {
		return r.formats
	}
	return r.intlFormats
}

// StripInternationalPrefix removes a leading international dialling
// prefix from a digit string. The second result reports whether one was
// found.
func (r *RegionMetadata) StripInternationalPrefix(digits string) (string, bool) {
	if r.internationalPrefix == nil {
		return digits, false
	}
	loc := r.internationalPrefix.FindStringIndex(digits)
	if loc == nil || loc[0] != 0 {
		return digits, false
	}
	return digits[loc[1]:], true
}

// StripNationalPrefix removes a national prefix (or carrier selection
// code) from a digit string, applying the transform rule when the plan
// declares one. The carrier code captured by the parsing pattern, if
// any, is returned alongside. The bool reports whether anything changed.
func (r *RegionMetadata) StripNationalPrefix(digits string) (stripped, carrierCode string, ok bool) {
	if r.nationalPrefixForParsing == nil || digits == "" {
		return digits, "", false
	}
	m := r.nationalPrefixForParsing.FindStringSubmatchIndex(digits)
	if m == nil || m[0] != 0 {
		return digits, "", false
	}
	groups := r.nationalPrefixForParsing.NumSubexp()
	// A transform rule only fires when its referenced groups captured.
	if r.nationalPrefixTransform != "" && groups > 0 && m[2] >= 0 {
		out := []byte{}
		out = r.nationalPrefixForParsing.ExpandString(out, r.nationalPrefixTransform, digits, m)
		return string(out) + digits[m[1]:], "", true
	}
	if groups > 0 && m[2] >= 0 {
		carrierCode = digits[m[2]:m[3]]
	}
	return digits[m[1]:], carrierCode, true
}

// Store is the immutable metadata table, keyed by region code and by
// country calling code. Safe for concurrent use after construction.
type Store struct {
	regions   map[string]*RegionMetadata
	byCC      map[int][]*RegionMetadata
	regionIDs []string
}

// NewStore compiles the given records into a Store. Pattern compilation
// is fanned out across regions; the first error aborts the build.
func NewStore(records []Region) (*Store, error) {
	compiled := make([]*RegionMetadata, len(records))
	var g errgroup.Group
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			rm, err := compileRegion(rec)
			if err != nil {
				return fmt.Errorf("region %s: %w", rec.ID, err)
			}
			compiled[i] = rm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Store{
		regions: make(map[string]*RegionMetadata, len(compiled)),
		byCC:    make(map[int][]*RegionMetadata),
	}
	for _, rm := range compiled {
		if _, dup := s.regions[rm.id]; dup {
			return nil, fmt.Errorf("duplicate region %s", rm.id)
		}
		s.regions[rm.id] = rm
		s.regionIDs = append(s.regionIDs, rm.id)
		s.byCC[rm.countryCode] = append(s.byCC[rm.countryCode], rm)
	}
	sort.Strings(s.regionIDs)
	// The main country for a shared code leads its candidate list.
	for _, list := range s.byCC {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].mainCountryForCode && !list[j].mainCountryForCode
		})
	}
	return s, nil
}

// Region returns the metadata for a region code, or nil when unknown.
func (s *Store) Region(id string) *RegionMetadata { return s.regions[id] }

// RegionsForCountryCode returns every region sharing a country calling
// code, main country first. The returned slice must not be mutated.
func (s *Store) RegionsForCountryCode(cc int) []*RegionMetadata { return s.byCC[cc] }

// MetadataForCountryCode returns the default (main) region for a country
// calling code, or nil when the code is unknown.
func (s *Store) MetadataForCountryCode(cc int) *RegionMetadata {
	list := s.byCC[cc]
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// HasCountryCode reports whether any region declares this calling code.
func (s *Store) HasCountryCode(cc int) bool { return len(s.byCC[cc]) > 0 }

// CountryCodeForRegion returns the calling code of a region, 0 if unknown.
func (s *Store) CountryCodeForRegion(id string) int {
	rm := s.regions[id]
	if rm == nil {
		return 0
	}
	return rm.countryCode
}

// SupportedRegions returns all region codes in sorted order.
func (s *Store) SupportedRegions() []string { return s.regionIDs }

// Lazy guards a Store build so that concurrent first use triggers
// exactly one compilation; later calls observe the same result.
type Lazy struct {
	once  sync.Once
	build func() ([]Region, error)
	store *Store
	err   error
}

// NewLazy wraps a record source in a one-time build guard.
func NewLazy(build func() ([]Region, error)) *Lazy {
	return &Lazy{build: build}
}

// Store returns the compiled store, building it on first call.
func (l *Lazy) Store() (*Store, error) {
	l.once.Do(func() {
		records, err := l.build()
		if err != nil {
			l.err = err
			return
		}
		l.store, l.err = NewStore(records)
	})
	return l.store, l.err
}

func compileRegion(rec Region) (*RegionMetadata, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("missing region id")
	}
	if rec.CountryCode <= 0 || rec.CountryCode > 999 {
		return nil, fmt.Errorf("country calling code %d out of range", rec.CountryCode)
	}
	rm := &RegionMetadata{
		id:                     rec.ID,
		countryCode:            rec.CountryCode,
		preferredIntlPrefix:    rec.PreferredInternationalPrefix,
		nationalPrefix:         rec.NationalPrefix,
		preferredExtnPrefix:    rec.PreferredExtnPrefix,
		mainCountryForCode:     rec.MainCountryForCode,
		leadingZeroPossible:    rec.LeadingZeroPossible,
		mobilePortable:         rec.MobileNumberPortableRegion,
		sameMobileAndFixedLine: rec.SameMobileAndFixedLinePattern,
	}

	var err error
	if rec.InternationalPrefix != "" {
		rm.internationalPrefix, err = compilePrefix(rec.InternationalPrefix)
		if err != nil {
			return nil, fmt.Errorf("international prefix: %w", err)
		}
	}
	npp := rec.NationalPrefixForParsing
	if npp == "" {
		npp = rec.NationalPrefix
	}
	if npp != "" {
		rm.nationalPrefixForParsing, err = compilePrefix(npp)
		if err != nil {
			return nil, fmt.Errorf("national prefix for parsing: %w", err)
		}
		rm.nationalPrefixTransform = groupRef.ReplaceAllString(rec.NationalPrefixTransformRule, `$${${1}}`)
	}

	if err := compileDesc(&rm.general, rec.GeneralDesc); err != nil {
		return nil, fmt.Errorf("general desc: %w", err)
	}
	typed := []struct {
		t phonenumber.NumberType
		d PhoneNumberDesc
	}{
		{phonenumber.FixedLine, rec.FixedLine},
		{phonenumber.Mobile, rec.Mobile},
		{phonenumber.TollFree, rec.TollFree},
		{phonenumber.PremiumRate, rec.PremiumRate},
		{phonenumber.SharedCost, rec.SharedCost},
		{phonenumber.PersonalNumber, rec.PersonalNumber},
		{phonenumber.VOIP, rec.VOIP},
		{phonenumber.Pager, rec.Pager},
		{phonenumber.UAN, rec.UAN},
		{phonenumber.Voicemail, rec.Voicemail},
		{phonenumber.ShortCode, rec.ShortCode},
		{phonenumber.Emergency, rec.Emergency},
		{phonenumber.SMSService, rec.SMSServices},
		{phonenumber.CarrierSpecific, rec.CarrierSpecific},
	}
	for _, td := range typed {
		if err := compileDesc(&rm.descs[td.t], td.d); err != nil {
			return nil, fmt.Errorf("%s desc: %w", td.t, err)
		}
	}
	if err := compileDesc(&rm.noIntlDial, rec.NoInternationalDialling); err != nil {
		return nil, fmt.Errorf("no-international-dialling desc: %w", err)
	}

	rm.formats, err = compileFormats(rec.NumberFormats, rec.NationalPrefix)
	if err != nil {
		return nil, fmt.Errorf("number formats: %w", err)
	}
	rm.intlFormats, err = compileFormats(rec.IntlNumberFormats, rec.NationalPrefix)
	if err != nil {
		return nil, fmt.Errorf("intl number formats: %w", err)
	}
	return rm, nil
}

func compileDesc(dst *CompiledDesc, src PhoneNumberDesc) error {
	var err error
	if src.NationalNumberPattern != "" {
		dst.national, err = compileFull(src.NationalNumberPattern)
		if err != nil {
			return err
		}
	}
	if src.PossibleNumberPattern != "" {
		dst.possible, err = compileFull(src.PossibleNumberPattern)
		if err != nil {
			return err
		}
	}
	dst.example = src.ExampleNumber
	return nil
}

func compileFormats(src []NumberFormat, nationalPrefix string) ([]*CompiledFormat, error) {
	if len(src) == 0 {
		return nil, nil
	}
	out := make([]*CompiledFormat, 0, len(src))
	for i, nf := range src {
		cf, err := compileFormat(nf, nationalPrefix)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, cf)
	}
	return out, nil
}

func compileFormat(nf NumberFormat, nationalPrefix string) (*CompiledFormat, error) {
	cf := &CompiledFormat{
		prefixOptional: nf.NationalPrefixOptionalWhenFormatting,
		na:             nf.Format == "NA",
	}
	var err error
	cf.pattern, err = compileFull(nf.Pattern)
	if err != nil {
		return nil, err
	}
	for _, ld := range nf.LeadingDigits {
		re, err := compilePrefix(ld)
		if err != nil {
			return nil, fmt.Errorf("leading digits: %w", err)
		}
		cf.leading = append(cf.leading, re)
	}
	if cf.na {
		return cf, nil
	}
	cf.format = groupRef.ReplaceAllString(nf.Format, `$${${1}}`)

	// Formatting-rule tokens are resolved here, once, into the template's
	// own capture-group syntax.
	if rule := nf.NationalPrefixFormattingRule; rule != "" {
		rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
		rule = strings.ReplaceAll(rule, "$FG", "$1")
		// The rule replaces only the first group slot of the template.
		national := nf.Format
		if idx := firstGroup.FindStringIndex(nf.Format); idx != nil {
			national = nf.Format[:idx[0]] + rule + nf.Format[idx[1]:]
		}
		cf.nationalFormat = groupRef.ReplaceAllString(national, `$${${1}}`)
	}
	if rule := nf.DomesticCarrierCodeFormattingRule; rule != "" {
		rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
		rule = strings.ReplaceAll(rule, "$FG", "$1")
		carrier := nf.Format
		if idx := firstGroup.FindStringIndex(nf.Format); idx != nil {
			carrier = nf.Format[:idx[0]] + rule + nf.Format[idx[1]:]
		}
		cf.carrierFormat = groupRef.ReplaceAllString(carrier, `$${${1}}`)
	}
	return cf, nil
}

func compileFull(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

func compilePrefix(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)`)
}
