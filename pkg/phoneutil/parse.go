package phoneutil

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"phonelib/pkg/metadata"
	"phonelib/pkg/phonenumber"
)

// Parse decomposes text into a structured number, resolving the country
// calling code from a leading plus sign, an international dialling
// prefix, an implicit leading country code, or the default region, in
// that order. Parsing fails only when no decomposition exists; a
// well-formed but invalid number parses cleanly (use IsValidNumber).
//
// Provenance fields (RawInput, CountryCodeSource, carrier code) are left
// unset; use ParseAndKeepRawInput when they matter.
func (u *Util) Parse(input, defaultRegion string) (phonenumber.PhoneNumber, error) {
	return u.parse(input, defaultRegion, false)
}

// ParseAndKeepRawInput parses like Parse and additionally records the
// exact input, how the country code was derived, and any carrier
// selection code that was dialled.
func (u *Util) ParseAndKeepRawInput(input, defaultRegion string) (phonenumber.PhoneNumber, error) {
	return u.parse(input, defaultRegion, true)
}

func (u *Util) parse(input, defaultRegion string, keepRaw bool) (phonenumber.PhoneNumber, error) {
	fail := func(err error) (phonenumber.PhoneNumber, error) {
		reason := failureReason(err)
		u.metrics.ObserveParseFailure(reason)
		u.logger.Debug("parse rejected", slog.String("reason", reason))
		return phonenumber.PhoneNumber{}, err
	}

	if input == "" {
		return fail(fmt.Errorf("%w: empty input", phonenumber.ErrNotANumber))
	}
	if len(input) > maxInputLength {
		return fail(fmt.Errorf("%w: input exceeds %d bytes", phonenumber.ErrTooLong, maxInputLength))
	}
	candidate := extractPossibleNumber(input)
	if !isViableNumber(candidate) {
		return fail(fmt.Errorf("%w: %q", phonenumber.ErrNotANumber, input))
	}
	candidate, ext := maybeStripExtension(candidate)
	digits, hasPlus := normalizeNumber(candidate)

	defMeta := u.store.Region(defaultRegion)
	if !hasPlus && defMeta == nil {
		return fail(fmt.Errorf("%w: no default region and no international format", phonenumber.ErrInvalidCountryCode))
	}

	cc, national, source, err := u.maybeExtractCountryCode(digits, hasPlus, defMeta)
	if err != nil {
		return fail(err)
	}

	rm := u.regionForParsing(cc, defMeta)
	if rm == nil {
		return fail(fmt.Errorf("%w: +%d", phonenumber.ErrInvalidCountryCode, cc))
	}

	carrierCode := ""
	if stripped, carrier, changed := rm.StripNationalPrefix(national); changed {
		// A strip that turns a valid number invalid is rolled back.
		if !rm.General().MatchesNational(national) || rm.General().MatchesNational(stripped) {
			national = stripped
			carrierCode = carrier
		}
	}

	if len(national) < minLengthNSN {
		return fail(fmt.Errorf("%w: %q", phonenumber.ErrTooShortNSN, national))
	}
	if len(national) > maxLengthNSN {
		return fail(fmt.Errorf("%w: %q", phonenumber.ErrTooLong, national))
	}

	var num phonenumber.PhoneNumber
	num.CountryCode = cc
	setNationalNumber(&num, national, rm.LeadingZeroPossible())
	num.Extension = ext
	if keepRaw {
		num.RawInput = input
		num.CountryCodeSource = source
		num.PreferredDomesticCarrierCode = carrierCode
	}
	u.metrics.ObserveParse(source.String())
	return num, nil
}

// maybeExtractCountryCode resolves the country calling code of a
// normalized digit string per the priority order: explicit plus sign,
// international dialling prefix of the default region, implicit leading
// country code, then the default region's own code.
func (u *Util) maybeExtractCountryCode(digits string, hasPlus bool, defMeta *metadata.RegionMetadata) (int, string, phonenumber.CountryCodeSource, error) {
	const unset = phonenumber.CountryCodeUnspecified

	if hasPlus {
		if len(digits) <= maxLengthCountryCode {
			return 0, "", unset, fmt.Errorf("%w: %q", phonenumber.ErrTooShortAfterIDD, digits)
		}
		cc, rest := u.extractCountryCode(digits)
		if cc == 0 {
			return 0, "", unset, fmt.Errorf("%w: %q", phonenumber.ErrInvalidCountryCode, digits)
		}
		return cc, rest, phonenumber.CountryCodeFromNumberWithPlusSign, nil
	}

	if stripped, ok := defMeta.StripInternationalPrefix(digits); ok && stripped != digits {
		if len(stripped) <= maxLengthCountryCode {
			return 0, "", unset, fmt.Errorf("%w: %q", phonenumber.ErrTooShortAfterIDD, digits)
		}
		cc, rest := u.extractCountryCode(stripped)
		if cc == 0 {
			return 0, "", unset, fmt.Errorf("%w: %q", phonenumber.ErrInvalidCountryCode, stripped)
		}
		return cc, rest, phonenumber.CountryCodeFromNumberWithIDD, nil
	}

	// A number carrying its own country code without plus or IDD, e.g.
	// "12015550123" parsed with default region US. Only committed when
	// dropping the code is what makes the number match the plan.
	ccStr := strconv.Itoa(defMeta.CountryCode())
	if strings.HasPrefix(digits, ccStr) && len(digits) > len(ccStr) {
		potential := digits[len(ccStr):]
		strippedPotential := potential
		if s, _, changed := defMeta.StripNationalPrefix(potential); changed {
			strippedPotential = s
		}
		gen := defMeta.General()
		matchesWithoutCode := gen.MatchesNational(potential) || gen.MatchesNational(strippedPotential)
		if (!gen.MatchesNational(digits) && matchesWithoutCode) || len(digits) > maxLengthNSN {
			return defMeta.CountryCode(), potential, phonenumber.CountryCodeFromNumberWithoutPlusSign, nil
		}
	}

	return defMeta.CountryCode(), digits, phonenumber.CountryCodeFromDefaultRegion, nil
}

// extractCountryCode matches the longest known country calling code at
// the head of the digit string.
func (u *Util) extractCountryCode(digits string) (int, string) {
	maxLen := maxLengthCountryCode
	if len(digits) < maxLen {
		maxLen = len(digits)
	}
	for i := maxLen; i >= 1; i-- {
		cc, err := strconv.Atoi(digits[:i])
		if err != nil {
			continue
		}
		if u.store.HasCountryCode(cc) {
			return cc, digits[i:]
		}
	}
	return 0, digits
}

// regionForParsing picks the metadata used for national-prefix rules:
// the default region when it shares the resolved code, otherwise the
// main country for that code.
func (u *Util) regionForParsing(cc int, defMeta *metadata.RegionMetadata) *metadata.RegionMetadata {
	if defMeta != nil && defMeta.CountryCode() == cc {
		return defMeta
	}
	return u.store.MetadataForCountryCode(cc)
}

// setNationalNumber stores the digit run as the numeric national
// number, recording significant leading zeros for plans that allow
// them. Zeros are metadata, not part of the integer value.
func setNationalNumber(num *phonenumber.PhoneNumber, digits string, leadingZeroPossible bool) {
	if leadingZeroPossible && len(digits) > 1 && digits[0] == '0' {
		num.ItalianLeadingZero = true
		zeros := 1
		for zeros < len(digits)-1 && digits[zeros] == '0' {
			zeros++
		}
		if zeros > 1 {
			num.NumberOfLeadingZeros = zeros
		}
	}
	num.NationalNumber, _ = strconv.ParseUint(digits, 10, 64)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, phonenumber.ErrInvalidCountryCode):
		return "invalid_country_code"
	case errors.Is(err, phonenumber.ErrTooShortAfterIDD):
		return "too_short_after_idd"
	case errors.Is(err, phonenumber.ErrTooShortNSN):
		return "too_short_nsn"
	case errors.Is(err, phonenumber.ErrTooLong):
		return "too_long"
	default:
		return "not_a_number"
	}
}
