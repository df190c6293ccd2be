package phoneutil

import (
	"regexp"
	"strconv"
	"strings"

	"phonelib/pkg/metadata"
	"phonelib/pkg/phonenumber"
)

// Style selects the rendering of a formatted number.
type Style int

// Formatting styles.
const (
	E164 Style = iota
	International
	National
	RFC3966
)

// defaultExtnPrefix joins an extension to a formatted number when the
// region declares no preferred prefix.
const defaultExtnPrefix = " ext. "

var nonDigitRun = regexp.MustCompile(`\D+`)

// Format renders a parsed number for display. Formatting never fails:
// numbers without an applicable rule fall back to their plain digits,
// and E164 ignores display rules entirely.
func (u *Util) Format(num phonenumber.PhoneNumber, style Style) string {
	nsn := num.NationalSignificantNumber()
	ccPrefix := "+" + strconv.Itoa(num.CountryCode)
	if style == E164 {
		return ccPrefix + nsn
	}

	rm := u.metadataForNumber(num)
	if rm == nil {
		return ccPrefix + nsn
	}

	switch style {
	case National:
		return u.formatNSN(nsn, rm, National) + u.extnSuffix(num, rm)
	case International:
		return ccPrefix + " " + u.formatNSN(nsn, rm, International) + u.extnSuffix(num, rm)
	case RFC3966:
		groups := nonDigitRun.ReplaceAllString(u.formatNSN(nsn, rm, International), "-")
		groups = strings.Trim(groups, "-")
		out := "tel:" + ccPrefix + "-" + groups
		if num.Extension != "" {
			out += ";ext=" + num.Extension
		}
		return out
	}
	return ccPrefix + nsn
}

// FormatOutOfCountryCallingNumber renders the number as dialled from
// regionCallingFrom: the caller's preferred international dialling
// prefix, the country calling code, then the internationally formatted
// national number. Within the number's own country the national format
// is used. Numbers whose plan bars international dialling, and callers
// whose plan declares no display form for the dialling prefix, fall
// back to the International style rather than a sequence that cannot be
// dialled.
func (u *Util) FormatOutOfCountryCallingNumber(num phonenumber.PhoneNumber, regionCallingFrom string) string {
	from := u.store.Region(regionCallingFrom)
	if from == nil {
		return u.Format(num, International)
	}
	if from.CountryCode() == num.CountryCode {
		return u.Format(num, National)
	}
	idd := from.PreferredInternationalPrefix()
	if idd == "" || !u.CanBeInternationallyDialled(num) {
		return u.Format(num, International)
	}
	nsn := num.NationalSignificantNumber()
	rm := u.metadataForNumber(num)
	if rm == nil {
		return idd + " " + strconv.Itoa(num.CountryCode) + " " + nsn
	}
	return idd + " " + strconv.Itoa(num.CountryCode) + " " + u.formatNSN(nsn, rm, International) + u.extnSuffix(num, rm)
}

// FormatNationalNumberWithCarrierCode renders the national form with a
// carrier selection code in the rule's $CC slot. The carrier code the
// number was dialled with wins over the fallback. Rules without a
// carrier slot format as plain national.
func (u *Util) FormatNationalNumberWithCarrierCode(num phonenumber.PhoneNumber, fallbackCarrier string) string {
	carrier := num.PreferredDomesticCarrierCode
	if carrier == "" {
		carrier = fallbackCarrier
	}
	nsn := num.NationalSignificantNumber()
	rm := u.metadataForNumber(num)
	if rm == nil {
		return nsn
	}
	f := chooseFormat(rm.Formats(), nsn)
	if f == nil || f.NA() {
		return nsn + u.extnSuffix(num, rm)
	}
	return f.ApplyWithCarrier(nsn, carrier) + u.extnSuffix(num, rm)
}

// formatNSN applies the first applicable display rule of the requested
// flavor. The "NA" sentinel on an international rule silently falls
// back to the national rule set.
func (u *Util) formatNSN(nsn string, rm *metadata.RegionMetadata, style Style) string {
	formats := rm.Formats()
	if style == International {
		formats = rm.IntlFormats()
	}
	f := chooseFormat(formats, nsn)
	if f == nil {
		return nsn
	}
	if f.NA() {
		if style == International {
			if nf := chooseFormat(rm.Formats(), nsn); nf != nil && !nf.NA() {
				return nf.Apply(nsn)
			}
		}
		return nsn
	}
	if style == National {
		return f.ApplyNational(nsn)
	}
	return f.Apply(nsn)
}

func (u *Util) extnSuffix(num phonenumber.PhoneNumber, rm *metadata.RegionMetadata) string {
	if num.Extension == "" {
		return ""
	}
	prefix := rm.PreferredExtnPrefix()
	if prefix == "" {
		prefix = defaultExtnPrefix
	}
	return prefix + num.Extension
}

func chooseFormat(formats []*metadata.CompiledFormat, nsn string) *metadata.CompiledFormat {
	for _, f := range formats {
		if f.AppliesTo(nsn) {
			return f
		}
	}
	return nil
}
