package phoneutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Global plausibility bounds, independent of any loaded metadata. These
// let viability checks run as a cheap pre-filter even before region
// patterns are consulted.
const (
	minLengthNSN         = 2
	maxLengthNSN         = 17
	maxLengthCountryCode = 3
	maxInputLength       = 250
)

var (
	// leadingJunk strips everything before the first plausible start of
	// a number: a plus sign (either width) or a decimal digit in any
	// script.
	leadingJunk = regexp.MustCompile(`^[^+＋\p{Nd}]+`)

	// trailingJunk strips trailing characters that can never end a
	// number (everything but digits and the # sign terminating some
	// extension conventions).
	trailingJunk = regexp.MustCompile(`[^\p{Nd}#]+$`)

	// extnPattern captures a trailing extension introduced by one of
	// the conventional tokens. Anchored at the end so the right-most
	// occurrence wins.
	extnPattern = regexp.MustCompile(`(?i)[ \t,]*(?:ext(?:ensi[oó]n)?\.?|anexo|int|[,;xX#~＃ｘＸ])[ \t:.\-]*(\p{Nd}{1,7})[ \t]*#?$`)

	// rfc3966Extn captures the ;ext= form of RFC 3966 tel URIs.
	rfc3966Extn = regexp.MustCompile(`;ext=(\p{Nd}{1,7})`)
)

// foldDigits maps fullwidth and halfwidth forms onto their canonical
// counterparts, then remaps the remaining non-Latin decimal digit blocks
// the numbering plans care about onto ASCII.
func foldDigits(s string) string {
	folded, _, err := transform.String(width.Fold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 0x0660 && r <= 0x0669: // Arabic-Indic
			b.WriteRune('0' + (r - 0x0660))
		case r >= 0x06F0 && r <= 0x06F9: // Eastern Arabic-Indic
			b.WriteRune('0' + (r - 0x06F0))
		case r >= 0x0966 && r <= 0x096F: // Devanagari
			b.WriteRune('0' + (r - 0x0966))
		case r >= 0x0E50 && r <= 0x0E59: // Thai
			b.WriteRune('0' + (r - 0x0E50))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractPossibleNumber trims the characters around the number-like core
// of the input: leading junk up to the first plus or digit, and trailing
// characters that cannot belong to a number.
func extractPossibleNumber(s string) string {
	s = leadingJunk.ReplaceAllString(s, "")
	return trailingJunk.ReplaceAllString(s, "")
}

// maybeStripExtension splits a trailing extension off the candidate,
// returning the shortened candidate and the extension digits. RFC 3966
// ;ext= is recognized first, then the conventional spoken/written
// tokens.
func maybeStripExtension(candidate string) (string, string) {
	if m := rfc3966Extn.FindStringSubmatchIndex(candidate); m != nil {
		ext := foldOnlyDigits(candidate[m[2]:m[3]])
		return candidate[:m[0]] + candidate[m[1]:], ext
	}
	m := extnPattern.FindStringSubmatchIndex(candidate)
	if m == nil {
		return candidate, ""
	}
	// Only strip when what remains is still number-like; "3 years" must
	// not become number "3" with a lost suffix.
	head := candidate[:m[0]]
	if countDigits(head) < minLengthNSN {
		return candidate, ""
	}
	return head, foldOnlyDigits(candidate[m[2]:m[3]])
}

// normalizeNumber reduces a candidate to its canonical dialling form: a
// single leading '+' when any plus variant preceded the digits, followed
// by the ASCII digits only. Separators, brackets and stray letters are
// dropped.
func normalizeNumber(candidate string) (digits string, hasPlus bool) {
	folded := foldDigits(candidate)
	var b strings.Builder
	seenDigit := false
	for _, r := range folded {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case (r == '+' || r == '＋') && !seenDigit:
			hasPlus = true
		}
	}
	return b.String(), hasPlus
}

// foldOnlyDigits keeps just the ASCII-folded digits of s.
func foldOnlyDigits(s string) string {
	d, _ := normalizeNumber(s)
	return d
}

// countDigits counts decimal digits in any script.
func countDigits(s string) int {
	return len(foldOnlyDigits(s))
}

// isViableNumber is the cheap global pre-filter: enough digits to be any
// phone number at all.
func isViableNumber(candidate string) bool {
	n := countDigits(candidate)
	return n >= minLengthNSN
}
