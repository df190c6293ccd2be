// Package matcher scans free text for phone numbers. A Matcher is a
// forward-only, pull-based state machine: each call to Next parses and
// vets the next number-like substring until one survives the configured
// leniency and the false-positive heuristics. Matchers own their scan
// state and must not be shared across goroutines; the engine and
// metadata behind them may be shared freely.
package matcher

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"phonelib/pkg/phonenumber"
	"phonelib/pkg/phoneutil"
)

// Match is one number found in text: the half-open byte range
// [Start, End()) of the exact matched substring and the parsed number.
type Match struct {
	// Start is the byte offset of Raw in the scanned text.
	Start int

	// Raw is the exact matched substring.
	Raw string

	// Number is the parsed number, with RawInput and provenance kept.
	Number phonenumber.PhoneNumber
}

// End returns the byte offset just past the match.
func (m Match) End() int { return m.Start + len(m.Raw) }

// Length returns the match length in bytes.
func (m Match) Length() int { return len(m.Raw) }

type state int

const (
	notReady state = iota
	ready
	done
)

const (
	// punct separates digit blocks inside a candidate. Commas are
	// deliberately excluded: they end a candidate, which is what keeps
	// list-like text such as "[79.964, 81.191]" from gluing into one
	// giant candidate.
	punct = `[-.()\[\]/ \t~＿－（）［］]`
)

var (
	candidatePattern = regexp.MustCompile(
		`(?:[(\[（［]` + punct + `{0,2})?[+＋]?\p{Nd}(?:` + punct + `{0,4}\p{Nd}){1,19}` +
			`(?:` + punct + `{0,4}(?:[xX#＃~]|ext\.?)` + punct + `{0,2}\p{Nd}{1,7})?[)\]）］]?`)

	// slashSeparatedDates recognizes date-shaped runs like 12/10/2023.
	slashSeparatedDates = regexp.MustCompile(`(?:[0-3]?\d/[01]?\d|[01]?\d/[0-3]?\d)/(?:[12]\d)?\d{2}`)

	// timeStamp recognizes the date half of "2012-01-02 08:00"; the
	// matcher also requires the ":mm" tail right after the candidate.
	timeStamp       = regexp.MustCompile(`[12]\d{3}[-/]?[01]\d[-/]?[0-3]\d +[0-2]\d$`)
	timeStampSuffix = regexp.MustCompile(`^:[0-5]\d`)

	// pubPages recognizes page-citation ranges like "1234-1235 (2000)".
	pubPages = regexp.MustCompile(`\d{1,5}-+\d{1,5}\s{0,4}\(\d{1,4}`)

	// secondNumberStart cuts a candidate before a second number glued
	// on with a slash or backslash, e.g. "tel/fax".
	secondNumberStart = regexp.MustCompile(`[\\/] *x`)
)

// Matcher iterates over the phone numbers in one piece of text.
type Matcher struct {
	util     *phoneutil.Util
	text     string
	region   string
	leniency Leniency
	maxTries int

	state   state
	search  int
	pending Match
}

// New returns a matcher over text using the caller's default region.
// maxTries bounds how many failed candidates are examined before the
// sequence ends; successful matches do not consume it. Invalid
// preconditions (nil engine, non-positive budget) yield an
// immediately-empty sequence rather than an error, keeping the lazy
// contract uniform for callers.
func New(util *phoneutil.Util, text, defaultRegion string, leniency Leniency, maxTries int) *Matcher {
	m := &Matcher{
		util:     util,
		text:     text,
		region:   defaultRegion,
		leniency: leniency,
		maxTries: maxTries,
	}
	if util == nil || maxTries <= 0 || leniency < Possible || leniency > ExactGrouping {
		m.state = done
	}
	return m
}

// HasNext reports whether another match is available, scanning forward
// as needed.
func (m *Matcher) HasNext() bool {
	if m.state == notReady {
		if next, ok := m.find(); ok {
			m.pending = next
			m.state = ready
		} else {
			m.state = done
		}
	}
	return m.state == ready
}

// Next returns the next match. The second result is false once the text
// (or the failure budget) is exhausted.
func (m *Matcher) Next() (Match, bool) {
	if !m.HasNext() {
		return Match{}, false
	}
	m.state = notReady
	return m.pending, true
}

// find advances the scan cursor until a candidate survives every check.
// The cursor moves strictly forward on every iteration, so iteration
// over arbitrarily hostile text terminates in time linear in its length.
func (m *Matcher) find() (Match, bool) {
	for m.search < len(m.text) && m.maxTries > 0 {
		loc := candidatePattern.FindStringIndex(m.text[m.search:])
		if loc == nil {
			break
		}
		start := m.search + loc[0]
		candidate := m.text[start : m.search+loc[1]]
		candidate = trimAfterSecondNumber(candidate)

		if match, ok := m.extractMatch(candidate, start); ok {
			m.search = match.End()
			return match, true
		}
		m.search = start + len(candidate)
		m.maxTries--
	}
	return Match{}, false
}

// extractMatch vets one candidate: bracket balance, contextual
// false-positive heuristics, a real parse, then the leniency policy.
func (m *Matcher) extractMatch(candidate string, offset int) (Match, bool) {
	metrics := m.util.Metrics()
	reject := func(outcome string) (Match, bool) {
		metrics.ObserveMatchCandidate(outcome)
		m.util.Logger().Debug("candidate rejected",
			slog.String("outcome", outcome), slog.Int("offset", offset))
		return Match{}, false
	}

	if !bracketsBalanced(candidate) {
		return reject("unbalanced_brackets")
	}
	if slashSeparatedDates.MatchString(candidate) {
		return reject("date")
	}
	if timeStamp.MatchString(candidate) && timeStampSuffix.MatchString(m.text[offset+len(candidate):]) {
		return reject("timestamp")
	}
	if pubPages.MatchString(candidate) {
		return reject("citation")
	}
	if m.surroundingTextHostile(candidate, offset) {
		return reject("context")
	}

	num, err := m.util.ParseAndKeepRawInput(candidate, m.region)
	if err != nil {
		return reject("parse_error")
	}
	if !m.leniency.verify(m.util, num, candidate) {
		return reject("leniency")
	}
	metrics.ObserveMatchCandidate("match")
	return Match{Start: offset, Raw: candidate, Number: num}, true
}

// surroundingTextHostile rejects candidates embedded in words, currency
// amounts or percentages, judged by the characters immediately around
// the span.
func (m *Matcher) surroundingTextHostile(candidate string, offset int) bool {
	if before := m.text[:offset]; before != "" {
		r := lastRune(before)
		if unicode.In(r, unicode.Latin) && unicode.IsLetter(r) {
			return true
		}
		if r == '$' || r == '%' || unicode.In(r, unicode.Sc) {
			return true
		}
	}
	if after := m.text[offset+len(candidate):]; after != "" {
		r := firstRune(after)
		if unicode.In(r, unicode.Latin) && unicode.IsLetter(r) {
			return true
		}
		if r == '%' || unicode.In(r, unicode.Sc) {
			return true
		}
	}
	return false
}

// bracketsBalanced accepts sequential balanced bracket pairs and
// rejects unbalanced or nested ones; numbers legitimately carry at most
// flat grouping like "(04) 360 2003".
func bracketsBalanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '[', '（', '［':
			depth++
			if depth > 1 {
				return false
			}
		case ')', ']', '）', '］':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

func trimAfterSecondNumber(candidate string) string {
	if loc := secondNumberStart.FindStringIndex(candidate); loc != nil {
		trimmed := strings.TrimRightFunc(candidate[:loc[0]], func(r rune) bool {
			return !unicode.IsDigit(r)
		})
		if trimmed != "" {
			return trimmed
		}
	}
	return candidate
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
