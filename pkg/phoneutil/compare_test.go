package phoneutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phonelib/pkg/phonenumber"
)

// TestIsNumberMatch validates the numeric-equivalence predicate:
// provenance never influences the grade, missing country codes degrade
// the match, suffix relationships degrade it further.
func TestIsNumberMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b phonenumber.PhoneNumber
		want MatchType
	}{
		{
			name: "identical numbers",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			b:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			want: ExactMatch,
		},
		{
			name: "provenance ignored",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, RawInput: "03-331 6005", CountryCodeSource: phonenumber.CountryCodeFromDefaultRegion},
			b:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			want: ExactMatch,
		},
		{
			name: "matching extensions",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "123"},
			b:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "123"},
			want: ExactMatch,
		},
		{
			name: "conflicting extensions",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "123"},
			b:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "456"},
			want: NoMatch,
		},
		{
			name: "one side missing country code",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			b:    phonenumber.PhoneNumber{NationalNumber: 33316005},
			want: NSNMatch,
		},
		{
			name: "national number suffix without country code",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			b:    phonenumber.PhoneNumber{NationalNumber: 3316005},
			want: ShortNSNMatch,
		},
		{
			name: "suffix with matching country codes",
			a:    phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			b:    phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 5550123},
			want: ShortNSNMatch,
		},
		{
			name: "different country codes",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			b:    phonenumber.PhoneNumber{CountryCode: 44, NationalNumber: 33316005},
			want: NoMatch,
		},
		{
			name: "different numbers",
			a:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			b:    phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316006},
			want: NoMatch,
		},
		{
			name: "italian zero distinguishes numbers",
			a:    phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
			b:    phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300},
			want: ShortNSNMatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumberMatch(tt.a, tt.b))
			assert.Equal(t, tt.want, IsNumberMatch(tt.b, tt.a), "grade must be symmetric")
		})
	}
}

func TestMatchTypeString(t *testing.T) {
	assert.Equal(t, "EXACT_MATCH", ExactMatch.String())
	assert.Equal(t, "NO_MATCH", NoMatch.String())
	assert.Equal(t, "NO_MATCH", MatchType(42).String())
}
