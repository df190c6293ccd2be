package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNationalSignificantNumber_LeadingZeros validates the invariant
// that significant leading zeros are metadata, reinstated only when
// rendering the digit string, never part of the numeric value.
//
// Justification: every downstream consumer (validation, formatting,
// prefix lookup) keys off this digit string; a dropped or doubled zero
// corrupts all of them at once.
func TestNationalSignificantNumber_LeadingZeros(t *testing.T) {
	tests := []struct {
		name string
		num  PhoneNumber
		want string
	}{
		{
			name: "plain number",
			num:  PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			want: "33316005",
		},
		{
			name: "single italian leading zero",
			num:  PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
			want: "0236618300",
		},
		{
			name: "multiple leading zeros",
			num:  PhoneNumber{CountryCode: 39, NationalNumber: 1234, ItalianLeadingZero: true, NumberOfLeadingZeros: 2},
			want: "001234",
		},
		{
			name: "no italian zero means no padding",
			num:  PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			want: "2015550123",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.num.NationalSignificantNumber())
		})
	}
}

func TestLeadingZeros(t *testing.T) {
	assert.Equal(t, 0, PhoneNumber{NationalNumber: 123}.LeadingZeros())
	assert.Equal(t, 1, PhoneNumber{NationalNumber: 123, ItalianLeadingZero: true}.LeadingZeros())
	assert.Equal(t, 3, PhoneNumber{NationalNumber: 123, ItalianLeadingZero: true, NumberOfLeadingZeros: 3}.LeadingZeros())
}

// TestStructuralEquality documents that equality is over all fields,
// provenance included: two numbers with the same digits but different
// raw inputs are distinct values. Numeric equivalence is a separate
// predicate (phoneutil.IsNumberMatch).
func TestStructuralEquality(t *testing.T) {
	a := PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	b := a
	assert.Equal(t, a, b)

	b.RawInput = "03-331 6005"
	b.CountryCodeSource = CountryCodeFromDefaultRegion
	assert.NotEqual(t, a, b)
}

func TestCountryCodeSourceString(t *testing.T) {
	tests := []struct {
		source CountryCodeSource
		want   string
	}{
		{CountryCodeUnspecified, "UNSPECIFIED"},
		{CountryCodeFromNumberWithPlusSign, "FROM_NUMBER_WITH_PLUS_SIGN"},
		{CountryCodeFromNumberWithIDD, "FROM_NUMBER_WITH_IDD"},
		{CountryCodeFromNumberWithoutPlusSign, "FROM_NUMBER_WITHOUT_PLUS_SIGN"},
		{CountryCodeFromDefaultRegion, "FROM_DEFAULT_COUNTRY"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.source.String())
	}
}

func TestNumberTypeString(t *testing.T) {
	assert.Equal(t, "FIXED_LINE", FixedLine.String())
	assert.Equal(t, "FIXED_LINE_OR_MOBILE", FixedLineOrMobile.String())
	assert.Equal(t, "SHORT_CODE", ShortCode.String())
	assert.Equal(t, "EMERGENCY", Emergency.String())
	assert.Equal(t, "SMS_SERVICE", SMSService.String())
	assert.Equal(t, "CARRIER_SPECIFIC", CarrierSpecific.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "NumberType(99)", NumberType(99).String())
}
