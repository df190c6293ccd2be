package phoneutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonelib/pkg/phonenumber"
)

// TestFormat validates the four display styles over several plans. The
// expected strings pin down template substitution, national-prefix
// folding and rule selection by leading digits.
func TestFormat(t *testing.T) {
	u := newTestUtil(t)

	tests := []struct {
		name  string
		num   phonenumber.PhoneNumber
		style Style
		want  string
	}{
		{
			name:  "us national",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			style: National,
			want:  "(201) 555-0123",
		},
		{
			name:  "us international uses the intl rule set",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			style: International,
			want:  "+1 201 555 0123",
		},
		{
			name:  "us e164",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			style: E164,
			want:  "+12015550123",
		},
		{
			name:  "us rfc3966",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			style: RFC3966,
			want:  "tel:+1-201-555-0123",
		},
		{
			name:  "us short number picks the short rule",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 5550123},
			style: National,
			want:  "555-0123",
		},
		{
			name:  "nz national folds the prefix in",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			style: National,
			want:  "03-331 6005",
		},
		{
			name:  "nz international drops the prefix",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			style: International,
			want:  "+64 3-331 6005",
		},
		{
			name:  "nz toll free",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 800123456},
			style: National,
			want:  "0800 123 456",
		},
		{
			name:  "italian leading zero survives formatting",
			num:   phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
			style: National,
			want:  "02 3661 8300",
		},
		{
			name:  "italian e164 keeps the zero",
			num:   phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
			style: E164,
			want:  "+390236618300",
		},
		{
			name:  "non-geographic international",
			num:   phonenumber.PhoneNumber{CountryCode: 800, NationalNumber: 12345678},
			style: International,
			want:  "+800 1234 5678",
		},
		{
			name:  "extension appended with default prefix",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "1234"},
			style: National,
			want:  "03-331 6005 ext. 1234",
		},
		{
			name:  "extension in rfc3966",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "1234"},
			style: RFC3966,
			want:  "tel:+64-3-331-6005;ext=1234",
		},
		{
			name:  "unknown plan falls back to digits",
			num:   phonenumber.PhoneNumber{CountryCode: 999, NationalNumber: 12345},
			style: National,
			want:  "+99912345",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.Format(tt.num, tt.style))
		})
	}
}

// TestFormat_ParseRoundTrip pins the contract that formatting a parsed
// number and parsing it back preserves numeric identity for every
// style.
func TestFormat_ParseRoundTrip(t *testing.T) {
	u := newTestUtil(t)

	inputs := []struct {
		input  string
		region string
	}{
		{"033316005", "NZ"},
		{"+1 201 555 0123", "US"},
		{"0236618300", "IT"},
		{"0111523456789", "AR"},
	}
	styles := []Style{E164, International, RFC3966}

	for _, in := range inputs {
		num, err := u.Parse(in.input, in.region)
		require.NoError(t, err)
		for _, style := range styles {
			again, err := u.Parse(u.Format(num, style), in.region)
			require.NoError(t, err, "style %v of %q", style, in.input)
			assert.Equal(t, num.CountryCode, again.CountryCode)
			assert.Equal(t, num.NationalNumber, again.NationalNumber)
		}
	}
}

// TestFormatOutOfCountryCallingNumber validates the dialling-sequence
// rendering: the caller's preferred international prefix, then country
// code, then the internationally formatted national number, degrading
// to plain National or International styles where a dialling sequence
// makes no sense.
func TestFormatOutOfCountryCallingNumber(t *testing.T) {
	u := newTestUtil(t)

	nz := phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	us := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	ca := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2412345678}
	nzTollFree := phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 800123456}

	tests := []struct {
		name string
		num  phonenumber.PhoneNumber
		from string
		want string
	}{
		{"nz number dialled from the us", nz, "US", "011 64 3-331 6005"},
		{"us number dialled from nz", us, "NZ", "00 1 201 555 0123"},
		{"same country uses national format", us, "US", "(201) 555-0123"},
		{"shared calling code counts as domestic", ca, "US", "(241) 234-5678"},
		{"caller plan without preferred prefix", us, "IT", "+1 201 555 0123"},
		{"unknown caller region", us, "ZZ", "+1 201 555 0123"},
		{"domestic-only range is not given a dialling sequence", nzTollFree, "US", "+64 800 123 456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.FormatOutOfCountryCallingNumber(tt.num, tt.from))
		})
	}
}

func TestFormatNationalNumberWithCarrierCode(t *testing.T) {
	u := newTestUtil(t)

	num := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}

	t.Run("fallback carrier fills the slot", func(t *testing.T) {
		assert.Equal(t, "(33 201) 555-0123", u.FormatNationalNumberWithCarrierCode(num, "33"))
	})

	t.Run("dialled carrier wins over fallback", func(t *testing.T) {
		dialled := num
		dialled.PreferredDomesticCarrierCode = "15"
		assert.Equal(t, "(15 201) 555-0123", u.FormatNationalNumberWithCarrierCode(dialled, "33"))
	})

	t.Run("no carrier renders plain national", func(t *testing.T) {
		assert.Equal(t, "(201) 555-0123", u.FormatNationalNumberWithCarrierCode(num, ""))
	})

	t.Run("plan without carrier rule renders national", func(t *testing.T) {
		nz := phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
		assert.Equal(t, "03-331 6005", u.FormatNationalNumberWithCarrierCode(nz, "99"))
	})
}
