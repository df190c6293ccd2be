// Package metadatatest provides a small, self-consistent set of
// synthetic numbering plans for tests and examples. The plans are
// deliberately simplified; they are not the real ITU data and must never
// be used to validate production traffic.
//
// The set exercises every metadata feature the engine supports: a shared
// country calling code with a main-country tie-break (US/CA), a national
// prefix with a transform rule (AR), significant leading zeros (IT), a
// full spread of number types (GB), short-number descriptions (US), a
// domestic-only toll-free range (NZ) and a non-geographic toll-free plan
// (800 under region 001).
package metadatatest

import (
	"testing"

	"phonelib/pkg/metadata"
)

// Records returns fresh copies of the synthetic numbering-plan records.
func Records() []metadata.Region {
	return []metadata.Region{
		{
			ID:                            "US",
			CountryCode:                   1,
			InternationalPrefix:           "011",
			PreferredInternationalPrefix:  "011",
			NationalPrefix:                "1",
			MainCountryForCode:            true,
			MobileNumberPortableRegion:    true,
			SameMobileAndFixedLinePattern: true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[13-689]\d{9}|2[0-35-9]\d{8}`,
				PossibleNumberPattern: `\d{7}(?:\d{3})?`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[13-689]\d{9}|2[0-35-9]\d{8}`,
				PossibleNumberPattern: `\d{7}(?:\d{3})?`,
				ExampleNumber:         "2015550123",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[13-689]\d{9}|2[0-35-9]\d{8}`,
				PossibleNumberPattern: `\d{7}(?:\d{3})?`,
				ExampleNumber:         "2015550123",
			},
			TollFree: metadata.PhoneNumberDesc{
				NationalNumberPattern: `8(?:00|66|77|88)\d{7}`,
				ExampleNumber:         "8002345678",
			},
			PremiumRate: metadata.PhoneNumberDesc{
				NationalNumberPattern: `900\d{7}`,
				ExampleNumber:         "9002345678",
			},
			ShortCode: metadata.PhoneNumberDesc{
				NationalNumberPattern: `\d{5}`,
				ExampleNumber:         "24601",
			},
			Emergency: metadata.PhoneNumberDesc{
				NationalNumberPattern: `911`,
				ExampleNumber:         "911",
			},
			SMSServices: metadata.PhoneNumberDesc{
				NationalNumberPattern: `404\d{2}`,
			},
			CarrierSpecific: metadata.PhoneNumberDesc{
				NationalNumberPattern: `3366\d`,
			},
			NumberFormats: []metadata.NumberFormat{
				{Pattern: `(\d{3})(\d{4})`, Format: `$1-$2`},
				{
					Pattern:                           `(\d{3})(\d{3})(\d{4})`,
					Format:                            `($1) $2-$3`,
					DomesticCarrierCodeFormattingRule: `$CC $FG`,
				},
			},
			IntlNumberFormats: []metadata.NumberFormat{
				{Pattern: `(\d{3})(\d{3})(\d{4})`, Format: `$1 $2 $3`},
			},
		},
		{
			ID:                            "CA",
			CountryCode:                   1,
			InternationalPrefix:           "011",
			NationalPrefix:                "1",
			SameMobileAndFixedLinePattern: true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `24\d{8}`,
				PossibleNumberPattern: `\d{10}`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `24\d{8}`,
				ExampleNumber:         "2412345678",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `24\d{8}`,
				ExampleNumber:         "2412345678",
			},
			NumberFormats: []metadata.NumberFormat{
				{Pattern: `(\d{3})(\d{3})(\d{4})`, Format: `($1) $2-$3`},
			},
		},
		{
			ID:                           "NZ",
			CountryCode:                  64,
			InternationalPrefix:          "00",
			PreferredInternationalPrefix: "00",
			NationalPrefix:               "0",
			MainCountryForCode:           true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[28]\d{7,9}|[34679]\d{7}`,
				PossibleNumberPattern: `\d{7,10}`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `(?:3[2-79]|[49][2-9]|6[235-9]|7[2-57-9])\d{6}`,
				PossibleNumberPattern: `\d{8}`,
				ExampleNumber:         "32345678",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `2(?:[027]\d{7}|9\d{6,7})`,
				PossibleNumberPattern: `\d{8,9}`,
				ExampleNumber:         "201234567",
			},
			TollFree: metadata.PhoneNumberDesc{
				NationalNumberPattern: `800\d{6,7}`,
				PossibleNumberPattern: `\d{9,10}`,
				ExampleNumber:         "800123456",
			},
			PremiumRate: metadata.PhoneNumberDesc{
				NationalNumberPattern: `900\d{5}`,
				PossibleNumberPattern: `\d{8}`,
				ExampleNumber:         "90012345",
			},
			NoInternationalDialling: metadata.PhoneNumberDesc{
				NationalNumberPattern: `800\d{6,7}`,
			},
			NumberFormats: []metadata.NumberFormat{
				{
					Pattern:                      `(\d)(\d{3})(\d{4})`,
					Format:                       `$1-$2 $3`,
					LeadingDigits:                []string{`24|[34679]`},
					NationalPrefixFormattingRule: `0$FG`,
				},
				{
					Pattern:                      `(\d{2})(\d{3})(\d{3,4})`,
					Format:                       `$1-$2 $3`,
					LeadingDigits:                []string{`2`},
					NationalPrefixFormattingRule: `0$FG`,
				},
				{
					Pattern:                              `(\d{3})(\d{2,3})(\d{3,4})`,
					Format:                               `$1 $2 $3`,
					LeadingDigits:                        []string{`80|90`},
					NationalPrefixFormattingRule:         `0$FG`,
					NationalPrefixOptionalWhenFormatting: true,
				},
			},
		},
		{
			ID:                  "IT",
			CountryCode:         39,
			InternationalPrefix: "00",
			LeadingZeroPossible: true,
			MainCountryForCode:  true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `0\d{6,10}|3\d{8,9}|800\d{6}`,
				PossibleNumberPattern: `\d{2,11}`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `0\d{6,10}`,
				ExampleNumber:         "0236618300",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `3\d{8,9}`,
				ExampleNumber:         "312345678",
			},
			TollFree: metadata.PhoneNumberDesc{
				NationalNumberPattern: `800\d{6}`,
				ExampleNumber:         "800123456",
			},
			NumberFormats: []metadata.NumberFormat{
				{Pattern: `(\d{2})(\d{4})(\d{4})`, Format: `$1 $2 $3`, LeadingDigits: []string{`0[26]`}},
				{Pattern: `(\d{3})(\d{3})(\d{4})`, Format: `$1 $2 $3`, LeadingDigits: []string{`0[13-57-9]|3`}},
				{Pattern: `(\d{3})(\d{3})(\d{3})`, Format: `$1 $2 $3`, LeadingDigits: []string{`8`}},
			},
		},
		{
			ID:                  "GB",
			CountryCode:         44,
			InternationalPrefix: "00",
			NationalPrefix:      "0",
			MainCountryForCode:  true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[1-9]\d{9}`,
				PossibleNumberPattern: `\d{6,10}`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `[1-6]\d{9}`,
				ExampleNumber:         "1212345678",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `7[1-57-9]\d{8}`,
				ExampleNumber:         "7912345678",
			},
			TollFree: metadata.PhoneNumberDesc{
				NationalNumberPattern: `80\d{8}`,
				ExampleNumber:         "8012345678",
			},
			PremiumRate: metadata.PhoneNumberDesc{
				NationalNumberPattern: `9[018]\d{8}`,
				ExampleNumber:         "9012345678",
			},
			SharedCost: metadata.PhoneNumberDesc{
				NationalNumberPattern: `8(?:4[3-5]|7[0-3])\d{7}`,
				ExampleNumber:         "8431234567",
			},
			VOIP: metadata.PhoneNumberDesc{
				NationalNumberPattern: `56\d{8}`,
				ExampleNumber:         "5612345678",
			},
			Pager: metadata.PhoneNumberDesc{
				NationalNumberPattern: `76\d{8}`,
				ExampleNumber:         "7612345678",
			},
			UAN: metadata.PhoneNumberDesc{
				NationalNumberPattern: `55\d{8}`,
				ExampleNumber:         "5512345678",
			},
			PersonalNumber: metadata.PhoneNumberDesc{
				NationalNumberPattern: `70\d{8}`,
				ExampleNumber:         "7012345678",
			},
			NumberFormats: []metadata.NumberFormat{
				{
					Pattern:                      `(\d{3})(\d{3})(\d{4})`,
					Format:                       `$1 $2 $3`,
					LeadingDigits:                []string{`[1-6]`},
					NationalPrefixFormattingRule: `0$FG`,
				},
				{
					Pattern:                      `(\d{4})(\d{6})`,
					Format:                       `$1 $2`,
					LeadingDigits:                []string{`[7-9]`},
					NationalPrefixFormattingRule: `0$FG`,
				},
			},
		},
		{
			ID:                          "AR",
			CountryCode:                 54,
			InternationalPrefix:         "00",
			NationalPrefix:              "0",
			NationalPrefixForParsing:    `0(?:(11|343|3715)15)?`,
			NationalPrefixTransformRule: `9$1`,
			MainCountryForCode:          true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `11\d{8}|9\d{10}`,
				PossibleNumberPattern: `\d{10,11}`,
			},
			FixedLine: metadata.PhoneNumberDesc{
				NationalNumberPattern: `11\d{8}`,
				ExampleNumber:         "1123456789",
			},
			Mobile: metadata.PhoneNumberDesc{
				NationalNumberPattern: `9\d{10}`,
				ExampleNumber:         "91123456789",
			},
			NumberFormats: []metadata.NumberFormat{
				{
					Pattern:                      `(\d{2})(\d{4})(\d{4})`,
					Format:                       `$1 $2-$3`,
					LeadingDigits:                []string{`11`},
					NationalPrefixFormattingRule: `0$FG`,
				},
				{
					Pattern:       `(\d)(\d{2})(\d{4})(\d{4})`,
					Format:        `$1 $2 $3-$4`,
					LeadingDigits: []string{`9`},
				},
			},
		},
		{
			ID:                 metadata.NonGeoRegionID,
			CountryCode:        800,
			MainCountryForCode: true,
			GeneralDesc: metadata.PhoneNumberDesc{
				NationalNumberPattern: `\d{8}`,
				PossibleNumberPattern: `\d{8}`,
			},
			TollFree: metadata.PhoneNumberDesc{
				NationalNumberPattern: `\d{8}`,
				ExampleNumber:         "12345678",
			},
			NumberFormats: []metadata.NumberFormat{
				{Pattern: `(\d{4})(\d{4})`, Format: `$1 $2`},
			},
		},
	}
}

// Store compiles the synthetic plans, failing the test on error.
func Store(tb testing.TB) *metadata.Store {
	tb.Helper()
	s, err := metadata.NewStore(Records())
	if err != nil {
		tb.Fatalf("compile test metadata: %v", err)
	}
	return s
}
