package phonenumber

import "strconv"

// NumberType classifies a phone number against a region's numbering plan.
type NumberType int

// Number types. FixedLineOrMobile is reported when a number matches both
// the fixed-line and mobile patterns of a plan that does not distinguish
// them structurally. The short-number types (ShortCode through
// CarrierSpecific) classify dialling-context codes such as 911; they are
// never reported for a number the plan's general pattern claims.
const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VOIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	ShortCode
	Emergency
	SMSService
	CarrierSpecific
	Unknown
)

var numberTypeNames = [...]string{
	FixedLine:         "FIXED_LINE",
	Mobile:            "MOBILE",
	FixedLineOrMobile: "FIXED_LINE_OR_MOBILE",
	TollFree:          "TOLL_FREE",
	PremiumRate:       "PREMIUM_RATE",
	SharedCost:        "SHARED_COST",
	VOIP:              "VOIP",
	PersonalNumber:    "PERSONAL_NUMBER",
	Pager:             "PAGER",
	UAN:               "UAN",
	Voicemail:         "VOICEMAIL",
	ShortCode:         "SHORT_CODE",
	Emergency:         "EMERGENCY",
	SMSService:        "SMS_SERVICE",
	CarrierSpecific:   "CARRIER_SPECIFIC",
	Unknown:           "UNKNOWN",
}

// String returns the canonical name of the number type.
func (t NumberType) String() string {
	if int(t) >= 0 && int(t) < len(numberTypeNames) {
		return numberTypeNames[t]
	}
	return "NumberType(" + strconv.Itoa(int(t)) + ")"
}
