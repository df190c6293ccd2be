package phonenumber

import "errors"

// Sentinel errors for parse failures. Parsing only fails when the input
// cannot be decomposed into a country code and national number at all; a
// well-formed but invalid number parses cleanly and is rejected later by
// classification. Callers test with errors.Is; the engine may wrap these
// with additional context.
var (
	// ErrInvalidCountryCode: no default region and no recoverable
	// country calling code in the input.
	ErrInvalidCountryCode = errors.New("invalid country calling code")

	// ErrNotANumber: no usable digits after normalization.
	ErrNotANumber = errors.New("the string supplied did not seem to be a phone number")

	// ErrTooShortAfterIDD: an international dialling prefix was found
	// but too few digits follow it.
	ErrTooShortAfterIDD = errors.New("phone number too short after IDD")

	// ErrTooShortNSN: the national significant number is below the
	// global minimum length.
	ErrTooShortNSN = errors.New("the string supplied is too short to be a phone number")

	// ErrTooLong: the national significant number exceeds the global
	// maximum length.
	ErrTooLong = errors.New("the string supplied is too long to be a phone number")
)
