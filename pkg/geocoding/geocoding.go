// Package geocoding answers "where is this number from" and "which
// carrier was it assigned to" using prefix tables. It composes the
// parsing engine with a prefix index; the tables themselves are
// supplied by the caller, typically loaded once at startup.
package geocoding

import (
	"errors"
	"io"
	"log/slog"

	"phonelib/pkg/phonenumber"
	"phonelib/pkg/phoneutil"
	"phonelib/pkg/prefixdb"
)

var (
	ErrNilEngine = errors.New("geocoding: nil engine")
	ErrNilIndex  = errors.New("geocoding: nil prefix index")
)

// Geocoder maps valid numbers to area descriptions such as
// "Westwood, NJ" or "Milan".
type Geocoder struct {
	util   *phoneutil.Util
	index  *prefixdb.DB
	logger *slog.Logger
}

// NewGeocoder returns a geocoder over the given area table.
func NewGeocoder(util *phoneutil.Util, index *prefixdb.DB, logger *slog.Logger) (*Geocoder, error) {
	if util == nil {
		return nil, ErrNilEngine
	}
	if index == nil {
		return nil, ErrNilIndex
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Geocoder{util: util, index: index, logger: logger}, nil
}

// Description returns the area label for a number, or "" when the
// number is invalid or its prefix is not covered by the table.
func (g *Geocoder) Description(num phonenumber.PhoneNumber) string {
	if !g.util.IsValidNumber(num) {
		return ""
	}
	label, ok := g.index.Lookup(num)
	if !ok {
		g.logger.Debug("no area entry", slog.Int("country_code", num.CountryCode))
		return ""
	}
	return label
}

// CarrierMapper maps mobile numbers to the carrier the range was
// originally assigned to. Ported ranges keep their original carrier
// label; the tables record assignment, not current ownership.
type CarrierMapper struct {
	util  *phoneutil.Util
	index *prefixdb.DB
}

// NewCarrierMapper returns a mapper over the given carrier table.
func NewCarrierMapper(util *phoneutil.Util, index *prefixdb.DB) (*CarrierMapper, error) {
	if util == nil {
		return nil, ErrNilEngine
	}
	if index == nil {
		return nil, ErrNilIndex
	}
	return &CarrierMapper{util: util, index: index}, nil
}

// NameForNumber returns the carrier label for a valid mobile-capable
// number, or "" otherwise. Fixed lines have no carrier in these tables.
func (c *CarrierMapper) NameForNumber(num phonenumber.PhoneNumber) string {
	switch c.util.GetNumberType(num) {
	case phonenumber.Mobile, phonenumber.FixedLineOrMobile, phonenumber.Pager:
	default:
		return ""
	}
	label, ok := c.index.Lookup(num)
	if !ok {
		return ""
	}
	return label
}

// SafeDisplayName is NameForNumber for user-facing display: in regions
// with mobile number portability the assignment tables say nothing about
// the number's current carrier, so no name is shown at all.
func (c *CarrierMapper) SafeDisplayName(num phonenumber.PhoneNumber) string {
	region := c.util.RegionCodeForNumber(num)
	if rm := c.util.Store().Region(region); rm != nil && rm.MobileNumberPortable() {
		return ""
	}
	return c.NameForNumber(num)
}
