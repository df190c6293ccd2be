// Package phoneutil implements the number engine: normalization,
// parsing with region resolution, classification, and formatting, all
// driven by a compiled metadata.Store. A Util carries no mutable state
// after construction and is safe for concurrent use.
package phoneutil

import (
	"errors"
	"io"
	"log/slog"

	"phonelib/pkg/metadata"
)

// Util is the engine facade. Construct once with the metadata the
// process should trust and share freely across goroutines.
type Util struct {
	store   *metadata.Store
	logger  *slog.Logger
	metrics *Metrics
}

// New creates an engine over the given store. logger and metrics may be
// nil; a nil logger discards and nil metrics is a no-op.
func New(store *metadata.Store, logger *slog.Logger, m *Metrics) (*Util, error) {
	if store == nil {
		return nil, errors.New("metadata store is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("engine ready", slog.Int("regions", len(store.SupportedRegions())))
	return &Util{store: store, logger: logger, metrics: m}, nil
}

// Store exposes the engine's metadata table.
func (u *Util) Store() *metadata.Store { return u.store }

// Logger exposes the engine's logger; composed services such as the
// text matcher log through it rather than carrying their own.
func (u *Util) Logger() *slog.Logger { return u.logger }

// Metrics exposes the engine's counters (nil when none were attached).
func (u *Util) Metrics() *Metrics { return u.metrics }

// SupportedRegions returns the region codes the engine has metadata for.
func (u *Util) SupportedRegions() []string { return u.store.SupportedRegions() }

// CountryCodeForRegion returns the country calling code of a region, or
// 0 when the region is unknown.
func (u *Util) CountryCodeForRegion(region string) int {
	return u.store.CountryCodeForRegion(region)
}

// RegionCodesForCountryCode lists the region codes sharing a country
// calling code, main country first.
func (u *Util) RegionCodesForCountryCode(cc int) []string {
	list := u.store.RegionsForCountryCode(cc)
	out := make([]string, 0, len(list))
	for _, rm := range list {
		out = append(out, rm.ID())
	}
	return out
}
