package domain

import (
	"context"
	"errors"
)

// Provenance describes how a district was obtained.
type Provenance string

const (
	// ProvenanceStatic is a direct hit in the static bounding-box table.
	ProvenanceStatic Provenance = "static"
	// ProvenanceRegional is a broad regional fallback box.
	ProvenanceRegional Provenance = "regional"
	// ProvenanceSimulator is the development-environment escape hatch.
	ProvenanceSimulator Provenance = "simulator"
	// ProvenanceFallback is the ultimate static fallback identifier.
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceNominatim is a fresh successful reverse-geocode lookup.
	ProvenanceNominatim Provenance = "nominatim"
	// ProvenanceCache is a reverse-geocode answer served from the cache.
	ProvenanceCache Provenance = "cache"
	// ProvenanceNominatimFallback means the lookup succeeded but no address
	// field normalized to a usable slug.
	ProvenanceNominatimFallback Provenance = "nominatim-fallback"
	// ProvenanceError means the upstream call failed and the default
	// district was substituted.
	ProvenanceError Provenance = "error"

	// ProvenanceClient is a district asserted by the caller.
	ProvenanceClient Provenance = "client"
)

// Degraded reports whether the answer is a default rather than a confident
// resolution.
func (p Provenance) Degraded() bool {
	switch p {
	case ProvenanceRegional, ProvenanceFallback, ProvenanceNominatimFallback, ProvenanceError:
		return true
	}
	return false
}

// Resolution is a resolved district together with how it was obtained.
type Resolution struct {
	District   District
	Provenance Provenance
}

// ResolveQuery carries whichever inputs the active strategy consumes.
type ResolveQuery struct {
	// Coordinate is required by the static and nominatim strategies.
	Coordinate *Coordinate
	// Asserted is the client-supplied district, used by the asserted
	// strategy only.
	Asserted string
}

// ErrDistrictRequired is returned by the asserted strategy when the request
// carries no district. It is a client error, not a resolution failure.
var ErrDistrictRequired = errors.New("district is required in userInfo for this deployment")

// Resolver maps a query to a district. Implementations must always produce
// some district for the inputs they require, degrading to a fallback rather
// than erroring; ErrDistrictRequired is the only sanctioned failure.
type Resolver interface {
	Resolve(ctx context.Context, q ResolveQuery) (Resolution, error)

	// RequiresCoordinate reports whether queries must carry a coordinate.
	RequiresCoordinate() bool
}
