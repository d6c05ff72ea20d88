// Package asserted trusts the district claimed by the client, which may
// have better on-device geocoding than the server. No server-side
// verification happens; the claim is only normalized so topic keys stay
// canonical.
package asserted

import (
	"context"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// Resolver implements domain.Resolver by validating presence of the
// client-supplied district. A missing or unnormalizable district is the
// caller's error, not something resolved locally.
type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// RequiresCoordinate implements domain.Resolver.
func (*Resolver) RequiresCoordinate() bool { return false }

// Resolve implements domain.Resolver.
func (*Resolver) Resolve(_ context.Context, q domain.ResolveQuery) (domain.Resolution, error) {
	district := domain.Slugify(q.Asserted)
	if district == "" {
		return domain.Resolution{}, domain.ErrDistrictRequired
	}
	return domain.Resolution{District: district, Provenance: domain.ProvenanceClient}, nil
}
