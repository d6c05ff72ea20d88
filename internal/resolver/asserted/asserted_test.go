package asserted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

func TestResolve_AssertedDistrict(t *testing.T) {
	r := New()

	res, err := r.Resolve(context.Background(), domain.ResolveQuery{Asserted: "bengaluru_urban"})
	require.NoError(t, err)
	assert.Equal(t, domain.District("bengaluru_urban"), res.District)
	assert.Equal(t, domain.ProvenanceClient, res.Provenance)
}

func TestResolve_NormalizesClaim(t *testing.T) {
	r := New()

	res, err := r.Resolve(context.Background(), domain.ResolveQuery{Asserted: "São Paulo!"})
	require.NoError(t, err)
	assert.Equal(t, domain.District("sao_paulo"), res.District)
}

func TestResolve_MissingDistrict(t *testing.T) {
	r := New()

	_, err := r.Resolve(context.Background(), domain.ResolveQuery{})
	assert.ErrorIs(t, err, domain.ErrDistrictRequired)

	// Punctuation-only claims normalize to empty, same as missing.
	_, err = r.Resolve(context.Background(), domain.ResolveQuery{Asserted: "!!!"})
	assert.ErrorIs(t, err, domain.ErrDistrictRequired)
}

func TestRequiresCoordinate(t *testing.T) {
	assert.False(t, New().RequiresCoordinate())
}
