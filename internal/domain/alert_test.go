package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() AlertRequest {
	return AlertRequest{
		SOSID:    "abc",
		Kind:     KindAlert,
		Location: &Coordinate{Latitude: 12.97, Longitude: 77.59},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validRequest().Validate(true))
}

func TestValidate_MissingSOSID(t *testing.T) {
	req := validRequest()
	req.SOSID = ""

	err := req.Validate(true)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Missing required fields", ve.Reason)
	assert.Equal(t, []string{"sos_id", "sos_type", "location"}, ve.Required)
	assert.Contains(t, ve.Message, "sos_id")
}

func TestValidate_MissingLocationWhenRequired(t *testing.T) {
	req := validRequest()
	req.Location = nil

	var ve *ValidationError
	require.ErrorAs(t, req.Validate(true), &ve)
	assert.Contains(t, ve.Message, "location")
}

func TestValidate_MissingLocationAllowedWhenNotRequired(t *testing.T) {
	req := validRequest()
	req.Location = nil

	require.NoError(t, req.Validate(false))
}

func TestValidate_InvalidKind(t *testing.T) {
	req := validRequest()
	req.Kind = "foo"

	var ve *ValidationError
	require.ErrorAs(t, req.Validate(true), &ve)
	assert.Equal(t, "Invalid sos_type", ve.Reason)
	assert.Empty(t, ve.Required)
	assert.Contains(t, ve.Message, "foo")
}

func TestValidate_OutOfRangeCoordinate(t *testing.T) {
	req := validRequest()
	req.Location = &Coordinate{Latitude: 91, Longitude: 0}

	var ve *ValidationError
	require.ErrorAs(t, req.Validate(true), &ve)
	assert.Equal(t, "Invalid location", ve.Reason)
}

func TestCoordinate_InRange(t *testing.T) {
	assert.True(t, Coordinate{Latitude: -90, Longitude: 180}.InRange())
	assert.True(t, Coordinate{Latitude: 90, Longitude: -180}.InRange())
	assert.False(t, Coordinate{Latitude: 90.1, Longitude: 0}.InRange())
	assert.False(t, Coordinate{Latitude: 0, Longitude: -180.1}.InRange())
}
