package domain

import (
	"fmt"
	"strings"
)

// AlertKind is the sos_type discriminator on the wire.
type AlertKind string

const (
	// KindAlert opens an active emergency.
	KindAlert AlertKind = "sos_alert"
	// KindStop marks an emergency as resolved.
	KindStop AlertKind = "stop"
)

// Valid reports whether the kind is one of the two known wire values.
func (k AlertKind) Valid() bool {
	return k == KindAlert || k == KindStop
}

// Coordinate is an immutable WGS-84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InRange reports whether the coordinate lies within valid WGS-84 bounds.
func (c Coordinate) InRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// SenderInfo is the self-reported block accompanying an alert.
type SenderInfo struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	District string `json:"district,omitempty"`
}

// AlertRequest is a validated inbound SOS request.
type AlertRequest struct {
	SOSID     string      `json:"sos_id"`
	Kind      AlertKind   `json:"sos_type"`
	Location  *Coordinate `json:"location,omitempty"`
	Sender    SenderInfo  `json:"userInfo"`
	Timestamp string      `json:"timestamp,omitempty"`
	SenderID  string      `json:"sender_id,omitempty"`
}

// Validate checks the request against the wire contract. needsCoordinate is
// true when the active resolver strategy derives the district from the
// location. Returns a *ValidationError describing the first problem found.
func (r AlertRequest) Validate(needsCoordinate bool) error {
	var missing []string
	if r.SOSID == "" {
		missing = append(missing, "sos_id")
	}
	if r.Kind == "" {
		missing = append(missing, "sos_type")
	}
	if needsCoordinate && r.Location == nil {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Reason:   "Missing required fields",
			Required: []string{"sos_id", "sos_type", "location"},
			Message:  "missing: " + strings.Join(missing, ", "),
		}
	}

	if !r.Kind.Valid() {
		return &ValidationError{
			Reason:  "Invalid sos_type",
			Message: fmt.Sprintf("sos_type must be %q or %q, got %q", KindAlert, KindStop, r.Kind),
		}
	}

	if r.Location != nil && !r.Location.InRange() {
		return &ValidationError{
			Reason:  "Invalid location",
			Message: "latitude must be in [-90,90] and longitude in [-180,180]",
		}
	}

	return nil
}

// ValidationError is a 400-class request defect. Required carries the full
// required-field list when fields are missing, so clients see the complete
// contract rather than one field at a time.
type ValidationError struct {
	Reason   string
	Required []string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Reason + ": " + e.Message
	}
	return e.Reason
}
