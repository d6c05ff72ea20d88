package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotification_NewAlert(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	req := AlertRequest{
		SOSID:    "abc",
		Kind:     KindAlert,
		Location: &Coordinate{Latitude: 12.97, Longitude: 77.59},
		Sender:   SenderInfo{Name: "Asha", Location: "MG Road"},
		SenderID: "user-1",
	}
	res := Resolution{District: "bengaluru_urban", Provenance: ProvenanceStatic}

	p := BuildNotification(req, res, "district-")

	assert.Equal(t, "district-bengaluru_urban", p.Topic)
	assert.Equal(t, "Emergency SOS Alert", p.Title)
	assert.Contains(t, p.Body, "Asha")
	assert.Contains(t, p.Body, "MG Road")

	assert.Equal(t, DataTypeAlert, p.Data["type"])
	assert.Equal(t, "bengaluru_urban", p.Data["district"])
	assert.Equal(t, "abc", p.Data["sos_id"])
	assert.Equal(t, "user-1", p.Data["sender_id"])
	assert.Equal(t, "2025-06-01T12:00:00Z", p.Data["timestamp"])

	var loc Coordinate
	require.NoError(t, json.Unmarshal([]byte(p.Data["location"]), &loc))
	assert.Equal(t, *req.Location, loc)

	var sender SenderInfo
	require.NoError(t, json.Unmarshal([]byte(p.Data["user_info"]), &sender))
	assert.Equal(t, req.Sender, sender)

	assert.Equal(t, "high", p.Android.Priority)
	assert.Equal(t, "sos_alerts", p.Android.ChannelID)
	assert.Equal(t, 1, p.APNS.Badge)
	assert.Equal(t, p.Title, p.APNS.Title)
}

func TestBuildNotification_Resolved(t *testing.T) {
	req := AlertRequest{
		SOSID:     "abc",
		Kind:      KindStop,
		Timestamp: "2025-06-01T13:00:00Z",
		SenderID:  "user-1",
	}
	res := Resolution{District: "kolar", Provenance: ProvenanceClient}

	p := BuildNotification(req, res, "district-")

	assert.Equal(t, "district-kolar", p.Topic)
	assert.Equal(t, "SOS Resolved", p.Title)
	assert.Contains(t, p.Body, "resolved")

	assert.Equal(t, DataTypeResolved, p.Data["type"])
	assert.Equal(t, "2025-06-01T13:00:00Z", p.Data["timestamp"])
	assert.NotContains(t, p.Data, "location")
	assert.Equal(t, 0, p.APNS.Badge)
}

func TestBuildNotification_LabelFallsBackToDistrictDisplay(t *testing.T) {
	req := AlertRequest{SOSID: "abc", Kind: KindAlert}
	res := Resolution{District: "bengaluru_urban", Provenance: ProvenanceStatic}

	p := BuildNotification(req, res, "district-")

	assert.Contains(t, p.Body, "Bengaluru Urban")
	assert.Contains(t, p.Body, "Someone")
}
