package kafka

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	p := domain.NotificationPayload{
		Topic: "district-mysuru",
		Title: "Emergency SOS Alert",
		Body:  "Ravi needs immediate help near Mysuru",
		Data: map[string]string{
			"type":   "sos_alert",
			"sos_id": "sos-42",
		},
	}

	msg, id, err := serializeToMessage(p)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr, "message id should be a UUID")

	assert.Equal(t, "district-mysuru", msg.Topic)
	assert.Equal(t, id, string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, id, headers["message_id"])
	assert.Equal(t, "sos_alert", headers["type"])
	assert.Equal(t, "sos-42", headers["sos_id"])

	var decoded domain.NotificationPayload
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, p.Title, decoded.Title)
	assert.Equal(t, p.Data["sos_id"], decoded.Data["sos_id"])
}

func TestSerializeToMessage_UniqueIDs(t *testing.T) {
	p := domain.NotificationPayload{Topic: "district-kolar", Data: map[string]string{}}

	_, id1, err := serializeToMessage(p)
	require.NoError(t, err)
	_, id2, err := serializeToMessage(p)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
