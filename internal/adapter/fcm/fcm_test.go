package fcm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// --- mock sender ---

type fakeSender struct {
	sent []*messaging.Message
	id   string
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)
	return f.id, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPayload() domain.NotificationPayload {
	return domain.NotificationPayload{
		Topic: "district-bengaluru_urban",
		Title: "Emergency SOS Alert",
		Body:  "Asha needs immediate help near MG Road",
		Data:  map[string]string{"type": "sos_alert", "sos_id": "abc"},
		Android: domain.AndroidHints{
			Icon: "ic_sos_alert", Color: "#D32F2F", Sound: "default",
			ChannelID: "sos_alerts", Priority: "high",
		},
		APNS: domain.APNSHints{
			Title: "Emergency SOS Alert", Body: "Asha needs immediate help near MG Road",
			Sound: "default", Badge: 1,
		},
	}
}

// --- tests ---

func TestDispatch_Success(t *testing.T) {
	sender := &fakeSender{id: "projects/x/messages/123"}
	d := &Dispatcher{client: sender, logger: discardLogger()}

	id, err := d.Dispatch(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "projects/x/messages/123", id)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "district-bengaluru_urban", sender.sent[0].Topic)
}

func TestDispatch_TransportErrorWrapped(t *testing.T) {
	sender := &fakeSender{err: errors.New("quota exceeded")}
	d := &Dispatcher{client: sender, logger: discardLogger()}

	_, err := d.Dispatch(context.Background(), testPayload())
	require.Error(t, err)

	var de *domain.DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Error(), "quota exceeded")
}

func TestToMessage_MapsPlatformHints(t *testing.T) {
	m := toMessage(testPayload())

	assert.Equal(t, "district-bengaluru_urban", m.Topic)
	assert.Equal(t, "Emergency SOS Alert", m.Notification.Title)
	assert.Equal(t, "sos_alert", m.Data["type"])

	require.NotNil(t, m.Android)
	assert.Equal(t, "high", m.Android.Priority)
	assert.Equal(t, "sos_alerts", m.Android.Notification.ChannelID)
	assert.Equal(t, "#D32F2F", m.Android.Notification.Color)

	require.NotNil(t, m.APNS)
	aps := m.APNS.Payload.Aps
	assert.Equal(t, "Emergency SOS Alert", aps.Alert.Title)
	require.NotNil(t, aps.Badge)
	assert.Equal(t, 1, *aps.Badge)
}

func TestToMessage_ResolvedBadgeZero(t *testing.T) {
	p := testPayload()
	p.APNS.Badge = 0

	m := toMessage(p)
	require.NotNil(t, m.APNS.Payload.Aps.Badge)
	assert.Equal(t, 0, *m.APNS.Payload.Aps.Badge)
}
