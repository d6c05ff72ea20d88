// Package fcm dispatches notifications to district topics over Firebase
// Cloud Messaging.
package fcm

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// sender is the part of *messaging.Client we use; tests substitute fakes.
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Dispatcher implements domain.Dispatcher over FCM topic messaging.
type Dispatcher struct {
	client sender
	logger *slog.Logger
}

// NewDispatcher initializes the Firebase app and messaging client. With an
// empty credentialsFile the SDK falls back to application default
// credentials.
func NewDispatcher(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Dispatcher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize messaging client: %w", err)
	}
	return &Dispatcher{client: client, logger: logger}, nil
}

// Dispatch publishes the payload to its topic and returns the FCM message
// id.
func (d *Dispatcher) Dispatch(ctx context.Context, p domain.NotificationPayload) (string, error) {
	id, err := d.client.Send(ctx, toMessage(p))
	if err != nil {
		return "", &domain.DeliveryError{Err: err}
	}
	d.logger.Debug("fcm message sent", "topic", p.Topic, "message_id", id)
	return id, nil
}

// toMessage maps the payload onto the FCM wire shape, carrying the
// platform rendering hints into AndroidConfig and APNSConfig.
func toMessage(p domain.NotificationPayload) *messaging.Message {
	badge := p.APNS.Badge
	return &messaging.Message{
		Topic: p.Topic,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: p.Data,
		Android: &messaging.AndroidConfig{
			Priority: p.Android.Priority,
			Notification: &messaging.AndroidNotification{
				Icon:      p.Android.Icon,
				Color:     p.Android.Color,
				Sound:     p.Android.Sound,
				ChannelID: p.Android.ChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: p.APNS.Title,
						Body:  p.APNS.Body,
					},
					Sound: p.APNS.Sound,
					Badge: &badge,
				},
			},
		},
	}
}
