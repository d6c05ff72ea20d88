package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Data block type discriminators consumed by the mobile apps.
const (
	DataTypeAlert    = "sos_alert"
	DataTypeResolved = "sos_resolved"
)

// AndroidHints is the rendering bundle for Android clients.
type AndroidHints struct {
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Sound     string `json:"sound"`
	ChannelID string `json:"channel_id"`
	Priority  string `json:"priority"`
}

// APNSHints is the rendering bundle for iOS clients.
type APNSHints struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
	Badge int    `json:"badge"`
}

// NotificationPayload is the composed message handed to a Dispatcher.
// Constructed fresh per request; never persisted.
type NotificationPayload struct {
	Topic   string            `json:"topic"`
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Data    map[string]string `json:"data"`
	Android AndroidHints      `json:"android"`
	APNS    APNSHints         `json:"apns"`
}

// BuildNotification shapes a validated request and its resolution into the
// payload for topic topicPrefix+district. The sender's self-reported
// location labels the body; when absent the district's display name stands
// in. Timestamps are the sender's, or the current time in RFC 3339 UTC.
func BuildNotification(req AlertRequest, res Resolution, topicPrefix string) NotificationPayload {
	label := req.Sender.Location
	if label == "" {
		label = res.District.Display()
	}
	name := req.Sender.Name
	if name == "" {
		name = "Someone"
	}
	ts := req.Timestamp
	if ts == "" {
		ts = clock.Now().UTC().Format(time.RFC3339)
	}

	data := map[string]string{
		"district":  string(res.District),
		"sos_id":    req.SOSID,
		"sender_id": req.SenderID,
		"timestamp": ts,
	}

	var title, body string
	var badge int
	if req.Kind == KindStop {
		data["type"] = DataTypeResolved
		title = "SOS Resolved"
		body = fmt.Sprintf("The emergency near %s has been resolved.", label)
		badge = 0
	} else {
		data["type"] = DataTypeAlert
		title = "Emergency SOS Alert"
		body = fmt.Sprintf("%s needs immediate help near %s", name, label)
		badge = 1
		if req.Location != nil {
			if b, err := json.Marshal(req.Location); err == nil {
				data["location"] = string(b)
			}
		}
		if b, err := json.Marshal(req.Sender); err == nil {
			data["user_info"] = string(b)
		}
	}

	return NotificationPayload{
		Topic: topicPrefix + string(res.District),
		Title: title,
		Body:  body,
		Data:  data,
		Android: AndroidHints{
			Icon:      "ic_sos_alert",
			Color:     "#D32F2F",
			Sound:     "default",
			ChannelID: "sos_alerts",
			Priority:  "high",
		},
		APNS: APNSHints{
			Title: title,
			Body:  body,
			Sound: "default",
			Badge: badge,
		},
	}
}
