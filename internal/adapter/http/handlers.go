package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

func (s *Server) handleSOS(w http.ResponseWriter, r *http.Request) {
	var req domain.AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}
	s.processAlert(w, r, req)
}

// processAlert runs an alert through the service and translates the error
// taxonomy onto HTTP: validation problems are 400, delivery failures 500.
func (s *Server) processAlert(w http.ResponseWriter, r *http.Request, req domain.AlertRequest) {
	receipt, err := s.svc.Process(r.Context(), req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			body := map[string]any{"error": ve.Reason}
			if len(ve.Required) > 0 {
				body["required"] = ve.Required
			} else {
				body["message"] = ve.Message
			}
			writeJSON(w, http.StatusBadRequest, body)
		case errors.Is(err, domain.ErrDistrictRequired):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":   "Missing district",
				"message": err.Error(),
			})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":     "Failed to send notification",
				"message":   err.Error(),
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		}
		return
	}

	message := "SOS alert sent"
	if req.Kind == domain.KindStop {
		message = "SOS resolved notification sent"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   message,
		"messageId": receipt.MessageID,
		"sosId":     req.SOSID,
		"district":  receipt.District,
		"topic":     receipt.Topic,
		"timestamp": receipt.Timestamp,
	})
}

func (s *Server) handleGetDistrict(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}
	if body.Latitude == nil || body.Longitude == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "Missing required fields",
			"required": []string{"latitude", "longitude"},
		})
		return
	}
	c := domain.Coordinate{Latitude: *body.Latitude, Longitude: *body.Longitude}
	if !c.InRange() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Invalid coordinates",
			"message": "latitude must be in [-90,90] and longitude in [-180,180]",
		})
		return
	}

	res, err := s.svc.ResolveDistrict(r.Context(), c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"district":    res.District,
		"fcm_topic":   s.svc.Topic(res.District),
		"coordinates": c,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleTestSOS synthesizes a canned alert and forwards it through the
// primary path, for manual verification only.
func (s *Server) handleTestSOS(w http.ResponseWriter, r *http.Request) {
	req := domain.AlertRequest{
		SOSID:    "test-" + uuid.NewString(),
		Kind:     domain.KindAlert,
		Location: &domain.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		Sender: domain.SenderInfo{
			Name:     "Test User",
			District: "test_district",
		},
		SenderID: "test-sender",
	}
	s.processAlert(w, r, req)
}
