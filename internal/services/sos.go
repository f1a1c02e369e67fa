package services

//go:generate mockgen -source=sos.go -destination=sos_mock.go -package=services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// SOSStore defines alert persistence.
type SOSStore interface {
	Create(ctx context.Context, userID int64, lat, lon *float64) (*models.SOSLog, error)
	GetByID(ctx context.Context, id int64) (*models.SOSLog, error)
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) (*models.SOSLog, error)
	Stop(ctx context.Context, id int64, endedAt time.Time) (*models.SOSLog, error)
	GetActiveByUser(ctx context.Context, userID int64) (*models.SOSLog, error)
}

// ContactLister returns the contacts to notify.
type ContactLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.EmergencyContact, error)
}

// SMSSender sends one text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

var nearbyPlaces = []models.NearbyPlace{
	{Name: "Police Station - Central", Type: "police", Distance: "0.5 km", Phone: "+91-1234567890", Address: "123 Main Street, City Center"},
	{Name: "Women Safety Center", Type: "safety_center", Distance: "1.2 km", Phone: "+91-9876543210", Address: "456 Safety Lane, Downtown"},
	{Name: "Safe Public Place - Mall", Type: "safe_place", Distance: "0.8 km", Phone: "+91-5555555555", Address: "789 Shopping Mall, City Center"},
}

// SOSService runs the emergency alert workflow.
type SOSService struct {
	users    UserReader
	alerts   SOSStore
	contacts ContactLister
	sms      SMSSender
	events   EventPublisher
	now      func() time.Time
}

// NewSOSService creates a new SOSService.
func NewSOSService(
	users UserReader,
	alerts SOSStore,
	contacts ContactLister,
	sms SMSSender,
	events EventPublisher,
) *SOSService {
	return &SOSService{
		users:    users,
		alerts:   alerts,
		contacts: contacts,
		sms:      sms,
		events:   events,
		now:      time.Now,
	}
}

// MapLink builds a Google Maps link for the coordinates, or "" when either is unknown.
func MapLink(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(*lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(*lon, 'f', -1, 64)
}

// Start opens a new alert and texts every emergency contact. A failed text is logged
// and counted as not notified; the alert is kept either way.
func (s *SOSService) Start(ctx context.Context, userID int64, lat, lon *float64) (*models.SOSStartResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("sos start for unknown user", "user_id", userID)
		return nil, ErrUserNotFound
	}

	alert, err := s.alerts.Create(ctx, userID, lat, lon)
	if err != nil {
		logger.Log.Errorw("failed to create sos alert", "user_id", userID, "error", err)
		return nil, err
	}

	result := &models.SOSStartResult{
		SOSID:   alert.ID,
		MapLink: MapLink(lat, lon),
	}

	contacts, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list emergency contacts", "sos_id", alert.ID, "error", err)
		contacts = nil
	}
	result.TotalContacts = len(contacts)

	body := alertMessage(user.Username, result.MapLink)
	for _, c := range contacts {
		if err := s.sms.SendSMS(ctx, c.Phone, body); err != nil {
			logger.Log.Errorw("failed to send sos sms", "sos_id", alert.ID, "contact_id", c.ID, "error", err)
			continue
		}
		result.ContactsNotified++
	}

	logger.Log.Infow("sos alert started",
		"sos_id", alert.ID,
		"user_id", userID,
		"contacts_notified", result.ContactsNotified,
		"total_contacts", result.TotalContacts,
	)
	publishEvent(ctx, s.events, EventSOSStarted, userID, alert.ID, map[string]any{
		"latitude":          lat,
		"longitude":         lon,
		"contacts_notified": result.ContactsNotified,
		"total_contacts":    result.TotalContacts,
	})

	return result, nil
}

// Update moves an active alert. Stopped alerts keep their last coordinates.
func (s *SOSService) Update(ctx context.Context, sosID int64, lat, lon float64) (*models.SOSLog, error) {
	alert, err := s.alerts.UpdateLocation(ctx, sosID, lat, lon)
	if err != nil {
		logger.Log.Errorw("failed to update sos location", "sos_id", sosID, "error", err)
		return nil, err
	}
	if alert != nil {
		return alert, nil
	}

	existing, err := s.alerts.GetByID(ctx, sosID)
	if err != nil {
		logger.Log.Errorw("failed to get sos alert", "sos_id", sosID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrSOSNotFound
	}
	return nil, ErrSOSStopped
}

// Stop ends an alert. Stopping again re-stamps the end time.
func (s *SOSService) Stop(ctx context.Context, sosID int64) (*models.SOSLog, error) {
	alert, err := s.alerts.Stop(ctx, sosID, s.now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to stop sos alert", "sos_id", sosID, "error", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrSOSNotFound
	}

	logger.Log.Infow("sos alert stopped", "sos_id", sosID, "user_id", alert.UserID)
	publishEvent(ctx, s.events, EventSOSStopped, alert.UserID, alert.ID, nil)
	return alert, nil
}

// GetActive returns the user's most recent active alert, or nil.
func (s *SOSService) GetActive(ctx context.Context, userID int64) (*models.SOSLog, error) {
	alert, err := s.alerts.GetActiveByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get active sos alert", "user_id", userID, "error", err)
		return nil, err
	}
	return alert, nil
}

// Nearby returns static nearby help locations.
func (s *SOSService) Nearby(ctx context.Context) []models.NearbyPlace {
	places := make([]models.NearbyPlace, len(nearbyPlaces))
	copy(places, nearbyPlaces)
	return places
}

// Acknowledge records a one-shot emergency alert and returns its reference.
func (s *SOSService) Acknowledge(ctx context.Context, userID int64) string {
	alertID := fmt.Sprintf("alert_%d_%d", userID, s.now().Unix())
	logger.Log.Infow("emergency alert acknowledged", "user_id", userID, "alert_id", alertID)
	return alertID
}

func alertMessage(username, link string) string {
	if link == "" {
		return fmt.Sprintf("EMERGENCY: %s has triggered an SOS alert. Location unavailable.", username)
	}
	return fmt.Sprintf("EMERGENCY: %s has triggered an SOS alert. Live location: %s", username, link)
}
