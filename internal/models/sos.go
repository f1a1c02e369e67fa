package models

import "time"

// SOSLog is one emergency alert. It is active while EndedAt is nil.
type SOSLog struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	Latitude  *float64   `json:"latitude" db:"latitude"`
	Longitude *float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	EndedAt   *time.Time `json:"ended_at" db:"ended_at"`
}

// Active reports whether the alert has not been stopped yet.
func (s *SOSLog) Active() bool {
	return s.EndedAt == nil
}

// SOSStartResult summarises the SMS fan-out of a started alert.
type SOSStartResult struct {
	SOSID            int64  `json:"sos_id"`
	ContactsNotified int    `json:"contacts_notified"`
	TotalContacts    int    `json:"total_contacts"`
	MapLink          string `json:"map_link,omitempty"`
}

// EmergencyContact is a person notified when the owner starts an alert.
type EmergencyContact struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Relationship string    `json:"relationship" db:"relationship"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NearbyPlace is a static help location.
type NearbyPlace struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Distance string `json:"distance"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
