package models

import "time"

// TrackingEvent is one entry in the append-only tracking log. The tracking ID
// is caller-chosen and independent of the parcel's own lifecycle status; the
// log is a secondary audit trail.
type TrackingEvent struct {
	ID         string                 `json:"id" firestore:"-"`
	TrackingID string                 `json:"tracking_id" firestore:"tracking_id"`
	Status     string                 `json:"status" firestore:"status"`
	Message    string                 `json:"message,omitempty" firestore:"message,omitempty"`
	UpdatedBy  string                 `json:"updated_by,omitempty" firestore:"updated_by,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp"`
}
