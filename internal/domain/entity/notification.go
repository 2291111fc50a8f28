package entity

import (
	"time"
)

const (
	NotificationNewComplaint     = "new_complaint"
	NotificationAssignment       = "assignment"
	NotificationComplaintUpdate  = "complaint_update"
	NotificationCompletion       = "completion"
	NotificationRating           = "rating"
	NotificationComplaintRemoved = "complaint_removed"
)

// Notification is a fire-and-forget inbox message for a single recipient.
// ComplaintID links back to the complaint that triggered it; it is empty for
// removal notices because the complaint no longer exists.
type Notification struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Title       string    `json:"title" firestore:"title"`
	Message     string    `json:"message" firestore:"message"`
	Type        string    `json:"type" firestore:"type"`
	ComplaintID string    `json:"complaint_id,omitempty" firestore:"complaintId"`
	Read        bool      `json:"read" firestore:"read"`
	Date        time.Time `json:"date" firestore:"date"`
}
