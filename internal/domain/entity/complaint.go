package entity

import (
	"time"
)

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusCompleted  ComplaintStatus = "completed"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Complaint moves through pending -> in-progress -> completed. TechnicianID
// is empty exactly while the complaint is pending; CompletedAt is set exactly
// when it reaches completed. Rating and Feedback are set at most once, by the
// reporter, after completion.
type Complaint struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Category    string `json:"category" firestore:"category"`
	Location    string `json:"location" firestore:"location"`
	Place       string `json:"place" firestore:"place"`
	Department  string `json:"department,omitempty" firestore:"department,omitempty"`
	Priority    string `json:"priority,omitempty" firestore:"priority,omitempty"`

	UserID       string          `json:"user_id" firestore:"userId"`
	TechnicianID string          `json:"technician_id,omitempty" firestore:"technicianId"`
	Status       ComplaintStatus `json:"status" firestore:"status"`

	Date        time.Time  `json:"date" firestore:"date"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty" firestore:"assignedAt"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt"`

	Images               []string `json:"images,omitempty" firestore:"images"`
	CompletedImage       string   `json:"completed_image,omitempty" firestore:"completedImage"`
	CompletedDescription string   `json:"completed_description,omitempty" firestore:"completedDescription"`

	Rating   *int   `json:"rating,omitempty" firestore:"rating"`
	Feedback string `json:"feedback,omitempty" firestore:"feedback"`
}

func (c *Complaint) Assigned() bool {
	return c.TechnicianID != ""
}

func (c *Complaint) Rated() bool {
	return c.Rating != nil
}
