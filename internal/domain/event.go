package domain

import (
	"time"
)

// DomainEvent is one upcoming occurrence that needs reminders.
type DomainEvent struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	SubjectName string    `json:"subject_name"`
	TriggerDate time.Time `json:"trigger_date"`
	// Detail carries optional context for the notification body
	// (trip destination, lead phone).
	Detail string `json:"detail,omitempty"`
}

func NewDomainEvent(category Category, sourceID, subjectName string, triggerDate time.Time) DomainEvent {
	return DomainEvent{
		ID:          EventID(category, sourceID),
		Category:    category,
		SubjectName: subjectName,
		TriggerDate: triggerDate,
	}
}

func EventID(category Category, sourceID string) string {
	return category.String() + ":" + sourceID
}

// Trip is an upcoming client trip as read from the CRM backend.
type Trip struct {
	ClientID      string
	ClientName    string
	DepartureDate *time.Time
	Destination   string
}

// Task is a pending agent task as read from the CRM backend.
type Task struct {
	ID         string
	Title      string
	ClientName string
	DueDate    *time.Time
}

// LeadFollowUp is an upcoming lead follow-up as read from the CRM backend.
type LeadFollowUp struct {
	ID           string
	Name         string
	Phone        string
	FollowUpDate *time.Time
}
