package aggregate

import (
	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

// Aggregate normalizes the three upcoming collections into DomainEvents.
// Records without a trigger date are dropped; the result has no defined order.
func Aggregate(trips []domain.Trip, tasks []domain.Task, leads []domain.LeadFollowUp) []domain.DomainEvent {
	events := make([]domain.DomainEvent, 0, len(trips)+len(tasks)+len(leads))

	for _, trip := range trips {
		if trip.DepartureDate == nil {
			continue
		}
		event := domain.NewDomainEvent(domain.CategoryTrip, trip.ClientID, trip.ClientName, *trip.DepartureDate)
		event.Detail = trip.Destination
		events = append(events, event)
	}

	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		subject := task.Title
		if subject == "" {
			subject = task.ClientName
		}
		event := domain.NewDomainEvent(domain.CategoryTask, task.ID, subject, *task.DueDate)
		if task.Title != "" {
			event.Detail = task.ClientName
		}
		events = append(events, event)
	}

	for _, lead := range leads {
		if lead.FollowUpDate == nil {
			continue
		}
		event := domain.NewDomainEvent(domain.CategoryLead, lead.ID, lead.Name, *lead.FollowUpDate)
		event.Detail = lead.Phone
		events = append(events, event)
	}

	return events
}
