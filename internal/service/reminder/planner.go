package reminder

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

type Planner struct {
	hours    domain.HourTable
	location *time.Location
}

func NewPlanner(hours domain.HourTable, location *time.Location) *Planner {
	if location == nil {
		location = time.Local
	}
	return &Planner{
		hours:    hours,
		location: location,
	}
}

// Candidates returns the day-before and day-of notifications for event, in
// that order. Events of a category missing from the hour table yield none.
func (p *Planner) Candidates(event domain.DomainEvent) []domain.ScheduledNotification {
	candidates := make([]domain.ScheduledNotification, 0, len(domain.Offsets))
	for _, offset := range domain.Offsets {
		hour, ok := p.hours.Hour(event.Category, offset)
		if !ok {
			continue
		}
		title, body := renderText(event, offset)
		candidates = append(candidates, domain.NewScheduledNotification(event, offset, p.FireAt(event.TriggerDate, offset, hour), title, body))
	}
	return candidates
}

// FireAt places the reminder on the trigger's calendar day (in the planner's
// location) minus the offset's days, at the given hour.
func (p *Planner) FireAt(trigger time.Time, offset domain.Offset, hour int) time.Time {
	local := trigger.In(p.location)
	year, month, day := local.Date()
	return time.Date(year, month, day-offset.Days(), hour, 0, 0, 0, p.location)
}

// Plan computes candidates for every event and splits them into retained,
// disabled and past. A notification firing exactly at now counts as past.
func (p *Planner) Plan(events []domain.DomainEvent, prefs domain.NotificationPreferences, now time.Time) *Plan {
	plan := &Plan{
		Retained:        make([]domain.ScheduledNotification, 0, len(events)*len(domain.Offsets)),
		SkippedPast:     []domain.ScheduledNotification{},
		SkippedDisabled: []domain.ScheduledNotification{},
	}

	for _, event := range events {
		enabled := prefs.Enabled(event.Category)
		for _, n := range p.Candidates(event) {
			switch {
			case !enabled:
				plan.SkippedDisabled = append(plan.SkippedDisabled, n)
			case n.IsDue(now):
				plan.SkippedPast = append(plan.SkippedPast, n)
			default:
				plan.Retained = append(plan.Retained, n)
			}
		}
	}

	return plan
}

func renderText(event domain.DomainEvent, offset domain.Offset) (string, string) {
	when := "today"
	if offset == domain.OffsetDayBefore {
		when = "tomorrow"
	}

	switch event.Category {
	case domain.CategoryTrip:
		title := "Trip Today"
		if offset == domain.OffsetDayBefore {
			title = "Upcoming Trip Tomorrow"
		}
		body := fmt.Sprintf("%s departs %s", event.SubjectName, when)
		if event.Detail != "" {
			body += " for " + event.Detail
		}
		return title, body

	case domain.CategoryTask:
		title := "Task Due Today"
		if offset == domain.OffsetDayBefore {
			title = "Task Due Tomorrow"
		}
		body := fmt.Sprintf("%q is due %s", event.SubjectName, when)
		if event.Detail != "" {
			body += " (" + event.Detail + ")"
		}
		return title, body

	case domain.CategoryLead:
		title := "Lead Follow-up Today"
		if offset == domain.OffsetDayBefore {
			title = "Lead Follow-up Tomorrow"
		}
		body := fmt.Sprintf("Follow up with %s %s", event.SubjectName, when)
		if event.Detail != "" {
			body += " at " + event.Detail
		}
		return title, body
	}

	return "Reminder", fmt.Sprintf("%s %s", event.SubjectName, when)
}
