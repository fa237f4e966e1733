package reminder

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

func newTestPlanner() *Planner {
	return NewPlanner(domain.DefaultHourTable(), time.UTC)
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestPlanner_Candidates(t *testing.T) {
	planner := newTestPlanner()

	tests := []struct {
		name       string
		event      domain.DomainEvent
		wantBefore time.Time
		wantDayOf  time.Time
	}{
		{
			name:       "trip",
			event:      domain.NewDomainEvent(domain.CategoryTrip, "c-42", "Alice", date(2025, 6, 10, 0, 0)),
			wantBefore: date(2025, 6, 9, 9, 0),
			wantDayOf:  date(2025, 6, 10, 8, 0),
		},
		{
			name:       "task with time of day",
			event:      domain.NewDomainEvent(domain.CategoryTask, "t-1", "Book hotel", date(2025, 6, 1, 14, 0)),
			wantBefore: date(2025, 5, 31, 10, 0),
			wantDayOf:  date(2025, 6, 1, 9, 0),
		},
		{
			name:       "lead across month boundary",
			event:      domain.NewDomainEvent(domain.CategoryLead, "l-1", "Bob", date(2025, 7, 1, 23, 30)),
			wantBefore: date(2025, 6, 30, 11, 0),
			wantDayOf:  date(2025, 7, 1, 10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := planner.Candidates(tt.event)

			if len(candidates) != 2 {
				t.Fatalf("got %d candidates, want 2", len(candidates))
			}

			before, dayOf := candidates[0], candidates[1]
			if before.Offset != domain.OffsetDayBefore || dayOf.Offset != domain.OffsetDayOf {
				t.Fatalf("unexpected offsets: %q, %q", before.Offset, dayOf.Offset)
			}
			if !before.FireAt.Equal(tt.wantBefore) {
				t.Errorf("day-before fireAt: got %v, want %v", before.FireAt, tt.wantBefore)
			}
			if !dayOf.FireAt.Equal(tt.wantDayOf) {
				t.Errorf("day-of fireAt: got %v, want %v", dayOf.FireAt, tt.wantDayOf)
			}
			if before.ID == dayOf.ID {
				t.Errorf("ids must differ, both %q", before.ID)
			}
			if before.FireAt.Equal(dayOf.FireAt) {
				t.Errorf("fire times must differ, both %v", before.FireAt)
			}
			if before.ID != tt.event.ID+":before" || dayOf.ID != tt.event.ID+":day" {
				t.Errorf("unexpected ids: %q, %q", before.ID, dayOf.ID)
			}
			if before.Payload[domain.PayloadSourceID] != tt.event.ID {
				t.Errorf("payload source id: got %q, want %q", before.Payload[domain.PayloadSourceID], tt.event.ID)
			}
		})
	}
}

func TestPlanner_FireAtUsesPlannerLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	planner := NewPlanner(domain.DefaultHourTable(), tokyo)

	// 2025-06-09T20:00Z is already June 10 in Tokyo.
	event := domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", date(2025, 6, 9, 20, 0))
	candidates := planner.Candidates(event)

	want := time.Date(2025, 6, 10, 8, 0, 0, 0, tokyo)
	if !candidates[1].FireAt.Equal(want) {
		t.Errorf("day-of fireAt: got %v, want %v", candidates[1].FireAt, want)
	}
}

func TestPlanner_LocalMidnightTriggerWestOfUTC(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	planner := NewPlanner(domain.DefaultHourTable(), newYork)

	event := domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", time.Date(2025, 6, 10, 0, 0, 0, 0, newYork))
	candidates := planner.Candidates(event)

	wantBefore := time.Date(2025, 6, 9, 9, 0, 0, 0, newYork)
	wantDay := time.Date(2025, 6, 10, 8, 0, 0, 0, newYork)
	if !candidates[0].FireAt.Equal(wantBefore) {
		t.Errorf("day-before fireAt: got %v, want %v", candidates[0].FireAt, wantBefore)
	}
	if !candidates[1].FireAt.Equal(wantDay) {
		t.Errorf("day-of fireAt: got %v, want %v", candidates[1].FireAt, wantDay)
	}
}

func TestPlanner_Titles(t *testing.T) {
	planner := newTestPlanner()

	tests := []struct {
		category   domain.Category
		wantBefore string
		wantDayOf  string
	}{
		{domain.CategoryTrip, "Upcoming Trip Tomorrow", "Trip Today"},
		{domain.CategoryTask, "Task Due Tomorrow", "Task Due Today"},
		{domain.CategoryLead, "Lead Follow-up Tomorrow", "Lead Follow-up Today"},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			event := domain.NewDomainEvent(tt.category, "x", "Alice", date(2025, 6, 10, 0, 0))
			candidates := planner.Candidates(event)

			if candidates[0].Title != tt.wantBefore {
				t.Errorf("day-before title: got %q, want %q", candidates[0].Title, tt.wantBefore)
			}
			if candidates[1].Title != tt.wantDayOf {
				t.Errorf("day-of title: got %q, want %q", candidates[1].Title, tt.wantDayOf)
			}
		})
	}
}

func TestPlanner_Body(t *testing.T) {
	planner := newTestPlanner()

	event := domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", date(2025, 6, 10, 0, 0))
	event.Detail = "Lisbon"

	candidates := planner.Candidates(event)
	if got, want := candidates[0].Body, "Alice departs tomorrow for Lisbon"; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
	if got, want := candidates[1].Body, "Alice departs today for Lisbon"; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
}

func TestPlanner_Plan(t *testing.T) {
	planner := newTestPlanner()
	now := date(2025, 6, 1, 7, 0)

	events := []domain.DomainEvent{
		domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", date(2025, 6, 10, 0, 0)),
		domain.NewDomainEvent(domain.CategoryTask, "t-1", "Book hotel", date(2025, 6, 1, 14, 0)),
		domain.NewDomainEvent(domain.CategoryLead, "l-1", "Bob", date(2025, 5, 20, 0, 0)),
	}

	tests := []struct {
		name         string
		prefs        domain.NotificationPreferences
		wantRetained []string
		wantPast     int
		wantDisabled int
	}{
		{
			name:         "all enabled",
			prefs:        domain.DefaultPreferences(),
			wantRetained: []string{"trip:c-1:before", "trip:c-1:day", "task:t-1:day"},
			wantPast:     3,
			wantDisabled: 0,
		},
		{
			name:         "trips disabled",
			prefs:        domain.NotificationPreferences{Trips: false, Tasks: true, Leads: true},
			wantRetained: []string{"task:t-1:day"},
			wantPast:     3,
			wantDisabled: 2,
		},
		{
			name:         "all disabled",
			prefs:        domain.NotificationPreferences{},
			wantRetained: []string{},
			wantPast:     0,
			wantDisabled: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planner.Plan(events, tt.prefs, now)

			if plan.CandidateCount() != 6 {
				t.Errorf("candidate count: got %d, want 6", plan.CandidateCount())
			}
			if len(plan.Retained) != len(tt.wantRetained) {
				t.Fatalf("retained: got %d, want %d", len(plan.Retained), len(tt.wantRetained))
			}
			for i, id := range tt.wantRetained {
				if plan.Retained[i].ID != id {
					t.Errorf("retained[%d]: got %q, want %q", i, plan.Retained[i].ID, id)
				}
			}
			if len(plan.SkippedPast) != tt.wantPast {
				t.Errorf("skipped past: got %d, want %d", len(plan.SkippedPast), tt.wantPast)
			}
			if len(plan.SkippedDisabled) != tt.wantDisabled {
				t.Errorf("skipped disabled: got %d, want %d", len(plan.SkippedDisabled), tt.wantDisabled)
			}
		})
	}
}

func TestPlanner_Plan_FireAtEqualToNowIsPast(t *testing.T) {
	planner := newTestPlanner()
	event := domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", date(2025, 6, 10, 0, 0))

	plan := planner.Plan([]domain.DomainEvent{event}, domain.DefaultPreferences(), date(2025, 6, 10, 8, 0))

	if len(plan.Retained) != 0 {
		t.Errorf("expected no retained notifications, got %d", len(plan.Retained))
	}
	if len(plan.SkippedPast) != 2 {
		t.Errorf("skipped past: got %d, want 2", len(plan.SkippedPast))
	}
}
