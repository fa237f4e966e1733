package crm

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

const (
	taskStatusCompleted = "completed"
	leadStatusWon       = "won"
	leadStatusLost      = "lost"

	defaultPageSize    = 1000
	defaultHorizonDays = 60
)

// Source reads the upcoming trip, task and lead follow-up collections from
// the CRM database. Each collection is bounded to [since, since+horizon) and
// to at most pageSize rows, earliest first. Date columns are calendar days
// and come back as midnight in location.
type Source struct {
	db          *gorm.DB
	pageSize    int
	horizonDays int
	location    *time.Location
}

func NewSource(db *gorm.DB, pageSize, horizonDays int, location *time.Location) *Source {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	if location == nil {
		location = time.UTC
	}
	return &Source{
		db:          db,
		pageSize:    pageSize,
		horizonDays: horizonDays,
		location:    location,
	}
}

// civilDate reinterprets a scanned date column in loc. Drivers return DATE
// values as midnight UTC; converting that instant would move it to the
// previous evening west of UTC.
func civilDate(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return &day
}

func (s *Source) window(since time.Time) (time.Time, time.Time) {
	return since, since.AddDate(0, 0, s.horizonDays)
}

func (s *Source) UpcomingTrips(ctx context.Context, since time.Time) ([]domain.Trip, error) {
	from, until := s.window(since)

	var rows []clientModel
	err := s.db.WithContext(ctx).
		Where("departure_date IS NOT NULL AND departure_date >= ? AND departure_date < ?", from, until).
		Order("departure_date ASC").
		Limit(s.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: trips: %w", domain.ErrEventSourceFailed, err)
	}

	trips := make([]domain.Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, domain.Trip{
			ClientID:      row.ID,
			ClientName:    row.Name,
			DepartureDate: civilDate(row.DepartureDate, s.location),
			Destination:   row.Destination,
		})
	}
	return trips, nil
}

func (s *Source) PendingTasks(ctx context.Context, since time.Time) ([]domain.Task, error) {
	from, until := s.window(since)

	var rows []taskRow
	err := s.db.WithContext(ctx).
		Model(&taskModel{}).
		Select("tasks.id, tasks.title, clients.name AS client_name, tasks.due_date").
		Joins("LEFT JOIN clients ON clients.id = tasks.client_id").
		Where("tasks.due_date IS NOT NULL AND tasks.due_date >= ? AND tasks.due_date < ?", from, until).
		Where("COALESCE(tasks.status, '') <> ?", taskStatusCompleted).
		Order("tasks.due_date ASC").
		Limit(s.pageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: tasks: %w", domain.ErrEventSourceFailed, err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task := domain.Task{
			ID:      row.ID,
			Title:   row.Title,
			DueDate: civilDate(row.DueDate, s.location),
		}
		if row.ClientName != nil {
			task.ClientName = *row.ClientName
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *Source) UpcomingLeadFollowUps(ctx context.Context, since time.Time) ([]domain.LeadFollowUp, error) {
	from, until := s.window(since)

	var rows []leadModel
	err := s.db.WithContext(ctx).
		Where("follow_up_date IS NOT NULL AND follow_up_date >= ? AND follow_up_date < ?", from, until).
		Where("COALESCE(status, '') NOT IN ?", []string{leadStatusWon, leadStatusLost}).
		Order("follow_up_date ASC").
		Limit(s.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: leads: %w", domain.ErrEventSourceFailed, err)
	}

	leads := make([]domain.LeadFollowUp, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, domain.LeadFollowUp{
			ID:           row.ID,
			Name:         row.Name,
			Phone:        row.Phone,
			FollowUpDate: civilDate(row.FollowUpDate, s.location),
		})
	}
	return leads, nil
}
