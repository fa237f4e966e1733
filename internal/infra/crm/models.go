package crm

import "time"

// Row shapes of the CRM backend tables this service reads. The schema is
// owned by the CRM; only the columns used here are mapped.

type clientModel struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	DepartureDate *time.Time
	Destination   string
}

func (clientModel) TableName() string { return "clients" }

type taskModel struct {
	ID       string `gorm:"primaryKey"`
	ClientID *string
	Title    string
	DueDate  *time.Time
	Status   string
}

func (taskModel) TableName() string { return "tasks" }

type leadModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Phone        string
	FollowUpDate *time.Time
	Status       string
}

func (leadModel) TableName() string { return "leads" }

type taskRow struct {
	ID         string
	Title      string
	ClientName *string
	DueDate    *time.Time
}
