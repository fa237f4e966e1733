package domain

import (
	"errors"
	"testing"
)

func TestHourTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   HourTable
		wantErr bool
	}{
		{
			name:    "default table is valid",
			table:   DefaultHourTable(),
			wantErr: false,
		},
		{
			name: "missing category",
			table: HourTable{
				CategoryTrip: {DayBefore: 9, DayOf: 8},
				CategoryTask: {DayBefore: 10, DayOf: 9},
			},
			wantErr: true,
		},
		{
			name: "hour out of range",
			table: HourTable{
				CategoryTrip: {DayBefore: 24, DayOf: 8},
				CategoryTask: {DayBefore: 10, DayOf: 9},
				CategoryLead: {DayBefore: 11, DayOf: 10},
			},
			wantErr: true,
		},
		{
			name: "colliding offsets",
			table: HourTable{
				CategoryTrip: {DayBefore: 9, DayOf: 9},
				CategoryTask: {DayBefore: 10, DayOf: 9},
				CategoryLead: {DayBefore: 11, DayOf: 10},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidHourTable) {
				t.Errorf("Validate() error = %v, want ErrInvalidHourTable", err)
			}
		})
	}
}

func TestHourTable_Hour(t *testing.T) {
	table := DefaultHourTable()

	tests := []struct {
		category Category
		offset   Offset
		want     int
	}{
		{CategoryTrip, OffsetDayBefore, 9},
		{CategoryTrip, OffsetDayOf, 8},
		{CategoryTask, OffsetDayBefore, 10},
		{CategoryTask, OffsetDayOf, 9},
		{CategoryLead, OffsetDayBefore, 11},
		{CategoryLead, OffsetDayOf, 10},
	}

	for _, tt := range tests {
		t.Run(tt.category.String()+"_"+tt.offset.String(), func(t *testing.T) {
			got, ok := table.Hour(tt.category, tt.offset)
			if !ok {
				t.Fatal("Hour() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Hour() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, ok := table.Hour(Category("flight"), OffsetDayOf); ok {
		t.Error("Hour() for unknown category ok = true, want false")
	}
}

func TestNotificationPreferences_Enabled(t *testing.T) {
	prefs := NotificationPreferences{Trips: false, Tasks: true, Leads: true}

	if prefs.Enabled(CategoryTrip) {
		t.Error("trip should be disabled")
	}
	if !prefs.Enabled(CategoryTask) {
		t.Error("task should be enabled")
	}
	if !prefs.Enabled(CategoryLead) {
		t.Error("lead should be enabled")
	}
	if prefs.Enabled(Category("unknown")) {
		t.Error("unknown category should be disabled")
	}
}
