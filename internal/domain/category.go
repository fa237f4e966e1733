package domain

// Category represents the kind of domain event a reminder is raised for.
type Category string

const (
	CategoryTrip Category = "trip"
	CategoryTask Category = "task"
	CategoryLead Category = "lead"
)

// Categories lists every category in a stable order.
var Categories = []Category{CategoryTrip, CategoryTask, CategoryLead}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTrip, CategoryTask, CategoryLead:
		return true
	}
	return false
}

// Offset is the position of a reminder relative to its trigger date.
type Offset string

const (
	OffsetDayBefore Offset = "before"
	OffsetDayOf     Offset = "day"
)

// Offsets lists both offsets, day-before first.
var Offsets = []Offset{OffsetDayBefore, OffsetDayOf}

func (o Offset) String() string {
	return string(o)
}

// Days returns how many calendar days before the trigger date the offset fires.
func (o Offset) Days() int {
	if o == OffsetDayBefore {
		return 1
	}
	return 0
}
