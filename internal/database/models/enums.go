package models

// SoldierStatus defines the service status of a soldier
type SoldierStatus string

const (
	SoldierStatusActive   SoldierStatus = "active"
	SoldierStatusTraining SoldierStatus = "training"
	SoldierStatusExempt   SoldierStatus = "exempt"
	SoldierStatusVacation SoldierStatus = "vacation"
)

// IsValid checks if the SoldierStatus is valid
func (s SoldierStatus) IsValid() bool {
	switch s {
	case SoldierStatusActive, SoldierStatusTraining, SoldierStatusExempt, SoldierStatusVacation:
		return true
	}
	return false
}

// ConstraintType defines the types of soldier constraints
type ConstraintType string

const (
	ConstraintTypeNoAssign    ConstraintType = "no_assign"
	ConstraintTypePreferAvoid ConstraintType = "prefer_avoid"
	ConstraintTypeOnly        ConstraintType = "only"
)

// IsValid checks if the ConstraintType is valid
func (t ConstraintType) IsValid() bool {
	switch t {
	case ConstraintTypeNoAssign, ConstraintTypePreferAvoid, ConstraintTypeOnly:
		return true
	}
	return false
}

// DutyFrequency defines how often a duty type occurs across a date range
type DutyFrequency string

const (
	DutyFrequencyDaily   DutyFrequency = "daily"
	DutyFrequencyWeekly  DutyFrequency = "weekly"
	DutyFrequencyMonthly DutyFrequency = "monthly"
)

// IsValid checks if the DutyFrequency is valid
func (f DutyFrequency) IsValid() bool {
	switch f {
	case DutyFrequencyDaily, DutyFrequencyWeekly, DutyFrequencyMonthly:
		return true
	}
	return false
}

// ScheduleKind defines how a single day of duty is structured
type ScheduleKind string

const (
	// ScheduleKindDaily is one whole-day occurrence needing N people.
	ScheduleKindDaily ScheduleKind = "daily"
	// ScheduleKindHourly partitions the day into fixed-length rotation
	// slots between a start and end hour, each needing exactly one person.
	ScheduleKindHourly ScheduleKind = "hourly"
)

// IsValid checks if the ScheduleKind is valid
func (k ScheduleKind) IsValid() bool {
	switch k {
	case ScheduleKindDaily, ScheduleKindHourly:
		return true
	}
	return false
}

// EventStatus defines the lifecycle states of a duty event
type EventStatus string

const (
	EventStatusPlanned  EventStatus = "planned"
	EventStatusDone     EventStatus = "done"
	EventStatusSwapped  EventStatus = "swapped"
	EventStatusCanceled EventStatus = "canceled"
	EventStatusMissed   EventStatus = "missed"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPlanned, EventStatusDone, EventStatusSwapped, EventStatusCanceled, EventStatusMissed:
		return true
	}
	return false
}

// AttendanceStatus defines the daily presence states of a soldier
type AttendanceStatus string

const (
	AttendanceStatusPresent       AttendanceStatus = "present"
	AttendanceStatusLeave         AttendanceStatus = "leave"
	AttendanceStatusShabbat       AttendanceStatus = "shabbat"
	AttendanceStatusCompassionate AttendanceStatus = "compassionate"
	AttendanceStatusHome          AttendanceStatus = "home"
	AttendanceStatusOther         AttendanceStatus = "other"
)

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusLeave, AttendanceStatusShabbat,
		AttendanceStatusCompassionate, AttendanceStatusHome, AttendanceStatusOther:
		return true
	}
	return false
}
