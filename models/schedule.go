package models

import "github.com/google/uuid"

// ScheduleType classifies a rehearsal day.
type ScheduleType string

const (
	ScheduleMorning   ScheduleType = "morning"
	ScheduleAfternoon ScheduleType = "afternoon"
	ScheduleWeekday   ScheduleType = "weekday"
	ScheduleAllday    ScheduleType = "allday"
	ScheduleOther     ScheduleType = "other"
)

// Schedule is one rehearsal date. Groups/ExcludeGroups/Generations narrow
// who the schedule targets; nil means no restriction.
type Schedule struct {
	Date          Date         `json:"date" binding:"required"`
	Type          ScheduleType `json:"type" binding:"required,oneof=morning afternoon weekday allday other"`
	Groups        []uuid.UUID  `json:"groups"`
	ExcludeGroups []uuid.UUID  `json:"exclude_groups"`
	Generations   []int        `json:"generations"`
}

type ScheduleOperationalResult struct {
	Result bool `json:"result"`
	Date   Date `json:"date"`
}
