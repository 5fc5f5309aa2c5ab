package models

import "github.com/google/uuid"

// WeeklyParticipation is a member's recurring default for one weekday.
// Weekday runs 0=Monday through 6=Sunday.
type WeeklyParticipation struct {
	ID                uuid.UUID `json:"id"`
	MemberID          uuid.UUID `json:"member_id"`
	Weekday           int       `json:"weekday"`
	DefaultAttendance string    `json:"default_attendance"`
	IsActive          bool      `json:"is_active"`
}

type WeeklyParticipationParams struct {
	MemberID          uuid.UUID `json:"member_id" binding:"required"`
	Weekday           *int      `json:"weekday" binding:"required,min=0,max=6"`
	DefaultAttendance string    `json:"default_attendance" binding:"required"`
	IsActive          *bool     `json:"is_active" binding:"required"`
}
