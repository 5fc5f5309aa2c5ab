package models

import (
	"time"

	"github.com/google/uuid"
)

// PreAttendance is an attendance declaration made ahead of a rehearsal,
// optionally tied to a pre-check campaign.
type PreAttendance struct {
	ID         uuid.UUID  `json:"id"`
	Date       Date       `json:"date"`
	MemberID   *uuid.UUID `json:"member_id"`
	Attendance string     `json:"attendance"`
	Reason     *string    `json:"reason"`
	PreCheckID *string    `json:"pre_check_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PreAttendanceParams struct {
	Date       Date       `json:"date" binding:"required"`
	MemberID   *uuid.UUID `json:"member_id"`
	Attendance string     `json:"attendance" binding:"required"`
	Reason     *string    `json:"reason"`
	PreCheckID *string    `json:"pre_check_id"`
}

// PreCheck is a collection window during which members declare attendance
// for a span of dates. EditDeadlineDays is how many days before each date
// edits close.
type PreCheck struct {
	ID               string `json:"id"`
	StartDate        Date   `json:"start_date"`
	EndDate          Date   `json:"end_date"`
	Description      string `json:"description"`
	EditDeadlineDays int    `json:"edit_deadline_days"`
}

type PreCheckParams struct {
	StartDate        Date   `json:"start_date" binding:"required"`
	EndDate          Date   `json:"end_date" binding:"required"`
	Description      string `json:"description" binding:"required"`
	EditDeadlineDays int    `json:"edit_deadline_days" binding:"min=0"`
}
