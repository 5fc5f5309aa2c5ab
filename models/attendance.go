package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance status strings. The same vocabulary is used for attendance
// records, pre-attendances, weekly defaults and membership-status defaults.
const (
	StatusPresent    = "出席"
	StatusAbsent     = "欠席"
	StatusLecture    = "講習"
	StatusLate       = "遅刻"
	StatusEarlyLeave = "早退"
	StatusUnexcused  = "無欠"
)

type Attendance struct {
	ID         uuid.UUID `json:"id"`
	Date       Date      `json:"date"`
	Attendance string    `json:"attendance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	MemberID   uuid.UUID `json:"member_id"`
}

type AttendancesParams struct {
	MemberID   uuid.UUID `json:"member_id" binding:"required"`
	Attendance string    `json:"attendance" binding:"required"`
	Date       Date      `json:"date" binding:"required"`
}

type AttendanceOperationalResult struct {
	Result       bool       `json:"result"`
	AttendanceID *uuid.UUID `json:"attendance_id"`
}

type AttendancesOperationalResult struct {
	Result bool `json:"result"`
}

// Rate target scopes.
const (
	RateTargetAll    = "all"
	RateTargetPart   = "part"
	RateTargetMember = "member"
)

// AttendanceRate is one persisted rate: a scope, a month and a mode.
// Rate is nil when the scope had no countable records that month.
type AttendanceRate struct {
	ID         uuid.UUID `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   *string   `json:"target_id"`
	Month      string    `json:"month"`
	Rate       *float64  `json:"rate"`
	Actual     bool      `json:"actual"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AttendanceRateParams is a rate row to upsert.
type AttendanceRateParams struct {
	TargetType string   `json:"target_type"`
	TargetID   *string  `json:"target_id"`
	Month      string   `json:"month"`
	Rate       *float64 `json:"rate"`
	Actual     bool     `json:"actual"`
}
