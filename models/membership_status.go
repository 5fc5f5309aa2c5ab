package models

import "github.com/google/uuid"

// MembershipStatus is a master row describing an activity state
// (enrolled, on leave, retired...). DefaultAttendance is the status string
// pre-filled for members in this state; IsAttendanceTarget marks whether
// they count toward attendance rates at all.
type MembershipStatus struct {
	ID                 uuid.UUID `json:"id"`
	DisplayName        string    `json:"display_name"`
	IsAttendanceTarget bool      `json:"is_attendance_target"`
	DefaultAttendance  string    `json:"default_attendance"`
}

type MembershipStatusParams struct {
	DisplayName        string `json:"display_name" binding:"required"`
	IsAttendanceTarget *bool  `json:"is_attendance_target" binding:"required"`
	DefaultAttendance  string `json:"default_attendance" binding:"required"`
}

type MembershipStatusParamsOptional struct {
	DisplayName        *string `json:"display_name"`
	IsAttendanceTarget *bool   `json:"is_attendance_target"`
	DefaultAttendance  *string `json:"default_attendance"`
}

// MembershipStatusPeriod assigns a status to a member for a date range.
// A nil EndDate means the period is still open.
type MembershipStatusPeriod struct {
	ID        uuid.UUID `json:"id"`
	MemberID  uuid.UUID `json:"member_id"`
	StatusID  uuid.UUID `json:"status_id"`
	StartDate Date      `json:"start_date"`
	EndDate   *Date     `json:"end_date"`
}

type MembershipStatusPeriodParams struct {
	MemberID  uuid.UUID `json:"member_id" binding:"required"`
	StatusID  uuid.UUID `json:"status_id" binding:"required"`
	StartDate Date      `json:"start_date" binding:"required"`
	EndDate   *Date     `json:"end_date"`
}

type MembershipStatusPeriodParamsOptional struct {
	StatusID  *uuid.UUID `json:"status_id"`
	StartDate *Date      `json:"start_date"`
	EndDate   *Date      `json:"end_date"`
}
