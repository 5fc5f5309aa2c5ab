package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create members table
CREATE TABLE IF NOT EXISTS members (
    id UUID PRIMARY KEY,
    part VARCHAR(32) NOT NULL,
    generation INTEGER NOT NULL,
    name VARCHAR(64) NOT NULL,
    name_kana VARCHAR(64) NOT NULL,
    email VARCHAR(64) UNIQUE NOT NULL,
    role VARCHAR(32),
    is_competition_member BOOLEAN NOT NULL DEFAULT FALSE
);

-- Create groups table
CREATE TABLE IF NOT EXISTS groups (
    id UUID PRIMARY KEY,
    display_name VARCHAR(64) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Create member_groups table
CREATE TABLE IF NOT EXISTS member_groups (
    id UUID PRIMARY KEY,
    member_id UUID NOT NULL,
    group_id UUID NOT NULL,
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    UNIQUE(member_id, group_id)
);

-- Create membership_statuses table
CREATE TABLE IF NOT EXISTS membership_statuses (
    id UUID PRIMARY KEY,
    display_name VARCHAR(64) UNIQUE NOT NULL,
    is_attendance_target BOOLEAN NOT NULL,
    default_attendance VARCHAR(64) NOT NULL
);

-- Create membership_status_periods table
CREATE TABLE IF NOT EXISTS membership_status_periods (
    id UUID PRIMARY KEY,
    member_id UUID NOT NULL,
    status_id UUID NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE,
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
    FOREIGN KEY (status_id) REFERENCES membership_statuses(id) ON DELETE CASCADE
);

-- Create weekly_participations table
CREATE TABLE IF NOT EXISTS weekly_participations (
    id UUID PRIMARY KEY,
    member_id UUID NOT NULL,
    weekday INTEGER NOT NULL,
    default_attendance VARCHAR(64) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
    UNIQUE(member_id, weekday)
);

-- Create attendances table
CREATE TABLE IF NOT EXISTS attendances (
    id UUID PRIMARY KEY,
    date DATE NOT NULL,
    member_id UUID NOT NULL,
    attendance VARCHAR(64) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
    UNIQUE(date, member_id)
);

-- Create attendance_rates table
CREATE TABLE IF NOT EXISTS attendance_rates (
    id UUID PRIMARY KEY,
    target_type VARCHAR(32) NOT NULL,
    target_id VARCHAR(64),
    month VARCHAR(7) NOT NULL,
    rate DOUBLE PRECISION,
    actual BOOLEAN NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE NULLS NOT DISTINCT (target_id, month, actual)
);

-- Create schedules table
CREATE TABLE IF NOT EXISTS schedules (
    date DATE PRIMARY KEY,
    type VARCHAR(32) NOT NULL,
    groups JSONB,
    exclude_groups JSONB,
    generations JSONB
);

-- Create sessions table
CREATE TABLE IF NOT EXISTS sessions (
    token VARCHAR(256) PRIMARY KEY,
    member_id UUID NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
);

-- Create pre_checks table
CREATE TABLE IF NOT EXISTS pre_checks (
    id VARCHAR(64) PRIMARY KEY,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    description VARCHAR(256) NOT NULL,
    edit_deadline_days INTEGER NOT NULL
);

-- Create pre_attendances table
CREATE TABLE IF NOT EXISTS pre_attendances (
    id UUID PRIMARY KEY,
    date DATE NOT NULL,
    member_id UUID,
    attendance VARCHAR(64) NOT NULL,
    reason VARCHAR(256),
    pre_check_id VARCHAR(64),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
    FOREIGN KEY (pre_check_id) REFERENCES pre_checks(id) ON DELETE SET NULL,
    UNIQUE(date, member_id)
);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
