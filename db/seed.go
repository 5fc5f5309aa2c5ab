package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SeedData populates the database with the initial membership statuses
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	statuses := []struct {
		DisplayName        string
		IsAttendanceTarget bool
		DefaultAttendance  string
	}{
		{"在籍", true, "出席"},
		{"休部", false, "欠席"},
		{"退部", false, "欠席"},
	}
	for _, s := range statuses {
		_, err = tx.Exec(`INSERT INTO membership_statuses (id, display_name, is_attendance_target, default_attendance)
			VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			uuid.New(), s.DisplayName, s.IsAttendanceTarget, s.DefaultAttendance)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding membership statuses: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
