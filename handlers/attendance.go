package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"attendify_backend/db"
	"attendify_backend/models"
	"attendify_backend/rate"
)

type AttendanceHandler struct {
	db *sql.DB
}

func NewAttendanceHandler(db *sql.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

func (h *AttendanceHandler) GetAttendances(c *gin.Context) {
	query := `
        SELECT a.id, a.date, a.attendance, a.created_at, a.updated_at, a.member_id
        FROM attendances a
        JOIN members m ON m.id = a.member_id
    `
	conditions := []string{}
	params := []interface{}{}

	if part := c.Query("part"); part != "" {
		params = append(params, string(models.NormalizePart(part)))
		conditions = append(conditions, fmt.Sprintf("m.part = $%d", len(params)))
	}
	if gen := c.Query("generation"); gen != "" {
		generation, err := strconv.Atoi(gen)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "generation must be an integer", models.ErrCodeUnknown)
			return
		}
		params = append(params, generation)
		conditions = append(conditions, fmt.Sprintf("m.generation = $%d", len(params)))
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := models.ParseDate(dateStr)
		if err != nil {
			jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
			return
		}
		params = append(params, date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(params)))
	}
	if month := c.Query("month"); month != "" {
		start, end, err := models.MonthRange(month)
		if err != nil {
			jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
			return
		}
		params = append(params, start, end)
		conditions = append(conditions, fmt.Sprintf("a.date BETWEEN $%d AND $%d", len(params)-1, len(params)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date, a.created_at"

	rows, err := h.db.Query(query, params...)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch attendances", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	attendances := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(
			&a.ID, &a.Date, &a.Attendance, &a.CreatedAt, &a.UpdatedAt, &a.MemberID,
		); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan attendance", models.ErrCodeUnknown)
			return
		}
		attendances = append(attendances, a)
	}

	c.JSON(http.StatusOK, attendances)
}

// CreateAttendance stores one attendance record. A second record for the
// same member and date is rejected unless ?overwrite=true, which replaces
// the stored status instead. Success kicks off a background recalculation
// of the affected month's rates.
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var req models.AttendancesParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	query := `
        INSERT INTO attendances (id, date, member_id, attendance)
        VALUES ($1, $2, $3, $4)
        RETURNING id, date, attendance, created_at, updated_at, member_id
    `
	if c.Query("overwrite") == "true" {
		query = `
        INSERT INTO attendances (id, date, member_id, attendance)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (date, member_id)
        DO UPDATE SET attendance = EXCLUDED.attendance, updated_at = NOW()
        RETURNING id, date, attendance, created_at, updated_at, member_id
    `
	}

	var attendance models.Attendance
	err := h.db.QueryRow(query, uuid.New(), req.Date, req.MemberID, req.Attendance).Scan(
		&attendance.ID, &attendance.Date, &attendance.Attendance,
		&attendance.CreatedAt, &attendance.UpdatedAt, &attendance.MemberID,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			jsonError(c, http.StatusBadRequest, "Already exists attendance", models.ErrCodeAlreadyExistsAttendance)
			return
		}
		jsonError(c, http.StatusInternalServerError, "Failed to create attendance", models.ErrCodeUnknown)
		return
	}

	go h.recalcMonth(attendance.Date.MonthKey(), attendance.MemberID)

	c.JSON(http.StatusOK, attendance)
}

// CreateAttendances bulk-inserts attendance records in one transaction.
// Unlike the single insert it does not trigger a rate recalculation.
func (h *AttendanceHandler) CreateAttendances(c *gin.Context) {
	var reqs []models.AttendancesParams
	if err := c.ShouldBindJSON(&reqs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	query := `
        INSERT INTO attendances (id, date, member_id, attendance)
        VALUES ($1, $2, $3, $4)
    `
	if c.Query("overwrite") == "true" {
		query += `
        ON CONFLICT (date, member_id)
        DO UPDATE SET attendance = EXCLUDED.attendance, updated_at = NOW()
    `
	}

	tx, err := h.db.Begin()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to start transaction", models.ErrCodeUnknown)
		return
	}

	for _, req := range reqs {
		if _, err := tx.Exec(query, uuid.New(), req.Date, req.MemberID, req.Attendance); err != nil {
			tx.Rollback()
			if db.IsUniqueViolation(err) {
				jsonError(c, http.StatusBadRequest, "Already exists attendance", models.ErrCodeAlreadyExistsAttendance)
				return
			}
			jsonError(c, http.StatusInternalServerError, "Failed to create attendances", models.ErrCodeUnknown)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to commit attendances", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendancesOperationalResult{Result: true})
}

// DeleteAttendance removes a record. Deleting an unknown id is not an error.
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	attendanceID, err := uuid.Parse(c.Param("attendance_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "attendance_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM attendances WHERE id = $1`, attendanceID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete attendance", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendanceOperationalResult{Result: true, AttendanceID: &attendanceID})
}

// UpdateAttendance replaces the status of a record with the value of the
// attendance query parameter. Updating an unknown id is not an error.
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	attendanceID, err := uuid.Parse(c.Param("attendance_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "attendance_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	attendance := c.Query("attendance")
	if attendance == "" {
		jsonError(c, http.StatusBadRequest, "attendance query parameter is required", models.ErrCodeUnknown)
		return
	}

	_, err = h.db.Exec(
		`UPDATE attendances SET attendance = $1, updated_at = NOW() WHERE id = $2`,
		attendance, attendanceID,
	)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update attendance", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendanceOperationalResult{Result: true, AttendanceID: &attendanceID})
}

func (h *AttendanceHandler) GetAttendanceRates(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT id, target_type, target_id, month, rate, actual, updated_at
        FROM attendance_rates
        ORDER BY month, target_type, target_id
    `)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch attendance rates", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	rates := []models.AttendanceRate{}
	for rows.Next() {
		var r models.AttendanceRate
		if err := rows.Scan(
			&r.ID, &r.TargetType, &r.TargetID, &r.Month, &r.Rate, &r.Actual, &r.UpdatedAt,
		); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan attendance rate", models.ErrCodeUnknown)
			return
		}
		rates = append(rates, r)
	}

	c.JSON(http.StatusOK, rates)
}

// RecalcAttendanceRates rebuilds the whole attendance_rates table. Months
// come from the schedule, and only attendances on scheduled dates count.
func (h *AttendanceHandler) RecalcAttendanceRates(c *gin.Context) {
	list, err := h.loadAllRecords()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch attendances", models.ErrCodeUnknown)
		return
	}

	scheduleDates, err := h.loadScheduleDates()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch schedules", models.ErrCodeUnknown)
		return
	}

	months := []string{}
	seenMonth := map[string]bool{}
	onSchedule := map[string]bool{}
	for _, d := range scheduleDates {
		onSchedule[d.String()] = true
		if key := d.MonthKey(); !seenMonth[key] {
			seenMonth[key] = true
			months = append(months, key)
		}
	}
	sort.Strings(months)

	rates := []models.AttendanceRateParams{}
	for _, month := range months {
		monthList := rate.List{}
		for _, r := range list {
			date := models.Date{Time: r.Date}
			if date.MonthKey() == month && onSchedule[date.String()] {
				monthList = append(monthList, r)
			}
		}
		rates = append(rates, buildMonthRates(monthList, month)...)
	}

	tx, err := h.db.Begin()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to start transaction", models.ErrCodeUnknown)
		return
	}
	if _, err := tx.Exec(`DELETE FROM attendance_rates`); err != nil {
		tx.Rollback()
		jsonError(c, http.StatusInternalServerError, "Failed to clear attendance rates", models.ErrCodeUnknown)
		return
	}
	if err := upsertRates(tx, rates); err != nil {
		tx.Rollback()
		jsonError(c, http.StatusInternalServerError, "Failed to store attendance rates", models.ErrCodeUnknown)
		return
	}
	if err := tx.Commit(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to commit attendance rates", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendancesOperationalResult{Result: true})
}

// recalcMonth recomputes the six rate rows one new attendance affects: the
// whole club, the member's part and the member, nominal and actual each.
// It runs in the background, so failures are only logged.
func (h *AttendanceHandler) recalcMonth(month string, memberID uuid.UUID) {
	list, err := h.loadMonthRecords(month)
	if err != nil {
		slog.Error("rate recalculation failed", "month", month, "error", err)
		return
	}

	var part models.Part
	if err := h.db.QueryRow(`SELECT part FROM members WHERE id = $1`, memberID).Scan(&part); err != nil {
		slog.Error("rate recalculation failed", "month", month, "error", err)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("rate recalculation failed", "month", month, "error", err)
		return
	}
	if err := upsertRates(tx, buildMemberRates(list, month, part, memberID)); err != nil {
		tx.Rollback()
		slog.Error("rate recalculation failed", "month", month, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("rate recalculation failed", "month", month, "error", err)
	}
}

func (h *AttendanceHandler) loadMonthRecords(month string) (rate.List, error) {
	start, end, err := models.MonthRange(month)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.Query(`
        SELECT a.date, a.member_id, m.part, a.attendance
        FROM attendances a
        JOIN members m ON m.id = a.member_id
        WHERE a.date BETWEEN $1 AND $2
    `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (h *AttendanceHandler) loadAllRecords() (rate.List, error) {
	rows, err := h.db.Query(`
        SELECT a.date, a.member_id, m.part, a.attendance
        FROM attendances a
        JOIN members m ON m.id = a.member_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (h *AttendanceHandler) loadScheduleDates() ([]models.Date, error) {
	rows, err := h.db.Query(`SELECT date FROM schedules`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []models.Date{}
	for rows.Next() {
		var d models.Date
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func scanRecords(rows *sql.Rows) (rate.List, error) {
	list := rate.List{}
	for rows.Next() {
		var r rate.Record
		var date models.Date
		if err := rows.Scan(&date, &r.MemberID, &r.Part, &r.Status); err != nil {
			return nil, err
		}
		r.Date = date.Time
		list = append(list, r)
	}
	return list, rows.Err()
}

// ratePair builds the nominal and actual rate rows for one scope. A scope
// with nothing to count keeps a nil rate.
func ratePair(list rate.List, targetType string, targetID *string, month string) []models.AttendanceRateParams {
	pair := []models.AttendanceRateParams{
		{TargetType: targetType, TargetID: targetID, Month: month, Actual: false},
		{TargetType: targetType, TargetID: targetID, Month: month, Actual: true},
	}
	if nominal, ok := list.Rate(false); ok {
		pair[0].Rate = &nominal
	}
	if actual, ok := list.Rate(true); ok {
		pair[1].Rate = &actual
	}
	return pair
}

// buildMonthRates computes a month's rate rows: the whole club, every part,
// and every member appearing in the records.
func buildMonthRates(list rate.List, month string) []models.AttendanceRateParams {
	rates := ratePair(list, models.RateTargetAll, nil, month)

	for _, part := range models.Parts {
		target := string(part)
		rates = append(rates, ratePair(list.FilterPart(part), models.RateTargetPart, &target, month)...)
	}

	seen := map[uuid.UUID]bool{}
	for _, r := range list {
		if seen[r.MemberID] {
			continue
		}
		seen[r.MemberID] = true
		target := r.MemberID.String()
		rates = append(rates, ratePair(list.FilterMember(r.MemberID), models.RateTargetMember, &target, month)...)
	}

	return rates
}

// buildMemberRates computes the six rows recalcMonth persists.
func buildMemberRates(list rate.List, month string, part models.Part, memberID uuid.UUID) []models.AttendanceRateParams {
	partTarget := string(part)
	memberTarget := memberID.String()

	rates := ratePair(list, models.RateTargetAll, nil, month)
	rates = append(rates, ratePair(list.FilterPart(part), models.RateTargetPart, &partTarget, month)...)
	rates = append(rates, ratePair(list.FilterMember(memberID), models.RateTargetMember, &memberTarget, month)...)
	return rates
}

func upsertRates(tx *sql.Tx, rates []models.AttendanceRateParams) error {
	for _, r := range rates {
		if _, err := tx.Exec(`
            INSERT INTO attendance_rates (id, target_type, target_id, month, rate, actual)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT (target_id, month, actual)
            DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
        `, uuid.New(), r.TargetType, r.TargetID, r.Month, r.Rate, r.Actual); err != nil {
			return err
		}
	}
	return nil
}
