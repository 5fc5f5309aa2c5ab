package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendify_backend/db"
	"attendify_backend/models"
)

type PreCheckHandler struct {
	db *sql.DB
}

func NewPreCheckHandler(db *sql.DB) *PreCheckHandler {
	return &PreCheckHandler{db: db}
}

func (h *PreCheckHandler) GetPreAttendances(c *gin.Context) {
	query := `
        SELECT id, date, member_id, attendance, reason, pre_check_id, created_at, updated_at
        FROM pre_attendances
    `
	conditions := []string{}
	params := []interface{}{}

	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
			return
		}
		params = append(params, memberID)
		conditions = append(conditions, fmt.Sprintf("member_id = $%d", len(params)))
	}
	if month := c.Query("month"); month != "" {
		start, end, err := models.MonthRange(month)
		if err != nil {
			jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
			return
		}
		params = append(params, start, end)
		conditions = append(conditions, fmt.Sprintf("date BETWEEN $%d AND $%d", len(params)-1, len(params)))
	}
	if preCheckID := c.Query("pre_check_id"); preCheckID != "" {
		params = append(params, preCheckID)
		conditions = append(conditions, fmt.Sprintf("pre_check_id = $%d", len(params)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, created_at"

	rows, err := h.db.Query(query, params...)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch pre-attendances", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	preAttendances := []models.PreAttendance{}
	for rows.Next() {
		var p models.PreAttendance
		if err := rows.Scan(
			&p.ID, &p.Date, &p.MemberID, &p.Attendance, &p.Reason,
			&p.PreCheckID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan pre-attendance", models.ErrCodeUnknown)
			return
		}
		preAttendances = append(preAttendances, p)
	}

	c.JSON(http.StatusOK, preAttendances)
}

// CreatePreAttendances bulk-inserts declarations in one transaction and
// returns the stored rows. With ?overwrite=true an existing (date, member)
// row is replaced instead of rejected.
func (h *PreCheckHandler) CreatePreAttendances(c *gin.Context) {
	var reqs []models.PreAttendanceParams
	if err := c.ShouldBindJSON(&reqs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	if len(reqs) == 0 {
		c.JSON(http.StatusOK, []models.PreAttendance{})
		return
	}

	query := `
        INSERT INTO pre_attendances (id, date, member_id, attendance, reason, pre_check_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, date, member_id, attendance, reason, pre_check_id, created_at, updated_at
    `
	if c.Query("overwrite") == "true" {
		query = `
        INSERT INTO pre_attendances (id, date, member_id, attendance, reason, pre_check_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (date, member_id)
        DO UPDATE SET attendance = EXCLUDED.attendance, reason = EXCLUDED.reason,
            pre_check_id = EXCLUDED.pre_check_id, updated_at = NOW()
        RETURNING id, date, member_id, attendance, reason, pre_check_id, created_at, updated_at
    `
	}

	tx, err := h.db.Begin()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to start transaction", models.ErrCodeUnknown)
		return
	}

	preAttendances := []models.PreAttendance{}
	for _, req := range reqs {
		var p models.PreAttendance
		err := tx.QueryRow(query, uuid.New(), req.Date, req.MemberID, req.Attendance, req.Reason, req.PreCheckID).Scan(
			&p.ID, &p.Date, &p.MemberID, &p.Attendance, &p.Reason,
			&p.PreCheckID, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			if db.IsUniqueViolation(err) {
				jsonError(c, http.StatusBadRequest, "Already exists pre-attendance", models.ErrCodeAlreadyExistsAttendance)
				return
			}
			jsonError(c, http.StatusInternalServerError, "Failed to create pre-attendances", models.ErrCodeUnknown)
			return
		}
		preAttendances = append(preAttendances, p)
	}

	if err := tx.Commit(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to commit pre-attendances", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, preAttendances)
}

// DeletePreAttendance removes a declaration. Unknown ids are not an error.
func (h *PreCheckHandler) DeletePreAttendance(c *gin.Context) {
	preAttendanceID, err := uuid.Parse(c.Param("pre_attendance_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "pre_attendance_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM pre_attendances WHERE id = $1`, preAttendanceID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete pre-attendance", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendanceOperationalResult{Result: true, AttendanceID: &preAttendanceID})
}

// UpdatePreAttendance replaces the status of a declaration with the value of
// the attendance query parameter. Unknown ids are not an error.
func (h *PreCheckHandler) UpdatePreAttendance(c *gin.Context) {
	preAttendanceID, err := uuid.Parse(c.Param("pre_attendance_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "pre_attendance_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	attendance := c.Query("attendance")
	if attendance == "" {
		jsonError(c, http.StatusBadRequest, "attendance query parameter is required", models.ErrCodeUnknown)
		return
	}

	_, err = h.db.Exec(
		`UPDATE pre_attendances SET attendance = $1, updated_at = NOW() WHERE id = $2`,
		attendance, preAttendanceID,
	)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update pre-attendance", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.AttendanceOperationalResult{Result: true, AttendanceID: &preAttendanceID})
}

// DeletePreAttendances removes every declaration in the request body.
func (h *PreCheckHandler) DeletePreAttendances(c *gin.Context) {
	var preAttendanceIDs []uuid.UUID
	if err := c.ShouldBindJSON(&preAttendanceIDs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(
		`DELETE FROM pre_attendances WHERE id = ANY($1)`, pq.Array(preAttendanceIDs),
	); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete pre-attendances", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *PreCheckHandler) GetPreChecks(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT id, start_date, end_date, description, edit_deadline_days
        FROM pre_checks
        ORDER BY start_date
    `)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch pre-checks", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	preChecks := []models.PreCheck{}
	for rows.Next() {
		var p models.PreCheck
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.Description, &p.EditDeadlineDays); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan pre-check", models.ErrCodeUnknown)
			return
		}
		preChecks = append(preChecks, p)
	}

	c.JSON(http.StatusOK, preChecks)
}

// GetPreCheck returns one collection window, or JSON null when the id is
// unknown.
func (h *PreCheckHandler) GetPreCheck(c *gin.Context) {
	var p models.PreCheck
	err := h.db.QueryRow(`
        SELECT id, start_date, end_date, description, edit_deadline_days
        FROM pre_checks
        WHERE id = $1
    `, c.Param("pre_check_id")).Scan(&p.ID, &p.StartDate, &p.EndDate, &p.Description, &p.EditDeadlineDays)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch pre-check", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PreCheckHandler) CreatePreCheck(c *gin.Context) {
	var req models.PreCheckParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	preCheck := models.PreCheck{
		ID:               uuid.New().String(),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
		EditDeadlineDays: req.EditDeadlineDays,
	}

	_, err := h.db.Exec(`
        INSERT INTO pre_checks (id, start_date, end_date, description, edit_deadline_days)
        VALUES ($1, $2, $3, $4, $5)
    `, preCheck.ID, preCheck.StartDate, preCheck.EndDate, preCheck.Description, preCheck.EditDeadlineDays)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create pre-check", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, preCheck)
}

// UpdatePreCheck replaces all four fields of a collection window and returns
// the stored row, or JSON null when the id is unknown.
func (h *PreCheckHandler) UpdatePreCheck(c *gin.Context) {
	var req models.PreCheckParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	var p models.PreCheck
	err := h.db.QueryRow(`
        UPDATE pre_checks
        SET start_date = $1, end_date = $2, description = $3, edit_deadline_days = $4
        WHERE id = $5
        RETURNING id, start_date, end_date, description, edit_deadline_days
    `, req.StartDate, req.EndDate, req.Description, req.EditDeadlineDays, c.Param("pre_check_id")).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.Description, &p.EditDeadlineDays)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update pre-check", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PreCheckHandler) DeletePreCheck(c *gin.Context) {
	if _, err := h.db.Exec(`DELETE FROM pre_checks WHERE id = $1`, c.Param("pre_check_id")); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete pre-check", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}
