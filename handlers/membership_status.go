package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"attendify_backend/models"
)

type MembershipStatusHandler struct {
	db *sql.DB
}

func NewMembershipStatusHandler(db *sql.DB) *MembershipStatusHandler {
	return &MembershipStatusHandler{db: db}
}

func (h *MembershipStatusHandler) GetMembershipStatuses(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT id, display_name, is_attendance_target, default_attendance
        FROM membership_statuses
        ORDER BY display_name
    `)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch membership statuses", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	statuses := []models.MembershipStatus{}
	for rows.Next() {
		var s models.MembershipStatus
		if err := rows.Scan(&s.ID, &s.DisplayName, &s.IsAttendanceTarget, &s.DefaultAttendance); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan membership status", models.ErrCodeUnknown)
			return
		}
		statuses = append(statuses, s)
	}

	c.JSON(http.StatusOK, statuses)
}

func (h *MembershipStatusHandler) CreateMembershipStatus(c *gin.Context) {
	var req models.MembershipStatusParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	status := models.MembershipStatus{
		ID:                 uuid.New(),
		DisplayName:        req.DisplayName,
		IsAttendanceTarget: *req.IsAttendanceTarget,
		DefaultAttendance:  req.DefaultAttendance,
	}

	_, err := h.db.Exec(`
        INSERT INTO membership_statuses (id, display_name, is_attendance_target, default_attendance)
        VALUES ($1, $2, $3, $4)
    `, status.ID, status.DisplayName, status.IsAttendanceTarget, status.DefaultAttendance)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create membership status", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, status)
}

// UpdateMembershipStatus applies a partial update; absent fields are left
// unchanged. Unknown ids are not an error.
func (h *MembershipStatusHandler) UpdateMembershipStatus(c *gin.Context) {
	statusID, err := uuid.Parse(c.Param("membership_status_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "membership_status_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var req models.MembershipStatusParamsOptional
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	setClauses := []string{}
	params := []interface{}{}
	addSet := func(column string, value interface{}) {
		params = append(params, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if req.DisplayName != nil {
		addSet("display_name", *req.DisplayName)
	}
	if req.IsAttendanceTarget != nil {
		addSet("is_attendance_target", *req.IsAttendanceTarget)
	}
	if req.DefaultAttendance != nil {
		addSet("default_attendance", *req.DefaultAttendance)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusOK, models.OperationalResult{Result: true})
		return
	}

	params = append(params, statusID)
	query := fmt.Sprintf("UPDATE membership_statuses SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(params))

	if _, err := h.db.Exec(query, params...); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update membership status", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *MembershipStatusHandler) DeleteMembershipStatus(c *gin.Context) {
	statusID, err := uuid.Parse(c.Param("membership_status_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "membership_status_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM membership_statuses WHERE id = $1`, statusID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete membership status", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *MembershipStatusHandler) GetMembershipStatusPeriods(c *gin.Context) {
	memberID, err := uuid.Parse(c.Query("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	rows, err := h.db.Query(`
        SELECT id, member_id, status_id, start_date, end_date
        FROM membership_status_periods
        WHERE member_id = $1
        ORDER BY start_date
    `, memberID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch status periods", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	periods := []models.MembershipStatusPeriod{}
	for rows.Next() {
		var p models.MembershipStatusPeriod
		if err := rows.Scan(&p.ID, &p.MemberID, &p.StatusID, &p.StartDate, &p.EndDate); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan status period", models.ErrCodeUnknown)
			return
		}
		periods = append(periods, p)
	}

	c.JSON(http.StatusOK, periods)
}

func (h *MembershipStatusHandler) CreateMembershipStatusPeriod(c *gin.Context) {
	var req models.MembershipStatusPeriodParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	period := models.MembershipStatusPeriod{
		ID:        uuid.New(),
		MemberID:  req.MemberID,
		StatusID:  req.StatusID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	_, err := h.db.Exec(`
        INSERT INTO membership_status_periods (id, member_id, status_id, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5)
    `, period.ID, period.MemberID, period.StatusID, period.StartDate, period.EndDate)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create status period", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, period)
}

// UpdateMembershipStatusPeriod applies a partial update; absent fields are
// left unchanged. Unknown ids are not an error.
func (h *MembershipStatusHandler) UpdateMembershipStatusPeriod(c *gin.Context) {
	periodID, err := uuid.Parse(c.Param("status_period_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "status_period_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var req models.MembershipStatusPeriodParamsOptional
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	setClauses := []string{}
	params := []interface{}{}
	addSet := func(column string, value interface{}) {
		params = append(params, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if req.StatusID != nil {
		addSet("status_id", *req.StatusID)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		addSet("end_date", *req.EndDate)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusOK, models.OperationalResult{Result: true})
		return
	}

	params = append(params, periodID)
	query := fmt.Sprintf("UPDATE membership_status_periods SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(params))

	if _, err := h.db.Exec(query, params...); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update status period", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *MembershipStatusHandler) DeleteMembershipStatusPeriod(c *gin.Context) {
	periodID, err := uuid.Parse(c.Param("status_period_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "status_period_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM membership_status_periods WHERE id = $1`, periodID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete status period", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}
