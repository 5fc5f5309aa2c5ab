package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"attendify_backend/models"
)

type WeeklyParticipationHandler struct {
	db *sql.DB
}

func NewWeeklyParticipationHandler(db *sql.DB) *WeeklyParticipationHandler {
	return &WeeklyParticipationHandler{db: db}
}

func (h *WeeklyParticipationHandler) GetWeeklyParticipations(c *gin.Context) {
	memberID, err := uuid.Parse(c.Query("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	rows, err := h.db.Query(`
        SELECT id, member_id, weekday, default_attendance, is_active
        FROM weekly_participations
        WHERE member_id = $1
        ORDER BY weekday
    `, memberID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch weekly participations", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	participations := []models.WeeklyParticipation{}
	for rows.Next() {
		var p models.WeeklyParticipation
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Weekday, &p.DefaultAttendance, &p.IsActive); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan weekly participation", models.ErrCodeUnknown)
			return
		}
		participations = append(participations, p)
	}

	c.JSON(http.StatusOK, participations)
}

// UpsertWeeklyParticipation creates or replaces the member's default for
// one weekday. A member has at most one row per weekday.
func (h *WeeklyParticipationHandler) UpsertWeeklyParticipation(c *gin.Context) {
	var req models.WeeklyParticipationParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	var participation models.WeeklyParticipation
	err := h.db.QueryRow(`
        INSERT INTO weekly_participations (id, member_id, weekday, default_attendance, is_active)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (member_id, weekday)
        DO UPDATE SET default_attendance = EXCLUDED.default_attendance, is_active = EXCLUDED.is_active
        RETURNING id, member_id, weekday, default_attendance, is_active
    `, uuid.New(), req.MemberID, *req.Weekday, req.DefaultAttendance, *req.IsActive).Scan(
		&participation.ID, &participation.MemberID, &participation.Weekday,
		&participation.DefaultAttendance, &participation.IsActive)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to save weekly participation", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, participation)
}
