package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendify_backend/models"
)

type ScheduleHandler struct {
	db *sql.DB
}

func NewScheduleHandler(db *sql.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT date, type, groups, exclude_groups, generations
        FROM schedules
        ORDER BY date
    `)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch schedules", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		var groups, excludeGroups, generations []byte
		if err := rows.Scan(&s.Date, &s.Type, &groups, &excludeGroups, &generations); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan schedule", models.ErrCodeUnknown)
			return
		}
		if err := scanJSON(groups, &s.Groups); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to decode schedule groups", models.ErrCodeUnknown)
			return
		}
		if err := scanJSON(excludeGroups, &s.ExcludeGroups); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to decode schedule groups", models.ErrCodeUnknown)
			return
		}
		if err := scanJSON(generations, &s.Generations); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to decode schedule generations", models.ErrCodeUnknown)
			return
		}
		schedules = append(schedules, s)
	}

	c.JSON(http.StatusOK, schedules)
}

// UpsertSchedule stores a schedule, replacing any existing entry for the
// same date.
func (h *ScheduleHandler) UpsertSchedule(c *gin.Context) {
	var req models.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	var groups, excludeGroups, generations interface{}
	var err error
	if req.Groups != nil {
		if groups, err = json.Marshal(req.Groups); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to encode schedule groups", models.ErrCodeUnknown)
			return
		}
	}
	if req.ExcludeGroups != nil {
		if excludeGroups, err = json.Marshal(req.ExcludeGroups); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to encode schedule groups", models.ErrCodeUnknown)
			return
		}
	}
	if req.Generations != nil {
		if generations, err = json.Marshal(req.Generations); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to encode schedule generations", models.ErrCodeUnknown)
			return
		}
	}

	_, err = h.db.Exec(`
        INSERT INTO schedules (date, type, groups, exclude_groups, generations)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (date)
        DO UPDATE SET type = EXCLUDED.type, groups = EXCLUDED.groups,
                      exclude_groups = EXCLUDED.exclude_groups, generations = EXCLUDED.generations
    `, req.Date, req.Type, groups, excludeGroups, generations)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to store schedule", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.ScheduleOperationalResult{Result: true, Date: req.Date})
}

// DeleteSchedule removes the schedule of a date. Unknown dates are not an
// error.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM schedules WHERE date = $1`, date); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete schedule", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.ScheduleOperationalResult{Result: true, Date: date})
}

// scanJSON decodes a nullable JSONB column into dst.
func scanJSON(data []byte, dst interface{}) error {
	if data == nil {
		return nil
	}
	return json.Unmarshal(data, dst)
}
