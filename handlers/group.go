package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendify_backend/db"
	"attendify_backend/models"
)

type GroupHandler struct {
	db *sql.DB
}

func NewGroupHandler(db *sql.DB) *GroupHandler {
	return &GroupHandler{db: db}
}

func (h *GroupHandler) GetGroups(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT id, display_name, created_at
        FROM groups
        ORDER BY created_at
    `)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch groups", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.DisplayName, &g.CreatedAt); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan group", models.ErrCodeUnknown)
			return
		}
		groups = append(groups, g)
	}

	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.GroupParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	var group models.Group
	err := h.db.QueryRow(`
        INSERT INTO groups (id, display_name)
        VALUES ($1, $2)
        RETURNING id, display_name, created_at
    `, uuid.New(), req.DisplayName).Scan(&group.ID, &group.DisplayName, &group.CreatedAt)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create group", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup renames a group. Unknown ids are not an error.
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var req models.GroupParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(
		`UPDATE groups SET display_name = $1 WHERE id = $2`, req.DisplayName, groupID,
	); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update group", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM groups WHERE id = $1`, groupID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete group", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	rows, err := h.db.Query(`
        SELECT m.id, m.part, m.generation, m.name, m.name_kana, m.email, m.role, m.is_competition_member
        FROM member_groups mg
        JOIN members m ON m.id = mg.member_id
        WHERE mg.group_id = $1
        ORDER BY m.generation, m.name_kana
    `, groupID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch group members", models.ErrCodeUnknown)
		return
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID, &m.Part, &m.Generation, &m.Name,
			&m.NameKana, &m.Email, &m.Role, &m.IsCompetitionMember,
		); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to scan member", models.ErrCodeUnknown)
			return
		}
		members = append(members, m)
	}

	c.JSON(http.StatusOK, members)
}

// AddGroupMember puts one member into a group. A member already in the
// group is an error.
func (h *GroupHandler) AddGroupMember(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	_, err = h.db.Exec(`
        INSERT INTO member_groups (id, member_id, group_id)
        VALUES ($1, $2, $3)
    `, uuid.New(), memberID, groupID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			jsonError(c, http.StatusBadRequest, "Already exists group member", models.ErrCodeAlreadyExistsGroupMember)
			return
		}
		jsonError(c, http.StatusInternalServerError, "Failed to add group member", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

// AddGroupMembers puts several members into a group at once. Members
// already in the group are skipped.
func (h *GroupHandler) AddGroupMembers(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var memberIDs []uuid.UUID
	if err := c.ShouldBindJSON(&memberIDs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to start transaction", models.ErrCodeUnknown)
		return
	}

	for _, memberID := range memberIDs {
		if _, err := tx.Exec(`
            INSERT INTO member_groups (id, member_id, group_id)
            VALUES ($1, $2, $3) ON CONFLICT DO NOTHING
        `, uuid.New(), memberID, groupID); err != nil {
			tx.Rollback()
			jsonError(c, http.StatusInternalServerError, "Failed to add group members", models.ErrCodeUnknown)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to commit group members", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *GroupHandler) RemoveGroupMember(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(
		`DELETE FROM member_groups WHERE group_id = $1 AND member_id = $2`, groupID, memberID,
	); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to remove group member", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *GroupHandler) RemoveGroupMembers(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "group_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var memberIDs []uuid.UUID
	if err := c.ShouldBindJSON(&memberIDs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(
		`DELETE FROM member_groups WHERE group_id = $1 AND member_id = ANY($2)`,
		groupID, pq.Array(memberIDs),
	); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to remove group members", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}
