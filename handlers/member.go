package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendify_backend/db"
	"attendify_backend/middleware"
	"attendify_backend/models"
)

type MemberHandler struct {
	db *sql.DB
}

func NewMemberHandler(db *sql.DB) *MemberHandler {
	return &MemberHandler{db: db}
}

func (h *MemberHandler) GetMembers(c *gin.Context) {
	query := `
        SELECT id, part, generation, name, name_kana, email, role, is_competition_member
        FROM members
    `
	conditions := []string{}
	params := []interface{}{}

	if part := c.Query("part"); part != "" {
		params = append(params, string(models.NormalizePart(part)))
		conditions = append(conditions, fmt.Sprintf("part = $%d", len(params)))
	}
	if gen := c.Query("generation"); gen != "" {
		generation, err := strconv.Atoi(gen)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "generation must be an integer", models.ErrCodeUnknown)
			return
		}
		params = append(params, generation)
		conditions = append(conditions, fmt.Sprintf("generation = $%d", len(params)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY generation, name_kana"

	rows, err := h.db.Query(query, params...)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch members", models.ErrCodeUnknown)
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

// GetSelf returns the member attached to the current session.
func (h *MemberHandler) GetSelf(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		jsonError(c, http.StatusUnauthorized, "Invalid authentication credentials", models.ErrCodeInvalidAuthCredentials)
		return
	}
	c.JSON(http.StatusOK, sess.Member)
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req models.MemberParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	member := models.Member{
		ID:         uuid.New(),
		Part:       req.Part,
		Generation: req.Generation,
		Name:       req.Name,
		NameKana:   req.NameKana,
		Email:      req.Email,
		Role:       req.Role,
	}

	_, err := h.db.Exec(`
        INSERT INTO members (id, part, generation, name, name_kana, email, role)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, member.ID, member.Part, member.Generation, member.Name, member.NameKana, member.Email, member.Role)
	if err != nil {
		if db.IsUniqueViolation(err) {
			jsonError(c, http.StatusBadRequest, "Already exists member email", models.ErrCodeAlreadyExistsMemberEmail)
			return
		}
		jsonError(c, http.StatusInternalServerError, "Failed to create member", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) CreateMembers(c *gin.Context) {
	var reqs []models.MemberParams
	if err := c.ShouldBindJSON(&reqs); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to start transaction", models.ErrCodeUnknown)
		return
	}

	for _, req := range reqs {
		_, err := tx.Exec(`
            INSERT INTO members (id, part, generation, name, name_kana, email, role)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `, uuid.New(), req.Part, req.Generation, req.Name, req.NameKana, req.Email, req.Role)
		if err != nil {
			tx.Rollback()
			if db.IsUniqueViolation(err) {
				jsonError(c, http.StatusBadRequest, "Already exists member email", models.ErrCodeAlreadyExistsMemberEmail)
				return
			}
			jsonError(c, http.StatusInternalServerError, "Failed to create members", models.ErrCodeUnknown)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to commit members", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.MembersOperationalResult{Result: true})
}

// DeleteMember removes a member. Deleting an unknown member is not an error.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	if _, err := h.db.Exec(`DELETE FROM members WHERE id = $1`, memberID); err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to delete member", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.MembersOperationalResult{Result: true})
}

// UpdateMember applies a partial update; absent fields are left unchanged.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "member_id must be a UUID", models.ErrCodeUnknown)
		return
	}

	var req models.MemberParamsOptional
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

	if req.Part != nil {
		addSet("part", *req.Part)
	}
	if req.Generation != nil {
		addSet("generation", *req.Generation)
	}
	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.NameKana != nil {
		addSet("name_kana", *req.NameKana)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.IsCompetitionMember != nil {
		addSet("is_competition_member", *req.IsCompetitionMember)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusOK, models.MembersOperationalResult{Result: true})
		return
	}

	params = append(params, memberID)
	query := fmt.Sprintf("UPDATE members SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(params))

	if _, err := h.db.Exec(query, params...); err != nil {
		if db.IsUniqueViolation(err) {
			jsonError(c, http.StatusBadRequest, "Already exists member email", models.ErrCodeAlreadyExistsMemberEmail)
			return
		}
		jsonError(c, http.StatusInternalServerError, "Failed to update member", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.MembersOperationalResult{Result: true})
}

// UpdateMembersCompetition flags several members in or out of the
// competition band at once.
func (h *MemberHandler) UpdateMembersCompetition(c *gin.Context) {
	var req models.MembersCompetitionParams
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error(), models.ErrCodeUnknown)
		return
	}

	_, err := h.db.Exec(
		`UPDATE members SET is_competition_member = $1 WHERE id = ANY($2)`,
		*req.IsCompetitionMember, pq.Array(req.MemberIDs),
	)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update members", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, models.MembersOperationalResult{Result: true})
}
