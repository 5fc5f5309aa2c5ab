package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendify_backend/config"
	"attendify_backend/models"
)

func constantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	settings := &config.Settings{
		Grade: config.Grades{
			Senior2: config.Grade{Generation: 73, DisplayName: "高2"},
			Senior1: config.Grade{Generation: 74, DisplayName: "高1"},
			Junior3: config.Grade{Generation: 75, DisplayName: "中3"},
			Junior2: config.Grade{Generation: 76, DisplayName: "中2"},
			Junior1: config.Grade{Generation: 77, DisplayName: "中1"},
		},
	}
	h := NewConstantHandler(settings)

	r := gin.New()
	r.GET("/constant/part", h.GetParts)
	r.GET("/constant/role", h.GetRoles)
	r.GET("/constant/grade", h.GetGrades)
	return r
}

func TestGetParts(t *testing.T) {
	r := constantRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/constant/part", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var parts map[models.Part]models.PartDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parts))
	assert.Len(t, parts, len(models.Parts))
	assert.Equal(t, models.PartDetail{JP: "フルート", EN: "Flute", ENShort: "Fl"}, parts[models.PartFlute])
	assert.Equal(t, models.PartDetail{JP: "不明", EN: "Unknown", ENShort: "-"}, parts[models.PartUnknown])
}

func TestGetRoles(t *testing.T) {
	r := constantRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/constant/role", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var roles map[models.Role]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roles))
	assert.Len(t, roles, len(models.Roles))
	assert.Equal(t, "役員", roles[models.RoleExecutive])
	assert.Equal(t, "出席係", roles[models.RoleAttendanceOfficer])
}

func TestGetGrades(t *testing.T) {
	r := constantRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/constant/grade", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var grades config.Grades
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grades))
	assert.Equal(t, 73, grades.Senior2.Generation)
	assert.Equal(t, "中1", grades.Junior1.DisplayName)
}
