package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendify_backend/models"
	"attendify_backend/rate"
)

func record(memberID uuid.UUID, part models.Part, status string) rate.Record {
	return rate.Record{
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		MemberID: memberID,
		Part:     part,
		Status:   status,
	}
}

func findRate(t *testing.T, rates []models.AttendanceRateParams, targetType string, targetID *string, actual bool) models.AttendanceRateParams {
	t.Helper()
	for _, r := range rates {
		if r.TargetType != targetType || r.Actual != actual {
			continue
		}
		if targetID == nil && r.TargetID == nil {
			return r
		}
		if targetID != nil && r.TargetID != nil && *targetID == *r.TargetID {
			return r
		}
	}
	t.Fatalf("no %s/%v rate with actual=%v", targetType, targetID, actual)
	return models.AttendanceRateParams{}
}

func TestRatePair(t *testing.T) {
	memberID := uuid.New()
	list := rate.List{
		record(memberID, models.PartFlute, models.StatusPresent),
		record(memberID, models.PartFlute, models.StatusAbsent),
	}

	pair := ratePair(list, models.RateTargetAll, nil, "2025-04")

	require.Len(t, pair, 2)
	assert.False(t, pair[0].Actual)
	assert.True(t, pair[1].Actual)
	assert.Equal(t, "2025-04", pair[0].Month)
	require.NotNil(t, pair[0].Rate)
	require.NotNil(t, pair[1].Rate)
	assert.Equal(t, 50.0, *pair[0].Rate)
	assert.Equal(t, 50.0, *pair[1].Rate)
}

func TestRatePairEmptyScope(t *testing.T) {
	pair := ratePair(rate.List{}, models.RateTargetAll, nil, "2025-04")

	require.Len(t, pair, 2)
	assert.Nil(t, pair[0].Rate)
	assert.Nil(t, pair[1].Rate)
}

func TestBuildMonthRates(t *testing.T) {
	flutist := uuid.New()
	hornist := uuid.New()
	list := rate.List{
		record(flutist, models.PartFlute, models.StatusPresent),
		record(hornist, models.PartHorn, models.StatusAbsent),
	}

	rates := buildMonthRates(list, "2025-04")

	// all + every part + both members, nominal and actual each
	assert.Len(t, rates, 2+2*len(models.Parts)+2*2)

	all := findRate(t, rates, models.RateTargetAll, nil, false)
	require.NotNil(t, all.Rate)
	assert.Equal(t, 50.0, *all.Rate)

	fl := "fl"
	flute := findRate(t, rates, models.RateTargetPart, &fl, false)
	require.NotNil(t, flute.Rate)
	assert.Equal(t, 100.0, *flute.Rate)

	// parts without records that month keep a nil rate
	cl := "cl"
	clarinet := findRate(t, rates, models.RateTargetPart, &cl, false)
	assert.Nil(t, clarinet.Rate)

	hornistTarget := hornist.String()
	member := findRate(t, rates, models.RateTargetMember, &hornistTarget, true)
	require.NotNil(t, member.Rate)
	assert.Equal(t, 0.0, *member.Rate)
}

func TestBuildMonthRatesMemberOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	list := rate.List{
		record(first, models.PartFlute, models.StatusPresent),
		record(second, models.PartFlute, models.StatusPresent),
		record(first, models.PartFlute, models.StatusAbsent),
	}

	rates := buildMonthRates(list, "2025-04")

	memberTargets := []string{}
	for _, r := range rates {
		if r.TargetType == models.RateTargetMember && !r.Actual {
			memberTargets = append(memberTargets, *r.TargetID)
		}
	}
	assert.Equal(t, []string{first.String(), second.String()}, memberTargets)
}

func TestBuildMemberRates(t *testing.T) {
	memberID := uuid.New()
	list := rate.List{
		record(memberID, models.PartFlute, models.StatusPresent),
		record(memberID, models.PartFlute, models.StatusLecture),
	}

	rates := buildMemberRates(list, "2025-04", models.PartFlute, memberID)

	require.Len(t, rates, 6)

	nominal := findRate(t, rates, models.RateTargetAll, nil, false)
	require.NotNil(t, nominal.Rate)
	assert.Equal(t, 100.0, *nominal.Rate)

	actual := findRate(t, rates, models.RateTargetAll, nil, true)
	require.NotNil(t, actual.Rate)
	assert.Equal(t, 50.0, *actual.Rate)

	memberTarget := memberID.String()
	member := findRate(t, rates, models.RateTargetMember, &memberTarget, false)
	require.NotNil(t, member.Rate)
	assert.Equal(t, 100.0, *member.Rate)
}

func attendanceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAttendanceHandler(nil)
	r.GET("/attendances", h.GetAttendances)
	r.POST("/attendance", h.CreateAttendance)
	r.PATCH("/attendance/:attendance_id", h.UpdateAttendance)
	return r
}

func TestGetAttendancesRejectsBadFilters(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "generation not an integer", path: "/attendances?generation=abc"},
		{name: "malformed date", path: "/attendances?date=01-04-2025"},
		{name: "malformed month", path: "/attendances?month=2025/04"},
	}

	r := attendanceRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":-1`)
		})
	}
}

func TestCreateAttendanceRejectsMissingFields(t *testing.T) {
	r := attendanceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(`{"attendance":"出席"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":-1`)
}

func TestUpdateAttendanceValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "id not a uuid", path: "/attendance/not-a-uuid?attendance=出席"},
		{name: "missing attendance parameter", path: "/attendance/" + uuid.NewString()},
	}

	r := attendanceRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":-1`)
		})
	}
}
