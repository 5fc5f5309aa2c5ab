package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendify_backend/config"
	"attendify_backend/handlers"
	"attendify_backend/middleware"
	"attendify_backend/models"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config, settings *config.Settings) {
	// Initialize handlers
	sessions := middleware.NewSessionService(db, []byte(cfg.SessionSecret))
	authHandler := handlers.NewAuthHandler(db, sessions, cfg)
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	groupHandler := handlers.NewGroupHandler(db)
	membershipStatusHandler := handlers.NewMembershipStatusHandler(db)
	weeklyParticipationHandler := handlers.NewWeeklyParticipationHandler(db)
	preCheckHandler := handlers.NewPreCheckHandler(db)
	constantHandler := handlers.NewConstantHandler(settings)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIError{
			Error:     "Page Not Found",
			ErrorCode: models.ErrCodeUnknown,
		})
	})

	api := r.Group("/api")

	// Public routes
	api.GET("/health", healthHandler.HealthCheck)
	api.GET("/login", authHandler.Login)
	api.GET("/authorization_url", authHandler.AuthorizationURL)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(sessions))
	{
		protected.GET("/logout", authHandler.Logout)

		// Member routes
		protected.GET("/members", memberHandler.GetMembers)
		protected.GET("/member/self", memberHandler.GetSelf)
		protected.POST("/member", memberHandler.CreateMember)
		protected.POST("/members", memberHandler.CreateMembers)
		protected.DELETE("/member/:member_id", memberHandler.DeleteMember)
		protected.PATCH("/member/:member_id", memberHandler.UpdateMember)
		protected.POST("/members/competition", memberHandler.UpdateMembersCompetition)

		// Attendance routes
		protected.GET("/attendances", attendanceHandler.GetAttendances)
		protected.POST("/attendance", attendanceHandler.CreateAttendance)
		protected.POST("/attendances", attendanceHandler.CreateAttendances)
		protected.DELETE("/attendance/:attendance_id", attendanceHandler.DeleteAttendance)
		protected.PATCH("/attendance/:attendance_id", attendanceHandler.UpdateAttendance)
		protected.GET("/attendance/rate", attendanceHandler.GetAttendanceRates)
		protected.POST("/attendance/rate/recalc", attendanceHandler.RecalcAttendanceRates)

		// Weekly participation routes
		protected.GET("/weekly_participations", weeklyParticipationHandler.GetWeeklyParticipations)
		protected.POST("/weekly_participation", weeklyParticipationHandler.UpsertWeeklyParticipation)

		// Membership status routes
		protected.GET("/membership_statuses", membershipStatusHandler.GetMembershipStatuses)
		protected.POST("/membership_status", membershipStatusHandler.CreateMembershipStatus)
		protected.PATCH("/membership_status/:membership_status_id", membershipStatusHandler.UpdateMembershipStatus)
		protected.DELETE("/membership_status/:membership_status_id", membershipStatusHandler.DeleteMembershipStatus)
		protected.GET("/membership_status_periods", membershipStatusHandler.GetMembershipStatusPeriods)
		protected.POST("/membership_status_period", membershipStatusHandler.CreateMembershipStatusPeriod)
		protected.PATCH("/membership_status_period/:status_period_id", membershipStatusHandler.UpdateMembershipStatusPeriod)
		protected.DELETE("/membership_status_period/:status_period_id", membershipStatusHandler.DeleteMembershipStatusPeriod)

		// Schedule routes
		protected.GET("/schedules", scheduleHandler.GetSchedules)
		protected.POST("/schedule", scheduleHandler.UpsertSchedule)
		protected.DELETE("/schedule/:date", scheduleHandler.DeleteSchedule)

		// Group routes
		protected.GET("/groups", groupHandler.GetGroups)
		protected.POST("/group", groupHandler.CreateGroup)
		protected.PUT("/group/:group_id", groupHandler.UpdateGroup)
		protected.DELETE("/group/:group_id", groupHandler.DeleteGroup)
		protected.GET("/group/:group_id/members", groupHandler.GetGroupMembers)
		protected.POST("/group/:group_id/member/:member_id", groupHandler.AddGroupMember)
		protected.POST("/group/:group_id/members", groupHandler.AddGroupMembers)
		protected.DELETE("/group/:group_id/member/:member_id", groupHandler.RemoveGroupMember)
		protected.DELETE("/group/:group_id/members", groupHandler.RemoveGroupMembers)

		// Pre-check routes
		protected.GET("/pre-check/attendances", preCheckHandler.GetPreAttendances)
		protected.POST("/pre-check/attendances", preCheckHandler.CreatePreAttendances)
		protected.DELETE("/pre-check/attendance/:pre_attendance_id", preCheckHandler.DeletePreAttendance)
		protected.PATCH("/pre-check/attendance/:pre_attendance_id", preCheckHandler.UpdatePreAttendance)
		protected.DELETE("/pre-check/attendances", preCheckHandler.DeletePreAttendances)
		protected.GET("/pre-checks", preCheckHandler.GetPreChecks)
		protected.GET("/pre-checks/:pre_check_id", preCheckHandler.GetPreCheck)
		protected.POST("/pre-check", preCheckHandler.CreatePreCheck)
		protected.PATCH("/pre-checks/:pre_check_id", preCheckHandler.UpdatePreCheck)
		protected.DELETE("/pre-checks/:pre_check_id", preCheckHandler.DeletePreCheck)

		// Constant routes
		protected.GET("/constant/part", constantHandler.GetParts)
		protected.GET("/constant/role", constantHandler.GetRoles)
		protected.GET("/constant/grade", constantHandler.GetGrades)
	}
}
