package main

import (
	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/interfaces/http/handlers"
	"nodex-club.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler            *handlers.AuthHandler
	teamHandler            *handlers.TeamHandler
	clubMemberHandler      *handlers.ClubMemberHandler
	analyticsHandler       *handlers.AnalyticsHandler
	applicationHandler     *handlers.ApplicationHandler
	joinHandler            *handlers.JoinHandler
	memberAuthHandler      *handlers.MemberAuthHandler
	memberDashboardHandler *handlers.MemberDashboardHandler
	publicHandler          *handlers.PublicHandler
	authMiddleware         gin.HandlerFunc
	memberSessionMW        gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Public site routes
		api.GET("/team", d.publicHandler.TeamRoster)
		api.POST("/join", middleware.IdempotencyMiddleware(), d.joinHandler.Submit)

		// Recruiter auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Recruiter dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/analytics", d.analyticsHandler.Summary)

			dashboard.GET("/club-members", d.clubMemberHandler.ListMembers)
			dashboard.POST("/club-members", d.clubMemberHandler.CreateMember)
			dashboard.PUT("/club-members/:id", d.clubMemberHandler.UpdateMember)
			dashboard.DELETE("/club-members/:id", d.clubMemberHandler.DeleteMember)
			dashboard.POST("/club-members/migrate/:legacyId", d.clubMemberHandler.MigrateLegacyMember)

			dashboard.GET("/applications", d.applicationHandler.ListApplications)
			dashboard.POST("/applications/:id/mark", d.applicationHandler.MarkApplication)
			dashboard.POST("/applications/:id/rollback", d.applicationHandler.RollbackApplication)

			// Team writes additionally need the team_mgmt permission
			teams := dashboard.Group("/teams")
			{
				teams.GET("", d.teamHandler.ListTeams)
				teams.GET("/:id", d.teamHandler.GetTeam)
				teams.POST("", middleware.RequireTeamMgmt(), d.teamHandler.CreateTeam)
				teams.PUT("/:id", middleware.RequireTeamMgmt(), d.teamHandler.UpdateTeam)
				teams.DELETE("/:id", middleware.RequireTeamMgmt(), d.teamHandler.DeleteTeam)
				teams.POST("/:id/members", middleware.RequireTeamMgmt(), d.teamHandler.AddTeamMember)
				teams.DELETE("/:id/members/:memberId", middleware.RequireTeamMgmt(), d.teamHandler.RemoveTeamMember)
			}
		}

		// Member self-service routes
		memberAuth := api.Group("/member-auth")
		{
			memberAuth.POST("/login", d.memberAuthHandler.Login)
			memberAuth.POST("/logout", d.memberAuthHandler.Logout)
		}

		memberDashboard := api.Group("/member-dashboard")
		memberDashboard.Use(d.memberSessionMW)
		{
			memberDashboard.GET("/profile", d.memberDashboardHandler.Profile)
			memberDashboard.GET("/teams", d.memberDashboardHandler.Teams)
		}
	}
}
