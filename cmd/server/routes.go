package main

import (
	"github.com/gin-gonic/gin"
	"mise.backend/internal/interfaces/http/handlers"
	"mise.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	talentHandler      *handlers.TalentHandler
	teamHandler        *handlers.TeamHandler
	jobPostingHandler  *handlers.JobPostingHandler
	applicationHandler *handlers.ApplicationHandler
	matchHandler       *handlers.MatchHandler
	optionHandler      *handlers.OptionHandler
	identity           gin.HandlerFunc
	adminKey           gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	v1.Use(d.identity)
	{
		me := v1.Group("/me")
		{
			me.GET("", d.talentHandler.GetCurrentUser)
			me.GET("/profile", d.talentHandler.GetProfile)
			me.PUT("/profile", d.talentHandler.SaveProfile)
			me.DELETE("/profile", d.talentHandler.DeleteProfile)
			me.GET("/teams", d.teamHandler.GetMyTeams)
			me.GET("/applications", d.applicationHandler.GetMyApplications)
			me.GET("/matches", d.matchHandler.GetMyMatches)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", middleware.IdempotencyMiddleware(), d.teamHandler.CreateTeam)
			teams.PATCH("/:id", d.teamHandler.UpdateTeam)
			teams.DELETE("/:id", d.teamHandler.DeleteTeam)
			teams.GET("/:id/job-postings", d.jobPostingHandler.GetTeamJobPostings)
			teams.POST("/:id/job-postings", d.jobPostingHandler.CreateJobPosting)
			teams.GET("/:id/applications", d.applicationHandler.GetTeamApplications)
			teams.GET("/:id/matches", d.matchHandler.GetTeamMatches)
		}

		postings := v1.Group("/job-postings")
		{
			postings.GET("/search", d.jobPostingHandler.SearchJobPostings)
			postings.PUT("/:id", d.jobPostingHandler.UpdateJobPosting)
			postings.DELETE("/:id", d.jobPostingHandler.DeactivateJobPosting)
		}

		applications := v1.Group("/applications")
		{
			applications.POST("", middleware.IdempotencyMiddleware(), d.applicationHandler.ApplyToJob)
			applications.GET("/:id", d.applicationHandler.GetApplicationDetails)
			applications.POST("/:id/withdraw", d.applicationHandler.WithdrawApplication)
			applications.PUT("/:id/status", d.applicationHandler.UpdateApplicationStatus)
		}

		v1.PUT("/matches/:id/status", d.matchHandler.UpdateMatchStatus)
		v1.GET("/talent/search", d.talentHandler.SearchTalent)

		options := v1.Group("/options")
		{
			options.GET("", d.optionHandler.GetOptions)
			options.GET("/search", d.optionHandler.SearchOptions)
			options.POST("", d.adminKey, d.optionHandler.AddOption)
			options.PATCH("/:id", d.adminKey, d.optionHandler.UpdateOption)
		}
		v1.GET("/option-categories", d.optionHandler.GetCategories)
	}
}
