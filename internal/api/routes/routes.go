package routes

import (
	"time"

	"practice-plan-backend/internal/api/handlers"
	"practice-plan-backend/internal/api/middleware"
	"practice-plan-backend/internal/auth"
	"practice-plan-backend/internal/config"
	"practice-plan-backend/internal/repository"
	"practice-plan-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSec) * time.Second))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	drillRepo := repository.NewDrillRepository(db)
	planRepo := repository.NewPlanRepository(db)
	planAccessRepo := repository.NewTeamPlanAccessRepository(db)
	drillAccessRepo := repository.NewTeamDrillAccessRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, memberRepo, drillRepo, planRepo, validator)
	invitationService := service.NewInvitationService(invitationRepo, teamRepo, memberRepo, userRepo, validator)
	drillService := service.NewDrillService(drillRepo, memberRepo, drillAccessRepo, validator)
	planService := service.NewPlanService(planRepo, memberRepo, planAccessRepo, drillRepo, drillAccessRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, validator, cfg.JWTSecret, cfg.JWTExpiryHours)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	drillHandler := handlers.NewDrillHandler(drillService)
	planHandler := handlers.NewPlanHandler(planService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/leave", teamHandler.LeaveTeam)

			teams.GET("/:id/members", teamHandler.ListMembers)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)

			teams.POST("/:id/invitations", invitationHandler.InviteMember)
			teams.GET("/:id/invitations", invitationHandler.ListInvitations)
			teams.DELETE("/:id/invitations/:invitationId", invitationHandler.RevokeInvitation)
		}

		invitations := v1.Group("/invitations")
		{
			invitations.POST("/accept", invitationHandler.AcceptInvitationByToken)
			invitations.POST("/:id/accept", invitationHandler.AcceptInvitation)
		}

		drills := v1.Group("/drills")
		{
			drills.POST("", drillHandler.CreateDrill)
			drills.GET("", drillHandler.ListDrills)
			drills.GET("/:id", drillHandler.GetDrill)
			drills.PUT("/:id", drillHandler.UpdateDrill)
			drills.DELETE("/:id", drillHandler.DeleteDrill)
			drills.POST("/:id/share/:teamId", drillHandler.ShareDrill)
			drills.DELETE("/:id/share/:teamId", drillHandler.UnshareDrill)
		}

		plans := v1.Group("/plans")
		{
			plans.POST("", planHandler.CreatePlan)
			plans.GET("", planHandler.ListPlans)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id", planHandler.UpdatePlan)
			plans.DELETE("/:id", planHandler.DeletePlan)
			plans.POST("/:id/items", planHandler.AddDrill)
			plans.PUT("/:id/items", planHandler.ReplaceItems)
			plans.PUT("/:id/items/order", planHandler.ReorderItems)
			plans.DELETE("/:id/items/:itemId", planHandler.RemoveItem)
			plans.POST("/:id/share/:teamId", planHandler.SharePlan)
			plans.DELETE("/:id/share/:teamId", planHandler.UnsharePlan)
		}

		maintenance := v1.Group("/maintenance")
		{
			maintenance.POST("/invitations/purge", invitationHandler.PurgeExpired)
		}
	}

	return router
}
