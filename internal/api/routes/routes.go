package routes

import (
	"fmt"

	"claims-portal-backend/internal/api/handlers"
	"claims-portal-backend/internal/api/middleware"
	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/config"
	"claims-portal-backend/internal/repository"
	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the backing clients the router is built on. Redis and
// Publisher are optional.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher service.EventPublisher
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	// handlers pass the gin context to services as context.Context
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	centerRepo := repository.NewCenterRepository(deps.DB)
	departmentRepo := repository.NewDepartmentRepository(deps.DB)
	claimRepo := repository.NewClaimRepository(deps.DB)

	// Initialize services
	limiter := service.NewRedisLimiter(deps.Redis, cfg.ClaimSubmitCooldown())
	claimService := service.NewClaimService(claimRepo, validator, deps.Publisher, limiter)
	centerService := service.NewCenterService(centerRepo, userRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, centerRepo, validator)
	assignmentService := service.NewAssignmentService(userRepo, centerRepo, validator, cfg.BulkMaxItems)
	userService := service.NewUserService(userRepo, centerRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTTTL()), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	authHandler := handlers.NewAuthHandler(authService, userService)
	claimHandler := handlers.NewClaimHandler(claimService)
	centerHandler := handlers.NewCenterHandler(centerService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	userHandler := handlers.NewUserHandler(userService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/login", authHandler.Login)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)

		claims := v1.Group("/claims")
		{
			claims.POST("", claimHandler.CreateClaim)
			claims.GET("", claimHandler.ListClaims)
			claims.GET("/:id", claimHandler.GetClaim)
			claims.POST("/:id/approve", claimHandler.ApproveClaim)
			claims.POST("/:id/reject", claimHandler.RejectClaim)
		}

		centers := v1.Group("/centers")
		{
			centers.POST("", centerHandler.CreateCenter)
			centers.GET("", centerHandler.ListCenters)
			centers.GET("/:id", centerHandler.GetCenter)
			centers.PUT("/:id/name", centerHandler.UpdateCenterName)
			centers.DELETE("/:id", centerHandler.DeleteCenter)
			centers.PUT("/:id/coordinator", assignmentHandler.ChangeCoordinator)

			departments := centers.Group("/:id/departments")
			{
				departments.POST("", departmentHandler.CreateDepartment)
				departments.GET("", departmentHandler.ListDepartments)
				departments.PUT("/:departmentId", departmentHandler.UpdateDepartment)
				departments.DELETE("/:departmentId", departmentHandler.DeleteDepartment)
			}

			lecturers := centers.Group("/:id/lecturers")
			{
				lecturers.POST("/bulk-assign", assignmentHandler.BulkAssign)
				lecturers.POST("/bulk-unassign", assignmentHandler.BulkUnassign)
				lecturers.PUT("/:lecturerId", assignmentHandler.AddLecturer)
				lecturers.DELETE("/:lecturerId", assignmentHandler.RemoveLecturer)
				lecturers.PUT("/:lecturerId/department", assignmentHandler.AssignDepartment)
				lecturers.DELETE("/:lecturerId/department", assignmentHandler.UnassignDepartment)
			}
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return router, nil
}
