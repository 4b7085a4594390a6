package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/config"
	"github.com/yukikurage/project-workspace-api/internal/constants"
	"github.com/yukikurage/project-workspace-api/internal/database"
	"github.com/yukikurage/project-workspace-api/internal/handlers"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	timeLogRepo := repository.NewTimeLogRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	discussionRepo := repository.NewDiscussionRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	activityService := services.NewActivityService(activityRepo)
	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	milestoneService := services.NewMilestoneService(milestoneRepo, activityService)
	timeLogService := services.NewTimeLogService(timeLogRepo, activityService)
	noteService := services.NewNoteService(noteRepo, activityService, map[models.NoteScope]models.NoteVisibility{
		models.NoteScopeProject: models.NoteVisibilityPublic,
		models.NoteScopeClient:  models.NoteVisibilityPrivate,
	})
	discussionService := services.NewDiscussionService(discussionRepo, activityService)
	statsService := services.NewStatsService(taskRepo)
	taskService := services.NewTaskService(taskRepo, activityService)
	workspaceService := services.NewWorkspaceService(milestoneService, discussionService, statsService, activityService, taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)
	timeLogHandler := handlers.NewTimeLogHandler(timeLogService)
	noteHandler := handlers.NewNoteHandler(noteService, projectService)
	discussionHandler := handlers.NewDiscussionHandler(discussionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	taskHandler := handlers.NewTaskHandler(taskService, statsService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Workspace API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.ListMine)
			projects.POST("/join", projectHandler.Join)
		}

		// Per-project workspace routes (protected, membership-checked)
		workspace := api.Group("/projects/:project_id")
		workspace.Use(middleware.RequireAuth(), middleware.RequireProjectAccess(projectRepo))
		{
			workspace.GET("/workspace", workspaceHandler.Overview)

			workspace.GET("/milestones", milestoneHandler.List)
			workspace.POST("/milestones", milestoneHandler.Create)
			workspace.PUT("/milestones/:id", milestoneHandler.Update)
			workspace.PATCH("/milestones/:id/status", milestoneHandler.SetStatus)
			workspace.DELETE("/milestones/:id", milestoneHandler.Delete)

			workspace.GET("/timelogs", timeLogHandler.List)
			workspace.POST("/timelogs", timeLogHandler.Create)
			workspace.PUT("/timelogs/:id", timeLogHandler.Update)
			workspace.DELETE("/timelogs/:id", timeLogHandler.Delete)

			workspace.GET("/notes", noteHandler.ListProjectNotes)
			workspace.POST("/notes", noteHandler.CreateProjectNote)
			workspace.PUT("/notes/:id", noteHandler.UpdateProjectNote)
			workspace.DELETE("/notes/:id", noteHandler.DeleteProjectNote)

			workspace.GET("/discussions", discussionHandler.ListRooms)
			workspace.POST("/discussions", discussionHandler.CreateRoom)
			workspace.PUT("/discussions/:id", discussionHandler.UpdateRoom)
			workspace.DELETE("/discussions/:id", discussionHandler.DeleteRoom)
			workspace.GET("/discussions/:id/messages", discussionHandler.ListMessages)
			workspace.POST("/discussions/:id/messages", discussionHandler.PostMessage)

			workspace.GET("/activity", activityHandler.List)

			workspace.GET("/tasks", taskHandler.List)
			workspace.POST("/tasks", taskHandler.Create)
			workspace.GET("/task-statuses", taskHandler.ListStatuses)
			workspace.POST("/task-statuses", taskHandler.CreateStatus)
			workspace.GET("/task-stats", taskHandler.Stats)
		}

		// Client notes (protected)
		clients := api.Group("/clients/:client_id")
		clients.Use(middleware.RequireAuth())
		{
			clients.GET("/notes", noteHandler.ListClientNotes)
			clients.POST("/notes", noteHandler.CreateClientNote)
			clients.PUT("/notes/:id", noteHandler.UpdateClientNote)
			clients.DELETE("/notes/:id", noteHandler.DeleteClientNote)
		}

		// Discussion categories (protected)
		categories := api.Group("/discussion-categories")
		categories.Use(middleware.RequireAuth())
		{
			categories.GET("", discussionHandler.ListCategories)
			categories.POST("", discussionHandler.CreateCategory)
			categories.PUT("/:id", discussionHandler.UpdateCategory)
			categories.DELETE("/:id", discussionHandler.DeleteCategory)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
