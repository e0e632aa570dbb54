// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/shalakurjjamanshakib/InternshipFinder/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/auth"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/controller/application"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/controller/file"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/controller/internship"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/controller/profile"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/middleware"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
)

const maxResumeBytes = 5 << 20

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	internshipCtrl := internship.NewInternshipController(s.DB)
	applicationCtrl := application.NewApplicationController(s.DB)
	profileCtrl := profile.NewProfileController(s.DB)
	fileCtrl := file.NewFileController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("register", lAuth.RegisterHandler)
			authRoute.POST("login", lAuth.LoginHandler)
		}

		// Public routes
		v1.GET("/internships", internshipCtrl.GetInternships)
		v1.GET("/internships/:id", internshipCtrl.GetInternshipByID)
		v1.GET("/users/count", profileCtrl.GetUserCount)

		// Any routes
		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB))

			needAuth.GET("users/me", profileCtrl.GetMyProfile)
			needAuth.PUT("users/me", profileCtrl.EditMyProfile)
			needAuth.POST("users/me/resume", middleware.SizeLimit(maxResumeBytes), fileCtrl.UploadResume)
			needAuth.GET("files/:id", fileCtrl.GetFile)

			// Student routes
			needStudent := needAuth.Group("")
			{
				needStudent.Use(middleware.CheckRole(model.RoleStudent))
				needStudent.POST("internships/:id/apply", applicationCtrl.Apply)
				needStudent.GET("applications/my", applicationCtrl.GetMyApplications)
			}

			// Employer routes
			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer))
				needEmployer.POST("internships", internshipCtrl.CreateInternship)
				needEmployer.PUT("internships/:id", internshipCtrl.EditInternship)
				needEmployer.DELETE("internships/:id", internshipCtrl.DeleteInternship)
				// Only /internships/my/list is served, the handler rejects other segments
				needEmployer.GET("internships/:id/list", internshipCtrl.GetMyInternships)
				needEmployer.GET("internships/:id/applications", applicationCtrl.GetApplicationsForInternship)
				needEmployer.GET("applications/received", applicationCtrl.GetReceivedApplications)
				needEmployer.PUT("applications/:id/status", applicationCtrl.UpdateApplicationStatus)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
