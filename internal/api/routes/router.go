package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/api/handlers"
	"github.com/linskybing/bugtrack-go/internal/api/middleware"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.New(db)
	services := application.New(repos)
	h := handlers.New(services, r)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bug Tracking API is running")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/users", h.User.GetUsers)

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.POST("", h.Project.CreateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.GET("", h.Ticket.GetTickets)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
		}
	}
}
