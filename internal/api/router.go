package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/internal/services"
)

// NewRouter builds the gin engine with all middleware and routes wired.
func NewRouter(cfg *config.Config, authService services.AuthService, todoService services.TodoService, tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	handler := NewHandler(authService, todoService)

	router.GET("/health", handleHealth)
	router.GET("/api-docs", handleAPIDocs)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
		}

		todos := api.Group("/todos")
		todos.Use(auth.RequireAuth(tokens))
		{
			todos.GET("", handler.ListTodos)
			todos.POST("", handler.CreateTodo)
			todos.GET("/:id", handler.GetTodo)
			todos.PUT("/:id", handler.UpdateTodo)
			todos.DELETE("/:id", handler.DeleteTodo)
		}
	}

	return router
}

// corsConfig builds the CORS policy from configuration. A single "*" allows
// all origins, matching the permissive default of the API's consumers.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	origins := strings.Split(cfg.Server.CORSAllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}

// handleHealth is the liveness endpoint.
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "todo-api",
	})
}
