package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-api/internal/auth"
	"todo-api/internal/services"
)

// Generic 500 messages, one per endpoint. Internal detail stays in the logs.
const (
	msgRegisterFailed   = "Error during registration"
	msgLoginFailed      = "Error during login"
	msgListTodosFailed  = "Error at receiving tasks!"
	msgCreateTodoFailed = "Error at creating task!"
	msgGetTodoFailed    = "Error in receiving task!"
	msgUpdateTodoFailed = "Error at updating task!"
	msgDeleteTodoFailed = "Error at deleting task!"
)

// Handler binds the services into gin endpoint handlers.
type Handler struct {
	auth  services.AuthService
	todos services.TodoService
}

// NewHandler creates a new endpoint handler set.
func NewHandler(authService services.AuthService, todoService services.TodoService) *Handler {
	return &Handler{
		auth:  authService,
		todos: todoService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTodoRequest struct {
	Task string `json:"task"`
	// Accepted for schema compatibility; creation always stores false.
	Completed *bool `json:"completed"`
}

type updateTodoRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, msgRegisterFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, msgLoginFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListTodos handles GET /api/todos.
func (h *Handler) ListTodos(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgNoToken})
		return
	}

	todos, err := h.todos.ListTodos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgListTodosFailed)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo handles POST /api/todos.
func (h *Handler) CreateTodo(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgNoToken})
		return
	}

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	todo, err := h.todos.CreateTodo(c.Request.Context(), userID, req.Task)
	if err != nil {
		respondError(c, err, msgCreateTodoFailed)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// GetTodo handles GET /api/todos/:id.
func (h *Handler) GetTodo(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgNoToken})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todos.GetTodo(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, msgGetTodoFailed)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo handles PUT /api/todos/:id.
func (h *Handler) UpdateTodo(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgNoToken})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	todo, err := h.todos.UpdateTodo(c.Request.Context(), id, userID, services.TodoUpdate{
		Task:      req.Task,
		Completed: req.Completed,
	})
	if err != nil {
		respondError(c, err, msgUpdateTodoFailed)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /api/todos/:id.
func (h *Handler) DeleteTodo(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgNoToken})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.todos.DeleteTodo(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, msgDeleteTodoFailed)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam reads the :id route parameter. A non-numeric id can never
// match a stored todo, so it reports not found.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return 0, false
	}
	return id, true
}
