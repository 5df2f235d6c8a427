package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleAPIDocs serves a self-describing OpenAPI document for the route
// table. Not part of the functional core; consumers point UI tooling at it.
func handleAPIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

func openAPIDocument() gin.H {
	errorResponse := gin.H{
		"type": "object",
		"properties": gin.H{
			"error": gin.H{"type": "string"},
		},
	}

	credentialsBody := gin.H{
		"required": true,
		"content": gin.H{
			"application/json": gin.H{
				"schema": gin.H{
					"type":     "object",
					"required": []string{"email", "password"},
					"properties": gin.H{
						"email":    gin.H{"type": "string"},
						"password": gin.H{"type": "string"},
					},
				},
			},
		},
	}

	bearer := []gin.H{{"bearerAuth": []string{}}}

	return gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":       "Todo List API",
			"version":     "1.0.0",
			"description": "API for managing tasks with JWT Authentication",
		},
		"components": gin.H{
			"securitySchemes": gin.H{
				"bearerAuth": gin.H{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
			"schemas": gin.H{
				"User": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":    gin.H{"type": "integer"},
						"email": gin.H{"type": "string"},
					},
				},
				"Todo": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":        gin.H{"type": "integer"},
						"task":      gin.H{"type": "string"},
						"completed": gin.H{"type": "boolean"},
						"userId":    gin.H{"type": "integer"},
					},
				},
				"Error": errorResponse,
			},
		},
		"paths": gin.H{
			"/api/auth/register": gin.H{
				"post": gin.H{
					"summary":     "Register new user",
					"tags":        []string{"Auth"},
					"requestBody": credentialsBody,
					"responses": gin.H{
						"201": gin.H{"description": "User created"},
						"400": gin.H{"description": "Validation error or email already in use"},
					},
				},
			},
			"/api/auth/login": gin.H{
				"post": gin.H{
					"summary":     "Login user",
					"tags":        []string{"Auth"},
					"requestBody": credentialsBody,
					"responses": gin.H{
						"200": gin.H{"description": "Login successful (returns token)"},
						"401": gin.H{"description": "Invalid password"},
						"404": gin.H{"description": "User not found"},
					},
				},
			},
			"/api/todos": gin.H{
				"get": gin.H{
					"summary":  "Get all user tasks",
					"tags":     []string{"Todos"},
					"security": bearer,
					"responses": gin.H{
						"200": gin.H{"description": "List of tasks"},
					},
				},
				"post": gin.H{
					"summary":  "Create a task",
					"tags":     []string{"Todos"},
					"security": bearer,
					"responses": gin.H{
						"201": gin.H{"description": "Task created"},
						"400": gin.H{"description": "Validation error"},
					},
				},
			},
			"/api/todos/{id}": gin.H{
				"get": gin.H{
					"summary":  "Get a single task",
					"tags":     []string{"Todos"},
					"security": bearer,
					"responses": gin.H{
						"200": gin.H{"description": "The task"},
						"404": gin.H{"description": "Task not found"},
					},
				},
				"put": gin.H{
					"summary":  "Update a task",
					"tags":     []string{"Todos"},
					"security": bearer,
					"responses": gin.H{
						"200": gin.H{"description": "The updated task"},
						"400": gin.H{"description": "No update data provided"},
						"404": gin.H{"description": "Task not found"},
					},
				},
				"delete": gin.H{
					"summary":  "Delete a task",
					"tags":     []string{"Todos"},
					"security": bearer,
					"responses": gin.H{
						"204": gin.H{"description": "Task deleted"},
						"404": gin.H{"description": "Task not found"},
					},
				},
			},
		},
	}
}
