package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-api/internal/errors"
	"todo-api/internal/logging"
)

// respondError translates an application error into an HTTP status and JSON
// body. Client errors surface their own message; store and unknown errors
// are logged server-side and reported with the endpoint's generic message.
func respondError(c *gin.Context, err error, fallback string) {
	if errors.ShouldLogError(err) {
		log.Printf("request failed: %v", err)
		logging.Debugf("error code: %s\n", errors.GetErrorCode(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
		return
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
		return
	}

	c.JSON(statusForError(appErr), gin.H{"error": clientMessage(appErr)})
}

// clientMessage picks the message exposed to the caller. Not-found errors
// carry the record identifier internally; the client only learns which
// resource was missing.
func clientMessage(err *errors.AppError) string {
	if err.Type != errors.ErrorTypeNotFound {
		return errors.GetUserMessage(err)
	}

	resource, ok := err.GetContext("resource")
	name, isString := resource.(string)
	if !ok || !isString || name == "" {
		return errors.GetUserMessage(err)
	}

	return strings.ToUpper(name[:1]) + name[1:] + " not found"
}

// statusForError maps the error taxonomy onto HTTP status codes.
func statusForError(err *errors.AppError) int {
	switch err.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput, errors.ErrorTypeConflict:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
