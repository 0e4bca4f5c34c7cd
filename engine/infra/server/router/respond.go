package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notewise/notewise/engine/core"
	"github.com/notewise/notewise/engine/task"
	"github.com/notewise/notewise/pkg/logger"
)

// SuccessResponse is the envelope for a completed task.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Task    string      `json:"task"`
	Data    task.Result `json:"data"`
}

// ErrorResponse is the envelope for every failure. Task is echoed when the
// request carried one.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Task    string `json:"task,omitempty"`
}

// RespondSuccess writes the 200 envelope for a task result.
func RespondSuccess(c *gin.Context, kind task.Kind, data task.Result) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Task: string(kind), Data: data})
}

// RespondError writes the JSON error envelope with the given status.
func RespondError(c *gin.Context, status int, message, taskName string) {
	logRequestFailure(c, status, message)
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: message, Task: taskName})
}

// RespondCodedError maps a coded error to its HTTP status and writes the
// envelope. Unrecognized errors become a generic 500.
func RespondCodedError(c *gin.Context, err error, taskName string) {
	status := http.StatusInternalServerError
	message := "internal server error"
	var coded *core.Error
	if errors.As(err, &coded) {
		message = coded.Message
		switch coded.Code {
		case core.ErrValidationCode, core.ErrUnknownTaskCode:
			status = http.StatusBadRequest
		case core.ErrConfigCode, core.ErrUpstreamCode, core.ErrInternalCode:
			status = http.StatusInternalServerError
		}
	}
	RespondError(c, status, message, taskName)
}

func logRequestFailure(c *gin.Context, status int, message string) {
	log := logger.FromContext(c.Request.Context())
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	fields := []any{
		"status", status,
		"error", message,
		"route", route,
		"path", c.Request.URL.Path,
	}
	if requestID := c.Writer.Header().Get("X-Request-ID"); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
		return
	}
	log.Warn("request failed", fields...)
}
