package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notewise/notewise/engine/executor"
	"github.com/notewise/notewise/engine/infra/server/router"
	"github.com/notewise/notewise/engine/task"
	"github.com/notewise/notewise/pkg/config"
)

// assistRequest is the POST /api/ai body.
type assistRequest struct {
	Task    string `json:"task"`
	Content string `json:"content"`
}

// createAssistHandler validates the request, then hands off to the Task
// Executor. Validation failures and a missing credential are rejected
// before any upstream attempt.
func createAssistHandler(cfg *config.Config, exec *executor.Executor) gin.HandlerFunc {
	maxChars := cfg.Server.MaxContentChars
	return func(c *gin.Context) {
		var req assistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			router.RespondError(c, http.StatusBadRequest, "invalid JSON body", "")
			return
		}
		if req.Task == "" || req.Content == "" {
			router.RespondError(c, http.StatusBadRequest, "task and content are required", req.Task)
			return
		}
		if len(req.Content) > maxChars {
			router.RespondError(c, http.StatusBadRequest,
				fmt.Sprintf("content exceeds maximum length of %d characters", maxChars), req.Task)
			return
		}
		if !cfg.LLM.APIKeyConfigured() {
			router.RespondError(c, http.StatusInternalServerError,
				"API key is not configured on the server", req.Task)
			return
		}
		kind, err := task.Parse(req.Task)
		if err != nil {
			router.RespondCodedError(c, err, req.Task)
			return
		}
		result, err := exec.Execute(c.Request.Context(), kind, req.Content)
		if err != nil {
			router.RespondCodedError(c, err, req.Task)
			return
		}
		router.RespondSuccess(c, kind, result)
	}
}
