package executor

import (
	"context"

	"github.com/notewise/notewise/engine/core"
	llmadapter "github.com/notewise/notewise/engine/llm/adapter"
	"github.com/notewise/notewise/engine/task"
	"github.com/notewise/notewise/pkg/logger"
)

// Executor runs one note-assistance task: select the template for the kind,
// make a single upstream call, and normalize the completion into a typed
// result. It holds no per-request state.
type Executor struct {
	client llmadapter.Client
}

// New creates an Executor. The client carries the credential and model
// parameters; nothing is read from ambient globals at call time.
func New(client llmadapter.Client) *Executor {
	return &Executor{client: client}
}

// Execute runs the task for the given kind over the raw note content.
func (e *Executor) Execute(ctx context.Context, kind task.Kind, content string) (task.Result, error) {
	def, err := task.Lookup(kind)
	if err != nil {
		return nil, err
	}
	completion, err := e.client.GenerateCompletion(ctx, &llmadapter.CompletionRequest{
		SystemPrompt: def.Template.System,
		UserContent:  content,
	})
	if err != nil {
		return nil, err
	}
	result, normErr := def.Normalize(completion.Content)
	if normErr != nil {
		// Fallback applied: degraded result is returned, never an error.
		logger.FromContext(ctx).Warn("normalization fallback",
			"task", kind,
			"reason", normErr.Error(),
		)
	}
	if result == nil {
		return nil, core.NewError(core.ErrInternalCode, "normalizer returned no result")
	}
	return result, nil
}
