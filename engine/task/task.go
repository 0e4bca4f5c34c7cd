package task

import (
	"fmt"

	"github.com/notewise/notewise/engine/core"
)

// Kind identifies a note-assistance task.
type Kind string

const (
	KindSummarize Kind = "summarize"
	KindTags      Kind = "tags"
	KindGrammar   Kind = "grammar"
	KindGlossary  Kind = "glossary"
	// KindFixErrors produces an error/correction list. It is fully defined
	// but not reachable from any HTTP route.
	KindFixErrors Kind = "fixerrors"
)

// RoutedKinds returns the task kinds accepted by the HTTP API, in a stable
// order.
func RoutedKinds() []Kind {
	return []Kind{KindSummarize, KindTags, KindGrammar, KindGlossary}
}

// Parse validates a raw task name against the routed enumeration.
func Parse(raw string) (Kind, error) {
	kind := Kind(raw)
	for _, k := range RoutedKinds() {
		if kind == k {
			return kind, nil
		}
	}
	return "", core.NewError(core.ErrUnknownTaskCode, fmt.Sprintf("unknown task: %q", raw))
}

// MaxTags is the upper bound on suggested tags per request.
const MaxTags = 5

// GlossaryEntry is a single term/definition pair.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// ErrorCorrection is a single detected error with its suggested correction.
type ErrorCorrection struct {
	Error      string `json:"error"`
	Correction string `json:"correction"`
}

// Result is the typed outcome of a task. Each variant serializes directly
// as the `data` field of the API response.
type Result interface {
	isResult()
}

// PlainText is the result of summarize and grammar tasks.
type PlainText string

// TagList is an ordered list of at most MaxTags suggested tags.
type TagList []string

// GlossaryEntries is the result of the glossary task.
type GlossaryEntries []GlossaryEntry

// ErrorList is the result of the reserved fixerrors task.
type ErrorList []ErrorCorrection

func (PlainText) isResult()       {}
func (TagList) isResult()         {}
func (GlossaryEntries) isResult() {}
func (ErrorList) isResult()       {}
