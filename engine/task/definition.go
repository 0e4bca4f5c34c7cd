package task

import (
	"fmt"

	"github.com/notewise/notewise/engine/core"
)

// Definition pairs a task kind's instruction template with its response
// normalizer. Dispatch is a table lookup rather than a switch so the
// coverage test can assert every defined kind has both halves.
type Definition struct {
	Kind      Kind
	Template  Template
	Normalize Normalizer
}

var definitions = map[Kind]Definition{
	KindSummarize: {Kind: KindSummarize, Template: templates[KindSummarize], Normalize: normalizePlainText},
	KindTags:      {Kind: KindTags, Template: templates[KindTags], Normalize: normalizeTags},
	KindGrammar:   {Kind: KindGrammar, Template: templates[KindGrammar], Normalize: normalizePlainText},
	KindGlossary:  {Kind: KindGlossary, Template: templates[KindGlossary], Normalize: normalizeGlossary},
	KindFixErrors: {Kind: KindFixErrors, Template: templates[KindFixErrors], Normalize: normalizeErrorList},
}

// Lookup returns the definition for a kind. Unknown kinds yield an
// UNKNOWN_TASK error; the lookup has no side effects.
func Lookup(kind Kind) (Definition, error) {
	def, ok := definitions[kind]
	if !ok {
		return Definition{}, core.NewError(core.ErrUnknownTaskCode, fmt.Sprintf("unknown task: %q", kind))
	}
	return def, nil
}
