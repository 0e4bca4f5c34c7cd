package task

// Shape tags the output contract a template promises.
type Shape string

const (
	ShapePlainText Shape = "plain_text"
	ShapeTagList   Shape = "tag_list"
	ShapeGlossary  Shape = "glossary"
	ShapeErrorList Shape = "error_list"
)

// Template is the immutable instruction for one task kind.
type Template struct {
	System string
	Shape  Shape
}

const (
	summarizePrompt = `You are a note-taking assistant. Summarize the user's note into a short, ` +
		`clear summary of at most three sentences. Keep the author's terminology. ` +
		`Respond with the summary text only, no preamble and no formatting.`

	tagsPrompt = `You are a note-taking assistant. Suggest up to 5 short topic tags for the ` +
		`user's note. Respond with a single line of comma-separated tags only, ` +
		`for example: productivity, golang, meetings. No numbering, no extra text.`

	grammarPrompt = `You are a careful copy editor. Correct the grammar, spelling and ` +
		`punctuation of the user's note while preserving its meaning and tone. ` +
		`Respond with the corrected text only, no commentary.`

	glossaryPrompt = `You are a note-taking assistant. Extract the technical terms from the ` +
		`user's note and define each briefly. Respond ONLY with a JSON array of ` +
		`objects, each with a "term" and a "definition" string field. ` +
		`Example: [{"term":"REST","definition":"An architectural style for web APIs."}] ` +
		`Do not wrap the JSON in markdown fences.`

	fixErrorsPrompt = `You are a careful copy editor. List the grammar and spelling errors in ` +
		`the user's note. Respond ONLY with a JSON array of objects, each with an ` +
		`"error" and a "correction" string field. Do not wrap the JSON in markdown fences.`
)

// templates maps every defined kind to its instruction template. The map is
// read-only after package initialization.
var templates = map[Kind]Template{
	KindSummarize: {System: summarizePrompt, Shape: ShapePlainText},
	KindTags:      {System: tagsPrompt, Shape: ShapeTagList},
	KindGrammar:   {System: grammarPrompt, Shape: ShapePlainText},
	KindGlossary:  {System: glossaryPrompt, Shape: ShapeGlossary},
	KindFixErrors: {System: fixErrorsPrompt, Shape: ShapeErrorList},
}
