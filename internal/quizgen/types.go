package quizgen

// NumOptions is the fixed option cardinality of a generated question.
const NumOptions = 4

// Question is one generated multiple-choice item, already validated and
// safe to show. CorrectAnswer equals exactly one element of Options.
type Question struct {
	// Question is the prompt text.
	Question string

	// Options are the candidate answers, ordered, all distinct.
	Options []string

	// CorrectAnswer is the full text of the correct option.
	CorrectAnswer string

	// Explanation is the rationale shown after the student answers.
	Explanation string
}

// Result carries the outcome of one generation call. Dropped counts items
// the model produced that failed structural validation; an all-dropped call
// still yields Questions == nil, which callers treat as an empty success.
type Result struct {
	Questions []Question
	Dropped   int
}
