package quiz

import "github.com/tuanvm/physitutor/internal/quizgen"

// questionsMsg is sent when quiz generation succeeds.
type questionsMsg struct {
	Epoch  int64
	Result quizgen.Result
}

// genFailedMsg is sent when quiz generation fails.
type genFailedMsg struct {
	Epoch int64
	Err   error
}
