package quizgen

import "testing"

func goodQuestion() Question {
	return Question{
		Question:      "Chu kỳ của con lắc đơn phụ thuộc vào yếu tố nào?",
		Options:       []string{"Chiều dài dây", "Khối lượng vật", "Biên độ dao động", "Màu sắc vật"},
		CorrectAnswer: "Chiều dài dây",
		Explanation:   "T = 2*pi*sqrt(l/g), chỉ phụ thuộc chiều dài và gia tốc trọng trường.",
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(goodQuestion()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{"blank question", func(q *Question) { q.Question = "  " }},
		{"blank explanation", func(q *Question) { q.Explanation = "" }},
		{"too few options", func(q *Question) { q.Options = q.Options[:3] }},
		{"too many options", func(q *Question) { q.Options = append(q.Options, "Thêm") }},
		{"blank option", func(q *Question) { q.Options[2] = "" }},
		{"duplicate option", func(q *Question) { q.Options[1] = q.Options[0] }},
		{"no matching answer", func(q *Question) { q.CorrectAnswer = "Không có" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := goodQuestion()
			q.Options = append([]string(nil), q.Options...)
			tc.mutate(&q)
			if err := Validate(q); err == nil {
				t.Error("malformed question accepted")
			}
		})
	}
}

func TestValidateRejectsAmbiguousCorrectAnswer(t *testing.T) {
	// Two identical options both equal to the correct answer never pass:
	// the duplicate is caught before the match count.
	q := goodQuestion()
	q.Options = []string{"A", "A", "B", "C"}
	q.CorrectAnswer = "A"
	if err := Validate(q); err == nil {
		t.Error("ambiguous question accepted")
	}
}

func TestFilterValid(t *testing.T) {
	bad := goodQuestion()
	bad.CorrectAnswer = "sai"

	valid, dropped := filterValid([]Question{goodQuestion(), bad, goodQuestion()})
	if len(valid) != 2 {
		t.Errorf("valid count = %d, want 2", len(valid))
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}

	valid, dropped = filterValid([]Question{bad})
	if valid != nil || dropped != 1 {
		t.Errorf("all-malformed input: valid=%v dropped=%d, want nil/1", valid, dropped)
	}
}
