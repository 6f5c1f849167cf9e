package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizsess "github.com/tuanvm/physitutor/internal/quiz"
	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/ui/components"
	"github.com/tuanvm/physitutor/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.session.Status() {
	case quizsess.StatusReady:
		return q.renderStart(width)
	case quizsess.StatusGenerating:
		return q.renderGenerating(width)
	case quizsess.StatusActive:
		return q.renderActive(width)
	case quizsess.StatusFinished:
		return q.renderFinished(width)
	case quizsess.StatusError:
		return q.renderError(width)
	}
	return ""
}

func (q *QuizScreen) renderStart(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" +
			theme.Title.Render("Trắc nghiệm: "+q.topic.Name) + "\n\n" +
			theme.Body.Render(fmt.Sprintf("%d câu hỏi trắc nghiệm theo chương trình Vật Lý 12.", quizgen.DefaultConfig().QuestionCount)) + "\n" +
			theme.Hint.Render("Nhấn Enter để bắt đầu."))
}

func (q *QuizScreen) renderGenerating(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n" + q.spin.View() + theme.Hint.Render(" Đang tạo câu hỏi..."))
}

func (q *QuizScreen) renderActive(width int) string {
	progress := components.NewProgressBar(
		fmt.Sprintf("Câu %d/%d", q.session.Current()+1, q.session.Len()),
		float64(q.session.Current())/float64(q.session.Len()),
		false,
		width-8,
	)

	var b strings.Builder
	b.WriteString("  " + progress.View() + "\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Width(width - 4).Render(q.options.View()))

	if q.session.Answered() {
		question := q.session.CurrentQuestion()
		answer, _ := q.session.AnswerFor(q.session.Current())

		var verdict string
		if answer == question.CorrectAnswer {
			verdict = theme.Correct.Render("Chính xác!")
		} else {
			verdict = theme.Incorrect.Render("Chưa đúng.")
		}

		b.WriteString("\n  " + verdict + "\n\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Width(width - 4).
			Foreground(theme.TextDim).
			Render("Giải thích: " + question.Explanation))
	}

	return b.String()
}

func (q *QuizScreen) renderFinished(width int) string {
	score := q.session.Score()
	total := q.session.Len()

	var remark string
	switch {
	case score == total:
		remark = "Xuất sắc! Em nắm vững chủ đề này rồi."
	case score*2 >= total:
		remark = "Khá tốt! Ôn thêm một chút nữa nhé."
	default:
		remark = "Đừng nản! Hãy hỏi gia sư những phần em chưa hiểu."
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" +
			theme.Title.Render("Hoàn thành!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Kết quả: %d/%d câu đúng", score, total)) + "\n\n" +
			theme.Hint.Render(remark) + "\n\n" +
			theme.Hint.Render("Nhấn r để làm lại với bộ câu hỏi mới."))
}

func (q *QuizScreen) renderError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n" +
			theme.Incorrect.Render(q.session.ErrorMessage()) + "\n\n" +
			theme.Hint.Render("Nhấn Enter để thử lại."))
}
