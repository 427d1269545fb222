package career

import "github.com/rahul0401-coder/intraview-AI-career/internal/models"

const (
	feedbackExcellent   = "Excellent job! You have a strong understanding of these concepts."
	feedbackGood        = "Good work! You have a solid foundation, but there's room for improvement in certain areas."
	feedbackProgress    = "You're making progress, but consider reviewing the concepts you missed in this interview."
	feedbackChallenging = "This seems to be a challenging area for you. Consider focusing more study time on these concepts."
)

// Score computes the completion score over answered questions only:
// (correct / answered) * 100, or 0 when nothing was answered. The
// returned feedback is the band text for the score.
func Score(questions []models.QuizQuestion) (float64, string) {
	correct, answered := 0, 0
	for _, q := range questions {
		if q.UserAnswer == "" {
			continue
		}
		answered++
		if q.UserAnswer == q.CorrectAnswer {
			correct++
		}
	}

	score := 0.0
	if answered > 0 {
		score = float64(correct) / float64(answered) * 100
	}
	return score, FeedbackFor(score)
}

// FeedbackFor maps a score to one of four fixed feedback bands.
func FeedbackFor(score float64) string {
	switch {
	case score >= 90:
		return feedbackExcellent
	case score >= 70:
		return feedbackGood
	case score >= 50:
		return feedbackProgress
	default:
		return feedbackChallenging
	}
}
