package career

import (
	"math/rand"
	"strings"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

// Generate assembles a quiz for the given skills profile. The default
// block always leads; one block is appended per recognized skill
// (case-insensitive, trimmed, additive across categories); a known
// category contributes its extra question on top. When numQuestions is
// positive and smaller than the pool, the pool is shuffled and truncated.
// Returns the quiz title and the question list.
func Generate(profile *models.SkillsProfile, category string, numQuestions int) (string, []models.QuizQuestion) {
	questions := append([]models.QuizQuestion(nil), defaultQuestions...)

	hasSkills := profile != nil && len(profile.Skills) > 0
	if hasSkills {
		normalized := make(map[string]bool, len(profile.Skills))
		for _, skill := range profile.Skills {
			normalized[strings.ToLower(strings.TrimSpace(skill))] = true
		}
		for _, block := range skillBlocks {
			for _, kw := range block.Keywords {
				if normalized[kw] {
					questions = append(questions, block.Questions...)
					break
				}
			}
		}
	}

	if category != "" {
		if extra, ok := categoryExtras[strings.ToLower(category)]; ok {
			questions = append(questions, extra...)
		}
	}

	title := "Mock Interview"
	if category != "" {
		title = category + " Interview"
	}
	if hasSkills {
		title = profile.Skills[0] + " Developer Interview"
	}

	if numQuestions > 0 && numQuestions < len(questions) {
		shuffle(questions)
		questions = questions[:numQuestions]
	}

	return title, questions
}

// shuffle is an in-place Fisher–Yates shuffle.
func shuffle(questions []models.QuizQuestion) {
	for i := len(questions) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
