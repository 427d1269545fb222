package models

import "time"

type MockInterviewStatus string

const (
	MockInProgress MockInterviewStatus = "in_progress"
	MockCompleted  MockInterviewStatus = "completed"
)

// QuizQuestion is one multiple-choice question inside a mock interview.
// UserAnswer stays empty until the owner submits one.
type QuizQuestion struct {
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer" bson:"correctAnswer"`
	UserAnswer    string   `json:"userAnswer,omitempty" bson:"userAnswer,omitempty"`
	Explanation   string   `json:"explanation" bson:"explanation"`
}

// MockInterview is a personal practice quiz. Answers are mutable only
// while the status is in_progress; the score is computed once at
// completion from answered questions only.
type MockInterview struct {
	ID          string              `json:"id" bson:"_id"`
	UserID      string              `json:"userId" bson:"userId"`
	Title       string              `json:"title" bson:"title"`
	Questions   []QuizQuestion      `json:"questions" bson:"questions"`
	Status      MockInterviewStatus `json:"status" bson:"status"`
	Score       *float64            `json:"score,omitempty" bson:"score,omitempty"`
	Feedback    string              `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Category    string              `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// Resume is a versioned resume document owned by one user.
type Resume struct {
	ID             string    `json:"id" bson:"_id"`
	UserID         string    `json:"userId" bson:"userId"`
	Title          string    `json:"title" bson:"title"`
	Content        string    `json:"content" bson:"content"`
	JobDescription string    `json:"jobDescription,omitempty" bson:"jobDescription,omitempty"`
	Skills         []string  `json:"skills,omitempty" bson:"skills,omitempty"`
	Template       string    `json:"template,omitempty" bson:"template,omitempty"`
	Feedback       string    `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
