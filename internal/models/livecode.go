package models

import "time"

type Language string

const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangJava       Language = "java"
)

func (l Language) Valid() bool {
	switch l {
	case LangJavaScript, LangPython, LangJava:
		return true
	}
	return false
}

// LiveCodeEvent is one entry in the append-only per-interview code log.
// The current editor state of an interview is the event with the highest
// Seq; Seq is allocated monotonically per interview by the store so that
// latest-wins reads do not depend on wall clocks. Events are never
// mutated or deleted.
type LiveCodeEvent struct {
	ID          string    `json:"id" bson:"_id"`
	InterviewID string    `json:"interviewId" bson:"interviewId"`
	Code        string    `json:"code" bson:"code"`
	Language    Language  `json:"language" bson:"language"`
	QuestionID  string    `json:"questionId,omitempty" bson:"questionId,omitempty"`
	UpdatedBy   string    `json:"updatedBy" bson:"updatedBy"`
	Seq         int64     `json:"seq" bson:"seq"`
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`
}
