package models

// StarterCode holds the editor bootstrap snippet per supported language.
type StarterCode struct {
	JavaScript string `json:"javascript" bson:"javascript"`
	Python     string `json:"python" bson:"python"`
	Java       string `json:"java" bson:"java"`
}

// Example is a worked input/output pair shown with a question.
type Example struct {
	Input       string `json:"input" bson:"input"`
	Output      string `json:"output" bson:"output"`
	Explanation string `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

// CustomQuestion is a coding question authored by an interviewer for one
// specific interview. Questions are immutable once created; only the
// owning interviewer may delete one.
type CustomQuestion struct {
	ID            string      `json:"id" bson:"_id"`
	InterviewID   string      `json:"interviewId" bson:"interviewId"`
	InterviewerID string      `json:"interviewerId" bson:"interviewerId"`
	Title         string      `json:"title" bson:"title"`
	Description   string      `json:"description" bson:"description"`
	StarterCode   StarterCode `json:"starterCode" bson:"starterCode"`
	Examples      []Example   `json:"examples" bson:"examples"`
}
