package models

import "time"

type InterviewStatus string

const (
	StatusScheduled  InterviewStatus = "scheduled"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusActive     InterviewStatus = "active"
	StatusSucceeded  InterviewStatus = "succeeded"
	StatusUpcoming   InterviewStatus = "upcoming"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusActive, StatusSucceeded, StatusUpcoming:
		return true
	}
	return false
}

// Interview is a scheduled live coding session between one candidate and
// one or more interviewers. EndTime is set only when the status moves to
// completed.
type Interview struct {
	ID             string          `json:"id" bson:"_id"`
	Title          string          `json:"title" bson:"title"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	StartTime      time.Time       `json:"startTime" bson:"startTime"`
	EndTime        *time.Time      `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Status         InterviewStatus `json:"status" bson:"status"`
	StreamCallID   string          `json:"streamCallId" bson:"streamCallId"`
	CandidateID    string          `json:"candidateId" bson:"candidateId"`
	InterviewerIDs []string        `json:"interviewerIds" bson:"interviewerIds"`
}

// Comment is post-interview feedback left by an interviewer. Participant
// names are resolved and denormalized at write time.
type Comment struct {
	ID              string    `json:"id" bson:"_id"`
	InterviewID     string    `json:"interviewId" bson:"interviewId"`
	Content         string    `json:"content" bson:"content"`
	Rating          int       `json:"rating" bson:"rating"`
	InterviewerID   string    `json:"interviewerId" bson:"interviewerId"`
	InterviewerName string    `json:"interviewerName,omitempty" bson:"interviewerName,omitempty"`
	CandidateName   string    `json:"candidateName,omitempty" bson:"candidateName,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// CandidateFeedback is a comment joined with the interview it belongs to,
// as returned by the candidate feedback listing.
type CandidateFeedback struct {
	Comment        `bson:",inline"`
	InterviewTitle string    `json:"interviewTitle"`
	InterviewDate  time.Time `json:"interviewDate"`
}
