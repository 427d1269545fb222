// Package memory keeps every collection in process-local maps guarded by
// RW mutexes. It backs the test suite and storeless development runs with
// the exact contracts of the Mongo implementation.
package memory

import (
	"github.com/google/uuid"

	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

// NewStores returns a full set of empty in-memory repositories.
func NewStores() *repositories.Stores {
	return &repositories.Stores{
		Users:          NewUserRepo(),
		Interviews:     NewInterviewRepo(),
		LiveCode:       NewLiveCodeRepo(),
		Questions:      NewQuestionRepo(),
		Comments:       NewCommentRepo(),
		MockInterviews: NewMockInterviewRepo(),
		Profiles:       NewProfileRepo(),
		Resumes:        NewResumeRepo(),
	}
}

func newID() string { return uuid.New().String() }
