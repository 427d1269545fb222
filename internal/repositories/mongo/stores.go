package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

// NewStores builds the full repository set over one database handle.
func NewStores(db *mongo.Database) *repositories.Stores {
	return &repositories.Stores{
		Users:          NewUserRepo(db),
		Interviews:     NewInterviewRepo(db),
		LiveCode:       NewLiveCodeRepo(db),
		Questions:      NewQuestionRepo(db),
		Comments:       NewCommentRepo(db),
		MockInterviews: NewMockInterviewRepo(db),
		Profiles:       NewProfileRepo(db),
		Resumes:        NewResumeRepo(db),
	}
}
