// Package repositories declares the storage contracts the handlers work
// against. Two implementations exist: repositories/mongo for the hosted
// document store and repositories/memory for tests and storeless runs.
package repositories

import (
	"context"
	"errors"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error)
	// ClaimAdminBootstrap atomically claims the one-time "first user is
	// admin" marker. Exactly one caller across all instances ever gets
	// true.
	ClaimAdminBootstrap(ctx context.Context) (bool, error)
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error)
	List(ctx context.Context) ([]models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error)
	ListRecent(ctx context.Context, limit int) ([]models.Interview, error)
	UpdateStatus(ctx context.Context, id string, status models.InterviewStatus) (*models.Interview, error)
}

type LiveCodeRepository interface {
	// Append stores the event and assigns it the next per-interview Seq.
	Append(ctx context.Context, event *models.LiveCodeEvent) error
	// Latest returns the highest-Seq event for the interview, or
	// ErrNotFound when nothing has been appended yet.
	Latest(ctx context.Context, interviewID string) (*models.LiveCodeEvent, error)
}

type CustomQuestionRepository interface {
	Create(ctx context.Context, question *models.CustomQuestion) error
	GetByID(ctx context.Context, id string) (*models.CustomQuestion, error)
	ListByInterview(ctx context.Context, interviewID string) ([]models.CustomQuestion, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByInterview(ctx context.Context, interviewID string) ([]models.Comment, error)
	ListRecent(ctx context.Context, limit int) ([]models.Comment, error)
}

type MockInterviewRepository interface {
	Create(ctx context.Context, interview *models.MockInterview) error
	GetByID(ctx context.Context, id string) (*models.MockInterview, error)
	ListByUser(ctx context.Context, userID string) ([]models.MockInterview, error)
	ListByUserAndStatus(ctx context.Context, userID string, status models.MockInterviewStatus) ([]models.MockInterview, error)
	ListAll(ctx context.Context) ([]models.MockInterview, error)
	Update(ctx context.Context, interview *models.MockInterview) error
}

type ProfileRepository interface {
	// Upsert creates the caller's profile or replaces its mutable fields,
	// keeping at most one profile per user.
	Upsert(ctx context.Context, profile *models.SkillsProfile) (*models.SkillsProfile, error)
	GetByUser(ctx context.Context, userID string) (*models.SkillsProfile, error)
	ListByIndustry(ctx context.Context, industry string) ([]models.SkillsProfile, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id string) (*models.Resume, error)
	ListByUser(ctx context.Context, userID string) ([]models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id string) error
}

// Stores bundles one repository per entity so wiring stays one value.
type Stores struct {
	Users          UserRepository
	Interviews     InterviewRepository
	LiveCode       LiveCodeRepository
	Questions      CustomQuestionRepository
	Comments       CommentRepository
	MockInterviews MockInterviewRepository
	Profiles       ProfileRepository
	Resumes        ResumeRepository
}
