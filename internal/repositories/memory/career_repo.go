package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

type QuestionRepo struct {
	mu        sync.RWMutex
	questions map[string]models.CustomQuestion
	order     []string
}

func NewQuestionRepo() *QuestionRepo {
	return &QuestionRepo{questions: make(map[string]models.CustomQuestion)}
}

func (r *QuestionRepo) Create(_ context.Context, question *models.CustomQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if question.ID == "" {
		question.ID = newID()
	}
	r.questions[question.ID] = *question
	r.order = append(r.order, question.ID)
	return nil
}

func (r *QuestionRepo) GetByID(_ context.Context, id string) (*models.CustomQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &q, nil
}

func (r *QuestionRepo) ListByInterview(_ context.Context, interviewID string) ([]models.CustomQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.CustomQuestion
	for _, id := range r.order {
		if q, ok := r.questions[id]; ok && q.InterviewID == interviewID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuestionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *QuestionRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}

type MockInterviewRepo struct {
	mu         sync.RWMutex
	interviews map[string]models.MockInterview
}

func NewMockInterviewRepo() *MockInterviewRepo {
	return &MockInterviewRepo{interviews: make(map[string]models.MockInterview)}
}

func cloneMock(m models.MockInterview) models.MockInterview {
	m.Questions = append([]models.QuizQuestion(nil), m.Questions...)
	return m
}

func (r *MockInterviewRepo) Create(_ context.Context, interview *models.MockInterview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interview.ID == "" {
		interview.ID = newID()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}
	r.interviews[interview.ID] = cloneMock(*interview)
	return nil
}

func (r *MockInterviewRepo) GetByID(_ context.Context, id string) (*models.MockInterview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.interviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	m = cloneMock(m)
	return &m, nil
}

func (r *MockInterviewRepo) ListByUser(_ context.Context, userID string) ([]models.MockInterview, error) {
	return r.list(func(m models.MockInterview) bool { return m.UserID == userID })
}

func (r *MockInterviewRepo) ListByUserAndStatus(_ context.Context, userID string, status models.MockInterviewStatus) ([]models.MockInterview, error) {
	return r.list(func(m models.MockInterview) bool { return m.UserID == userID && m.Status == status })
}

func (r *MockInterviewRepo) ListAll(_ context.Context) ([]models.MockInterview, error) {
	return r.list(func(models.MockInterview) bool { return true })
}

func (r *MockInterviewRepo) list(keep func(models.MockInterview) bool) ([]models.MockInterview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.MockInterview
	for _, m := range r.interviews {
		if keep(m) {
			out = append(out, cloneMock(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MockInterviewRepo) Update(_ context.Context, interview *models.MockInterview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interviews[interview.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.interviews[interview.ID] = cloneMock(*interview)
	return nil
}

type ResumeRepo struct {
	mu      sync.RWMutex
	resumes map[string]models.Resume
}

func NewResumeRepo() *ResumeRepo {
	return &ResumeRepo{resumes: make(map[string]models.Resume)}
}

func (r *ResumeRepo) Create(_ context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume.ID == "" {
		resume.ID = newID()
	}
	now := time.Now().UTC()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = now
	}
	if resume.UpdatedAt.IsZero() {
		resume.UpdatedAt = now
	}
	r.resumes[resume.ID] = *resume
	return nil
}

func (r *ResumeRepo) GetByID(_ context.Context, id string) (*models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resumes[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &res, nil
}

func (r *ResumeRepo) ListByUser(_ context.Context, userID string) ([]models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Resume
	for _, res := range r.resumes {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ResumeRepo) Update(_ context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[resume.ID]; !ok {
		return repositories.ErrNotFound
	}
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[resume.ID] = *resume
	return nil
}

func (r *ResumeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.resumes, id)
	return nil
}
