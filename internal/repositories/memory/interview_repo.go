package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

type InterviewRepo struct {
	mu         sync.RWMutex
	interviews map[string]models.Interview
	order      []string // insertion order, oldest first
}

func NewInterviewRepo() *InterviewRepo {
	return &InterviewRepo{interviews: make(map[string]models.Interview)}
}

func (r *InterviewRepo) Create(_ context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interview.ID == "" {
		interview.ID = newID()
	}
	r.interviews[interview.ID] = *interview
	r.order = append(r.order, interview.ID)
	return nil
}

func (r *InterviewRepo) GetByID(_ context.Context, id string) (*models.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	iv, ok := r.interviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &iv, nil
}

func (r *InterviewRepo) GetByStreamCallID(_ context.Context, streamCallID string) (*models.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, iv := range r.interviews {
		if iv.StreamCallID == streamCallID {
			iv := iv
			return &iv, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *InterviewRepo) List(_ context.Context) ([]models.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Interview, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.interviews[id])
	}
	return out, nil
}

func (r *InterviewRepo) ListByCandidate(_ context.Context, candidateID string) ([]models.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Interview
	for _, id := range r.order {
		if iv := r.interviews[id]; iv.CandidateID == candidateID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *InterviewRepo) ListRecent(_ context.Context, limit int) ([]models.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Interview, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.interviews[r.order[i]])
	}
	return out, nil
}

func (r *InterviewRepo) UpdateStatus(_ context.Context, id string, status models.InterviewStatus) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.interviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	iv.Status = status
	if status == models.StatusCompleted {
		now := time.Now().UTC()
		iv.EndTime = &now
	}
	r.interviews[id] = iv
	return &iv, nil
}

type CommentRepo struct {
	mu       sync.RWMutex
	comments []models.Comment
}

func NewCommentRepo() *CommentRepo { return &CommentRepo{} }

func (r *CommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = newID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *CommentRepo) ListByInterview(_ context.Context, interviewID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Comment
	for _, c := range r.comments {
		if c.InterviewID == interviewID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CommentRepo) ListRecent(_ context.Context, limit int) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]models.Comment(nil), r.comments...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type LiveCodeRepo struct {
	mu     sync.Mutex
	events map[string][]models.LiveCodeEvent // per interview, ascending Seq
}

func NewLiveCodeRepo() *LiveCodeRepo {
	return &LiveCodeRepo{events: make(map[string][]models.LiveCodeEvent)}
}

func (r *LiveCodeRepo) Append(_ context.Context, event *models.LiveCodeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == "" {
		event.ID = newID()
	}
	log := r.events[event.InterviewID]
	event.Seq = int64(len(log)) + 1
	if event.LastUpdated.IsZero() {
		event.LastUpdated = time.Now().UTC()
	}
	r.events[event.InterviewID] = append(log, *event)
	return nil
}

func (r *LiveCodeRepo) Latest(_ context.Context, interviewID string) (*models.LiveCodeEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log := r.events[interviewID]
	if len(log) == 0 {
		return nil, repositories.ErrNotFound
	}
	ev := log[len(log)-1]
	return &ev, nil
}
