package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

type UserRepo struct {
	mu               sync.RWMutex
	users            map[string]models.User
	bootstrapClaimed bool
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = newID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ExternalID == externalID {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) CountByRole(_ context.Context, role models.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *UserRepo) UpdateRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	u.Role = role
	r.users[id] = u
	return &u, nil
}

func (r *UserRepo) ClaimAdminBootstrap(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bootstrapClaimed {
		return false, nil
	}
	r.bootstrapClaimed = true
	return true, nil
}

type ProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.SkillsProfile // keyed by user id
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: make(map[string]models.SkillsProfile)}
}

func (r *ProfileRepo) Upsert(_ context.Context, profile *models.SkillsProfile) (*models.SkillsProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.profiles[profile.UserID]
	if ok {
		existing.Industry = profile.Industry
		existing.YearsOfExperience = profile.YearsOfExperience
		existing.Skills = append([]string(nil), profile.Skills...)
		existing.Bio = profile.Bio
		existing.UpdatedAt = now
		r.profiles[profile.UserID] = existing
		return &existing, nil
	}
	stored := *profile
	stored.ID = newID()
	stored.Skills = append([]string(nil), profile.Skills...)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.profiles[profile.UserID] = stored
	return &stored, nil
}

func (r *ProfileRepo) GetByUser(_ context.Context, userID string) (*models.SkillsProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *ProfileRepo) ListByIndustry(_ context.Context, industry string) ([]models.SkillsProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.SkillsProfile
	for _, p := range r.profiles {
		if p.Industry == industry {
			out = append(out, p)
		}
	}
	return out, nil
}
