package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

// AdminHandler serves the cross-user aggregation endpoints. Every
// operation re-checks the admin role against the store.
type AdminHandler struct {
	Users          repositories.UserRepository
	Interviews     repositories.InterviewRepository
	Comments       repositories.CommentRepository
	Questions      repositories.CustomQuestionRepository
	MockInterviews repositories.MockInterviewRepository
}

func NewAdminHandler(stores *repositories.Stores) *AdminHandler {
	return &AdminHandler{
		Users:          stores.Users,
		Interviews:     stores.Interviews,
		Comments:       stores.Comments,
		Questions:      stores.Questions,
		MockInterviews: stores.MockInterviews,
	}
}

type usersByRole struct {
	Candidates   int `json:"candidates"`
	Interviewers int `json:"interviewers"`
	Admins       int `json:"admins"`
}

type interviewsByStatus struct {
	Scheduled  int `json:"scheduled"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
}

type systemStats struct {
	TotalUsers           int                `json:"totalUsers"`
	UsersByRole          usersByRole        `json:"usersByRole"`
	TotalInterviews      int                `json:"totalInterviews"`
	InterviewsByStatus   interviewsByStatus `json:"interviewsByStatus"`
	TotalCustomQuestions int                `json:"totalCustomQuestions"`
}

// StatsHandler aggregates headline counts. Interview buckets combine
// the stored status with a time-window check against now, so a
// scheduled interview whose start time has passed counts as in
// progress rather than scheduled.
func (h *AdminHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := adminFrom(r, "Only admins can view system stats"); err != nil {
		utils.Err(w, err)
		return
	}

	users, err := h.Users.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	interviews, err := h.Interviews.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load interviews")
		return
	}
	totalQuestions, err := h.Questions.Count(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to count questions")
		return
	}

	stats := systemStats{
		TotalUsers:           len(users),
		TotalInterviews:      len(interviews),
		TotalCustomQuestions: totalQuestions,
	}
	for _, u := range users {
		switch u.Role {
		case models.RoleCandidate:
			stats.UsersByRole.Candidates++
		case models.RoleInterviewer:
			stats.UsersByRole.Interviewers++
		case models.RoleAdmin:
			stats.UsersByRole.Admins++
		}
	}

	now := time.Now().UTC()
	for _, iv := range interviews {
		if iv.Status == models.StatusScheduled && iv.StartTime.After(now) {
			stats.InterviewsByStatus.Scheduled++
		}
		if iv.Status == models.StatusCompleted || (iv.EndTime != nil && iv.EndTime.Before(now)) {
			stats.InterviewsByStatus.Completed++
		}
		if iv.Status == models.StatusInProgress || iv.Status == models.StatusActive ||
			(!iv.StartTime.After(now) && (iv.EndTime == nil || iv.EndTime.After(now))) {
			stats.InterviewsByStatus.InProgress++
		}
	}

	utils.JSON(w, http.StatusOK, stats)
}

type activityEntry struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentActivityHandler merges the 10 most recent interviews and the 10
// most recent comments into one time-sorted feed, capped at 10 entries.
func (h *AdminHandler) RecentActivityHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := adminFrom(r, "Only admins can view activity logs"); err != nil {
		utils.Err(w, err)
		return
	}

	interviews, err := h.Interviews.ListRecent(r.Context(), 10)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load interviews")
		return
	}
	comments, err := h.Comments.ListRecent(r.Context(), 10)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load comments")
		return
	}

	activities := make([]activityEntry, 0, len(interviews)+len(comments))
	for _, iv := range interviews {
		activities = append(activities, activityEntry{Type: "interview", Data: iv, Timestamp: iv.StartTime})
	}
	for _, c := range comments {
		activities = append(activities, activityEntry{Type: "feedback", Data: c, Timestamp: c.CreatedAt})
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].Timestamp.After(activities[j].Timestamp) })
	if len(activities) > 10 {
		activities = activities[:10]
	}
	utils.JSON(w, http.StatusOK, activities)
}

type mockWithOwner struct {
	models.MockInterview
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserImage string `json:"userImage"`
}

// AllMockInterviewsHandler lists every mock interview in the system,
// newest first, joined with the owner's name and email. Owners who have
// since disappeared are reported as unknown rather than dropped.
func (h *AdminHandler) AllMockInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := adminFrom(r, "Only admins can view all mock interviews"); err != nil {
		utils.Err(w, err)
		return
	}

	mocks, err := h.MockInterviews.ListAll(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load mock interviews")
		return
	}
	users, err := h.Users.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	byExternalID := make(map[string]models.User, len(users))
	for _, u := range users {
		byExternalID[u.ExternalID] = u
	}

	out := make([]mockWithOwner, 0, len(mocks))
	for _, m := range mocks {
		entry := mockWithOwner{MockInterview: m, UserName: "Unknown User", UserEmail: "Unknown Email"}
		if u, ok := byExternalID[m.UserID]; ok {
			entry.UserName = u.Name
			entry.UserEmail = u.Email
			entry.UserImage = u.Image
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	utils.JSON(w, http.StatusOK, out)
}
