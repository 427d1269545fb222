// Package routers assembles the HTTP surface: middleware stack, REST
// routes under /api/v1, and the live-code WebSocket route.
package routers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rahul0401-coder/intraview-AI-career/internal/config"
	"github.com/rahul0401-coder/intraview-AI-career/internal/handlers"
	"github.com/rahul0401-coder/intraview-AI-career/internal/metrics"
	"github.com/rahul0401-coder/intraview-AI-career/internal/middleware"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/session"
)

// Deps carries everything the routes need; main builds one and hands it
// over.
type Deps struct {
	Cfg    *config.Config
	Log    *zap.Logger
	Stores *repositories.Stores
	Hub    *session.Hub
	Bus    *session.Bus
}

func New(d Deps) http.Handler {
	auth := handlers.NewAuthHandler(d.Stores.Users, d.Cfg.JWTSecret, time.Duration(d.Cfg.TokenTTLHours)*time.Hour)
	users := handlers.NewUserHandler(d.Stores.Users)
	interviews := handlers.NewInterviewHandler(d.Stores.Interviews)
	liveCode := handlers.NewLiveCodeHandler(d.Stores.LiveCode, d.Hub, d.Bus, d.Log)
	questions := handlers.NewQuestionHandler(d.Stores.Questions)
	comments := handlers.NewCommentHandler(d.Stores.Comments, d.Stores.Interviews, d.Stores.Users)
	mocks := handlers.NewMockHandler(d.Stores.MockInterviews, d.Stores.Profiles)
	profiles := handlers.NewProfileHandler(d.Stores.Profiles)
	resumes := handlers.NewResumeHandler(d.Stores.Resumes)
	admin := handlers.NewAdminHandler(d.Stores)

	requireAuth := middleware.RequireAuth(d.Stores.Users, d.Cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(d.Stores.Users, d.Cfg.JWTSecret)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", auth.RegisterHandler)
		r.Post("/auth/login", auth.LoginHandler)

		// Open probe for the call UI.
		r.Get("/interviews/stream/{streamCallId}", interviews.GetByStreamCallIDHandler)

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/users/me", users.MeHandler)
			r.Get("/interviews/mine", interviews.ListMineHandler)
			r.Get("/interviews/scheduled", interviews.ListScheduledHandler)
			r.Get("/questions/interview/{interviewId}", questions.ListByInterviewHandler)
			r.Get("/profile", profiles.GetHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/users", users.ListUsersHandler)
			r.Patch("/users/{id}/role", users.UpdateRoleHandler)
			r.Post("/users/promote/{email}", users.PromoteByEmailHandler)

			r.Post("/interviews", interviews.CreateHandler)
			r.Get("/interviews", interviews.ListHandler)
			r.Get("/interviews/candidate/{candidateId}", interviews.ListByCandidateHandler)
			r.Patch("/interviews/{id}/status", interviews.UpdateStatusHandler)

			r.Post("/interviews/{id}/code", liveCode.AppendHandler)
			r.Post("/interviews/{id}/code/question", liveCode.SwitchQuestionHandler)
			r.Get("/interviews/{id}/code/latest", liveCode.LatestHandler)

			r.Post("/questions", questions.CreateHandler)
			r.Delete("/questions/{id}", questions.DeleteHandler)

			r.Post("/comments", comments.AddHandler)
			r.Get("/comments/interview/{interviewId}", comments.ListByInterviewHandler)
			r.Get("/feedback/mine", comments.MyFeedbackHandler)

			r.Post("/mock-interviews", mocks.CreateHandler)
			r.Post("/mock-interviews/generate", mocks.GenerateHandler)
			r.Get("/mock-interviews", mocks.ListHandler)
			r.Get("/mock-interviews/in-progress", mocks.ListInProgressHandler)
			r.Get("/mock-interviews/{id}", mocks.GetHandler)
			r.Post("/mock-interviews/{id}/answers", mocks.SubmitAnswerHandler)
			r.Post("/mock-interviews/{id}/complete", mocks.CompleteHandler)

			r.Put("/profile", profiles.UpsertHandler)
			r.Get("/profiles/industry/{industry}", profiles.ListByIndustryHandler)

			r.Post("/resumes", resumes.CreateHandler)
			r.Get("/resumes", resumes.ListHandler)
			r.Get("/resumes/{id}", resumes.GetHandler)
			r.Put("/resumes/{id}", resumes.UpdateHandler)
			r.Delete("/resumes/{id}", resumes.DeleteHandler)
			r.Post("/resumes/{id}/generate", resumes.GenerateHandler)

			r.Get("/admin/stats", admin.StatsHandler)
			r.Get("/admin/activity", admin.RecentActivityHandler)
			r.Get("/admin/mock-interviews", admin.AllMockInterviewsHandler)
		})
	})

	// WebSocket subscription to an interview's live-code feed. Browser
	// clients pass the token as a "token" query parameter; the upgrade is
	// rejected with 401 before any code is streamed.
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/ws/interviews/{id}/code", liveCode.SubscribeHandler)
	})

	return r
}
