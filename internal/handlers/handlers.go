package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/smilaev/refledger/docs"
	adminhandlers "github.com/smilaev/refledger/internal/handlers/admin"
	attributionhandlers "github.com/smilaev/refledger/internal/handlers/attribution"
	leaderboardhandlers "github.com/smilaev/refledger/internal/handlers/leaderboard"
	membershandlers "github.com/smilaev/refledger/internal/handlers/members"
	webhookhandlers "github.com/smilaev/refledger/internal/handlers/webhook"
	"github.com/smilaev/refledger/internal/processor"
	"github.com/smilaev/refledger/internal/service"
)

type WebhookHandler interface {
	HandleEvent(w http.ResponseWriter, r *http.Request)
}

type AttributionHandler interface {
	RecordClick(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	GetMemberRank(w http.ResponseWriter, r *http.Request)
}

type MembersHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListDeadLetters(w http.ResponseWriter, r *http.Request)
	RequeueDeadLetter(w http.ResponseWriter, r *http.Request)
	UpdateTierThresholds(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler     WebhookHandler
	AttributionHandler AttributionHandler
	LeaderboardHandler LeaderboardHandler
	MembersHandler     MembersHandler
	AdminHandler       AdminHandler
}

func New(s *service.Services, p *processor.Service) *Handlers {
	return &Handlers{
		WebhookHandler:     webhookhandlers.New(p),
		AttributionHandler: attributionhandlers.New(s.AttributionService),
		LeaderboardHandler: leaderboardhandlers.New(s.RankService),
		MembersHandler:     membershandlers.New(s.MemberService),
		AdminHandler:       adminhandlers.New(p, s.CreatorService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/webhooks/commerce", h.WebhookHandler.HandleEvent)
		r.Post("/clicks/{code}", h.AttributionHandler.RecordClick)
		r.Get("/leaderboard", h.LeaderboardHandler.GetLeaderboard)

		r.Route("/members", func(r chi.Router) {
			r.Post("/", h.MembersHandler.Register)
			r.Get("/{id}/stats", h.MembersHandler.GetStats)
			r.Get("/{id}/rank", h.LeaderboardHandler.GetMemberRank)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dead-letters", h.AdminHandler.ListDeadLetters)
			r.Post("/dead-letters/{id}/requeue", h.AdminHandler.RequeueDeadLetter)
			r.Put("/creators/{id}/tiers", h.AdminHandler.UpdateTierThresholds)
		})
	})

	return r
}
