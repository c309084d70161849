package handler

import (
	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/middleware"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// Routes groups the handlers mounted under /api.
type Routes struct {
	Auth      *AuthHandler
	Session   *SessionHandler
	Sites     *SiteHandler
	Finance   *FinanceHandler
	Quotes    *QuoteHandler
	Tasks     *TaskHandler
	Team      *TeamHandler
	Worker    *WorkerHandler
	Analytics *AnalyticsHandler
	Settings  *SettingsHandler
}

// Mount registers the API on r. Session, subscription and auth routes stay
// reachable after the trial lapses; worker and settings routes are open to
// every member; everything else is admin only.
func (rt Routes) Mount(r chi.Router, tokens *auth.TokenManager, sessions *service.SessionService) {
	r.Use(chmw.AllowContentType("application/json"))

	r.Post("/auth/signup", rt.Auth.Signup)
	r.Get("/auth/signup/verify", rt.Auth.Verify)
	r.Post("/auth/login", rt.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokens))
		r.Post("/auth/logout", rt.Auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionMiddleware(sessions))

			r.Get("/session", rt.Session.Current)
			r.Get("/subscription", rt.Session.Subscription)
			r.Post("/subscription/activate", rt.Session.Activate)

			r.Group(func(r chi.Router) {
				r.Use(middleware.EntitlementGate)

				r.Route("/settings", func(r chi.Router) {
					r.Put("/organization", rt.Settings.Organization)
					r.Put("/notifications", rt.Settings.Notifications)
					r.Put("/password", rt.Settings.Password)
				})

				r.Route("/worker", func(r chi.Router) {
					r.Get("/sites", rt.Worker.Sites)
					r.Get("/logs", rt.Worker.MyLogs)
					r.Post("/logs", rt.Worker.Log)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					rt.mountAdmin(r)
				})
			})
		})
	})
}

func (rt Routes) mountAdmin(r chi.Router) {
	r.Route("/sites", func(r chi.Router) {
		r.Get("/", rt.Sites.List)
		r.Post("/", rt.Sites.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.Sites.Get)
			r.Put("/", rt.Sites.Update)
			r.Delete("/", rt.Sites.Delete)
			r.Put("/status", rt.Sites.UpdateStatus)
			r.Get("/rollup", rt.Sites.Rollup)
			r.Get("/materials", rt.Sites.ListMaterials)
			r.Post("/materials", rt.Sites.CreateMaterial)
			r.Put("/materials/{materialID}", rt.Sites.UpdateMaterial)
			r.Delete("/materials/{materialID}", rt.Sites.DeleteMaterial)
		})
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", rt.Finance.List)
		r.Post("/", rt.Finance.Create)
		r.Get("/export", rt.Finance.Export)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.Finance.Get)
			r.Put("/", rt.Finance.Update)
			r.Delete("/", rt.Finance.Delete)
			r.Put("/paid", rt.Finance.SetPaid)
		})
	})
	r.Get("/finance/overview", rt.Finance.Overview)

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", rt.Quotes.List)
		r.Post("/", rt.Quotes.Create)
		r.Get("/{id}", rt.Quotes.Get)
		r.Put("/{id}/status", rt.Quotes.UpdateStatus)
		r.Delete("/{id}", rt.Quotes.Delete)
	})

	r.Get("/calendar", rt.Tasks.Calendar)
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", rt.Tasks.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.Tasks.Get)
			r.Put("/", rt.Tasks.Update)
			r.Delete("/", rt.Tasks.Delete)
			r.Put("/status", rt.Tasks.UpdateStatus)
			r.Post("/reschedule", rt.Tasks.Reschedule)
		})
	})

	r.Route("/team", func(r chi.Router) {
		r.Get("/", rt.Team.List)
		r.Post("/", rt.Team.Create)
		r.Get("/invite", rt.Auth.InviteLink)
		r.Post("/invite", rt.Auth.SendInvite)
		r.Delete("/logs/{logID}", rt.Team.DeleteLog)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.Team.Get)
			r.Put("/", rt.Team.Update)
			r.Delete("/", rt.Team.Delete)
			r.Post("/archive", rt.Team.Archive)
			r.Post("/restore", rt.Team.Restore)
			r.Get("/logs", rt.Team.Logs)
			r.Get("/payroll", rt.Team.Payroll)
			r.Post("/payouts", rt.Team.Payout)
		})
	})

	r.Get("/analytics", rt.Analytics.Analytics)
	r.Get("/dashboard", rt.Analytics.Dashboard)
}
