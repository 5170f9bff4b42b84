package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/kuest/kuestionnaire/app"
	"github.com/kuest/kuestionnaire/routes/middlewares"
	"github.com/kuest/kuestionnaire/session"
)

func Wire(app app.App, sessions *session.Registry) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app, sessions))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App, sessions *session.Registry) http.Handler {
	api := chi.NewRouter()

	// respondent surface
	api.Get("/forms/{id}", PublicGetForm(app))
	api.Post("/forms/{id}/validate", CheckAnswer(app))
	api.Post("/forms/{id}/sessions", OpenSession(app, sessions))
	api.Route("/sessions/{sessionId}", func(r chi.Router) {
		r.Get("/", GetSession(sessions))
		r.Post("/start", StartSession(sessions))
		r.Post("/next", AdvanceSession(sessions))
		r.Post("/back", RetreatSession(sessions))
		r.Post("/reset", ResetSession(sessions))
		r.Put("/answer", SetAnswer(sessions))
	})

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		// CRUD forms
		r.Post("/forms", CreateForm(app))
		r.Get("/forms", ListForms(app))
		r.Get("/forms/{id}", GetFormByID(app))
		r.Put("/forms/{id}", UpdateForm(app))
		r.Delete("/forms/{id}", DeleteForm(app))

		r.Get("/forms/{id}/submissions", GetFormSubmissions(app))
		r.Get("/forms/{id}/stats", GetFormStats(app))

		// builder assistant
		r.Post("/assist/generate", GenerateForm())
		r.Post("/assist/refine-label", RefineLabel())
		r.Post("/assist/suggest-options", SuggestOptions())
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
