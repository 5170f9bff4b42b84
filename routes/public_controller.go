package routes

import (
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/kuest/kuestionnaire/app"
	"github.com/kuest/kuestionnaire/assist"
	"github.com/kuest/kuestionnaire/database"
	"github.com/kuest/kuestionnaire/httpx"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/model"
)

// PublicGetForm serves a form for rendering. Choice questions flagged for
// randomization get their options shuffled anew on every request, so each
// respondent sees an independent order.
func PublicGetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		form, err := database.GetForm(r.Context(), app.DB, formID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "get_form", formID)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		for i, q := range form.Questions {
			if q.RandomizeOptions && len(q.Options) > 1 {
				form.Questions[i].Options = shuffledOptions(q)
			}
		}

		render.JSON(w, r, form)
	}
}

type checkAnswerRequest struct {
	Label  string `json:"label"`
	Answer string `json:"answer"`
}

// CheckAnswer runs the advisory answer heuristics. The verdict never
// blocks navigation, the client only surfaces it as a hint.
func CheckAnswer(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := checkAnswerRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		render.JSON(w, r, assist.CheckAnswer(req.Label, req.Answer))
	}
}

func shuffledOptions(q model.Question) []model.Option {
	options := make([]model.Option, len(q.Options))
	copy(options, q.Options)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
