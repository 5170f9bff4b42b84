package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kuest/kuestionnaire/app"
	"github.com/kuest/kuestionnaire/database"
	"github.com/kuest/kuestionnaire/httpx"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/model"
	"github.com/kuest/kuestionnaire/stats"
)

// ensureIDs fills in ids the builder UI left blank. Existing ids are
// kept so logic jump targets stay valid.
func ensureIDs(form *model.Form) {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	for i := range form.Questions {
		q := &form.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		for j := range q.Options {
			if q.Options[j].ID == "" {
				q.Options[j].ID = uuid.NewString()
			}
		}
		for j := range q.Logic {
			if q.Logic[j].ID == "" {
				q.Logic[j].ID = uuid.NewString()
			}
		}
	}
}

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		for _, q := range form.Questions {
			if !q.Type.Known() {
				httpx.LogBadRequest(w, "create_form.question_type", "unknown question type: "+string(q.Type))
				return
			}
		}

		ensureIDs(&form)

		err = database.SaveForm(r.Context(), app.DB, form)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": form.ID,
		})
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := database.ListForms(r.Context(), app.DB)
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetFormByID(app app.App) http.HandlerFunc {
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

		render.JSON(w, r, form)
	}
}

func UpdateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		form.ID = formID

		for _, q := range form.Questions {
			if !q.Type.Known() {
				httpx.LogBadRequest(w, "update_form.question_type", "unknown question type: "+string(q.Type))
				return
			}
		}

		ensureIDs(&form)

		err = database.UpdateForm(r.Context(), app.DB, form)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "update_form", formID)
			} else {
				httpx.LogInternalError(w, "db.update_form", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		err := database.DeleteForm(r.Context(), app.DB, formID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "delete_form", formID)
			} else {
				httpx.LogInternalError(w, "db.delete_form", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetFormSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		_, err := database.GetForm(r.Context(), app.DB, formID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "get_submissions", formID)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		submissions, err := database.ListSubmissions(r.Context(), app.DB, formID)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

func GetFormStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		form, err := database.GetForm(r.Context(), app.DB, formID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "get_stats", formID)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		submissions, err := database.ListSubmissions(r.Context(), app.DB, formID)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, stats.Summarize(form, submissions))
	}
}
