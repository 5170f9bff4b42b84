package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/kuest/kuestionnaire/assist"
	"github.com/kuest/kuestionnaire/httpx"
	"github.com/kuest/kuestionnaire/log"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateForm drafts a whole form from a one-line prompt. The draft is
// not persisted; the builder UI lets the admin adjust and save it.
func GenerateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := generateRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if strings.TrimSpace(req.Prompt) == "" {
			httpx.LogBadRequest(w, "generate_form.prompt", "prompt must not be empty")
			return
		}

		render.JSON(w, r, assist.Generate(req.Prompt))
	}
}

type refineRequest struct {
	Label string `json:"label"`
}

func RefineLabel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := refineRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		render.JSON(w, r, map[string]any{
			"label": assist.RefineLabel(req.Label),
		})
	}
}

type suggestOptionsRequest struct {
	Topic string `json:"topic"`
}

func SuggestOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := suggestOptionsRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		render.JSON(w, r, map[string]any{
			"options": assist.SuggestOptions(req.Topic),
		})
	}
}
