package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/kuest/kuestionnaire/app"
	"github.com/kuest/kuestionnaire/database"
	"github.com/kuest/kuestionnaire/flow"
	"github.com/kuest/kuestionnaire/httpx"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/model"
	"github.com/kuest/kuestionnaire/session"
)

// sessionView is the wire shape of a respondent session. Step counts
// from -1 (intro) through the question indexes to len(questions)
// (completion screen).
type sessionView struct {
	ID         string          `json:"id"`
	FormID     string          `json:"formId"`
	Step       int             `json:"step"`
	TotalSteps int             `json:"totalSteps"`
	Completed  bool            `json:"completed"`
	Progress   float64         `json:"progress"`
	Question   *model.Question `json:"question,omitempty"`
	Submission string          `json:"submissionId,omitempty"`
}

// viewOf reads engine state into a wire view. Callers hold the session lock.
func viewOf(s *session.Session) sessionView {
	e := s.Engine
	view := sessionView{
		ID:         s.ID,
		FormID:     s.FormID,
		Step:       e.Current(),
		TotalSteps: len(e.Form().Questions),
		Completed:  e.Completed(),
		Progress:   e.Progress(),
	}

	if q, ok := e.Question(); ok {
		if q.RandomizeOptions && len(q.Options) > 1 {
			q.Options = shuffledOptions(q)
		}
		view.Question = &q
	}

	if sub, ok := e.Submission(); ok {
		view.Submission = sub.ID
	}

	return view
}

// OpenSession creates a navigation session over the current version of a
// form. The session holds its own copy of the questions, so a concurrent
// form edit does not disturb a pass already underway.
func OpenSession(app app.App, sessions *session.Registry) http.HandlerFunc {
	sink := database.SubmissionSink{DB: app.DB}
	emitter := flow.NewEmitter(sink)

	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "id")

		form, err := database.GetForm(r.Context(), app.DB, formID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpx.LogNotFound(w, "open_session", formID)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		s := sessions.Open(form, emitter)

		s.Lock()
		defer s.Unlock()

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, viewOf(s))
	}
}

func GetSession(sessions *session.Registry) http.HandlerFunc {
	return withSession(sessions, func(s *session.Session) {})
}

func StartSession(sessions *session.Registry) http.HandlerFunc {
	return withSession(sessions, func(s *session.Session) {
		s.Engine.Start()
	})
}

func AdvanceSession(sessions *session.Registry) http.HandlerFunc {
	return withSession(sessions, func(s *session.Session) {
		s.Engine.Advance()
	})
}

func RetreatSession(sessions *session.Registry) http.HandlerFunc {
	return withSession(sessions, func(s *session.Session) {
		s.Engine.Retreat()
	})
}

func ResetSession(sessions *session.Registry) http.HandlerFunc {
	return withSession(sessions, func(s *session.Session) {
		s.Engine.Reset()
	})
}

// withSession resolves the session from the URL, applies op under the
// session lock, and responds with the resulting state.
func withSession(sessions *session.Registry, op func(s *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")

		s, ok := sessions.Get(sessionID)
		if !ok {
			httpx.LogNotFound(w, "get_session", sessionID)
			return
		}

		s.Lock()
		defer s.Unlock()

		op(s)
		render.JSON(w, r, viewOf(s))
	}
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

// SetAnswer records one answer in the session. The value is coerced to
// the question's canonical shape first; a value the question cannot hold
// is rejected, but an empty answer to a required question is not. Answers
// may target any question, not just the current one, so a respondent can
// revise an earlier step without retreating.
func SetAnswer(sessions *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")

		s, ok := sessions.Get(sessionID)
		if !ok {
			httpx.LogNotFound(w, "get_session", sessionID)
			return
		}

		req := answerRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		s.Lock()
		defer s.Unlock()

		form := s.Engine.Form()
		idx := form.IndexOf(req.QuestionID)
		if idx < 0 {
			httpx.LogNotFound(w, "set_answer.question", req.QuestionID)
			return
		}

		value, err := model.NormalizeAnswer(form.Questions[idx], req.Value)
		if err != nil {
			httpx.LogBadRequest(w, "set_answer.value", err.Error())
			return
		}

		s.Engine.Answer(req.QuestionID, value)
		render.JSON(w, r, viewOf(s))
	}
}
