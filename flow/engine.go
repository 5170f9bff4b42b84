package flow

import "github.com/kuest/kuestionnaire/model"

// StepIntro is the pre-start position. A form with N questions runs over
// positions -1 (intro), 0..N-1 (questions) and N (complete).
const StepIntro = -1

// Engine walks one respondent through a form's questions under its branching
// rules. Each engine instance belongs to exactly one pass: it owns the
// answer store, the current position, and the one-shot submission trigger.
type Engine struct {
	form    model.Form
	answers *AnswerStore
	emitter Emitter

	current   int
	submitted bool
	last      *model.Submission
}

func New(form model.Form, emitter Emitter) *Engine {
	return &Engine{
		form:    form,
		answers: NewAnswerStore(),
		emitter: emitter,
		current: StepIntro,
	}
}

func (e *Engine) Form() model.Form { return e.form }

// Current returns the position: StepIntro, a question index, or N.
func (e *Engine) Current() int { return e.current }

// Question returns the active question, or false outside the active range.
func (e *Engine) Question() (model.Question, bool) {
	if e.current < 0 || e.current >= len(e.form.Questions) {
		return model.Question{}, false
	}
	return e.form.Questions[e.current], true
}

func (e *Engine) Completed() bool {
	return e.current == len(e.form.Questions)
}

func (e *Engine) Answers() *AnswerStore { return e.answers }

// Answer records a value for a question. Requiredness is advisory only:
// nothing here prevents advancing past an empty required answer.
func (e *Engine) Answer(questionID string, value any) {
	e.answers.Set(questionID, value)
}

// Start moves from the intro to the first question. Ignored elsewhere.
func (e *Engine) Start() {
	if e.current != StepIntro {
		return
	}
	e.moveTo(0)
}

// Advance computes the next position from the current question's logic
// rules and moves there. Meaningful only while a question is active;
// requests from the intro or completion states are ignored.
func (e *Engine) Advance() {
	if e.current < 0 || e.current >= len(e.form.Questions) {
		return
	}
	e.moveTo(nextIndex(e.form, e.current, e.answers))
}

// Retreat steps back one position. Back navigation is strictly linear: it
// never replays a logic jump in reverse. Ignored from the intro.
func (e *Engine) Retreat() {
	switch {
	case e.current >= 1:
		e.current--
	case e.current == 0:
		e.current = StepIntro
	}
}

// Reset discards the pass: answers cleared, position back to the intro.
// A fresh pass through the form may produce a fresh submission.
func (e *Engine) Reset() {
	e.current = StepIntro
	e.answers.Clear()
	e.submitted = false
	e.last = nil
}

// Submission returns the record emitted by this pass, once completed.
func (e *Engine) Submission() (model.Submission, bool) {
	if e.last == nil {
		return model.Submission{}, false
	}
	return *e.last, true
}

// Progress reports the fraction of positions passed, clamped to [0, 1].
// Display only; it never feeds back into navigation.
func (e *Engine) Progress() float64 {
	p := float64(e.current+1) / float64(len(e.form.Questions)+1)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// moveTo is the single transition point. Emission is keyed off the edge
// into the complete position, at most once per pass, so re-observing the
// completed state never fires a second submission.
func (e *Engine) moveTo(next int) {
	e.current = next
	if e.Completed() && !e.submitted {
		e.submitted = true
		sub := e.emitter.Emit(e.form.ID, e.answers.Snapshot())
		e.last = &sub
	}
}
