package flow

import (
	"time"

	"github.com/google/uuid"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/model"
)

// Sink durably stores completed submissions.
type Sink interface {
	SaveSubmission(model.Submission) error
}

// Emitter packages a finished pass into an immutable submission record and
// hands it to the sink. Storage is fire-and-forget from the engine's side:
// a sink failure is logged and the completion stands. Durability and
// retries are the sink's problem.
type Emitter struct {
	sink Sink
}

func NewEmitter(sink Sink) Emitter {
	return Emitter{sink: sink}
}

func (e Emitter) Emit(formID string, answers map[string]any) model.Submission {
	sub := model.Submission{
		ID:        uuid.NewString(),
		FormID:    formID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Answers:   answers,
	}
	if e.sink != nil {
		if err := e.sink.SaveSubmission(sub); err != nil {
			log.Errorf("flow.emit.save: %s", err)
		}
	}
	return sub
}
