package flow

import (
	"errors"
	"testing"
	"time"
)

func TestEmitProducesUniqueTimestampedRecords(t *testing.T) {
	sink := &fakeSink{}
	emitter := NewEmitter(sink)

	a := emitter.Emit("form-1", map[string]any{"q0": "x"})
	b := emitter.Emit("form-1", map[string]any{"q0": "y"})

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("submission ids not unique: %q, %q", a.ID, b.ID)
	}
	if _, err := time.Parse(time.RFC3339, a.Timestamp); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", a.Timestamp, err)
	}
	if a.FormID != "form-1" {
		t.Errorf("form id = %q", a.FormID)
	}
	if sink.calls != 2 {
		t.Errorf("sink calls = %d, want 2", sink.calls)
	}
}

func TestEmitSwallowsSinkErrors(t *testing.T) {
	sink := &fakeSink{saveErr: errors.New("storage down")}
	emitter := NewEmitter(sink)

	sub := emitter.Emit("form-1", map[string]any{"q0": "x"})
	if sub.ID == "" {
		t.Error("no record produced on sink failure")
	}
}

func TestEmitWithoutSink(t *testing.T) {
	emitter := NewEmitter(nil)

	sub := emitter.Emit("form-1", nil)
	if sub.ID == "" || sub.FormID != "form-1" {
		t.Errorf("record = %+v", sub)
	}
}
