package flow

import "testing"

func TestAnswerStoreSetReplacesOutright(t *testing.T) {
	s := NewAnswerStore()

	s.Set("q0", []string{"a"})
	s.Set("q0", []string{"b", "c"})

	v, ok := s.Get("q0")
	if !ok {
		t.Fatal("answer missing")
	}
	list := v.([]string)
	if len(list) != 2 || list[0] != "b" {
		t.Errorf("answer = %v, want full replacement", list)
	}
}

func TestAnswerStoreClear(t *testing.T) {
	s := NewAnswerStore()
	s.Set("q0", "x")
	s.Set("q1", "y")

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("len after clear = %d", s.Len())
	}
	if _, ok := s.Get("q0"); ok {
		t.Error("answer survived clear")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewAnswerStore()
	s.Set("q0", []string{"a", "b"})
	s.Set("q1", "text")

	snap := s.Snapshot()

	// Mutate the store afterwards; the snapshot must not move.
	s.Set("q1", "changed")
	list, _ := s.Get("q0")
	list.([]string)[0] = "mutated"

	if snap["q1"] != "text" {
		t.Errorf("snapshot scalar followed the store: %v", snap["q1"])
	}
	if got := snap["q0"].([]string)[0]; got != "a" {
		t.Errorf("snapshot slice followed the store: %v", got)
	}
}
